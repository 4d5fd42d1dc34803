package queries

import (
	"errors"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/guard"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
)

// GetCustomersQuery retrieves the customer directory for the sale form.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to retrieve all customers.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomersQueryIsNotConstructed if validation fails.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse represents one customer in the read model.
type GetCustomersQueryResponse struct {
	ID   kernel.UUID
	Name string
}
