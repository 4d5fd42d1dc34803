package queries

import (
	"errors"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/guard"
)

var (
	ErrGetAllHogsQueryIsNotConstructed = errors.New(
		"GetAllHogsQuery must be created via NewGetAllHogsQuery constructor",
	)
)

// GetAllHogsQuery retrieves the complete hog inventory, sold and unsold alike.
// Used for inventory review rather than sale preparation.
type GetAllHogsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllHogsQuery creates a query to retrieve the full inventory.
func NewGetAllHogsQuery() GetAllHogsQuery {
	return GetAllHogsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllHogsQueryIsNotConstructed if validation fails.
func (q GetAllHogsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllHogsQueryIsNotConstructed)
}

// GetAllHogsQueryResponse represents one hog in the inventory read model.
// TransactionID is nil for available hogs.
type GetAllHogsQueryResponse struct {
	ID            kernel.UUID
	Eartag        string
	LiveWeight    float64
	FarmgatePrice float64
	DeliveryID    *kernel.UUID
	TransactionID *kernel.UUID
}
