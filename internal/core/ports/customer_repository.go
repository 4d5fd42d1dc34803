package ports

import (
	"context"

	"hogtrade/internal/core/domain/model/customer"
	"hogtrade/internal/core/domain/model/kernel"
)

// CustomerRepository provides read access to the customer directory.
type CustomerRepository interface {
	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every registered customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}
