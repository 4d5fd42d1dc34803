package ports

import (
	"context"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/core/domain/model/supplier"
)

// SupplierRepository provides read access to the supplier directory.
type SupplierRepository interface {
	// Get retrieves a supplier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)
}
