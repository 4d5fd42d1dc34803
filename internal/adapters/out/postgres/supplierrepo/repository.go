package supplierrepo

import (
	"context"
	"errors"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/core/domain/model/supplier"
	"hogtrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Get retrieves a supplier by ID.
func (r *GormSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
