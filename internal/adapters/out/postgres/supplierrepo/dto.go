// Package supplierrepo provides data transfer objects and mapping functions for supplier persistence.
// Suppliers are a read-only directory in this system: rows are seeded
// externally and only ever read here.
package supplierrepo

import (
	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/core/domain/model/supplier"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure for supplier entities.
type SupplierDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"index"`
}

// TableName specifies the database table name for supplier entities.
// Overrides GORM's default naming convention to use "suppliers".
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// toDomain converts a database DTO to a supplier entity.
func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return supplier.NewSupplier(id, dto.Name)
}
