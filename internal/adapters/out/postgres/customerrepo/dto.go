// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// Customers are a read-only directory in this system: rows are seeded
// externally and only ever read here.
package customerrepo

import (
	"hogtrade/internal/core/domain/model/customer"
	"hogtrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer entities.
type CustomerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"index"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// toDomain converts a database DTO to a customer entity.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.NewCustomer(id, dto.Name)
}
