// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// A delivery is persisted together with the hogs it introduced; the hog rows
// live in the hogs table and back-reference the delivery.
package deliveryrepo

import (
	"time"

	"hogtrade/internal/adapters/out/postgres/hogrepo"
	"hogtrade/internal/core/domain/model/delivery"
	"hogtrade/internal/core/domain/model/hog"
	"hogtrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The Hogs association is created at intake together with the delivery row and
// preloaded when reading, so aggregation never needs extra round trips.
type DeliveryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArrivalDate   time.Time `gorm:"index"`
	ModeOfPayment string
	SupplierID    uuid.UUID         `gorm:"type:uuid;index"`
	Hogs          []hogrepo.HogDTO  `gorm:"foreignKey:DeliveryID"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation,
// including one hog DTO per hog introduced by the delivery.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	hogs := aggregate.Hogs()
	hogDTOs := make([]hogrepo.HogDTO, 0, len(hogs))
	for _, h := range hogs {
		hogDTOs = append(hogDTOs, hogrepo.FromDomain(h))
	}

	return DeliveryDTO{
		ID:            aggregate.ID().Bytes(),
		ArrivalDate:   aggregate.ArrivalDate(),
		ModeOfPayment: aggregate.ModeOfPayment(),
		SupplierID:    aggregate.Supplier().Bytes(),
		Hogs:          hogDTOs,
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the delivery with its hogs using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	hogs := make([]*hog.Hog, 0, len(dto.Hogs))
	for _, hogDTO := range dto.Hogs {
		h, hogErr := hogrepo.ToDomain(hogDTO)
		if hogErr != nil {
			return nil, hogErr
		}
		hogs = append(hogs, h)
	}

	return delivery.RestoreDelivery(id, dto.ArrivalDate, dto.ModeOfPayment, supplierID, hogs)
}
