// Package hogrepo provides data transfer objects and mapping functions for hog persistence.
// This package implements the repository pattern for the hog domain aggregate, handling
// the conversion between domain entities and database representations.
package hogrepo

import (
	"hogtrade/internal/core/domain/model/hog"
	"hogtrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HogDTO represents the database structure for persisting hog aggregates.
// Maps hog domain entities to relational database tables with indexing on
// the delivery back-reference and the transaction reference, the latter
// being the availability discriminator.
type HogDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Eartag        string     `gorm:"index"`
	LiveWeight    float64
	FarmgatePrice float64
	DeliveryID    *uuid.UUID `gorm:"type:uuid;index"`
	TransactionID *uuid.UUID `gorm:"type:uuid;index"`
	Status        int
}

// TableName specifies the database table name for hog entities.
// Overrides GORM's default naming convention to use "hogs".
func (HogDTO) TableName() string {
	return "hogs"
}

// FromDomain converts a hog domain aggregate to its database representation.
// Exported because the delivery repository persists hogs together with their
// delivery at intake time.
func FromDomain(aggregate *hog.Hog) HogDTO {
	var deliveryID *uuid.UUID
	if id := aggregate.Delivery(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	var transactionID *uuid.UUID
	if id := aggregate.Transaction(); id != nil {
		raw := id.Bytes()
		transactionID = &raw
	}

	return HogDTO{
		ID:            aggregate.ID().Bytes(),
		Eartag:        aggregate.Eartag(),
		LiveWeight:    aggregate.LiveWeight(),
		FarmgatePrice: aggregate.FarmgatePrice(),
		DeliveryID:    deliveryID,
		TransactionID: transactionID,
		Status:        int(aggregate.Status()),
	}
}

// ToDomain converts a database DTO to a hog domain aggregate.
// Reconstructs the complete aggregate including status and the optional
// transaction reference using RestoreHog.
func ToDomain(dto HogDTO) (*hog.Hog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		deliveryID = &dID
	}

	var transactionID *kernel.UUID
	if dto.TransactionID != nil {
		tID, transactionErr := kernel.UUIDFromBytes((*dto.TransactionID)[:])
		if transactionErr != nil {
			return nil, transactionErr
		}

		transactionID = &tID
	}

	return hog.RestoreHog(
		id,
		dto.Eartag,
		dto.LiveWeight,
		dto.FarmgatePrice,
		deliveryID,
		hog.Status(dto.Status),
		transactionID,
	)
}
