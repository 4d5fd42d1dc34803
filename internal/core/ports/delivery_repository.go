package ports

import (
	"context"

	"hogtrade/internal/core/domain/model/delivery"
	"hogtrade/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Adding a delivery also persists the hogs it introduced; deliveries are never
// mutated or deleted afterwards.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate together with its hogs.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier with its hogs populated.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetPage retrieves a bounded window of deliveries with their hogs
	// populated, ordered by arrival date then identifier.
	GetPage(ctx context.Context, skip, take int) ([]*delivery.Delivery, error)
}
