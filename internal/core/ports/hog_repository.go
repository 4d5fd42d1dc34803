package ports

import (
	"context"

	"hogtrade/internal/core/domain/model/hog"
	"hogtrade/internal/core/domain/model/kernel"
)

// HogRepository defines the persistence contract for hog aggregates.
// Hogs are created through delivery intake (see DeliveryRepository.Add),
// so the repository exposes no Add of its own.
type HogRepository interface {
	// Update persists changes to an existing hog aggregate.
	// When the update attaches a transaction reference, the write is
	// conditional on the hog still being unsold; a hog already claimed
	// by another transaction fails with hog.ErrHogAlreadySold.
	Update(ctx context.Context, aggregate *hog.Hog) error

	// Get retrieves a hog aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*hog.Hog, error)

	// GetAllAvailable retrieves all hogs with no transaction reference,
	// in stable order. Run fresh per request: availability changes as
	// transactions are created.
	GetAllAvailable(ctx context.Context) ([]*hog.Hog, error)
}
