package hogrepo

import (
	"context"
	"errors"

	"hogtrade/internal/core/domain/model/hog"
	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHogRepository implements HogRepository using GORM.
type GormHogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHogRepository creates a new GORM hog repository.
func NewGormHogRepository(db *gorm.DB, tracker aggregateTracker) *GormHogRepository {
	return &GormHogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Update saves an existing hog to the database.
// A sale write (the DTO carries a transaction reference) is a compare-and-set:
// it only lands if the stored row has no transaction reference yet. When
// another sale claimed the hog first, zero rows match and the update fails
// with hog.ErrHogAlreadySold, rolling back the caller's unit of work.
func (r *GormHogRepository) Update(ctx context.Context, aggregate *hog.Hog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)

	query := r.db.WithContext(ctx).Model(&HogDTO{})
	if dto.TransactionID != nil {
		query = query.Where("id = ? AND transaction_id IS NULL", dto.ID)
	} else {
		query = query.Where("id = ?", dto.ID)
	}

	result := query.Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if dto.TransactionID != nil {
			return hog.ErrHogAlreadySold
		}
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a hog by ID.
func (r *GormHogRepository) Get(ctx context.Context, id kernel.UUID) (*hog.Hog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HogDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hog", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllAvailable retrieves all hogs with no transaction reference.
func (r *GormHogRepository) GetAllAvailable(ctx context.Context) ([]*hog.Hog, error) {
	var dtos []HogDTO
	err := r.db.WithContext(ctx).
		Order("eartag, id").
		Find(&dtos, "transaction_id IS NULL").Error
	if err != nil {
		return nil, err
	}

	hogs := make([]*hog.Hog, 0, len(dtos))
	for _, dto := range dtos {
		h, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		hogs = append(hogs, h)
	}

	return hogs, nil
}
