package transactionrepo

import (
	"context"
	"errors"

	"hogtrade/internal/adapters/out/postgres/hogrepo"
	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/core/domain/model/transaction"
	"hogtrade/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sale header to the database.
// The hog linkage is carried by the hogs table and written by the hog
// repository inside the same unit of work, so either the header and every
// hog reference land together or the whole transaction rolls back.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *transaction.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := TransactionDTO{
		ID:              aggregate.ID().Bytes(),
		TransactionDate: aggregate.TransactionDate(),
		CustomerID:      aggregate.Customer().Bytes(),
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a sale by ID, collecting its hog set from the hogs table.
func (r *GormTransactionRepository) Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", id.String())
		}
		return nil, err
	}

	var hogDTOs []hogrepo.HogDTO
	err := r.db.WithContext(ctx).
		Order("eartag, id").
		Find(&hogDTOs, "transaction_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	hogIDs := make([]kernel.UUID, 0, len(hogDTOs))
	for _, hogDTO := range hogDTOs {
		hogID, idErr := kernel.UUIDFromBytes(hogDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		hogIDs = append(hogIDs, hogID)
	}

	transactionID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return transaction.NewTransaction(transactionID, dto.TransactionDate, customerID, hogIDs)
}
