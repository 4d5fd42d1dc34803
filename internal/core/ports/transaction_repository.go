package ports

import (
	"context"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/core/domain/model/transaction"
)

// TransactionRepository defines the persistence contract for transaction aggregates.
// Transactions are immutable once created; there is no Update.
type TransactionRepository interface {
	// Add persists a new transaction aggregate.
	Add(ctx context.Context, aggregate *transaction.Transaction) error

	// Get retrieves a transaction by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error)
}
