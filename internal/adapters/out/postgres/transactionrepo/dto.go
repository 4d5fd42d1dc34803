// Package transactionrepo provides data transfer objects and mapping functions for sale persistence.
// A transaction row holds the sale header; the sold hogs are linked through
// the transaction reference on the hogs table, written by the hog repository
// within the same unit of work.
package transactionrepo

import (
	"time"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting sale headers.
type TransactionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionDate time.Time `gorm:"index"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for transaction entities.
// Overrides GORM's default naming convention to use "transactions".
func (TransactionDTO) TableName() string {
	return "transactions"
}
