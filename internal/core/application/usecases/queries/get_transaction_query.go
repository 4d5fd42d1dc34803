package queries

import (
	"errors"
	"time"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/guard"
)

var (
	ErrGetTransactionQueryIsNotConstructed = errors.New(
		"GetTransactionQuery must be created via NewGetTransactionQuery constructor",
	)
)

// GetTransactionQuery retrieves one sale with its customer and hog lines.
type GetTransactionQuery struct {
	transactionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTransactionQuery creates a query for a single sale by ID.
func NewGetTransactionQuery(transactionID kernel.UUID) (GetTransactionQuery, error) {
	if err := transactionID.Validate(); err != nil {
		return GetTransactionQuery{}, err
	}

	return GetTransactionQuery{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTransactionQueryIsNotConstructed if validation fails.
func (q GetTransactionQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionQueryIsNotConstructed)
}

// TransactionID returns the identifier of the requested sale.
func (q GetTransactionQuery) TransactionID() kernel.UUID {
	return q.transactionID
}

// TransactionHogLine is one sold hog within a sale detail.
// Amount is farmgate price times live weight for that hog.
type TransactionHogLine struct {
	ID            kernel.UUID
	Eartag        string
	LiveWeight    float64
	FarmgatePrice float64
	Amount        float64
}

// GetTransactionQueryResponse is the sale detail read model.
type GetTransactionQueryResponse struct {
	ID              kernel.UUID
	TransactionDate time.Time
	CustomerID      kernel.UUID
	Customer        string
	Hogs            []TransactionHogLine
	TotalAmount     float64
}
