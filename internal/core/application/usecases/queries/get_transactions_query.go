package queries

import (
	"errors"
	"time"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/guard"
)

var (
	ErrGetTransactionsQueryIsNotConstructed = errors.New(
		"GetTransactionsQuery must be created via NewGetTransactionsQuery constructor",
	)
)

// GetTransactionsQuery retrieves all recorded sales with per-sale totals.
type GetTransactionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTransactionsQuery creates a query to retrieve all sales.
func NewGetTransactionsQuery() GetTransactionsQuery {
	return GetTransactionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTransactionsQueryIsNotConstructed if validation fails.
func (q GetTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionsQueryIsNotConstructed)
}

// GetTransactionsQueryResponse represents one sale in the read model.
// TotalAmount is the sum over the sale's hogs of farmgate price times live weight.
type GetTransactionsQueryResponse struct {
	ID              kernel.UUID
	TransactionDate time.Time
	Customer        string
	NumberOfHogs    int
	TotalAmount     float64
}
