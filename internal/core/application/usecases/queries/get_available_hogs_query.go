// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/guard"
)

var (
	ErrGetAvailableHogsQueryIsNotConstructed = errors.New(
		"GetAvailableHogsQuery must be created via NewGetAvailableHogsQuery constructor",
	)
)

// GetAvailableHogsQuery retrieves all hogs that have not been sold.
// Feeds the transaction-creation form: availability changes as sales happen,
// so the query always runs fresh, never from a cache.
//
// Example:
//
//	query := NewGetAvailableHogsQuery()
//	handler := NewGetAvailableHogsQueryHandler(db)
//
//	hogs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve available hogs: %w", err)
//	}
//
//	for _, h := range hogs {
//	    fmt.Printf("Hog %s: %.1fkg at %.2f/kg\n", h.Eartag, h.LiveWeight, h.FarmgatePrice)
//	}
type GetAvailableHogsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableHogsQuery creates a query to retrieve all unsold hogs.
// This is a parameterless query that fetches the complete available inventory.
func NewGetAvailableHogsQuery() GetAvailableHogsQuery {
	return GetAvailableHogsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableHogsQueryIsNotConstructed if validation fails.
func (q GetAvailableHogsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableHogsQueryIsNotConstructed)
}

// GetAvailableHogsQueryResponse represents one unsold hog in the read model.
type GetAvailableHogsQueryResponse struct {
	ID            kernel.UUID
	Eartag        string
	LiveWeight    float64
	FarmgatePrice float64
	DeliveryID    *kernel.UUID
}
