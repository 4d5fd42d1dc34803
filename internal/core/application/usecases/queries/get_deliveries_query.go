package queries

import (
	"errors"
	"time"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/guard"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

var (
	ErrGetDeliveriesQueryIsNotConstructed = errors.New(
		"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
	)
)

// GetDeliveriesQuery retrieves a page of deliveries with their reporting
// summaries. Pagination follows a lenient defaults contract: a page or page
// size below 1 silently falls back to page 1 and size 10 rather than erroring.
//
// Example:
//
//	query := NewGetDeliveriesQuery(2, 20)
//	handler := NewGetDeliveriesQueryHandler(db)
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve deliveries: %w", err)
//	}
type GetDeliveriesQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a paginated delivery query.
// Values below 1 fall back to the defaults (page=1, size=10).
func NewGetDeliveriesQuery(page, pageSize int) GetDeliveriesQuery {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return GetDeliveriesQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesQueryIsNotConstructed if validation fails.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetDeliveriesQuery) Page() int {
	return q.page
}

// PageSize returns the number of deliveries per page.
func (q GetDeliveriesQuery) PageSize() int {
	return q.pageSize
}

// Skip returns the number of deliveries to skip for this page.
func (q GetDeliveriesQuery) Skip() int {
	return q.pageSize * (q.page - 1)
}

// GetDeliveriesQueryResponse is one delivery's reporting summary in the read
// model. Averages are nil for a delivery with zero hogs; mode of payment is
// normalized to a display placeholder when unspecified.
type GetDeliveriesQueryResponse struct {
	ID                   kernel.UUID
	ArrivalDate          time.Time
	Supplier             string
	ModeOfPayment        string
	NumberOfHogs         int
	TotalLiveWeight      float64
	TotalAmount          float64
	AverageFarmgatePrice *float64
	AverageWeight        *float64
}
