package queries

import (
	"context"

	"hogtrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransactionsQueryHandler retrieves the sale ledger from the database.
// Hog counts and amounts are aggregated in SQL to avoid loading hog rows.
type GetTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionsQueryHandler creates a handler for sale ledger queries.
// Requires a GORM database connection for query execution.
func NewGetTransactionsQueryHandler(db *gorm.DB) GetTransactionsQueryHandler {
	return GetTransactionsQueryHandler{db: db}
}

// Handle executes the query to retrieve all sales with their totals.
// Results are sorted by transaction date then ID for stable output.
func (h GetTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionsQuery,
) ([]GetTransactionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sales := make([]GetTransactionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.transaction_date,
			c.name,
			COUNT(h.id),
			COALESCE(SUM(h.farmgate_price * h.live_weight), 0)
		FROM transactions t
		JOIN customers c ON c.id = t.customer_id
		LEFT JOIN hogs h ON h.transaction_id = t.id
		GROUP BY t.id, t.transaction_date, c.name
		ORDER BY t.transaction_date, t.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var saleResp GetTransactionsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&saleResp.TransactionDate,
			&saleResp.Customer,
			&saleResp.NumberOfHogs,
			&saleResp.TotalAmount,
		)
		if err != nil {
			return nil, err
		}

		saleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		saleResp.ID = saleID

		sales = append(sales, saleResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
