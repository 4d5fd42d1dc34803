package queries

import (
	"context"
	"database/sql"
	"errors"

	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransactionQueryHandler retrieves one sale's detail from the database.
// Returns an object-not-found error when the sale does not exist.
type GetTransactionQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionQueryHandler creates a handler for single-sale queries.
// Requires a GORM database connection for query execution.
func NewGetTransactionQueryHandler(db *gorm.DB) GetTransactionQueryHandler {
	return GetTransactionQueryHandler{db: db}
}

// Handle executes the query to retrieve one sale with its hog lines.
func (h GetTransactionQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionQuery,
) (GetTransactionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTransactionQueryResponse{}, err
	}

	var resp GetTransactionQueryResponse
	var id, customerID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.transaction_date,
			t.customer_id,
			c.name
		FROM transactions t
		JOIN customers c ON c.id = t.customer_id
		WHERE t.id = ?
	`, query.TransactionID().Bytes()).Row()

	err := row.Scan(&id, &resp.TransactionDate, &customerID, &resp.Customer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetTransactionQueryResponse{}, errs.NewObjectNotFoundError(
				"transactionId", query.TransactionID().String(),
			)
		}
		return GetTransactionQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetTransactionQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetTransactionQueryResponse{}, err
	}

	if resp.Hogs, resp.TotalAmount, err = h.fetchHogLines(ctx, query.TransactionID()); err != nil {
		return GetTransactionQueryResponse{}, err
	}

	return resp, nil
}

func (h GetTransactionQueryHandler) fetchHogLines(
	ctx context.Context,
	transactionID kernel.UUID,
) ([]TransactionHogLine, float64, error) {
	lines := make([]TransactionHogLine, 0)
	var total float64

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			eartag,
			live_weight,
			farmgate_price
		FROM hogs
		WHERE transaction_id = ?
		ORDER BY eartag, id
	`, transactionID.Bytes()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var line TransactionHogLine
		var id uuid.UUID

		err = rows.Scan(&id, &line.Eartag, &line.LiveWeight, &line.FarmgatePrice)
		if err != nil {
			return nil, 0, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, 0, err
		}

		line.Amount = line.FarmgatePrice * line.LiveWeight
		total += line.Amount
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return lines, total, nil
}
