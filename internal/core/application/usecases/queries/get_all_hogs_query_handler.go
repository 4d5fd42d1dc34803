package queries

import (
	"context"

	"hogtrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllHogsQueryHandler retrieves the full hog inventory from the database.
type GetAllHogsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllHogsQueryHandler creates a handler for full-inventory queries.
// Requires a GORM database connection for query execution.
func NewGetAllHogsQueryHandler(db *gorm.DB) GetAllHogsQueryHandler {
	return GetAllHogsQueryHandler{db: db}
}

// Handle executes the query to retrieve every hog.
// Results are sorted by eartag then ID for stable output.
func (h GetAllHogsQueryHandler) Handle(
	ctx context.Context,
	query GetAllHogsQuery,
) ([]GetAllHogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	hogs := make([]GetAllHogsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			eartag,
			live_weight,
			farmgate_price,
			delivery_id,
			transaction_id
		FROM hogs
		ORDER BY eartag, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var hogResp GetAllHogsQueryResponse
		var id uuid.UUID
		var deliveryID, transactionID *uuid.UUID

		err = rows.Scan(
			&id,
			&hogResp.Eartag,
			&hogResp.LiveWeight,
			&hogResp.FarmgatePrice,
			&deliveryID,
			&transactionID,
		)
		if err != nil {
			return nil, err
		}

		hogID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		hogResp.ID = hogID

		if deliveryID != nil {
			parsed, idErr := kernel.UUIDFromBytes(deliveryID[:])
			if idErr != nil {
				return nil, idErr
			}
			hogResp.DeliveryID = &parsed
		}

		if transactionID != nil {
			parsed, idErr := kernel.UUIDFromBytes(transactionID[:])
			if idErr != nil {
				return nil, idErr
			}
			hogResp.TransactionID = &parsed
		}

		hogs = append(hogs, hogResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hogs, nil
}
