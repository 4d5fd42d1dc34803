package queries

import (
	"context"

	"hogtrade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableHogsQueryHandler retrieves unsold hogs from the database.
// A hog is available exactly when its transaction reference is absent.
type GetAvailableHogsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableHogsQueryHandler creates a handler for available-hog queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableHogsQueryHandler(db *gorm.DB) GetAvailableHogsQueryHandler {
	return GetAvailableHogsQueryHandler{db: db}
}

// Handle executes the query to retrieve all available hogs.
// Results are sorted by eartag then ID for stable output.
func (h GetAvailableHogsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableHogsQuery,
) ([]GetAvailableHogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	hogs := make([]GetAvailableHogsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			eartag,
			live_weight,
			farmgate_price,
			delivery_id
		FROM hogs
		WHERE transaction_id IS NULL
		ORDER BY eartag, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var hogResp GetAvailableHogsQueryResponse
		var id uuid.UUID
		var deliveryID *uuid.UUID

		err = rows.Scan(
			&id,
			&hogResp.Eartag,
			&hogResp.LiveWeight,
			&hogResp.FarmgatePrice,
			&deliveryID,
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

		hogs = append(hogs, hogResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hogs, nil
}
