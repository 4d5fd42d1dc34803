package queries

import (
	"context"
	"time"

	"hogtrade/internal/core/domain/model/delivery"
	"hogtrade/internal/core/domain/model/hog"
	"hogtrade/internal/core/domain/model/kernel"
	"hogtrade/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler retrieves a delivery page from the database and
// runs the delivery summarizer over each one. Supplier names and hogs are
// fetched eagerly so no per-delivery round trips are needed.
type GetDeliveriesQueryHandler struct {
	db         *gorm.DB
	summarizer services.DeliverySummarizer
}

// NewGetDeliveriesQueryHandler creates a handler for paginated delivery queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{
		db:         db,
		summarizer: services.NewDeliverySummarizer(),
	}
}

type deliveryRow struct {
	id            kernel.UUID
	arrivalDate   time.Time
	modeOfPayment string
	supplierID    kernel.UUID
	supplierName  string
	hogs          []*hog.Hog
}

// Handle executes the paginated delivery query.
// Deliveries are ordered by arrival date then ID for a stable page window.
// Calling the same page twice without intervening writes returns identical results.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveryRows, err := h.fetchDeliveryPage(ctx, query.Skip(), query.PageSize())
	if err != nil {
		return nil, err
	}

	if err = h.attachHogs(ctx, deliveryRows); err != nil {
		return nil, err
	}

	summaries := make([]GetDeliveriesQueryResponse, 0, len(deliveryRows))
	for _, row := range deliveryRows {
		restored, restoreErr := delivery.RestoreDelivery(
			row.id, row.arrivalDate, row.modeOfPayment, row.supplierID, row.hogs,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		summary, sumErr := h.summarizer.Summarize(restored, row.supplierName)
		if sumErr != nil {
			return nil, sumErr
		}

		summaries = append(summaries, GetDeliveriesQueryResponse{
			ID:                   summary.ID,
			ArrivalDate:          summary.ArrivalDate,
			Supplier:             summary.Supplier,
			ModeOfPayment:        summary.ModeOfPayment,
			NumberOfHogs:         summary.NumberOfHogs,
			TotalLiveWeight:      summary.TotalLiveWeight,
			TotalAmount:          summary.TotalAmount,
			AverageFarmgatePrice: summary.AverageFarmgatePrice,
			AverageWeight:        summary.AverageWeight,
		})
	}

	return summaries, nil
}

func (h GetDeliveriesQueryHandler) fetchDeliveryPage(
	ctx context.Context,
	skip, take int,
) ([]*deliveryRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.arrival_date,
			d.mode_of_payment,
			d.supplier_id,
			s.name
		FROM deliveries d
		JOIN suppliers s ON s.id = d.supplier_id
		ORDER BY d.arrival_date, d.id
		LIMIT ? OFFSET ?
	`, take, skip).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveryRows := make([]*deliveryRow, 0, take)

	for rows.Next() {
		var id, supplierID uuid.UUID
		row := &deliveryRow{}

		err = rows.Scan(&id, &row.arrivalDate, &row.modeOfPayment, &supplierID, &row.supplierName)
		if err != nil {
			return nil, err
		}

		if row.id, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.supplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}

		deliveryRows = append(deliveryRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveryRows, nil
}

func (h GetDeliveriesQueryHandler) attachHogs(ctx context.Context, deliveryRows []*deliveryRow) error {
	if len(deliveryRows) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*deliveryRow, len(deliveryRows))
	ids := make([]uuid.UUID, 0, len(deliveryRows))
	for _, row := range deliveryRows {
		raw := row.id.Bytes()
		byID[raw] = row
		ids = append(ids, raw)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			eartag,
			live_weight,
			farmgate_price,
			delivery_id,
			transaction_id,
			status
		FROM hogs
		WHERE delivery_id IN ?
		ORDER BY eartag, id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, deliveryID uuid.UUID
		var transactionID *uuid.UUID
		var eartag string
		var liveWeight, farmgatePrice float64
		var status int

		err = rows.Scan(&id, &eartag, &liveWeight, &farmgatePrice, &deliveryID, &transactionID, &status)
		if err != nil {
			return err
		}

		hogID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}

		owner, ok := byID[deliveryID]
		if !ok {
			continue
		}
		ownerID := owner.id

		var txID *kernel.UUID
		if transactionID != nil {
			parsed, idErr := kernel.UUIDFromBytes((*transactionID)[:])
			if idErr != nil {
				return idErr
			}
			txID = &parsed
		}

		restored, restoreErr := hog.RestoreHog(
			hogID, eartag, liveWeight, farmgatePrice, &ownerID, hog.Status(status), txID,
		)
		if restoreErr != nil {
			return restoreErr
		}

		owner.hogs = append(owner.hogs, restored)
	}

	return rows.Err()
}
