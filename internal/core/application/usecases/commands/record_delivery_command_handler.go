package commands

import (
	"context"

	"hogtrade/internal/core/domain/model/delivery"
)

// RecordDeliveryCommandHandler handles the business logic for delivery intake.
// Verifies the supplier exists, then persists the delivery together with its
// batch of hogs in one transaction.
type RecordDeliveryCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewRecordDeliveryCommandHandler creates a handler for delivery intake.
// Requires an IntakeUoWFactory for transactional persistence.
func NewRecordDeliveryCommandHandler(uowFactory IntakeUoWFactory) RecordDeliveryCommandHandler {
	return RecordDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery intake command.
// The delivery and its hogs are created together; the hog set is immutable
// after intake.
func (h *RecordDeliveryCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supplierRepo := uow.SupplierRepository()
	if _, err := supplierRepo.Get(ctx, cmd.SupplierID()); err != nil {
		return err
	}

	intake, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.ArrivalDate(),
		cmd.ModeOfPayment(),
		cmd.SupplierID(),
		cmd.Intakes(),
	)
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	if err = deliveryRepo.Add(ctx, intake); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
