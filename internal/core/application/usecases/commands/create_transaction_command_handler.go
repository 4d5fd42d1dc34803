package commands

import (
	"context"

	"hogtrade/internal/core/domain/model/transaction"
)

// CreateTransactionCommandHandler handles the business logic for selling hogs.
// Atomically attaches every named hog to the new transaction: either all hogs
// end up referencing the transaction or none do.
//
// Hog availability is re-verified at commit time, not just when the selection
// was first listed. Each hog is reloaded inside the transaction and its sale
// write is conditional on the transaction reference still being absent, so two
// concurrent sales over overlapping hog sets cannot both succeed: the loser
// fails with hog.ErrHogAlreadySold and the whole unit of work rolls back.
type CreateTransactionCommandHandler struct {
	uowFactory SaleUoWFactory
}

// NewCreateTransactionCommandHandler creates a handler for sale operations.
// Requires a SaleUoWFactory for transactional persistence.
func NewCreateTransactionCommandHandler(uowFactory SaleUoWFactory) CreateTransactionCommandHandler {
	return CreateTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sale command.
// Verifies the customer exists, marks each hog sold, and records the
// transaction, all inside a single unit of work.
func (h *CreateTransactionCommandHandler) Handle(ctx context.Context, cmd CreateTransactionCommand) error {
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

	customerRepo := uow.CustomerRepository()
	hogRepo := uow.HogRepository()
	transactionRepo := uow.TransactionRepository()

	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	sale, err := transaction.NewTransaction(
		cmd.TransactionID(),
		cmd.TransactionDate(),
		cmd.CustomerID(),
		cmd.HogIDs(),
	)
	if err != nil {
		return err
	}

	for _, hogID := range cmd.HogIDs() {
		soldHog, err := hogRepo.Get(ctx, hogID)
		if err != nil {
			return err
		}

		if err = soldHog.Sell(cmd.TransactionID()); err != nil {
			return err
		}

		if err = hogRepo.Update(ctx, soldHog); err != nil {
			return err
		}
	}

	if err = transactionRepo.Add(ctx, sale); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
