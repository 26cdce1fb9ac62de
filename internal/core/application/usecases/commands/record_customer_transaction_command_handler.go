package commands

import (
	"context"
)

// RecordCustomerTransactionCommandHandler appends a ledger entry to a
// customer account and applies its signed delta to the balance. Entry and
// balance persist in the same transaction; a failure rolls back both.
type RecordCustomerTransactionCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRecordCustomerTransactionCommandHandler creates a handler for
// recording ledger entries.
func NewRecordCustomerTransactionCommandHandler(uowFactory CustomerUoWFactory) RecordCustomerTransactionCommandHandler {
	return RecordCustomerTransactionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, applies the entry and persists entry plus
// balance atomically.
func (h *RecordCustomerTransactionCommandHandler) Handle(ctx context.Context, cmd RecordCustomerTransactionCommand) error {
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

	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = aggregate.RecordTransaction(cmd.Transaction()); err != nil {
		return err
	}

	if err = customerRepo.AddTransaction(ctx, aggregate.ID(), cmd.Transaction()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
