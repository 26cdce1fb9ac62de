package commands

import (
	"context"
)

// AddPaymentCommandHandler records a payment against an order. Payments on
// non-completed orders sit outside the settlement until the order completes.
type AddPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddPaymentCommandHandler creates a handler for recording payments.
func NewAddPaymentCommandHandler(uowFactory OrderUoWFactory) AddPaymentCommandHandler {
	return AddPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, appends the payment and persists the change.
func (h *AddPaymentCommandHandler) Handle(ctx context.Context, cmd AddPaymentCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddPayment(cmd.Payment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
