package commands

import (
	"context"
	"log/slog"
)

// ProcessReturnCommandHandler accepts a return request for an existing
// order. The return is acknowledged and journaled; it changes no order
// amounts and writes nothing to the ledgers.
type ProcessReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewProcessReturnCommandHandler creates a handler for return requests.
func NewProcessReturnCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) ProcessReturnCommandHandler {
	return ProcessReturnCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle verifies the order exists and journals the return intent.
func (h *ProcessReturnCommandHandler) Handle(ctx context.Context, cmd ProcessReturnCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "return requested",
		slog.String("order_id", aggregate.ID().String()),
		slog.String("status", aggregate.Status().String()),
		slog.String("reason", cmd.Reason()),
	)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
