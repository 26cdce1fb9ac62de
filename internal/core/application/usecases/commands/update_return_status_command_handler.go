package commands

import (
	"context"
	"log/slog"
)

// UpdateReturnStatusCommandHandler journals a return status change for an
// existing order.
type UpdateReturnStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewUpdateReturnStatusCommandHandler creates a handler for return status updates.
func NewUpdateReturnStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateReturnStatusCommandHandler {
	return UpdateReturnStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle verifies the order exists and journals the status change.
func (h *UpdateReturnStatusCommandHandler) Handle(ctx context.Context, cmd UpdateReturnStatusCommand) error {
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

	h.logger.InfoContext(ctx, "return status updated",
		slog.String("order_id", aggregate.ID().String()),
		slog.String("return_status", string(cmd.Status())),
	)

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
