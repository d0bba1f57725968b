package commands

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order from any non-terminal stage,
// recording the reason in the status history.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation command.
// Loads the order, applies the cancel transition with the given reason, and
// persists the change atomically with its history entry.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.StaffRepository().Get(ctx, cmd.ActorID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.ActorID(), cmd.Reason(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	change := ports.OrderChange{
		OrderID:  aggregate.ID(),
		Status:   aggregate.Status(),
		Priority: aggregate.Priority(),
		At:       now,
		Notes:    cmd.Reason(),
	}
	if err = h.notifier.PublishOrderChange(ctx, change); err != nil {
		h.logger.Error("order change publish failed",
			"order_id", change.OrderID.String(),
			"status", change.Status.String(),
			"error", err,
		)
	}

	return nil
}
