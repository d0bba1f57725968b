package commands

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/ports"
)

// AdvanceOrderCommandHandler moves an order one stage forward through the
// fulfilment workflow. The acting staff member must exist; the first advance
// out of pending assigns them to the order.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewAdvanceOrderCommand(orderID, staffID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("advance failed: %w", err)
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for stage transitions.
// Requires a UoWFactory because the handler reads staff while mutating
// the order.
func NewAdvanceOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "advance_order"),
	}
}

// Handle processes the advance command.
// Loads the order, applies the transition, and persists order and history
// atomically. The version check on update serializes concurrent advances of
// the same order. The notification is published after commit; a publish
// failure is logged, not returned.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	if err = aggregate.Advance(cmd.ActorID(), now); err != nil {
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
