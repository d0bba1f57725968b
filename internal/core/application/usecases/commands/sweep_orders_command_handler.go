package commands

import (
	"context"
	"log/slog"

	"catering/internal/core/ports"
)

// SweepOrdersCommandHandler re-evaluates all live orders against the wall
// clock: urgency tiers drift as the delivery date approaches, and equipment
// loans pass their due and charge points. Only changed orders are persisted.
//
// The sweep is level-triggered: it compares state to the clock rather than
// reacting to a tick, so a delayed or missed run converges on the next one.
// A loan that slept through both the due and the charge point moves through
// late and on to charged in a single pass.
//
// Example:
//
//	handler := NewSweepOrdersCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewSweepOrdersCommand(time.Now())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("sweep failed: %w", err)
//	}
//	// This is called periodically by the sweep job
type SweepOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewSweepOrdersCommandHandler creates a handler for the periodic sweep.
func NewSweepOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) SweepOrdersCommandHandler {
	return SweepOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "sweep_orders"),
	}
}

// Handle processes one sweep pass.
// Loads all live orders, refreshes priority and equipment state, and
// persists the orders that changed within a single transaction. Changes are
// published after commit; publish failures are logged, not returned.
func (h *SweepOrdersCommandHandler) Handle(ctx context.Context, cmd SweepOrdersCommand) error {
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
	orders, err := orderRepo.GetAllLive(ctx)
	if err != nil {
		return err
	}

	changes := make([]ports.OrderChange, 0)
	for _, aggregate := range orders {
		priorityChanged := aggregate.RefreshPriority(cmd.Now())
		equipmentChanged := aggregate.CheckEquipmentOverdue(cmd.Now())
		if !priorityChanged && !equipmentChanged {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		notes := ""
		if equipmentChanged {
			notes = "equipment loan is " + aggregate.Equipment().Status().String()
		}
		changes = append(changes, ports.OrderChange{
			OrderID:  aggregate.ID(),
			Status:   aggregate.Status(),
			Priority: aggregate.Priority(),
			At:       cmd.Now(),
			Notes:    notes,
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, change := range changes {
		if err = h.notifier.PublishOrderChange(ctx, change); err != nil {
			h.logger.Error("order change publish failed",
				"order_id", change.OrderID.String(),
				"status", change.Status.String(),
				"error", err,
			)
		}
	}

	if len(changes) > 0 {
		h.logger.Info("sweep pass applied changes", "changed", len(changes))
	}

	return nil
}
