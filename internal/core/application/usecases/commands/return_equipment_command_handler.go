package commands

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/ports"
)

// ReturnEquipmentCommandHandler records the return of loaned serving
// equipment, stopping the return-window clock for the order.
type ReturnEquipmentCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewReturnEquipmentCommandHandler creates a handler for equipment returns.
func NewReturnEquipmentCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ReturnEquipmentCommandHandler {
	return ReturnEquipmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "return_equipment"),
	}
}

// Handle processes the equipment return command.
// The order status does not change; only the loan sub-record moves to
// returned. Returns domain errors for orders without a loan, loans not
// currently with the customer, and loans already charged.
func (h *ReturnEquipmentCommandHandler) Handle(ctx context.Context, cmd ReturnEquipmentCommand) error {
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

	if err = aggregate.ReturnEquipment(cmd.ActorID(), now); err != nil {
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
		Notes:    "equipment returned",
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
