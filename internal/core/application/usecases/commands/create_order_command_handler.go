package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"
)

// geoFallbackNote is recorded on the creation history entry when the
// geocoding collaborator is unavailable and the order is priced with the
// flat local fee instead.
const geoFallbackNote = "geocoding unavailable, flat local delivery fee applied"

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the delivery distance, prices the order, and persists it in
// pending status with its creation history entry.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder, pricer, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and visible on the kanban board
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geocoder   ports.Geocoder
	pricer     services.PricingEngine
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, a Geocoder for
// distance resolution, and a Notifier for the order-created event.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	geocoder ports.Geocoder,
	pricer services.PricingEngine,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		pricer:     pricer,
		notifier:   notifier,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order placement command.
//
// A geocoder failure does not reject the order: the handler prices it as a
// local delivery and records the fallback on the creation history entry.
// The notification is published after commit; a publish failure is logged,
// not returned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if !cmd.DeliveryAt().After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryAt",
			fmt.Errorf("%s is not in the future", cmd.DeliveryAt().Format(time.RFC3339)),
		)
	}

	geo, creationNotes := h.resolveGeo(ctx, cmd)

	pricing, err := h.pricer.Price(
		cmd.PricePerPerson(),
		cmd.Headcount(),
		cmd.MinPersons(),
		geo.DistanceKm,
		geo.IsLocal,
	)
	if err != nil {
		return err
	}

	address, err := order.NewAddress(cmd.Street(), cmd.City())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.MenuID(),
		cmd.Headcount(), cmd.MinPersons(),
		address, cmd.DeliveryAt(),
		cmd.SpecialRequests(), cmd.CookingRequired(),
		pricing, now, creationNotes,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, ports.OrderChange{
		OrderID:  aggregate.ID(),
		Status:   aggregate.Status(),
		Priority: aggregate.Priority(),
		At:       now,
		Notes:    creationNotes,
	})

	return nil
}

// resolveGeo asks the geocoder for the delivery locality, falling back to a
// local flat-fee quote when it fails.
func (h *CreateOrderCommandHandler) resolveGeo(
	ctx context.Context,
	cmd CreateOrderCommand,
) (ports.GeoResult, string) {
	geo, err := h.geocoder.Resolve(ctx, cmd.Street(), cmd.City())
	if err != nil {
		h.logger.Warn("geocoder unavailable, pricing as local",
			"order_id", cmd.OrderID().String(),
			"error", err,
		)
		return ports.GeoResult{IsLocal: true, DistanceKm: 0}, geoFallbackNote
	}

	return geo, ""
}

func (h *CreateOrderCommandHandler) publish(ctx context.Context, change ports.OrderChange) {
	if err := h.notifier.PublishOrderChange(ctx, change); err != nil {
		h.logger.Error("order change publish failed",
			"order_id", change.OrderID.String(),
			"status", change.Status.String(),
			"error", err,
		)
	}
}
