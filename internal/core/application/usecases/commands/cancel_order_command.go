package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order from any
// non-terminal stage. The reason is recorded in the status history.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// The reason may be empty; the identifiers must be constructed.
func NewCancelOrderCommand(orderID, actorID kernel.UUID, reason string) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setActorID(actorID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting staff member.
func (c CancelOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reason returns the cancellation reason, possibly empty.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
