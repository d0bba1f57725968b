package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order to the next
// workflow stage, acted by a staff member.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order one stage.
// Validates that both identifiers are constructed.
func NewAdvanceOrderCommand(orderID, actorID kernel.UUID) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setActorID(actorID),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting staff member.
func (c AdvanceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
