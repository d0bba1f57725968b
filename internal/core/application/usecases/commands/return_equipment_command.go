package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var ErrReturnEquipmentCommandIsNotConstructed = errors.New(
	"ReturnEquipmentCommand must be created via NewReturnEquipmentCommand constructor",
)

// ReturnEquipmentCommand represents a request to record the return of
// serving equipment lent with a large order.
type ReturnEquipmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReturnEquipmentCommand creates a command to record an equipment return.
func NewReturnEquipmentCommand(orderID, actorID kernel.UUID) (ReturnEquipmentCommand, error) {
	returnCommand := ReturnEquipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		returnCommand.setOrderID(orderID),
		returnCommand.setActorID(actorID),
	); err != nil {
		return ReturnEquipmentCommand{}, err
	}

	return returnCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnEquipmentCommand) Validate() error {
	return c.guard.Validate(ErrReturnEquipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose equipment is returned.
func (c ReturnEquipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting staff member.
func (c ReturnEquipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReturnEquipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReturnEquipmentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
