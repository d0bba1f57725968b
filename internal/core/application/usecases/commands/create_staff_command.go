package commands

import (
	"errors"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrCreateStaffCommandIsNotConstructed = errors.New(
		"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateStaffCommand represents a request to register a staff member who
// can act on orders and appear in the kanban assignment filter.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates a command to register a staff member.
func NewCreateStaffCommand(staffID kernel.UUID, name string) (CreateStaffCommand, error) {
	staffCommand := CreateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		staffCommand.setStaffID(staffID),
		staffCommand.setName(name),
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return staffCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// StaffID returns the unique identifier for the staff member.
func (c CreateStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}

// Name returns the staff member's display name.
func (c CreateStaffCommand) Name() string {
	return c.name
}

func (c *CreateStaffCommand) setStaffID(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	c.staffID = staffID
	return nil
}

func (c *CreateStaffCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
