package commands

import (
	"context"

	"catering/internal/core/domain/model/staff"
)

// CreateStaffCommandHandler handles the business logic for staff
// registration.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewCreateStaffCommandHandler creates a handler for staff registration.
func NewCreateStaffCommandHandler(uowFactory StaffUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff registration command.
func (h *CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	member, err := staff.NewStaff(cmd.StaffID(), cmd.Name())
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

	if err = uow.StaffRepository().Add(ctx, member); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
