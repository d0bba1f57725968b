package commands_test

import (
	"testing"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReturnEquipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, true) // large party, equipment loan attached
	advanceOrderTo(t, aggregate, order.Delivered)
	actorID := kernel.NewUUID()
	cmd, err := commands.NewReturnEquipmentCommand(aggregate.ID(), actorID)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", mock.Anything, actorID).
		Return(testStaffMember(t, actorID), nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("PublishOrderChange", mock.Anything, mock.AnythingOfType("ports.OrderChange")).
		Return(nil).Once()

	h := commands.NewReturnEquipmentCommandHandler(factory, notifier, discardLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.EquipmentReturned, aggregate.Equipment().Status())
	require.Equal(t, order.Delivered, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestReturnEquipmentCommandHandler_Handle_NoLoan(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, false) // small party, no equipment
	actorID := kernel.NewUUID()
	cmd, err := commands.NewReturnEquipmentCommand(aggregate.ID(), actorID)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", mock.Anything, actorID).
		Return(testStaffMember(t, actorID), nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnEquipmentCommandHandler(factory, new(MockNotifier), discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrEquipmentNotApplicable)
}

func TestReturnEquipmentCommandHandler_Handle_NotYetDelivered(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, true)
	actorID := kernel.NewUUID()
	cmd, err := commands.NewReturnEquipmentCommand(aggregate.ID(), actorID)
	require.NoError(t, err)

	staffRepo := new(MockStaffRepository)
	staffRepo.On("Get", mock.Anything, actorID).
		Return(testStaffMember(t, actorID), nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("StaffRepository").Return(staffRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnEquipmentCommandHandler(factory, new(MockNotifier), discardLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrEquipmentNotOnLoan)
}

func TestReturnEquipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReturnEquipmentCommand{} // not constructed properly

	h := commands.NewReturnEquipmentCommandHandler(
		new(MockUoWFactory), new(MockNotifier), discardLogger(),
	)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrReturnEquipmentCommandIsNotConstructed)
}
