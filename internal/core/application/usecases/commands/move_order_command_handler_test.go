package commands_test

import (
	"testing"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := createTestOrderInStatus(t, order.Scheduled)
	require.NoError(t, o.AssignDriver("Mike"))
	cmd, err := commands.NewMoveOrderCommand(o.ID(), order.Scheduled, order.OnWay)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMoveOrderCommandHandler(factory, newTestLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OnWay, result.Order.Status())
	orderRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMoveOrderCommandHandler_Handle_StaleBoard(t *testing.T) {
	ctx := t.Context()
	// another admin already moved the order off the scheduled column; the
	// handler sees that on its transactional read and writes nothing
	o := createTestOrderInStatus(t, order.OnWay)
	cmd, err := commands.NewMoveOrderCommand(o.ID(), order.Scheduled, order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMoveOrderCommandHandler(factory, newTestLogger())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.OnWay, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	factory.AssertExpectations(t)
}

func TestMoveOrderCommandHandler_Handle_NonAdjacentMove(t *testing.T) {
	ctx := t.Context()
	o := createTestOrderInStatus(t, order.Delivered)
	cmd, err := commands.NewMoveOrderCommand(o.ID(), order.Delivered, order.Completed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMoveOrderCommandHandler(factory, newTestLogger())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
}

func TestMoveOrderCommandHandler_Handle_MissingDriver(t *testing.T) {
	ctx := t.Context()
	o := createTestOrderInStatus(t, order.Scheduled)
	cmd, err := commands.NewMoveOrderCommand(o.ID(), order.Scheduled, order.OnWay)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMoveOrderCommandHandler(factory, newTestLogger())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, order.Scheduled, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
}
