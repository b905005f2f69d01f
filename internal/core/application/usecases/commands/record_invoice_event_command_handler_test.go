package commands_test

import (
	"testing"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordInvoiceEventCommandHandler_Handle_InvoiceEvent(t *testing.T) {
	ctx := t.Context()
	o := createTestOrder(t)
	cmd, err := commands.NewRecordInvoiceEventCommand(
		"invoice.paid", "evt_123", o.OrderNumber(), "paid")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, o.OrderNumber()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordInvoiceEventCommandHandler(factory, newTestLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Handled)
	assert.Equal(t, "paid", o.InvoiceStatus())
	orderRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordInvoiceEventCommandHandler_Handle_UnknownEventType(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordInvoiceEventCommand(
		"customer.updated", "evt_456", "", "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewRecordInvoiceEventCommandHandler(factory, newTestLogger())
	result, err := h.Handle(ctx, cmd)

	// unknown events are acknowledged, never retried
	require.NoError(t, err)
	assert.False(t, result.Handled)
	factory.AssertNotCalled(t, "Create")
}

func TestRecordInvoiceEventCommandHandler_Handle_MissingOrderNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordInvoiceEventCommand(
		"invoice.paid", "evt_789", "", "paid")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewRecordInvoiceEventCommandHandler(factory, newTestLogger())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestRecordInvoiceEventCommandHandler_Handle_UnknownOrderNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordInvoiceEventCommand(
		"invoice.finalized", "evt_321", "ORD-20250601-FFFFFF", "open")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", mock.Anything, "ORD-20250601-FFFFFF").
			Return(nil, errs.NewObjectNotFoundError("orderNumber", "ORD-20250601-FFFFFF")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordInvoiceEventCommandHandler(factory, newTestLogger())
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertExpectations(t)
}

func TestNewRecordInvoiceEventCommand_RequiresEventType(t *testing.T) {
	_, err := commands.NewRecordInvoiceEventCommand("", "evt_1", "ORD-20250601-1A2B3C", "paid")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
