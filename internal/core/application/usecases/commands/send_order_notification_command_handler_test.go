package commands_test

import (
	"testing"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendOrderNotificationCommandHandler_Handle_Sends(t *testing.T) {
	ctx := t.Context()
	o := createTestOrderInStatus(t, order.OnWay)
	cmd, err := commands.NewSendOrderNotificationCommand(o.ID(), order.Delivered, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	sender := new(MockNotificationSender)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		sender.On("Send", mock.Anything, mock.AnythingOfType("services.Payload")).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOrderNotificationCommandHandler(factory, sender, newTestLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Sent)
	assert.Equal(t, services.TemplateDelivered, result.Template)

	payload := sender.Calls[0].Arguments.Get(1).(services.Payload)
	assert.Equal(t, o.CustomerEmail(), payload.CustomerEmail)
	assert.Equal(t, o.OrderNumber(), payload.OrderNumber)
	sender.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSendOrderNotificationCommandHandler_Handle_NonNotifiableStatus(t *testing.T) {
	ctx := t.Context()
	o := createTestOrder(t)
	cmd, err := commands.NewSendOrderNotificationCommand(o.ID(), order.Scheduled, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	sender := new(MockNotificationSender)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOrderNotificationCommandHandler(factory, sender, newTestLogger())
	result, err := h.Handle(ctx, cmd)

	// a silent status is a successful no-op
	require.NoError(t, err)
	assert.False(t, result.Sent)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
}

func TestSendOrderNotificationCommandHandler_Handle_TransportFailure(t *testing.T) {
	ctx := t.Context()
	o := createTestOrderInStatus(t, order.Delivered)
	cmd, err := commands.NewSendOrderNotificationCommand(o.ID(), order.Completed, nil)
	require.NoError(t, err)

	sendErr := errs.NewDependencyError("mailer")
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	sender := new(MockNotificationSender)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		sender.On("Send", mock.Anything, mock.AnythingOfType("services.Payload")).Return(sendErr).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOrderNotificationCommandHandler(factory, sender, newTestLogger())
	result, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrDependencyFailed)
	assert.False(t, result.Sent)
	sender.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSendOrderNotificationCommandHandler_Handle_WithAttachment(t *testing.T) {
	ctx := t.Context()
	o := createTestOrderInStatus(t, order.OnWay)
	attachment := &services.Attachment{
		Filename:    "delivery.jpg",
		ContentType: "image/jpeg",
		Content:     []byte{0xFF, 0xD8, 0xFF},
	}
	cmd, err := commands.NewSendOrderNotificationCommand(o.ID(), order.Delivered, attachment)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	sender := new(MockNotificationSender)
	mock.InOrder(
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		sender.On("Send", mock.Anything, mock.AnythingOfType("services.Payload")).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOrderNotificationCommandHandler(factory, sender, newTestLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Sent)

	payload := sender.Calls[0].Arguments.Get(1).(services.Payload)
	require.NotNil(t, payload.Attachment)
	assert.Equal(t, "delivery.jpg", payload.Attachment.Filename)
	factory.AssertExpectations(t)
}
