package commands_test

import (
	"testing"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromoteQuoteCommand_ValidInput(t *testing.T) {
	quoteID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	serviceID := kernel.NewUUID()

	cmd, err := commands.NewPromoteQuoteCommand(quoteID, orderID,
		[]commands.ServiceSelection{{ServiceID: serviceID, Quantity: 2}},
		order.PriorityHigh, nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, cmd.QuoteID().IsEqual(quoteID))
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	require.Len(t, cmd.Selections(), 1)
	assert.True(t, cmd.Selections()[0].ServiceID.IsEqual(serviceID))
	assert.Equal(t, 2, cmd.Selections()[0].Quantity)
	assert.Equal(t, order.PriorityHigh, cmd.Priority())
	assert.Nil(t, cmd.QuotedPriceOverride())
}

func TestNewPromoteQuoteCommand_EmptySelections(t *testing.T) {
	_, err := commands.NewPromoteQuoteCommand(kernel.NewUUID(), kernel.NewUUID(),
		nil, order.PriorityNormal, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPromoteQuoteCommand_NonPositiveQuantity(t *testing.T) {
	_, err := commands.NewPromoteQuoteCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.ServiceSelection{{ServiceID: kernel.NewUUID(), Quantity: 0}},
		order.PriorityNormal, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPromoteQuoteCommand_InvalidPriority(t *testing.T) {
	_, err := commands.NewPromoteQuoteCommand(kernel.NewUUID(), kernel.NewUUID(),
		[]commands.ServiceSelection{{ServiceID: kernel.NewUUID(), Quantity: 1}},
		order.Priority("urgent"), nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
