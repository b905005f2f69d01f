package commands_test

import (
	"testing"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/domain/model/catalog"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/model/quote"
	"arkdumpster/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestService(t *testing.T, displayName, basePrice string) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(kernel.NewUUID(), nil,
		"svc", displayName, decimal.RequireFromString(basePrice), 0)
	require.NoError(t, err)
	return svc
}

func TestPromoteQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	q := createTestQuote(t, quote.Accepted)
	delivery := createTestService(t, "15 Yard Dumpster", "325.00")
	haul := createTestService(t, "Extra Haul", "75.00")
	orderID := kernel.NewUUID()

	cmd, err := commands.NewPromoteQuoteCommand(q.ID(), orderID,
		[]commands.ServiceSelection{
			{ServiceID: delivery.ID(), Quantity: 1},
			{ServiceID: haul.ID(), Quantity: 2},
		},
		order.PriorityHigh, nil, nil, nil)
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPromotionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetServices", mock.Anything, []kernel.UUID{delivery.ID(), haul.ID()}).
			Return([]*catalog.Service{delivery, haul}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPromoteQuoteCommandHandler(factory)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.ID().IsEqual(orderID))
	require.NotNil(t, o.QuoteID())
	assert.True(t, o.QuoteID().IsEqual(q.ID()))
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, order.PriorityHigh, o.Priority())
	assert.Equal(t, q.CustomerName(), o.CustomerName())
	assert.Equal(t, q.DropoffAddress(), o.Address())
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{6}$`, o.OrderNumber())

	// lines snapshot the catalog's display name and price at promotion time
	require.Len(t, o.Lines(), 2)
	assert.Equal(t, "15 Yard Dumpster", o.Lines()[0].Name())
	assert.Equal(t, 1, o.Lines()[0].Quantity())
	assert.Equal(t, "Extra Haul", o.Lines()[1].Name())
	assert.Equal(t, 2, o.Lines()[1].Quantity())
	// 325.00 + 2 x 75.00
	assert.True(t, o.QuotedPrice().Equal(decimal.RequireFromString("475.00")))

	// the quote itself is left untouched
	assert.Equal(t, quote.Accepted, q.Status())
	quoteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPromoteQuoteCommandHandler_Handle_PriceOverride(t *testing.T) {
	ctx := t.Context()
	q := createTestQuote(t, quote.Accepted)
	svc := createTestService(t, "15 Yard Dumpster", "325.00")
	override := decimal.RequireFromString("299.00")

	cmd, err := commands.NewPromoteQuoteCommand(q.ID(), kernel.NewUUID(),
		[]commands.ServiceSelection{{ServiceID: svc.ID(), Quantity: 1}},
		order.PriorityNormal, &override, nil, nil)
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPromotionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetServices", mock.Anything, mock.Anything).
			Return([]*catalog.Service{svc}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPromoteQuoteCommandHandler(factory)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, o.QuotedPrice().Equal(override))
	factory.AssertExpectations(t)
}

func TestPromoteQuoteCommandHandler_Handle_QuoteNotAccepted(t *testing.T) {
	ctx := t.Context()

	for _, status := range []quote.Status{quote.Pending, quote.Quoted, quote.Declined, quote.Completed} {
		q := createTestQuote(t, status)
		cmd, err := commands.NewPromoteQuoteCommand(q.ID(), kernel.NewUUID(),
			[]commands.ServiceSelection{{ServiceID: kernel.NewUUID(), Quantity: 1}},
			order.PriorityNormal, nil, nil, nil)
		require.NoError(t, err)

		quoteRepo := new(MockQuoteRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockPromotionUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("QuoteRepository").Return(quoteRepo).Once(),
			quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockPromotionUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewPromoteQuoteCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrPreconditionFailed, "status %s must not promote", status)
		orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		factory.AssertExpectations(t)
	}
}

func TestPromoteQuoteCommandHandler_Handle_UnknownService(t *testing.T) {
	ctx := t.Context()
	q := createTestQuote(t, quote.Accepted)
	unknownID := kernel.NewUUID()

	cmd, err := commands.NewPromoteQuoteCommand(q.ID(), kernel.NewUUID(),
		[]commands.ServiceSelection{{ServiceID: unknownID, Quantity: 1}},
		order.PriorityNormal, nil, nil, nil)
	require.NoError(t, err)

	quoteRepo := new(MockQuoteRepository)
	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockPromotionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", mock.Anything, q.ID()).Return(q, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetServices", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("service", unknownID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPromotionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPromoteQuoteCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	factory.AssertExpectations(t)
}
