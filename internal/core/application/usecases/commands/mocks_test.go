package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"arkdumpster/internal/core/application/usecases/commands"
	"arkdumpster/internal/core/domain/model/catalog"
	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/core/domain/model/order"
	"arkdumpster/internal/core/domain/model/quote"
	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared mocks and fixtures for the command handler tests in this package.

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(),
		"15 Yard Dumpster", 1, decimal.RequireFromString("325.00"))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), nil, "ORD-20250601-1A2B3C",
		"Jane Doe", "jane@example.com", "555-0101", "123 Main St",
		order.PriorityNormal, []*order.Line{line}, nil,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func createTestOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := createTestOrder(t)
	require.NoError(t, o.ChangeStatus(status, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)))
	return o
}

func createTestQuote(t *testing.T, status quote.Status) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(kernel.NewUUID(),
		"Jane Doe", "jane@example.com", "555-0101",
		"123 Main St", "15 yard", "",
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, q.SetStatus(status, q.CreatedAt()))
	return q
}

func createTestDumpster(t *testing.T) *dumpster.Dumpster {
	t.Helper()
	d, err := dumpster.NewDumpster(kernel.NewUUID(), "Green 20yd #1", dumpster.ConditionGood)
	require.NoError(t, err)
	return d
}

func createAssignedDumpster(t *testing.T, orderID kernel.UUID) *dumpster.Dumpster {
	t.Helper()
	d := createTestDumpster(t)
	require.NoError(t, d.Assign(orderID, "123 Main St", time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)))
	return d
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *MockQuoteRepository) Update(ctx context.Context, q *quote.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.Quote), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDumpsterRepository struct{ mock.Mock }

func (m *MockDumpsterRepository) Add(ctx context.Context, d *dumpster.Dumpster) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDumpsterRepository) Update(ctx context.Context, d *dumpster.Dumpster) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDumpsterRepository) Get(ctx context.Context, id kernel.UUID) (*dumpster.Dumpster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dumpster.Dumpster), args.Error(1)
}
func (m *MockDumpsterRepository) FindAssigned(ctx context.Context, orderID kernel.UUID) (*dumpster.Dumpster, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dumpster.Dumpster), args.Error(1)
}
func (m *MockDumpsterRepository) Claim(ctx context.Context, id, orderID kernel.UUID, address string, now time.Time) (*dumpster.Dumpster, error) {
	args := m.Called(ctx, id, orderID, address, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dumpster.Dumpster), args.Error(1)
}
func (m *MockDumpsterRepository) Free(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddService(ctx context.Context, s *catalog.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockCatalogRepository) UpdateService(ctx context.Context, s *catalog.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockCatalogRepository) GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}
func (m *MockCatalogRepository) GetServices(ctx context.Context, ids []kernel.UUID) ([]*catalog.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Service), args.Error(1)
}

type MockReleaseQueue struct{ mock.Mock }

func (m *MockReleaseQueue) Enqueue(ctx context.Context, task dumpster.ReleaseTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
func (m *MockReleaseQueue) Pending(ctx context.Context, limit int) ([]dumpster.ReleaseTask, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dumpster.ReleaseTask), args.Error(1)
}
func (m *MockReleaseQueue) Complete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReleaseQueue) RecordAttempt(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, payload services.Payload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// txManagerMock gives the composite unit-of-work mocks their shared
// transaction surface.
type txManagerMock struct{ mock.Mock }

func (m *txManagerMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txManagerMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *txManagerMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockQuoteUoW struct{ txManagerMock }

func (m *MockQuoteUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockOrderUoW struct{ txManagerMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDumpsterUoW struct{ txManagerMock }

func (m *MockDumpsterUoW) DumpsterRepository() ports.DumpsterRepository {
	args := m.Called()
	return args.Get(0).(ports.DumpsterRepository)
}

type MockDumpsterUoWFactory struct{ mock.Mock }

func (m *MockDumpsterUoWFactory) Create() commands.DumpsterUoW {
	args := m.Called()
	return args.Get(0).(commands.DumpsterUoW)
}

type MockPromotionUoW struct{ txManagerMock }

func (m *MockPromotionUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}
func (m *MockPromotionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPromotionUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockPromotionUoWFactory struct{ mock.Mock }

func (m *MockPromotionUoWFactory) Create() commands.PromotionUoW {
	args := m.Called()
	return args.Get(0).(commands.PromotionUoW)
}

type MockLifecycleUoW struct{ txManagerMock }

func (m *MockLifecycleUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockLifecycleUoW) DumpsterRepository() ports.DumpsterRepository {
	args := m.Called()
	return args.Get(0).(ports.DumpsterRepository)
}
func (m *MockLifecycleUoW) ReleaseQueue() ports.ReleaseQueue {
	args := m.Called()
	return args.Get(0).(ports.ReleaseQueue)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockAssignmentUoW struct{ txManagerMock }

func (m *MockAssignmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockAssignmentUoW) DumpsterRepository() ports.DumpsterRepository {
	args := m.Called()
	return args.Get(0).(ports.DumpsterRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}
