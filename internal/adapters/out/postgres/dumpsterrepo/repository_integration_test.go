package dumpsterrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"arkdumpster/internal/adapters/out/postgres/dumpsterrepo"
	"arkdumpster/internal/core/domain/model/dumpster"
	"arkdumpster/internal/core/domain/model/kernel"
	"arkdumpster/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DumpsterRepositoryIntegrationTestSuite provides integration tests for the
// dumpster ledger, in particular the conditional claim that prevents
// double-booking under concurrency.
type DumpsterRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *dumpsterrepo.GormDumpsterRepository
	tracker    *MockAggregateTracker
}

func (suite *DumpsterRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&dumpsterrepo.DumpsterDTO{}))
}

func (suite *DumpsterRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dumpsters").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = dumpsterrepo.NewGormDumpsterRepository(suite.db, suite.tracker)
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DumpsterRepositoryIntegrationTestSuite) createAvailableDumpster() *dumpster.Dumpster {
	d, err := dumpster.NewDumpster(kernel.NewUUID(),
		"Green 20yd "+kernel.NewUUID().String()[:8], dumpster.ConditionGood)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), d))
	return d
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestAddGet_RoundTrip() {
	ctx := context.Background()
	d := suite.createAvailableDumpster()

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(d.ID()))
	suite.Equal(d.Name(), retrieved.Name())
	suite.Equal(dumpster.Available, retrieved.Status())
	suite.Equal(dumpster.ConditionGood, retrieved.Condition())
	suite.Nil(retrieved.CurrentOrderID())
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestClaim_AvailableDumpster_Succeeds() {
	ctx := context.Background()
	d := suite.createAvailableDumpster()
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	claimed, err := suite.repository.Claim(ctx, d.ID(), orderID, "123 Main St", now)
	suite.Require().NoError(err)

	suite.Equal(dumpster.InUse, claimed.Status())
	suite.Require().NotNil(claimed.CurrentOrderID())
	suite.True(claimed.CurrentOrderID().IsEqual(orderID))
	suite.Require().NotNil(claimed.Address())
	suite.Equal("123 Main St", *claimed.Address())
	suite.NotNil(claimed.LastAssignedAt())
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestClaim_InUseDumpster_ConflictNamesHolder() {
	ctx := context.Background()
	d := suite.createAvailableDumpster()
	holderID := kernel.NewUUID()
	now := time.Now().UTC()

	_, err := suite.repository.Claim(ctx, d.ID(), holderID, "123 Main St", now)
	suite.Require().NoError(err)

	// Second claim loses: no write, conflict error naming the holding order
	_, err = suite.repository.Claim(ctx, d.ID(), kernel.NewUUID(), "456 Oak Ave", now)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
	suite.Contains(err.Error(), holderID.String())

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.CurrentOrderID().IsEqual(holderID))
	suite.Equal("123 Main St", *retrieved.Address())
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestClaim_ConcurrentClaims_ExactlyOneWins() {
	ctx := context.Background()
	d := suite.createAvailableDumpster()
	now := time.Now().UTC()

	orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	claimErrs := make([]error, len(orderIDs))

	// Both claims hit the same available row at once; the conditional UPDATE
	// resolves the race at the database, not in application code.
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, orderID := range orderIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, claimErrs[i] = suite.repository.Claim(ctx, d.ID(), orderID, "123 Main St", now)
		}()
	}
	close(start)
	wg.Wait()

	winners := 0
	winnerIdx := -1
	for i, err := range claimErrs {
		if err == nil {
			winners++
			winnerIdx = i
			continue
		}
		suite.ErrorIs(err, errs.ErrConflict)
	}
	suite.Require().Equal(1, winners)

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(dumpster.InUse, retrieved.Status())
	suite.Require().NotNil(retrieved.CurrentOrderID())
	suite.True(retrieved.CurrentOrderID().IsEqual(orderIDs[winnerIdx]))
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestClaim_UnknownDumpster_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Claim(ctx, kernel.NewUUID(), kernel.NewUUID(), "123 Main St", time.Now().UTC())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestFree_InUseDumpster_ClearsPlacement() {
	ctx := context.Background()
	d := suite.createAvailableDumpster()
	orderID := kernel.NewUUID()

	_, err := suite.repository.Claim(ctx, d.ID(), orderID, "123 Main St", time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Free(ctx, d.ID()))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(dumpster.Available, retrieved.Status())
	suite.Nil(retrieved.CurrentOrderID())
	suite.Nil(retrieved.Address())
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestFree_AlreadyAvailable_IsIdempotent() {
	ctx := context.Background()
	d := suite.createAvailableDumpster()

	// Releasing a free dumpster is a no-op success, so replays are harmless
	suite.Require().NoError(suite.repository.Free(ctx, d.ID()))
	suite.Require().NoError(suite.repository.Free(ctx, d.ID()))

	retrieved, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(dumpster.Available, retrieved.Status())
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestFree_UnknownDumpster_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.Free(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestFindAssigned_ResolvesBackReference() {
	ctx := context.Background()
	d := suite.createAvailableDumpster()
	orderID := kernel.NewUUID()

	_, err := suite.repository.Claim(ctx, d.ID(), orderID, "123 Main St", time.Now().UTC())
	suite.Require().NoError(err)

	assigned, err := suite.repository.FindAssigned(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(assigned.ID().IsEqual(d.ID()))
}

func (suite *DumpsterRepositoryIntegrationTestSuite) TestFindAssigned_NoAssignment_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.FindAssigned(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDumpsterRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DumpsterRepositoryIntegrationTestSuite))
}
