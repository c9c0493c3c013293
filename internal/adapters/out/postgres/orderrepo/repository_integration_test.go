package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"exportpro/internal/adapters/out/postgres/orderrepo"
	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderStatusDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, order_status_history").Error,
	)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(seq int) *order.Order {
	client, err := order.NewClient("Hamburg Trading GmbH", "K. Fischer", "kf@example.com")
	suite.Require().NoError(err)

	first, err := order.NewLineItem("prod-1", "Cardamom 8mm", 10, decimal.NewFromInt(100), decimal.NewFromInt(60))
	suite.Require().NoError(err)
	second, err := order.NewLineItem("prod-2", "Black Pepper", 5, decimal.NewFromInt(50), decimal.NewFromInt(30))
	suite.Require().NoError(err)

	number, err := order.NewNumber(2026, seq)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), number, client, []order.LineItem{first, second},
		"30 days net", "FOB Kochi", time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_Fails() {
	ctx := context.Background()
	first := suite.createTestOrder(7)
	second := suite.createTestOrder(7)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, first))

	// unique index on order_number rejects the second insert
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(2)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal("EXP-2026-002", restored.Number().String())
	suite.Equal(order.StatusCreated, restored.Status())
	suite.Len(restored.Items(), 2)
	suite.True(decimal.NewFromInt(1250).Equal(restored.Details().TotalValue()))
	suite.Equal("INR", restored.Details().Currency())

	history := restored.History()
	suite.Require().Len(history, 1)
	suite.Equal("Order created", history[0].Note())

	_, hasAnalysis := restored.Analysis()
	suite.False(hasAnalysis)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsAnalysis() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(3)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	analysis, err := order.NewAnalysis(
		decimal.NewFromInt(200), 0.4, 0.25, 0.8,
		order.SeaFreight, decimal.NewFromInt(1375),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AttachAnalysis(analysis))

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	restoredAnalysis, hasAnalysis := restored.Analysis()
	suite.Require().True(hasAnalysis)
	suite.True(decimal.NewFromInt(200).Equal(restoredAnalysis.PredictedProfit()))
	suite.InDelta(0.4, restoredAnalysis.ProfitMargin(), 0.0001)
	suite.Equal(order.SeaFreight, restoredAnalysis.OptimalShipping())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_FiltersAndSorts() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	for seq := 1; seq <= 3; seq++ {
		o := suite.createTestOrder(seq)
		if seq == 2 {
			suite.Require().NoError(o.ChangeStatus(order.StatusCompleted, "", time.Now().UTC()))
		}
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	all, err := suite.repository.GetAll(ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 3)

	completed, err := suite.repository.GetAll(ctx, order.StatusCompleted)
	suite.Require().NoError(err)
	suite.Require().Len(completed, 1)
	suite.Equal("EXP-2026-002", completed[0].Number().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLatestNumber() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	latest, err := suite.repository.LatestNumber(ctx)
	suite.Require().NoError(err)
	suite.Nil(latest)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(11)))

	latest, err = suite.repository.LatestNumber(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(latest)
	suite.Equal(11, latest.Seq())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAppendStatus() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(4)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	change, err := order.NewStatusChange(order.Status("confirmed"),
		time.Now().UTC().Truncate(time.Microsecond), "Status updated to confirmed")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AppendStatus(ctx, testOrder.ID(), change))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Status("confirmed"), restored.Status())
	suite.Len(restored.History(), 2)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
