package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"exportpro/internal/adapters/out/postgres"
	"exportpro/internal/adapters/out/postgres/intelrepo"
	"exportpro/internal/adapters/out/postgres/orderrepo"
	"exportpro/internal/adapters/out/postgres/productrepo"
	"exportpro/internal/adapters/out/postgres/supplierrepo"
	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/model/product"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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
		&supplierrepo.SupplierDTO{},
		&productrepo.ProductDTO{},
		&intelrepo.IntelDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_status_history, suppliers, products, market_intelligence",
	).Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(seq int) *order.Order {
	client, err := order.NewClient("Hamburg Trading GmbH", "K. Fischer", "kf@example.com")
	suite.Require().NoError(err)
	line, err := order.NewLineItem("prod-1", "Cardamom 8mm", 10, decimal.NewFromInt(100), decimal.NewFromInt(60))
	suite.Require().NoError(err)
	number, err := order.NewNumber(2026, seq)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), number, client, []order.LineItem{line},
		"30 days net", "FOB Kochi", time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.buildOrder(1)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	catalogProduct, err := product.NewProduct(kernel.NewUUID(), "Cardamom 8mm", "spices",
		decimal.NewFromInt(100), decimal.NewFromInt(60), 500, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, catalogProduct))

	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, productCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&productrepo.ProductDTO{}).Count(&productCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), productCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.buildOrder(2)))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateOrderNumber_RollsBackCleanly() {
	ctx := context.Background()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(first.OrderRepository().Add(ctx, suite.buildOrder(3)))
	suite.Require().NoError(first.Commit(ctx))

	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(ctx))
	err := second.OrderRepository().Add(ctx, suite.buildOrder(3))
	suite.Require().Error(err)
	suite.Require().NoError(second.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
