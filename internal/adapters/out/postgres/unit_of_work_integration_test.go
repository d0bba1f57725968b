package postgres_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/staffrepo"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/model/staff"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// order and staff repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	now       time.Time
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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
		&orderrepo.OrderDTO{}, &orderrepo.StatusHistoryDTO{}, &staffrepo.StaffDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_status_history, staff").Error,
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	member, err := staff.NewStaff(kernel.NewUUID(), "Amelie Durand")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.StaffRepository().Add(ctx, member))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	loadedStaff, err := fresh.StaffRepository().Get(ctx, member.ID())
	suite.Require().NoError(err)
	suite.True(loadedStaff.IsEqual(member))

	loadedOrder, err := fresh.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loadedOrder.IsEqual(testOrder))
	suite.Len(loadedOrder.History(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndHistory() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, historyCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.StatusHistoryDTO{}).Count(&historyCount).Error)
	suite.Zero(orderCount)
	suite.Zero(historyCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStatusChangeAndHistoryAreAtomic() {
	ctx := context.Background()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	testOrder := suite.createTestOrder()
	suite.Require().NoError(setup.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Advance(kernel.NewUUID(), suite.now.Add(time.Hour)))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Rollback(ctx))

	// The rolled back transition left neither a status change nor a
	// history row behind.
	fresh, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, fresh.Status())
	suite.Len(fresh.History(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	address, err := order.NewAddress("12 Provence Lane", "Mimizan")
	suite.Require().NoError(err)

	pricing, err := order.NewPricing(
		kernel.MoneyFromFloat(540.00),
		kernel.ZeroMoney(),
		kernel.MoneyFromFloat(5.00),
		kernel.MoneyFromFloat(545.00),
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		12, 10, address, suite.now.AddDate(0, 0, 3),
		"", true, pricing, suite.now, "",
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
