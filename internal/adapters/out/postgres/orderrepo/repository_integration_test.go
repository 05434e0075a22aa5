package orderrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/hmucanze19/algafood-api/internal/adapters/out/postgres/orderrepo"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/kernel"
	"github.com/hmucanze19/algafood-api/internal/core/domain/model/order"
	"github.com/hmucanze19/algafood-api/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	sqlDB      *sql.DB
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Plain database/sql connection for verifying rows independently of the
	// mapping layer.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)
	suite.sqlDB = sqlDB

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.sqlDB != nil {
		suite.Require().NoError(suite.sqlDB.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	addr, err := kernel.NewAddress("Baker Street", "221b", "", "Marylebone", "London", "LDN", "NW1 6XE")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(decimal.RequireFromString("25.00"))
	suite.Require().NoError(err)
	item, err := order.NewItem(11, "Margherita", 2, price, "extra basil")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(42, 7, 3, addr, []*order.Item{item})
	suite.Require().NoError(err)

	fee, err := kernel.NewMoney(decimal.RequireFromString("5.00"))
	suite.Require().NoError(err)
	aggregate.AssignShippingFee(fee)
	aggregate.ComputeTotal()
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsCodeAndID() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.NotEmpty(aggregate.Code())
	suite.NotZero(aggregate.ID())

	var count int
	err = suite.sqlDB.QueryRow(
		"SELECT COUNT(*) FROM orders WHERE code = $1", aggregate.Code()).Scan(&count)
	suite.Require().NoError(err)
	suite.Equal(1, count)

	var itemCount int
	err = suite.sqlDB.QueryRow(
		"SELECT COUNT(*) FROM order_items WHERE order_id = $1", aggregate.ID()).Scan(&itemCount)
	suite.Require().NoError(err)
	suite.Equal(1, itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_CodeIsStableAcrossSaves() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	code := aggregate.Code()

	suite.Require().NoError(aggregate.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))
	suite.Equal(code, aggregate.Code())

	reloaded, err := suite.repository.GetByCode(ctx, code)
	suite.Require().NoError(err)
	suite.Equal(code, reloaded.Code())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode_RoundTripsAggregate() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	reloaded, err := suite.repository.GetByCode(ctx, aggregate.Code())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), reloaded.ID())
	suite.Equal(order.StatusCreated, reloaded.Status())
	suite.Equal(aggregate.CustomerID(), reloaded.CustomerID())
	suite.Equal(aggregate.RestaurantID(), reloaded.RestaurantID())
	suite.Require().Len(reloaded.Items(), 1)
	suite.Equal("Margherita", reloaded.Items()[0].ProductName())
	suite.Equal(2, reloaded.Items()[0].Quantity())
	suite.True(reloaded.Total().Equal(aggregate.Total()))
	suite.Equal("Baker Street", reloaded.DeliveryAddress().Street())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode_NotFound() {
	_, err := suite.repository.GetByCode(context.Background(), "no-such-code")
	suite.Require().ErrorIs(err, errs.ErrEntityNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndTimestamp() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	reloaded, err := suite.repository.GetByCode(ctx, aggregate.Code())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, reloaded.Status())
	suite.NotNil(reloaded.ConfirmedAt())
	suite.Nil(reloaded.DeliveredAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetStaleCreated_FiltersByStatusAndAge() {
	ctx := context.Background()

	stale := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	confirmed := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))
	suite.Require().NoError(confirmed.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, confirmed))

	// Everything above was created just now, so a future cutoff catches the
	// CREATED order only.
	result, err := suite.repository.GetStaleCreated(ctx, time.Now().Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.Code(), result[0].Code())

	// A cutoff in the past catches nothing.
	result, err = suite.repository.GetStaleCreated(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Empty(result)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
