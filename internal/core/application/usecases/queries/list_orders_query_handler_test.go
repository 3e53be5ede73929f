package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE order_items").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewListOrdersQuery(nil, "", nil, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Orders)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
	suite.Equal(1, result.Page)
	suite.Equal(20, result.Limit)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	first := suite.seedOrder("Anna Karenina", order.New)
	time.Sleep(10 * time.Millisecond)
	second := suite.seedOrder("Ivan Petrov", order.New)

	query, err := queries.NewListOrdersQuery(nil, "", nil, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 2)
	suite.Equal(second.ID().String(), result.Orders[0].ID)
	suite.Equal(first.ID().String(), result.Orders[1].ID)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Pagination() {
	for range 5 {
		suite.seedOrder("Ivan Petrov", order.New)
	}

	query, err := queries.NewListOrdersQuery(nil, "", nil, nil, 2, 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.EqualValues(5, result.Total)
	suite.Equal(2, result.Page)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StatusFilter() {
	suite.seedOrder("Ivan Petrov", order.New)
	confirmed := suite.seedOrder("Anna Karenina", order.Confirmed)

	status := order.Confirmed
	query, err := queries.NewListOrdersQuery(&status, "", nil, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(confirmed.ID().String(), result.Orders[0].ID)
	suite.Equal("confirmed", result.Orders[0].Status)
	suite.EqualValues(1, result.Total)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_CustomerNameFilter_CaseInsensitiveSubstring() {
	match := suite.seedOrder("Ivan Petrov", order.New)
	suite.seedOrder("Anna Karenina", order.New)

	query, err := queries.NewListOrdersQuery(nil, "PETROV", nil, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(match.ID().String(), result.Orders[0].ID)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_DateRangeFilter() {
	suite.seedOrder("Ivan Petrov", order.New)

	future := time.Now().Add(time.Hour)
	query, err := queries.NewListOrdersQuery(nil, "", &future, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)

	past := time.Now().Add(-time.Hour)
	query, err = queries.NewListOrdersQuery(nil, "", &past, &future, 1, 20)
	suite.Require().NoError(err)

	result, err = suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 1)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_IncludesLineItems() {
	seeded := suite.seedOrder("Ivan Petrov", order.New)

	query, err := queries.NewListOrdersQuery(nil, "", nil, nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Require().Len(result.Orders[0].Items, 1)
	suite.Equal("Margherita", result.Orders[0].Items[0].Name)
	suite.InEpsilon(seeded.TotalAmount(), result.Orders[0].TotalAmount, 1e-9)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *ListOrdersQueryHandlerTestSuite) seedOrder(customerName string, status order.Status) *order.Order {
	customer, err := order.NewCustomer(customerName, "", "", "")
	suite.Require().NoError(err)

	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 450, 1, "")
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(kernel.NewUUID(), customer, []order.LineItem{item}, "", "", nil)
	suite.Require().NoError(err)

	if status != order.New {
		suite.Require().NoError(seeded.ChangeStatus(status))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
