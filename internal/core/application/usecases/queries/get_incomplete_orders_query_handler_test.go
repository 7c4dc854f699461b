package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"orderflow/internal/adapters/out/crypto"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetIncompleteOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
	handler   queries.GetIncompleteOrdersQueryHandler
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	codec, err := crypto.NewCodec([]byte(strings.Repeat("k", 32)))
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{}, codec)
	suite.handler = queries.NewGetIncompleteOrdersQueryHandler(db)
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) addOrderWithStatus(statuses ...order.Status) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), validOrderAttributes())
	suite.Require().NoError(err)

	for _, status := range statuses {
		changes := map[string]any{order.PropOrderStatus: status}
		if status == order.Complete {
			changes[order.PropProofOfDelivery] = "POD-1"
		}
		aggregate, err = aggregate.Apply(changes)
		suite.Require().NoError(err)
	}

	suite.Require().NoError(suite.repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetIncompleteOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) TestHandle_OnlyTerminalOrders_ReturnsEmptySlice() {
	suite.addOrderWithStatus(order.Canceled)
	suite.addOrderWithStatus(order.Approved, order.Shipping, order.Complete)

	query := queries.NewGetIncompleteOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyInFlight() {
	pending := suite.addOrderWithStatus()
	approved := suite.addOrderWithStatus(order.Approved)
	shipping := suite.addOrderWithStatus(order.Approved, order.Shipping)
	suite.addOrderWithStatus(order.Canceled)
	suite.addOrderWithStatus(order.Approved, order.Shipping, order.Complete)

	query := queries.NewGetIncompleteOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	byOrderNo := make(map[kernel.UUID]queries.GetIncompleteOrdersQueryResponse, len(result))
	for _, r := range result {
		byOrderNo[r.OrderNo] = r
	}

	suite.Contains(byOrderNo, pending.OrderNo())
	suite.Contains(byOrderNo, approved.OrderNo())
	suite.Contains(byOrderNo, shipping.OrderNo())

	suite.Equal(order.Pending, byOrderNo[pending.OrderNo()].Status)
	suite.Equal(order.Approved, byOrderNo[approved.OrderNo()].Status)
	suite.Equal(order.Shipping, byOrderNo[shipping.OrderNo()].Status)
	suite.InDelta(177.82, byOrderNo[pending.OrderNo()].Total, 0.001)
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) TestHandle_ResultsAreSortedByOrderNo() {
	for range 3 {
		suite.addOrderWithStatus()
	}

	query := queries.NewGetIncompleteOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	for i := range len(result) - 1 {
		suite.Less(result[i].OrderNo.String(), result[i+1].OrderNo.String())
	}
}

func (suite *GetIncompleteOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetIncompleteOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetIncompleteOrdersQuery constructor")
}

func TestGetIncompleteOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetIncompleteOrdersQueryHandlerTestSuite))
}
