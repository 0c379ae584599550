package queries_test

import (
	"context"
	"testing"

	"burger/internal/adapters/out/postgres/orderrepo"
	"burger/internal/core/application/usecases/queries"
	"burger/internal/core/domain/model/order"
	"burger/internal/pkg/errs"
	"burger/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

func TestNewGetOrderHistoryQuery(t *testing.T) {
	t.Run("should default zero limit", func(t *testing.T) {
		q, err := queries.NewGetOrderHistoryQuery(0)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultOrderHistoryLimit, q.Limit())
	})

	t.Run("should reject out of range limit", func(t *testing.T) {
		for _, limit := range []int{-1, queries.MaxOrderHistoryLimit + 1} {
			_, err := queries.NewGetOrderHistoryQuery(limit)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

type GetOrderHistoryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderHistoryQueryHandler
	journal   *orderrepo.GormOrderJournal
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) SetupSuite() {
	container, db, err := testutil.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderHistoryQueryHandler(db)
	suite.journal = orderrepo.NewGormOrderJournal(db, &mockAggregateTracker{})
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) journalOrder(number int, ids ...string) {
	rec, err := order.NewRecord(order.RecordParams{Number: number, Name: "Бургер", IngredientIDs: ids})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.journal.Add(context.Background(), rec))
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_EmptyJournal_ReturnsEmptySlice() {
	query, err := queries.NewGetOrderHistoryQuery(0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_ReturnsNewestFirst() {
	suite.journalOrder(100, testutil.CraterBunID)
	suite.journalOrder(101, testutil.FluorescentBunID, testutil.SpicySauceID)
	suite.journalOrder(102, testutil.CraterBunID, testutil.BioCutletID)

	query, err := queries.NewGetOrderHistoryQuery(2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(102, result[0].Number)
	suite.Equal([]string{testutil.CraterBunID, testutil.BioCutletID}, result[0].IngredientIDs)
	suite.Equal(101, result[1].Number)
	suite.False(result[0].JournaledAt.IsZero())
}

func (suite *GetOrderHistoryQueryHandlerTestSuite) TestHandle_UnconstructedQuery_Fails() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderHistoryQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}

func TestGetOrderHistoryQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetOrderHistoryQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker; query tests do not inspect tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ string, _ any) {}
