package commands_test

import (
	"context"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/order"
	"burger/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) Get(ctx context.Context, sourceID string) (ingredient.Ingredient, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return ingredient.Ingredient{}, args.Error(1)
	}
	return args.Get(0).(ingredient.Ingredient), args.Error(1)
}

func (m *MockCatalogReader) GetAll(ctx context.Context) ([]ingredient.Ingredient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ingredient.Ingredient), args.Error(1)
}

type MockOrderJournal struct{ mock.Mock }

func (m *MockOrderJournal) Add(ctx context.Context, rec *order.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockOrderJournal) Get(ctx context.Context, number int) (*order.Record, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Record), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockUnitOfWork) OrderJournal() ports.OrderJournal {
	args := m.Called()
	return args.Get(0).(ports.OrderJournal)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type gatewayFunc func(ctx context.Context, ids []string) (*order.Record, error)

func (f gatewayFunc) PlaceOrder(ctx context.Context, ids []string) (*order.Record, error) {
	return f(ctx, ids)
}
