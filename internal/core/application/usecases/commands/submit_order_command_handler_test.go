package commands_test

import (
	"context"
	"errors"
	"testing"

	"burger/internal/core/application/store"
	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/domain/model/order"
	"burger/internal/pkg/logging"
	"burger/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, number int) gatewayFunc {
	return func(_ context.Context, ids []string) (*order.Record, error) {
		rec, err := order.NewRecord(order.RecordParams{Number: number, Name: "Краторный бургер", IngredientIDs: ids})
		require.NoError(t, err)
		return rec, nil
	}
}

func storeWithBun(t *testing.T, gateway gatewayFunc) *store.Store {
	t.Helper()
	s := newTestStore(t, gateway)
	_, err := s.AddIngredient(testutil.CraterBun(t))
	require.NoError(t, err)
	return s
}

func TestSubmitOrderCommandHandler_Handle_JournalsPlacedOrder(t *testing.T) {
	ctx := t.Context()
	s := storeWithBun(t, placeOrder(t, 37865))

	journal := new(MockOrderJournal)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderJournal").Return(journal).Once(),
		journal.On("Add", ctx, mock.MatchedBy(func(rec *order.Record) bool {
			return rec.Number() == 37865
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(s, factory, logging.NewNop())
	snap, err := h.Handle(ctx, commands.NewSubmitOrderCommand())

	require.NoError(t, err)
	assert.Equal(t, order.Succeeded, snap.Status)
	assert.Equal(t, 37865, snap.LastOrder.Number())
	assert.True(t, snap.IsEmpty())
	journal.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_JournalFailureKeepsSuccess(t *testing.T) {
	ctx := t.Context()
	s := storeWithBun(t, placeOrder(t, 7))

	journal := new(MockOrderJournal)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderJournal").Return(journal).Once(),
		journal.On("Add", ctx, mock.AnythingOfType("*order.Record")).Return(errors.New("db down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(s, factory, logging.NewNop())
	snap, err := h.Handle(ctx, commands.NewSubmitOrderCommand())

	require.NoError(t, err)
	assert.Equal(t, 7, snap.LastOrder.Number())
	assert.Empty(t, snap.LastError)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_BeginFailure(t *testing.T) {
	ctx := t.Context()
	s := storeWithBun(t, placeOrder(t, 8))

	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(s, factory, logging.NewNop())
	snap, err := h.Handle(ctx, commands.NewSubmitOrderCommand())

	require.NoError(t, err)
	assert.Equal(t, 8, snap.LastOrder.Number())
	uow.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_FailureIsNotJournaled(t *testing.T) {
	s := storeWithBun(t, func(context.Context, []string) (*order.Record, error) {
		return nil, errors.New("network error")
	})
	factory := new(MockUnitOfWorkFactory)

	h := commands.NewSubmitOrderCommandHandler(s, factory, logging.NewNop())
	snap, err := h.Handle(t.Context(), commands.NewSubmitOrderCommand())

	require.NoError(t, err)
	assert.Equal(t, "network error", snap.LastError)
	assert.Equal(t, order.Failed, snap.Status)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitOrderCommandHandler_Handle_Refused(t *testing.T) {
	s := newTestStore(t, noGateway(t))
	factory := new(MockUnitOfWorkFactory)

	h := commands.NewSubmitOrderCommandHandler(s, factory, logging.NewNop())
	_, err := h.Handle(t.Context(), commands.NewSubmitOrderCommand())

	require.ErrorIs(t, err, store.ErrBaseIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitOrderCommandHandler_Handle_WithoutJournal(t *testing.T) {
	s := storeWithBun(t, placeOrder(t, 9))

	h := commands.NewSubmitOrderCommandHandler(s, nil, logging.NewNop())
	snap, err := h.Handle(t.Context(), commands.NewSubmitOrderCommand())

	require.NoError(t, err)
	assert.Equal(t, 9, snap.LastOrder.Number())
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewSubmitOrderCommandHandler(newTestStore(t, noGateway(t)), nil, logging.NewNop())

	_, err := h.Handle(t.Context(), commands.SubmitOrderCommand{})

	require.ErrorIs(t, err, commands.ErrSubmitOrderCommandIsNotConstructed)
}
