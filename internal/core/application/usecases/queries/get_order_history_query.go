package queries

import (
	"errors"
	"time"

	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

const (
	DefaultOrderHistoryLimit = 20
	MaxOrderHistoryLimit     = 100
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery reads the most recently journaled orders.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(10)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetOrderHistoryQueryHandler(db).Handle(ctx, query)
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates the query. A zero limit selects
// DefaultOrderHistoryLimit.
func NewGetOrderHistoryQuery(limit int) (GetOrderHistoryQuery, error) {
	q := GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}
	if err := q.setLimit(limit); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Limit returns the maximum number of orders to read.
func (q GetOrderHistoryQuery) Limit() int {
	return q.limit
}

func (q *GetOrderHistoryQuery) setLimit(limit int) error {
	if limit == 0 {
		limit = DefaultOrderHistoryLimit
	}
	if limit < 1 || limit > MaxOrderHistoryLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrderHistoryLimit)
	}

	q.limit = limit
	return nil
}

// GetOrderHistoryQueryResponse is one journaled order.
type GetOrderHistoryQueryResponse struct {
	Number        int
	Name          string
	IngredientIDs []string
	PlacedAt      time.Time
	JournaledAt   time.Time
}
