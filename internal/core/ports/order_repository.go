package ports

import (
	"context"

	"burger/internal/core/domain/model/order"
)

// OrderGateway is the remote order endpoint. It receives catalog source ids in
// wire order (base first, then fillings) and returns the placed order, or an
// error whose message is suitable for display.
//
// The core owns no timeout and never cancels an issued call; implementations
// decide how long a request may take.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, ingredientIDs []string) (*order.Record, error)
}

// OrderJournal keeps the records of successfully placed orders.
type OrderJournal interface {
	// Add appends a placed order. Numbers are unique.
	Add(ctx context.Context, record *order.Record) error

	// Get retrieves a journaled order by its number.
	Get(ctx context.Context, number int) (*order.Record, error)
}
