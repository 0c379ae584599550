package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads the order journal straight from the database.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates the handler.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns journaled orders, newest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			name,
			ingredient_ids,
			placed_at,
			journaled_at
		FROM orders
		ORDER BY journaled_at DESC, number DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderHistoryQueryResponse
		var ids pq.StringArray

		if err = rows.Scan(
			&resp.Number,
			&resp.Name,
			&ids,
			&resp.PlacedAt,
			&resp.JournaledAt,
		); err != nil {
			return nil, err
		}

		resp.IngredientIDs = []string(ids)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
