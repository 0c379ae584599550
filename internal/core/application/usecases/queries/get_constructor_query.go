package queries

import (
	"errors"

	"burger/internal/pkg/guard"
)

var ErrGetConstructorQueryIsNotConstructed = errors.New(
	"GetConstructorQuery must be created via NewGetConstructorQuery constructor",
)

// GetConstructorQuery reads the burger under construction and the submit status.
//
// Example:
//
//	handler := NewGetConstructorQueryHandler(s)
//	view, err := handler.Handle(ctx, NewGetConstructorQuery())
//	if err != nil {
//	    return err
//	}
//	if view.LastOrder != nil {
//	    fmt.Printf("order #%d placed\n", view.LastOrder.Number)
//	}
type GetConstructorQuery struct {
	guard guard.ConstructorGuard
}

// NewGetConstructorQuery creates the query.
func NewGetConstructorQuery() GetConstructorQuery {
	return GetConstructorQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetConstructorQuery) Validate() error {
	return q.guard.Validate(ErrGetConstructorQueryIsNotConstructed)
}

// PlacementResponse is one placed ingredient.
type PlacementResponse struct {
	PlacementID  string
	IngredientID string
	Name         string
	Type         string
	Price        int
	Image        string
	ImageMobile  string
}

// OrderResponse is the last placed order.
type OrderResponse struct {
	Number        int
	Name          string
	Status        string
	IngredientIDs []string
}

// GetConstructorQueryResponse is the constructor view. Base and LastOrder are
// nil when absent; LastError is empty when absent.
type GetConstructorQueryResponse struct {
	Base         *PlacementResponse
	Fillings     []PlacementResponse
	Status       string
	IsSubmitting bool
	LastError    string
	LastOrder    *OrderResponse
}
