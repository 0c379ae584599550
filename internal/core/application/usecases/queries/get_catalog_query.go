package queries

import (
	"errors"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery reads the ingredient catalog grouped the way the
// constructor shows it: buns, then mains, then sauces.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates the query.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// IngredientResponse is one catalog entry.
type IngredientResponse struct {
	ID            string
	Name          string
	Type          string
	Price         int
	Calories      int
	Proteins      int
	Fat           int
	Carbohydrates int
	Image         string
	ImageMobile   string
	ImageLarge    string
}

// IngredientGroupResponse holds the catalog entries of one type.
type IngredientGroupResponse struct {
	Type        string
	Ingredients []IngredientResponse
}

// GetCatalogQueryResponse lists the groups in display order. Empty groups are kept.
type GetCatalogQueryResponse struct {
	Groups []IngredientGroupResponse
}

func catalogGroupOrder() []string {
	return []string{ingredient.TypeBun, ingredient.TypeMain, ingredient.TypeSauce}
}
