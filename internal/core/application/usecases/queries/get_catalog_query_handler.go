package queries

import (
	"context"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/ports"
)

// GetCatalogQueryHandler groups the catalog by ingredient type.
type GetCatalogQueryHandler struct {
	catalog ports.CatalogReader
}

// NewGetCatalogQueryHandler creates the handler.
func NewGetCatalogQueryHandler(catalog ports.CatalogReader) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{catalog: catalog}
}

// Handle returns the grouped catalog. Within a group the catalog order is kept.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	all, err := h.catalog.GetAll(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	byType := make(map[string][]IngredientResponse, len(catalogGroupOrder()))
	for _, ing := range all {
		byType[ing.Type()] = append(byType[ing.Type()], ingredientResponse(ing))
	}

	resp := GetCatalogQueryResponse{Groups: make([]IngredientGroupResponse, 0, len(catalogGroupOrder()))}
	for _, typ := range catalogGroupOrder() {
		items := byType[typ]
		if items == nil {
			items = make([]IngredientResponse, 0)
		}
		resp.Groups = append(resp.Groups, IngredientGroupResponse{Type: typ, Ingredients: items})
	}

	return resp, nil
}

func ingredientResponse(ing ingredient.Ingredient) IngredientResponse {
	n := ing.Nutrition()
	img := ing.Images()
	return IngredientResponse{
		ID:            ing.SourceID(),
		Name:          ing.Name(),
		Type:          ing.Type(),
		Price:         ing.Price(),
		Calories:      n.Calories,
		Proteins:      n.Proteins,
		Fat:           n.Fat,
		Carbohydrates: n.Carbohydrates,
		Image:         img.Default,
		ImageMobile:   img.Mobile,
		ImageLarge:    img.Large,
	}
}
