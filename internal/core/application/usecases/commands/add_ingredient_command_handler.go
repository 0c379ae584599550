package commands

import (
	"context"

	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/ports"
)

// AddIngredientCommandHandler resolves the ingredient in the catalog and
// places it into the store.
type AddIngredientCommandHandler struct {
	catalog ports.CatalogReader
	placer  IngredientPlacer
}

// NewAddIngredientCommandHandler creates the handler.
func NewAddIngredientCommandHandler(catalog ports.CatalogReader, placer IngredientPlacer) AddIngredientCommandHandler {
	return AddIngredientCommandHandler{
		catalog: catalog,
		placer:  placer,
	}
}

// Handle returns the new placement. An unknown ingredient id yields the
// catalog's errs.ObjectNotFoundError and leaves the store untouched.
func (h *AddIngredientCommandHandler) Handle(ctx context.Context, cmd AddIngredientCommand) (assembly.Placement, error) {
	if err := cmd.Validate(); err != nil {
		return assembly.Placement{}, err
	}

	ing, err := h.catalog.Get(ctx, cmd.IngredientID())
	if err != nil {
		return assembly.Placement{}, err
	}

	return h.placer.AddIngredient(ing)
}
