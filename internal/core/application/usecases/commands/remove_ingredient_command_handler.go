package commands

import (
	"context"
)

// RemoveIngredientCommandHandler removes a filling from the store.
type RemoveIngredientCommandHandler struct {
	remover IngredientRemover
}

// NewRemoveIngredientCommandHandler creates the handler.
func NewRemoveIngredientCommandHandler(remover IngredientRemover) RemoveIngredientCommandHandler {
	return RemoveIngredientCommandHandler{
		remover: remover,
	}
}

// Handle reports whether a filling was removed. Unknown placement ids are a
// silent no-op, not an error.
func (h *RemoveIngredientCommandHandler) Handle(_ context.Context, cmd RemoveIngredientCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return h.remover.RemoveIngredient(cmd.PlacementID()), nil
}
