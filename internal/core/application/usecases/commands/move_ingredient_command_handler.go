package commands

import (
	"context"
)

// MoveIngredientCommandHandler reorders fillings in the store.
type MoveIngredientCommandHandler struct {
	mover IngredientMover
}

// NewMoveIngredientCommandHandler creates the handler.
func NewMoveIngredientCommandHandler(mover IngredientMover) MoveIngredientCommandHandler {
	return MoveIngredientCommandHandler{
		mover: mover,
	}
}

// Handle reports whether the fillings order changed.
func (h *MoveIngredientCommandHandler) Handle(_ context.Context, cmd MoveIngredientCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if cmd.Direction() == Up {
		return h.mover.MoveUp(cmd.Index()), nil
	}
	return h.mover.MoveDown(cmd.Index()), nil
}
