package commands

import (
	"errors"
	"strings"

	"burger/internal/pkg/guard"
)

var (
	ErrAddIngredientCommandIsNotConstructed = errors.New(
		"AddIngredientCommand must be created via NewAddIngredientCommand constructor",
	)
	ErrIngredientIDIsRequired = errors.New("ingredient id is required")
)

// AddIngredientCommand asks to place a catalog ingredient into the burger.
// Buns take the base slot, everything else is appended as a filling.
//
// Example:
//
//	cmd, err := NewAddIngredientCommand("643d69a5c3f7b9001cfa093c")
//	if err != nil {
//	    return err
//	}
//	placement, err := handler.Handle(ctx, cmd)
type AddIngredientCommand struct { //nolint:recvcheck //using for validation
	ingredientID string

	guard guard.ConstructorGuard
}

// NewAddIngredientCommand creates the command for the given catalog source id.
func NewAddIngredientCommand(ingredientID string) (AddIngredientCommand, error) {
	cmd := AddIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIngredientID(ingredientID); err != nil {
		return AddIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddIngredientCommand) Validate() error {
	return c.guard.Validate(ErrAddIngredientCommandIsNotConstructed)
}

// IngredientID returns the catalog source id to place.
func (c AddIngredientCommand) IngredientID() string {
	return c.ingredientID
}

func (c *AddIngredientCommand) setIngredientID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIngredientIDIsRequired
	}

	c.ingredientID = id
	return nil
}
