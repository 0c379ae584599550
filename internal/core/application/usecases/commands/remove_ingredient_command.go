package commands

import (
	"errors"
	"strings"

	"burger/internal/pkg/guard"
)

var (
	ErrRemoveIngredientCommandIsNotConstructed = errors.New(
		"RemoveIngredientCommand must be created via NewRemoveIngredientCommand constructor",
	)
	ErrPlacementIDIsRequired = errors.New("placement id is required")
)

// RemoveIngredientCommand asks to take a filling out of the burger by its placement id.
type RemoveIngredientCommand struct { //nolint:recvcheck //using for validation
	placementID string

	guard guard.ConstructorGuard
}

// NewRemoveIngredientCommand creates the command for the given placement id.
func NewRemoveIngredientCommand(placementID string) (RemoveIngredientCommand, error) {
	cmd := RemoveIngredientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPlacementID(placementID); err != nil {
		return RemoveIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveIngredientCommand) Validate() error {
	return c.guard.Validate(ErrRemoveIngredientCommandIsNotConstructed)
}

// PlacementID returns the placement to remove.
func (c RemoveIngredientCommand) PlacementID() string {
	return c.placementID
}

func (c *RemoveIngredientCommand) setPlacementID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrPlacementIDIsRequired
	}

	c.placementID = id
	return nil
}
