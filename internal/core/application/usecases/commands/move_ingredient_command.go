package commands

import (
	"errors"
	"fmt"
	"strings"

	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

var ErrMoveIngredientCommandIsNotConstructed = errors.New(
	"MoveIngredientCommand must be created via NewMoveIngredientCommand constructor",
)

// Direction is where a filling moves relative to its neighbours.
type Direction int

const (
	UnknownDirection Direction = iota
	Up
	Down
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		UnknownDirection: "unknown",
		Up:               "up",
		Down:             "down",
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if s, ok := getDirectionStrings()[d]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects UnknownDirection and out-of-range values.
func (d Direction) Validate() error {
	if d != Up && d != Down {
		return errs.NewValueIsInvalidErrorWithCause("direction", fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// DirectionFromString parses "up" or "down", ignoring case.
func DirectionFromString(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return UnknownDirection, errs.NewValueIsInvalidErrorWithCause(
			"direction", fmt.Errorf("%q is not a valid direction", s),
		)
	}
}

// MoveIngredientCommand asks to swap the filling at index with its neighbour.
// Moves past either end of the fillings are accepted and change nothing.
//
// Example:
//
//	cmd, _ := NewMoveIngredientCommand(1, Up)
//	moved, err := handler.Handle(ctx, cmd)
type MoveIngredientCommand struct { //nolint:recvcheck //using for validation
	index     int
	direction Direction

	guard guard.ConstructorGuard
}

// NewMoveIngredientCommand creates the command.
func NewMoveIngredientCommand(index int, direction Direction) (MoveIngredientCommand, error) {
	cmd := MoveIngredientCommand{
		index: index,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDirection(direction); err != nil {
		return MoveIngredientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveIngredientCommand) Validate() error {
	return c.guard.Validate(ErrMoveIngredientCommandIsNotConstructed)
}

// Index returns the filling position.
func (c MoveIngredientCommand) Index() int {
	return c.index
}

// Direction returns the move direction.
func (c MoveIngredientCommand) Direction() Direction {
	return c.direction
}

func (c *MoveIngredientCommand) setDirection(d Direction) error {
	if err := d.Validate(); err != nil {
		return err
	}

	c.direction = d
	return nil
}
