package commands

import (
	"errors"

	"burger/internal/pkg/guard"
)

var ErrDismissOrderResultCommandIsNotConstructed = errors.New(
	"DismissOrderResultCommand must be created via NewDismissOrderResultCommand constructor",
)

// DismissOrderResultCommand closes the order result, clearing the last order
// and the last error.
type DismissOrderResultCommand struct {
	guard guard.ConstructorGuard
}

// NewDismissOrderResultCommand creates the command.
func NewDismissOrderResultCommand() DismissOrderResultCommand {
	return DismissOrderResultCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DismissOrderResultCommand) Validate() error {
	return c.guard.Validate(ErrDismissOrderResultCommandIsNotConstructed)
}
