package commands

import (
	"errors"

	"burger/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand asks to send the current burger to the order endpoint.
//
// Example:
//
//	cmd := NewSubmitOrderCommand()
//	snap, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, store.ErrSubmissionInProgress) {
//	    // another submit is still waiting for the endpoint
//	}
//	if snap.LastError != "" {
//	    fmt.Println("order failed:", snap.LastError)
//	}
type SubmitOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates the command.
func NewSubmitOrderCommand() SubmitOrderCommand {
	return SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}
