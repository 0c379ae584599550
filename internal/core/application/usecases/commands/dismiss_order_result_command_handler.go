package commands

import (
	"context"
)

// DismissOrderResultCommandHandler clears the last submit result.
type DismissOrderResultCommandHandler struct {
	dismisser OrderResultDismisser
}

// NewDismissOrderResultCommandHandler creates the handler.
func NewDismissOrderResultCommandHandler(dismisser OrderResultDismisser) DismissOrderResultCommandHandler {
	return DismissOrderResultCommandHandler{
		dismisser: dismisser,
	}
}

// Handle is idempotent.
func (h *DismissOrderResultCommandHandler) Handle(_ context.Context, cmd DismissOrderResultCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.dismisser.DismissOrderResult()
	return nil
}
