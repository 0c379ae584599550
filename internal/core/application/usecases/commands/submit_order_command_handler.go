package commands

import (
	"context"
	"log/slog"

	"burger/internal/core/application/store"
	"burger/internal/core/domain/model/order"
	"burger/internal/core/ports"
)

// SubmitOrderCommandHandler runs the submit workflow and journals placed orders.
//
// The journal is best effort: a placed order stays placed even if it could not
// be recorded, so journal failures are logged and never returned.
type SubmitOrderCommandHandler struct {
	submitter  OrderSubmitter
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewSubmitOrderCommandHandler creates the handler. uowFactory may be nil, in
// which case placed orders are not journaled.
func NewSubmitOrderCommandHandler(
	submitter OrderSubmitter,
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		submitter:  submitter,
		uowFactory: uowFactory,
		logger:     logger.With("component", "submit_order_handler"),
	}
}

// Handle returns the store snapshot after settlement. The error is non-nil only
// for a refused submit (store.ErrBaseIsRequired, store.ErrSubmissionInProgress)
// or an unconstructed command; endpoint failures are reported in LastError.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (store.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return store.Snapshot{}, err
	}

	snap, err := h.submitter.Submit(ctx)
	if err != nil {
		return snap, err
	}

	if snap.Status == order.Succeeded && snap.LastOrder != nil {
		if journalErr := h.journal(ctx, snap.LastOrder); journalErr != nil {
			h.logger.ErrorContext(ctx, "failed to journal placed order",
				"number", snap.LastOrder.Number(),
				"error", journalErr,
			)
		}
	}

	return snap, nil
}

func (h *SubmitOrderCommandHandler) journal(ctx context.Context, rec *order.Record) error {
	if h.uowFactory == nil {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderJournal().Add(ctx, rec); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
