package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/core/domain/model/order"
	"burger/internal/core/ports"
)

var (
	// ErrGatewayIsRequired is returned by New without an order gateway.
	ErrGatewayIsRequired = errors.New("order gateway is required")

	// ErrBaseIsRequired is returned by Submit when the base slot is empty.
	ErrBaseIsRequired = errors.New("a base ingredient is required to place an order")

	// ErrSubmissionInProgress is returned by Submit while another submit is in flight.
	ErrSubmissionInProgress = order.ErrSubmissionInProgress

	errNoOrderReturned = errors.New("order endpoint returned no order")
)

const defaultFailureMessage = "order submission failed"

// Store holds the burger under construction and the submit workflow status.
//
// Example:
//
//	s, err := store.New(gateway, store.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	_, _ = s.AddIngredient(bun)
//	_, _ = s.AddIngredient(cutlet)
//	snap, err := s.Submit(ctx)
//	if err != nil {
//	    // precondition refused, nothing was sent
//	}
//	if snap.LastOrder != nil {
//	    fmt.Println(snap.LastOrder.Number())
//	}
type Store struct {
	mu        sync.Mutex
	gateway   ports.OrderGateway
	nextID    kernel.IDGenerator
	logger    *slog.Logger
	observers []ports.SubmitObserver

	assembly  *assembly.Assembly
	status    order.Status
	lastError string
	lastOrder *order.Record
}

// New creates an empty store bound to the order gateway.
func New(gateway ports.OrderGateway, opts ...Option) (*Store, error) {
	if gateway == nil {
		return nil, ErrGatewayIsRequired
	}

	s := &Store{
		gateway:  gateway,
		nextID:   kernel.NewUUIDGenerator(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		assembly: assembly.New(),
		status:   order.Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "assembly_store")

	return s, nil
}

// AddIngredient places ing with a fresh placement id. A base replaces the
// current base; a filling is appended after the existing fillings. Adding the
// same ingredient twice yields two distinct placements. The only error is an
// ingredient that was not built by ingredient.NewIngredient.
func (s *Store) AddIngredient(ing ingredient.Ingredient) (assembly.Placement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := assembly.NewPlacement(s.nextID(), ing)
	if err != nil {
		return assembly.Placement{}, err
	}
	if err = s.assembly.Add(p); err != nil {
		return assembly.Placement{}, err
	}

	s.logger.Debug("ingredient placed",
		"placement_id", p.ID(),
		"source_id", ing.SourceID(),
		"kind", ing.Kind().String(),
		"fillings", s.assembly.Len(),
	)
	return p, nil
}

// RemoveIngredient removes the filling with the given placement id. Unknown
// ids and the base placement are ignored. Reports whether a filling was removed.
func (s *Store) RemoveIngredient(placementID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.assembly.Remove(placementID)
	if removed {
		s.logger.Debug("ingredient removed", "placement_id", placementID, "fillings", s.assembly.Len())
	}
	return removed
}

// MoveUp swaps the filling at index with its predecessor. Boundary and
// out-of-range indices are no-ops. Reports whether the order changed.
func (s *Store) MoveUp(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.assembly.MoveUp(index)
}

// MoveDown swaps the filling at index with its successor. Boundary and
// out-of-range indices are no-ops. Reports whether the order changed.
func (s *Store) MoveDown(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.assembly.MoveDown(index)
}

// DismissOrderResult clears the last order and the last error. It is idempotent
// and does not affect a submission in flight.
func (s *Store) DismissOrderResult() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.status.Dismiss()
	if err != nil {
		s.logger.Error("dismiss from invalid status", "status", s.status.String(), "error", err)
		next = order.Idle
	}
	if s.status.IsSettled() {
		s.logger.Debug("order result dismissed", "status", s.status.String())
	}
	s.status = next
	s.lastOrder = nil
	s.lastError = ""
}

// Snapshot returns the current observable state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Submit sends the current assembly to the order endpoint and waits for it to settle.
//
// The ingredient id list is taken when Submit is called. While the call is in
// flight the assembly may still change; on success whatever is placed at that
// moment is cleared together with publishing the order record. On failure the
// error message becomes LastError and the assembly is untouched.
//
// The returned error is non-nil only when the submit was refused before
// anything was sent: ErrBaseIsRequired or ErrSubmissionInProgress. The
// returned Snapshot is the state right after settlement (or refusal).
//
// The endpoint call is detached from ctx cancellation: once issued it runs to
// completion and the store always settles.
func (s *Store) Submit(ctx context.Context) (Snapshot, error) {
	ids, err := s.beginSubmit()
	if err != nil {
		s.notifyRejected(err)
		return s.Snapshot(), err
	}

	s.logger.InfoContext(ctx, "submitting order", "ingredients", len(ids))
	s.notifyStarted(len(ids))

	started := time.Now()
	rec, err := s.placeOrder(context.WithoutCancel(ctx), ids)
	elapsed := time.Since(started)

	if err != nil {
		snap := s.settleFailure(err)
		s.logger.WarnContext(ctx, "order submission failed", "error", err, "elapsed", elapsed)
		s.notifyFailed(err, elapsed)
		return snap, nil
	}

	snap := s.settleSuccess(rec)
	s.logger.InfoContext(ctx, "order placed", "number", rec.Number(), "elapsed", elapsed)
	s.notifySucceeded(rec, elapsed)
	return snap, nil
}

func (s *Store) beginSubmit() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == order.Submitting {
		return nil, ErrSubmissionInProgress
	}
	if !s.assembly.HasBase() {
		return nil, ErrBaseIsRequired
	}

	next, err := s.status.Submit()
	if err != nil {
		return nil, err
	}

	s.status = next
	s.lastError = ""
	return s.assembly.IngredientIDs(), nil
}

func (s *Store) settleSuccess(rec *order.Record) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = s.transition(s.status.Succeed, order.Succeeded)
	s.lastError = ""
	s.lastOrder = rec
	s.assembly.Reset()

	return s.snapshot()
}

func (s *Store) settleFailure(err error) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = s.transition(s.status.Fail, order.Failed)
	s.lastError = describe(err)

	return s.snapshot()
}

// transition applies a settle transition. Only one submit can be in flight, so
// the status is always Submitting here; fallback covers a broken invariant.
func (s *Store) transition(next func() (order.Status, error), fallback order.Status) order.Status {
	status, err := next()
	if err != nil {
		s.logger.Error("unexpected workflow status at settlement", "status", s.status.String(), "error", err)
		return fallback
	}
	return status
}

// placeOrder calls the gateway and converts panics and empty results into errors
// so that nothing escapes the workflow boundary.
func (s *Store) placeOrder(ctx context.Context, ids []string) (rec *order.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = fmt.Errorf("order endpoint panicked: %v", r)
		}
	}()

	rec, err = s.gateway.PlaceOrder(ctx, ids)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errNoOrderReturned
	}
	if err = rec.Validate(); err != nil {
		return nil, err
	}

	return rec.WithIngredientIDs(ids), nil
}

func (s *Store) snapshot() Snapshot {
	snap := Snapshot{
		Fillings:     s.assembly.Fillings(),
		Status:       s.status,
		IsSubmitting: s.status == order.Submitting,
		LastError:    s.lastError,
		LastOrder:    s.lastOrder,
	}
	if base, ok := s.assembly.Base(); ok {
		snap.Base = &base
	}
	return snap
}

func (s *Store) notifyStarted(count int) {
	for _, o := range s.observers {
		o.SubmitStarted(count)
	}
}

func (s *Store) notifySucceeded(rec *order.Record, elapsed time.Duration) {
	for _, o := range s.observers {
		o.SubmitSucceeded(rec, elapsed)
	}
}

func (s *Store) notifyFailed(err error, elapsed time.Duration) {
	for _, o := range s.observers {
		o.SubmitFailed(err, elapsed)
	}
}

func (s *Store) notifyRejected(reason error) {
	for _, o := range s.observers {
		o.SubmitRejected(reason)
	}
}

func describe(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return defaultFailureMessage
}
