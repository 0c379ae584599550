// Package store implements the assembly store: the in-memory state of the
// burger under construction plus the submit-and-reset workflow.
//
// A Store is constructed explicitly and passed to whoever needs it; there is no
// package-level instance. Every synchronous transition (add, remove, move,
// dismiss) runs atomically under the store's mutex. Submit holds the mutex only
// to start and to settle the workflow; the order endpoint is called without it,
// so the assembly may still be edited while a submission is in flight. On
// success the assembly is cleared as it is at settlement time, together with
// publishing the order record.
//
// Caller obligations:
//   - Submit requires a base ingredient (ErrBaseIsRequired otherwise)
//   - Only one Submit may be in flight (ErrSubmissionInProgress otherwise);
//     UIs should disable their submit trigger while Snapshot().IsSubmitting is true
//
// Endpoint failures are never returned as errors; they surface as
// Snapshot().LastError with the assembly left exactly as it was.
package store
