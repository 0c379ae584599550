// Package order provides the submission side of the constructor: the order
// record returned by the backend and the workflow status of a submission.
//
// The package includes:
//   - Record: the confirmation returned for a placed order (number, name, ingredients)
//   - Status: the submit workflow state machine
//
// Workflow:
//
//	Idle ──> Submitting ──┬──> Succeeded ──┐
//	  ^                   └──> Failed ─────┤
//	  └──────────── Dismiss ───────────────┘
//
// Submitting -> Submitting is the one transition callers must never request.
package order
