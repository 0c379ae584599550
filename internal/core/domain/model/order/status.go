package order

import (
	"errors"
	"fmt"

	"burger/internal/pkg/errs"
)

// ErrSubmissionInProgress is returned when a submit is requested while another one is in flight.
var ErrSubmissionInProgress = errors.New("order submission is already in progress")

// Status is the lifecycle state of an order submission.
type Status int

const (
	// UnknownStatus catches uninitialized Status values.
	UnknownStatus Status = iota

	// Idle means nothing is in flight and no result is displayed.
	Idle

	// Submitting means the order endpoint has been called and has not settled.
	Submitting

	// Succeeded means the last submission returned an order record.
	Succeeded

	// Failed means the last submission returned an error.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Idle:          "Idle",
		Submitting:    "Submitting",
		Succeeded:     "Succeeded",
		Failed:        "Failed",
	}
}

// Validate rejects UnknownStatus and out-of-range values.
func (s Status) Validate() error {
	if s < Idle || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettled reports whether the last submission has produced a result.
func (s Status) IsSettled() bool {
	return s == Succeeded || s == Failed
}

// Submit transitions to Submitting from Idle, Succeeded or Failed.
// Submitting -> Submitting returns ErrSubmissionInProgress.
func (s Status) Submit() (Status, error) {
	if s == Submitting {
		return s, ErrSubmissionInProgress
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return Submitting, nil
}

// Succeed transitions Submitting -> Succeeded.
func (s Status) Succeed() (Status, error) {
	if s != Submitting {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to succeed", s.String()),
		)
	}
	return Succeeded, nil
}

// Fail transitions Submitting -> Failed.
func (s Status) Fail() (Status, error) {
	if s != Submitting {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}
	return Failed, nil
}

// Dismiss returns settled statuses to Idle. Idle stays Idle and an in-flight
// Submitting is left as is, so Dismiss is safe to call at any time.
func (s Status) Dismiss() (Status, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if s == Submitting {
		return s, nil
	}
	return Idle, nil
}
