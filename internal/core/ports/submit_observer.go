package ports

import (
	"time"

	"burger/internal/core/domain/model/order"
)

// SubmitObserver receives the lifecycle of every submit. Calls are made
// synchronously from the submitting goroutine and must not block.
type SubmitObserver interface {
	SubmitStarted(ingredientCount int)
	SubmitSucceeded(record *order.Record, elapsed time.Duration)
	SubmitFailed(err error, elapsed time.Duration)
	SubmitRejected(reason error)
}
