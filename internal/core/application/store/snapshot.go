package store

import (
	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/domain/model/order"
)

// Snapshot is the read-only view of the store handed to the rendering layer.
// It is re-derived after every transition and shares no mutable state with the store.
type Snapshot struct {
	// Base is nil while the base slot is empty.
	Base *assembly.Placement

	// Fillings are the placed fillings in display and submit order.
	Fillings []assembly.Placement

	// Status is the submit workflow status.
	Status order.Status

	// IsSubmitting is true while the order endpoint call is in flight.
	IsSubmitting bool

	// LastError holds the failure description of the last submit; empty when absent.
	LastError string

	// LastOrder holds the last placed order until it is dismissed.
	LastOrder *order.Record
}

// IsEmpty reports whether nothing is placed.
func (s Snapshot) IsEmpty() bool {
	return s.Base == nil && len(s.Fillings) == 0
}
