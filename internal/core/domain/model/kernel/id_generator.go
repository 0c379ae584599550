package kernel

import (
	"strconv"
	"sync/atomic"
)

// IDGenerator produces opaque tokens that are unique for the lifetime of the process.
// The assembly store calls it once per placement.
type IDGenerator func() string

// NewUUIDGenerator returns a generator backed by random version 4 UUIDs.
func NewUUIDGenerator() IDGenerator {
	return func() string {
		return NewUUID().String()
	}
}

// NewSequentialGenerator returns a deterministic generator yielding
// "<prefix>-1", "<prefix>-2", and so on. It is safe for concurrent use.
//
// Example:
//
//	next := kernel.NewSequentialGenerator("placement")
//	next() // "placement-1"
//	next() // "placement-2"
func NewSequentialGenerator(prefix string) IDGenerator {
	var counter atomic.Uint64
	return func() string {
		return prefix + "-" + strconv.FormatUint(counter.Add(1), 10)
	}
}
