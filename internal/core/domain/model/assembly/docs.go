// Package assembly provides the burger under construction: one optional base
// placement and an ordered sequence of filling placements.
//
// Key rules:
//   - At most one base exists; adding a base replaces the previous one
//   - Base placements never appear among the fillings
//   - Filling order is meaningful and user-reorderable
//   - Removing or moving with an unknown id or an out-of-range index is a no-op
//
// The Assembly type is not safe for concurrent use; the store serializes access.
package assembly
