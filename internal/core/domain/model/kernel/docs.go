// Package kernel provides the primitives shared by the constructor's domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - IDGenerator: the injectable source of placement identifiers, with a random
//     UUID-backed implementation for production and a sequential one for tests
//
// Placement identifiers are produced through an IDGenerator rather than by calling
// a package-level function so that the assembly store stays deterministic under test.
package kernel
