// Package queries contains the read models of the constructor service:
// the current constructor state, the ingredient catalog and the journal of
// placed orders. Queries never change state.
package queries
