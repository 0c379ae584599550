// Package ports defines the contracts between the constructor core and its
// infrastructure: the order endpoint, the ingredient catalog, the order journal
// and the transaction boundary around them.
package ports

import (
	"context"

	"burger/internal/core/domain/model/ingredient"
)

// CatalogReader resolves catalog descriptors by their source id.
type CatalogReader interface {
	// Get returns the ingredient with the given source id or an
	// errs.ObjectNotFoundError when the catalog has no such entry.
	Get(ctx context.Context, sourceID string) (ingredient.Ingredient, error)

	// GetAll returns the whole catalog in a stable order.
	GetAll(ctx context.Context) ([]ingredient.Ingredient, error)
}

// CatalogRepository is the writable catalog store used for seeding.
type CatalogRepository interface {
	CatalogReader

	// Upsert inserts the ingredient or overwrites the entry with the same source id.
	Upsert(ctx context.Context, ing ingredient.Ingredient) error
}
