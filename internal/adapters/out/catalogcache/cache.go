// Package catalogcache keeps an in-memory copy of the ingredient catalog so
// that placing an ingredient never waits on the database.
package catalogcache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/core/ports"
	"burger/internal/pkg/errs"
)

// ErrCacheIsNotLoaded is returned by reads before the first successful Refresh.
var ErrCacheIsNotLoaded = errors.New("catalog cache is not loaded yet")

// Cache implements ports.CatalogReader over a snapshot of a catalog source.
//
// Example:
//
//	cache := catalogcache.New(repo)
//	if _, err := cache.Refresh(ctx); err != nil {
//	    return err
//	}
//	bun, err := cache.Get(ctx, "643d69a5c3f7b9001cfa093c")
type Cache struct {
	source ports.CatalogReader
	now    func() time.Time

	mu        sync.RWMutex
	all       []ingredient.Ingredient
	byID      map[string]ingredient.Ingredient
	loaded    bool
	refreshed time.Time
}

// New creates an empty cache over source.
func New(source ports.CatalogReader) *Cache {
	return &Cache{
		source: source,
		now:    time.Now,
	}
}

// NewFromIngredients creates a cache preloaded with a fixed catalog and no source.
func NewFromIngredients(ings []ingredient.Ingredient) *Cache {
	c := New(nil)
	c.replace(ings)
	return c
}

// Refresh reloads the whole catalog from the source. On error the previous
// snapshot stays in place. Duplicate ids keep the first entry. Returns the
// number of entries held after the load.
func (c *Cache) Refresh(ctx context.Context) (int, error) {
	if c.source == nil {
		return c.Len(), nil
	}

	all, err := c.source.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	c.replace(all)
	return c.Len(), nil
}

// Get returns the cached ingredient with the given source id.
func (c *Cache) Get(_ context.Context, sourceID string) (ingredient.Ingredient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return ingredient.Ingredient{}, ErrCacheIsNotLoaded
	}

	ing, ok := c.byID[strings.TrimSpace(sourceID)]
	if !ok {
		return ingredient.Ingredient{}, errs.NewObjectNotFoundError("ingredient", sourceID)
	}
	return ing, nil
}

// GetAll returns a copy of the cached catalog in source order.
func (c *Cache) GetAll(_ context.Context) ([]ingredient.Ingredient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, ErrCacheIsNotLoaded
	}

	out := make([]ingredient.Ingredient, len(c.all))
	copy(out, c.all)
	return out, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.all)
}

// RefreshedAt returns the time of the last successful load; zero before it.
func (c *Cache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.refreshed
}

func (c *Cache) replace(ings []ingredient.Ingredient) {
	byID := make(map[string]ingredient.Ingredient, len(ings))
	all := make([]ingredient.Ingredient, 0, len(ings))
	for _, ing := range ings {
		if _, dup := byID[ing.SourceID()]; dup {
			continue
		}
		byID[ing.SourceID()] = ing
		all = append(all, ing)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.all = all
	c.byID = byID
	c.loaded = true
	c.refreshed = c.now()
}
