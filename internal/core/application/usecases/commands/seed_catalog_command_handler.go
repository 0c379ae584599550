package commands

import (
	"context"
	"fmt"

	"burger/internal/core/ports"
)

// SeedCatalogCommandHandler writes a catalog in one transaction: either every
// ingredient is stored or none is.
type SeedCatalogCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewSeedCatalogCommandHandler creates the handler.
func NewSeedCatalogCommandHandler(uowFactory ports.UnitOfWorkFactory) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of ingredients written.
func (h *SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CatalogRepository()
	ings := cmd.Ingredients()
	for _, ing := range ings {
		if err := repo.Upsert(ctx, ing); err != nil {
			return 0, fmt.Errorf("upsert ingredient %s: %w", ing.SourceID(), err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(ings), nil
}
