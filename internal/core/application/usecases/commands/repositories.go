// Package commands contains the operations that change the constructor state.
// Every command is a typed value built by its constructor and executed by a
// dedicated handler; together they form the closed set of constructor actions.
package commands

import (
	"context"

	"burger/internal/core/application/store"
	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/domain/model/ingredient"
)

// Store abstractions used by command handlers. *store.Store satisfies all of them.
type (
	// IngredientPlacer places catalog ingredients into the assembly.
	IngredientPlacer interface {
		AddIngredient(ing ingredient.Ingredient) (assembly.Placement, error)
	}

	// IngredientRemover removes placed fillings.
	IngredientRemover interface {
		RemoveIngredient(placementID string) bool
	}

	// IngredientMover reorders placed fillings.
	IngredientMover interface {
		MoveUp(index int) bool
		MoveDown(index int) bool
	}

	// OrderSubmitter runs the submit workflow.
	OrderSubmitter interface {
		Submit(ctx context.Context) (store.Snapshot, error)
	}

	// OrderResultDismisser clears the last submit result.
	OrderResultDismisser interface {
		DismissOrderResult()
	}
)
