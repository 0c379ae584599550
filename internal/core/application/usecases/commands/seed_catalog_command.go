package commands

import (
	"errors"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/pkg/guard"
)

var (
	ErrSeedCatalogCommandIsNotConstructed = errors.New(
		"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
	)
	ErrIngredientsAreRequired = errors.New("at least one ingredient is required")
)

// SeedCatalogCommand asks to write ingredients into the catalog storage,
// overwriting entries with the same source id.
type SeedCatalogCommand struct { //nolint:recvcheck //using for validation
	ingredients []ingredient.Ingredient

	guard guard.ConstructorGuard
}

// NewSeedCatalogCommand creates the command. Every ingredient must have been
// built by ingredient.NewIngredient.
func NewSeedCatalogCommand(ingredients []ingredient.Ingredient) (SeedCatalogCommand, error) {
	cmd := SeedCatalogCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIngredients(ingredients); err != nil {
		return SeedCatalogCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}

// Ingredients returns a copy of the ingredients to write.
func (c SeedCatalogCommand) Ingredients() []ingredient.Ingredient {
	out := make([]ingredient.Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

func (c *SeedCatalogCommand) setIngredients(ings []ingredient.Ingredient) error {
	if len(ings) == 0 {
		return ErrIngredientsAreRequired
	}

	var errs []error
	for _, ing := range ings {
		errs = append(errs, ing.Validate())
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	c.ingredients = make([]ingredient.Ingredient, len(ings))
	copy(c.ingredients, ings)
	return nil
}
