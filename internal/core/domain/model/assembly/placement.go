package assembly

import (
	"errors"
	"strings"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

// ErrPlacementIsNotConstructed is returned when a Placement was not created through NewPlacement.
var ErrPlacementIsNotConstructed = errors.New("Placement must be created via NewPlacement constructor")

// Placement is one catalog ingredient placed into an assembly. The same
// ingredient placed twice yields two placements with distinct ids.
type Placement struct {
	id         string
	ingredient ingredient.Ingredient

	guard guard.ConstructorGuard
}

// NewPlacement binds a fresh placement id to a catalog ingredient.
func NewPlacement(id string, ing ingredient.Ingredient) (Placement, error) {
	if strings.TrimSpace(id) == "" {
		return Placement{}, errs.NewValueIsRequiredError("placementID")
	}
	if err := ing.Validate(); err != nil {
		return Placement{}, err
	}

	return Placement{
		id:         id,
		ingredient: ing,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the placement was created through NewPlacement.
func (p Placement) Validate() error {
	return p.guard.Validate(ErrPlacementIsNotConstructed)
}

// ID returns the placement identifier.
func (p Placement) ID() string {
	return p.id
}

// Ingredient returns the placed catalog descriptor.
func (p Placement) Ingredient() ingredient.Ingredient {
	return p.ingredient
}

// Kind is a shortcut for Ingredient().Kind().
func (p Placement) Kind() ingredient.Kind {
	return p.ingredient.Kind()
}
