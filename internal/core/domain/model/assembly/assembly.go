package assembly

import "slices"

// Assembly is the burger under construction.
//
// Example:
//
//	a := assembly.New()
//	_ = a.Add(bunPlacement)    // base slot
//	_ = a.Add(cutletPlacement) // fillings[0]
//	_ = a.Add(saucePlacement)  // fillings[1]
//	a.MoveUp(1)                // fillings: sauce, cutlet
//	a.IngredientIDs()          // bun, sauce, cutlet source ids
type Assembly struct {
	base     *Placement
	fillings []Placement
}

// New returns an empty assembly.
func New() *Assembly {
	return &Assembly{fillings: make([]Placement, 0)}
}

// Add places p into the base slot when it is a base, replacing and discarding
// any previous base, or appends it to the fillings otherwise. The only error is
// an unconstructed placement.
func (a *Assembly) Add(p Placement) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.ingredient.IsBase() {
		a.base = &p
		return nil
	}

	a.fillings = append(a.fillings, p)
	return nil
}

// Remove deletes the filling with the given placement id, keeping the relative
// order of the rest. The base slot is never touched. Reports whether anything was removed.
func (a *Assembly) Remove(placementID string) bool {
	i := slices.IndexFunc(a.fillings, func(p Placement) bool {
		return p.id == placementID
	})
	if i < 0 {
		return false
	}

	a.fillings = slices.Delete(a.fillings, i, i+1)
	return true
}

// MoveUp swaps the filling at index with its predecessor. Index 0 and
// out-of-range indices are no-ops. Reports whether the order changed.
func (a *Assembly) MoveUp(index int) bool {
	if index <= 0 || index >= len(a.fillings) {
		return false
	}

	a.fillings[index-1], a.fillings[index] = a.fillings[index], a.fillings[index-1]
	return true
}

// MoveDown swaps the filling at index with its successor. The last index and
// out-of-range indices are no-ops. Reports whether the order changed.
func (a *Assembly) MoveDown(index int) bool {
	if index < 0 || index >= len(a.fillings)-1 {
		return false
	}

	a.fillings[index], a.fillings[index+1] = a.fillings[index+1], a.fillings[index]
	return true
}

// Reset empties the base slot and the fillings.
func (a *Assembly) Reset() {
	a.base = nil
	a.fillings = make([]Placement, 0)
}

// Base returns the base placement, if any.
func (a *Assembly) Base() (Placement, bool) {
	if a.base == nil {
		return Placement{}, false
	}
	return *a.base, true
}

// HasBase reports whether the base slot is occupied.
func (a *Assembly) HasBase() bool {
	return a.base != nil
}

// Fillings returns a copy of the ordered fillings.
func (a *Assembly) Fillings() []Placement {
	return slices.Clone(a.fillings)
}

// Len returns the number of fillings.
func (a *Assembly) Len() int {
	return len(a.fillings)
}

// IsEmpty reports whether neither a base nor any filling is placed.
func (a *Assembly) IsEmpty() bool {
	return a.base == nil && len(a.fillings) == 0
}

// IngredientIDs returns the catalog source ids in wire order: the base first
// when present, then the fillings in their current order.
func (a *Assembly) IngredientIDs() []string {
	ids := make([]string, 0, len(a.fillings)+1)
	if a.base != nil {
		ids = append(ids, a.base.ingredient.SourceID())
	}
	for _, p := range a.fillings {
		ids = append(ids, p.ingredient.SourceID())
	}
	return ids
}
