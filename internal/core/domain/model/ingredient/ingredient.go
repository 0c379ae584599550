package ingredient

import (
	"errors"
	"fmt"
	"strings"

	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

// ErrIngredientIsNotConstructed is returned when an Ingredient was not created through NewIngredient.
var ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")

// Nutrition holds the per-serving display values shown next to an ingredient.
type Nutrition struct {
	Calories      int
	Proteins      int
	Fat           int
	Carbohydrates int
}

// Images holds the display image URLs of an ingredient.
type Images struct {
	Default string
	Mobile  string
	Large   string
}

// Ingredient is an immutable catalog descriptor. Its SourceID identifies the
// catalog entry; placing it into an assembly gives it a separate placement id.
//
// Invariants:
//   - SourceID and Name are non-empty
//   - Type is one of bun, main, sauce and Kind is derived from it
//   - Price and nutrition values are not negative
type Ingredient struct {
	sourceID  string
	name      string
	typ       string
	kind      Kind
	price     int
	nutrition Nutrition
	images    Images

	guard guard.ConstructorGuard
}

// NewIngredient validates and builds a catalog descriptor.
//
// Example:
//
//	bun, err := ingredient.NewIngredient("643d69a5c3f7b9001cfa093c", "Краторная булка N-200i", "bun", 1255,
//	    ingredient.Nutrition{Calories: 420, Proteins: 80, Fat: 24, Carbohydrates: 53},
//	    ingredient.Images{Default: "https://code.s3.yandex.net/react/code/bun-02.png"})
func NewIngredient(sourceID, name, typ string, price int, nutrition Nutrition, images Images) (Ingredient, error) {
	i := Ingredient{
		nutrition: nutrition,
		images:    images,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setSourceID(sourceID),
		i.setName(name),
		i.setType(typ),
		i.setPrice(price),
		validateNutrition(nutrition),
	); err != nil {
		return Ingredient{}, err
	}

	return i, nil
}

// Validate ensures the ingredient was created through NewIngredient.
func (i Ingredient) Validate() error {
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// SourceID returns the catalog identifier.
func (i Ingredient) SourceID() string {
	return i.sourceID
}

// Name returns the display name.
func (i Ingredient) Name() string {
	return i.name
}

// Type returns the catalog type (bun, main or sauce).
func (i Ingredient) Type() string {
	return i.typ
}

// Kind returns the structural kind derived from the type.
func (i Ingredient) Kind() Kind {
	return i.kind
}

// Price returns the display price.
func (i Ingredient) Price() int {
	return i.price
}

// Nutrition returns the nutrition display values.
func (i Ingredient) Nutrition() Nutrition {
	return i.nutrition
}

// Images returns the display image URLs.
func (i Ingredient) Images() Images {
	return i.images
}

// IsBase reports whether the ingredient belongs in the base slot.
func (i Ingredient) IsBase() bool {
	return i.kind == Base
}

func (i *Ingredient) setSourceID(sourceID string) error {
	sourceID = strings.TrimSpace(sourceID)
	if sourceID == "" {
		return errs.NewValueIsRequiredError("sourceID")
	}
	i.sourceID = sourceID
	return nil
}

func (i *Ingredient) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Ingredient) setType(typ string) error {
	kind, err := KindFromType(typ)
	if err != nil {
		return err
	}
	i.typ = typ
	i.kind = kind
	return nil
}

func (i *Ingredient) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func validateNutrition(n Nutrition) error {
	for name, v := range map[string]int{
		"calories":      n.Calories,
		"proteins":      n.Proteins,
		"fat":           n.Fat,
		"carbohydrates": n.Carbohydrates,
	} {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%d is negative", v))
		}
	}
	return nil
}
