package ingredient

import (
	"fmt"

	"burger/internal/pkg/errs"
)

// Kind is the structural role an ingredient plays in an assembly.
type Kind int

const (
	// UnknownKind catches uninitialized Kind values.
	UnknownKind Kind = iota

	// Base ingredients occupy the single base slot; placing one replaces the previous.
	Base

	// Filling ingredients are appended to the ordered fillings sequence.
	Filling
)

// Catalog types as served by the backend.
const (
	TypeBun   = "bun"
	TypeMain  = "main"
	TypeSauce = "sauce"
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		Base:        "Base",
		Filling:     "Filling",
	}
}

// KindFromType maps a catalog type onto its structural kind.
//
// Example:
//
//	kind, err := ingredient.KindFromType("bun") // Base
//	kind, err = ingredient.KindFromType("sauce") // Filling
func KindFromType(t string) (Kind, error) {
	switch t {
	case TypeBun:
		return Base, nil
	case TypeMain, TypeSauce:
		return Filling, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
			"type is invalid",
			fmt.Errorf("%q is not a known ingredient type", t),
		)
	}
}

// Validate rejects UnknownKind and out-of-range values.
func (k Kind) Validate() error {
	if k != Base && k != Filling {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String implements fmt.Stringer; invalid values render as "Unknown".
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
