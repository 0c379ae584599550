// Package testutil holds catalog fixtures shared by the test suites. The values
// mirror the production catalog the UI is exercised against.
package testutil

import (
	"testing"

	"burger/internal/core/domain/model/ingredient"

	"github.com/stretchr/testify/require"
)

const (
	CraterBunID      = "643d69a5c3f7b9001cfa093c"
	FluorescentBunID = "643d69a5c3f7b9001cfa093d"
	BioCutletID      = "643d69a5c3f7b9001cfa0941"
	SpicySauceID     = "643d69a5c3f7b9001cfa0942"
	MeteoriteSteakID = "643d69a5c3f7b9001cfa0940"
)

// CraterBun returns the "Краторная булка N-200i" bun.
func CraterBun(t testing.TB) ingredient.Ingredient {
	t.Helper()
	return mustIngredient(t, CraterBunID, "Краторная булка N-200i", ingredient.TypeBun, 1255,
		ingredient.Nutrition{Calories: 420, Proteins: 80, Fat: 24, Carbohydrates: 53})
}

// FluorescentBun returns the "Флюоресцентная булка R2-D3" bun.
func FluorescentBun(t testing.TB) ingredient.Ingredient {
	t.Helper()
	return mustIngredient(t, FluorescentBunID, "Флюоресцентная булка R2-D3", ingredient.TypeBun, 988,
		ingredient.Nutrition{Calories: 643, Proteins: 44, Fat: 26, Carbohydrates: 85})
}

// BioCutlet returns the "Биокотлета из марсианской Магнолии" main filling.
func BioCutlet(t testing.TB) ingredient.Ingredient {
	t.Helper()
	return mustIngredient(t, BioCutletID, "Биокотлета из марсианской Магнолии", ingredient.TypeMain, 424,
		ingredient.Nutrition{Calories: 4242, Proteins: 420, Fat: 142, Carbohydrates: 242})
}

// SpicySauce returns the "Соус Spicy-X" sauce filling.
func SpicySauce(t testing.TB) ingredient.Ingredient {
	t.Helper()
	return mustIngredient(t, SpicySauceID, "Соус Spicy-X", ingredient.TypeSauce, 90,
		ingredient.Nutrition{Calories: 30, Proteins: 30, Fat: 20, Carbohydrates: 40})
}

// MeteoriteSteak returns the "Говяжий метеорит (отбивная)" main filling.
func MeteoriteSteak(t testing.TB) ingredient.Ingredient {
	t.Helper()
	return mustIngredient(t, MeteoriteSteakID, "Говяжий метеорит (отбивная)", ingredient.TypeMain, 3000,
		ingredient.Nutrition{Calories: 2674, Proteins: 800, Fat: 800, Carbohydrates: 300})
}

// Catalog returns every fixture ingredient.
func Catalog(t testing.TB) []ingredient.Ingredient {
	t.Helper()
	return []ingredient.Ingredient{
		CraterBun(t), FluorescentBun(t), BioCutlet(t), SpicySauce(t), MeteoriteSteak(t),
	}
}

func mustIngredient(
	t testing.TB,
	id, name, typ string,
	price int,
	nutrition ingredient.Nutrition,
) ingredient.Ingredient {
	t.Helper()
	i, err := ingredient.NewIngredient(id, name, typ, price, nutrition, ingredient.Images{
		Default: "https://code.s3.yandex.net/react/code/" + id + ".png",
	})
	require.NoError(t, err)
	return i
}
