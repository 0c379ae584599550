package ingredient_test

import (
	"fmt"
	"testing"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Constants(t *testing.T) {
	assert.Equal(t, 0, int(ingredient.UnknownKind))
	assert.Equal(t, 1, int(ingredient.Base))
	assert.Equal(t, 2, int(ingredient.Filling))
}

func TestKindFromType(t *testing.T) {
	t.Run("should map catalog types", func(t *testing.T) {
		testCases := []struct {
			typ      string
			expected ingredient.Kind
		}{
			{ingredient.TypeBun, ingredient.Base},
			{ingredient.TypeMain, ingredient.Filling},
			{ingredient.TypeSauce, ingredient.Filling},
		}

		for _, tc := range testCases {
			t.Run(tc.typ, func(t *testing.T) {
				kind, err := ingredient.KindFromType(tc.typ)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, kind)
			})
		}
	})

	t.Run("should reject unknown types", func(t *testing.T) {
		for _, typ := range []string{"", "Bun", "cheese"} {
			kind, err := ingredient.KindFromType(typ)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Equal(t, ingredient.UnknownKind, kind)
		}
	})
}

func TestKind_Validate(t *testing.T) {
	require.NoError(t, ingredient.Base.Validate())
	require.NoError(t, ingredient.Filling.Validate())

	for _, kind := range []ingredient.Kind{ingredient.UnknownKind, ingredient.Kind(-1), ingredient.Kind(3)} {
		t.Run(fmt.Sprintf("should reject %d", int(kind)), func(t *testing.T) {
			err := kind.Validate()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid kind", int(kind)))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Base", ingredient.Base.String())
	assert.Equal(t, "Filling", ingredient.Filling.String())
	assert.Equal(t, "Unknown", ingredient.UnknownKind.String())
	assert.Equal(t, "Unknown", ingredient.Kind(42).String())
}
