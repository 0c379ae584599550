package guard_test

import (
	"errors"
	"testing"

	"burger/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("Placement must be created via NewPlacement")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard carried by a value that is
// passed around by copy, the way commands are.
func TestConstructorGuardEmbedded(t *testing.T) {
	errCommandNotConstructed := errors.New("RemoveIngredientCommand must be created via its constructor")

	type removeCommand struct {
		placementID string
		guard       guard.ConstructorGuard
	}

	newRemoveCommand := func(id string) (removeCommand, error) {
		if id == "" {
			return removeCommand{}, errors.New("placement id is required")
		}
		return removeCommand{placementID: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction", func(t *testing.T) {
		cmd, err := newRemoveCommand("p-1")
		require.NoError(t, err)

		copied := cmd
		require.NoError(t, copied.guard.Validate(errCommandNotConstructed))
		assert.Equal(t, "p-1", copied.placementID)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var cmd removeCommand
		assert.Equal(t, errCommandNotConstructed, cmd.guard.Validate(errCommandNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 100 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}
	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
