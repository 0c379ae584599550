package commands_test

import (
	"testing"

	"burger/internal/core/application/usecases/commands"
	"burger/internal/pkg/errs"
	"burger/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveIngredientCommandHandler_Handle(t *testing.T) {
	s := newTestStore(t, noGateway(t))
	_, err := s.AddIngredient(testutil.BioCutlet(t))
	require.NoError(t, err)
	h := commands.NewRemoveIngredientCommandHandler(s)

	t.Run("should ignore unknown placement", func(t *testing.T) {
		cmd, err := commands.NewRemoveIngredientCommand("p-42")
		require.NoError(t, err)

		removed, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.False(t, removed)
		assert.Len(t, s.Snapshot().Fillings, 1)
	})

	t.Run("should remove placed filling", func(t *testing.T) {
		cmd, err := commands.NewRemoveIngredientCommand("p-1")
		require.NoError(t, err)

		removed, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, s.Snapshot().Fillings)
	})

	t.Run("should require placement id", func(t *testing.T) {
		_, err := commands.NewRemoveIngredientCommand("")

		require.ErrorIs(t, err, commands.ErrPlacementIDIsRequired)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		_, err := h.Handle(t.Context(), commands.RemoveIngredientCommand{})

		require.ErrorIs(t, err, commands.ErrRemoveIngredientCommandIsNotConstructed)
	})
}

func TestDirectionFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    commands.Direction
		wantErr bool
	}{
		{in: "up", want: commands.Up},
		{in: "DOWN", want: commands.Down},
		{in: " Up ", want: commands.Up},
		{in: "left", want: commands.UnknownDirection, wantErr: true},
		{in: "", want: commands.UnknownDirection, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := commands.DirectionFromString(tt.in)

			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewMoveIngredientCommand(t *testing.T) {
	t.Run("should keep index and direction", func(t *testing.T) {
		cmd, err := commands.NewMoveIngredientCommand(3, commands.Down)

		require.NoError(t, err)
		assert.Equal(t, 3, cmd.Index())
		assert.Equal(t, commands.Down, cmd.Direction())
		assert.Equal(t, "down", cmd.Direction().String())
	})

	t.Run("should reject unknown direction", func(t *testing.T) {
		_, err := commands.NewMoveIngredientCommand(0, commands.UnknownDirection)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoveIngredientCommandHandler_Handle(t *testing.T) {
	s := newTestStore(t, noGateway(t))
	for range 3 {
		_, err := s.AddIngredient(testutil.SpicySauce(t))
		require.NoError(t, err)
	}
	h := commands.NewMoveIngredientCommandHandler(s)

	order := func() []string {
		var ids []string
		for _, p := range s.Snapshot().Fillings {
			ids = append(ids, p.ID())
		}
		return ids
	}

	t.Run("should move up", func(t *testing.T) {
		cmd, _ := commands.NewMoveIngredientCommand(2, commands.Up)

		moved, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, moved)
		assert.Equal(t, []string{"p-1", "p-3", "p-2"}, order())
	})

	t.Run("should move down", func(t *testing.T) {
		cmd, _ := commands.NewMoveIngredientCommand(0, commands.Down)

		moved, err := h.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.True(t, moved)
		assert.Equal(t, []string{"p-3", "p-1", "p-2"}, order())
	})

	t.Run("should ignore boundary moves", func(t *testing.T) {
		up, _ := commands.NewMoveIngredientCommand(0, commands.Up)
		down, _ := commands.NewMoveIngredientCommand(2, commands.Down)

		movedUp, err := h.Handle(t.Context(), up)
		require.NoError(t, err)
		movedDown, err := h.Handle(t.Context(), down)
		require.NoError(t, err)

		assert.False(t, movedUp)
		assert.False(t, movedDown)
		assert.Equal(t, []string{"p-3", "p-1", "p-2"}, order())
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		_, err := h.Handle(t.Context(), commands.MoveIngredientCommand{})

		require.ErrorIs(t, err, commands.ErrMoveIngredientCommandIsNotConstructed)
	})
}

func TestDismissOrderResultCommandHandler_Handle(t *testing.T) {
	s := newTestStore(t, noGateway(t))
	h := commands.NewDismissOrderResultCommandHandler(s)

	require.NoError(t, h.Handle(t.Context(), commands.NewDismissOrderResultCommand()))
	require.NoError(t, h.Handle(t.Context(), commands.NewDismissOrderResultCommand()))
	require.ErrorIs(t, h.Handle(t.Context(), commands.DismissOrderResultCommand{}),
		commands.ErrDismissOrderResultCommandIsNotConstructed)
}
