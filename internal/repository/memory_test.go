package repository

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns a copy", func(t *testing.T) {
		gameRepo := NewInMemoryGameRepository()

		// Given: a stored game
		game := &entity.Game{ID: "123", Turn: entity.PlayerX}
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps mutating its own pointer
		game.Board[0][0] = entity.PlayerX

		// Then: the stored game is unaffected
		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Board[0][0])

		// And: mutating the returned game does not leak back either
		stored.Turn = entity.PlayerO
		again, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, again.Turn)
	})

	t.Run("Overwrites an existing game", func(t *testing.T) {
		gameRepo := NewInMemoryGameRepository()

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, &entity.Game{ID: "1", Turn: entity.PlayerX}))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, &entity.Game{ID: "1", Turn: entity.PlayerO}))

		stored, err := gameRepo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, stored.Turn)
	})

	t.Run("Missing game", func(t *testing.T) {
		gameRepo := NewInMemoryGameRepository()

		_, err := gameRepo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)

		err = gameRepo.DeleteByID(ctx, "nope")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Delete removes the game", func(t *testing.T) {
		gameRepo := NewInMemoryGameRepository()

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, &entity.Game{ID: "1"}))
		require.NoError(t, gameRepo.DeleteByID(ctx, "1"))

		_, err := gameRepo.GetByID(ctx, "1")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
