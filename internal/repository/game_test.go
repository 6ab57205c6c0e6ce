package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepone42/minesweeper/internal/apperror"
	"github.com/pepone42/minesweeper/internal/entity"
	"github.com/pepone42/minesweeper/internal/minefield"
)

func newGame(t *testing.T, id string) *entity.Game {
	t.Helper()

	board, err := minefield.New(4, 4, 2)
	require.NoError(t, err)

	return entity.NewGame(id, board)
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	gameRepo := NewGameRepository()

	// Given: a game with ID
	game := newGame(t, "123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)

	stored, err := gameRepo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.Same(t, game, stored)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewGameRepository()

		// Given: a stored game
		game := newGame(t, "123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewGameRepository()

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})

	t.Run("GetByID_ContextCanceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewGameRepository().GetByID(ctx, "123")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewGameRepository()

		// Given: a stored game
		game := newGame(t, "123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx := context.Background()
		gameRepo := NewGameRepository()

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	gameRepo := NewGameRepository()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := string(rune('a' + i))
			assert.NoError(t, gameRepo.CreateOrUpdate(ctx, smallGame(id)))
			_, err := gameRepo.GetByID(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func smallGame(id string) *entity.Game {
	board, _ := minefield.New(2, 2, 1)
	return entity.NewGame(id, board)
}
