package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/pepone42/minesweeper/internal/apperror"
	"github.com/pepone42/minesweeper/internal/entity"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// memGame keeps games in process memory only; nothing survives a restart.
type memGame struct {
	mu    sync.RWMutex
	games map[string]*entity.Game
}

func NewGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*entity.Game),
	}
}

func (that *memGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = game

	return nil
}

func (that *memGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return game, nil
}

func (that *memGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
