package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pepone42/minesweeper/internal/apperror"
	"github.com/pepone42/minesweeper/internal/entity"
	"github.com/pepone42/minesweeper/internal/minefield"
)

type GameService interface {
	CreateGame(ctx context.Context, width, height, mines int) (entity.View, error)
	GetGame(ctx context.Context, id string) (entity.View, error)
	Attempt(ctx context.Context, id string, x, y int) (entity.View, error)
	DeleteGame(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	logger *slog.Logger

	// mu serializes board access and creation; neither a board nor a rand.Rand is safe for concurrent use.
	mu       sync.Mutex
	gameRepo gameRepo
	options  []minefield.Option
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo, opts ...minefield.Option) GameService {
	return &gameService{
		logger:   logger.With("component", "game_service"),
		gameRepo: gameRepo,
		options:  opts,
	}
}

func (that *gameService) CreateGame(ctx context.Context, width, height, mines int) (entity.View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	board, err := minefield.New(width, height, mines, that.options...)
	if err != nil {
		return entity.View{}, fmt.Errorf("failed to create board: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), board)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return entity.View{}, fmt.Errorf("failed to store game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "width", width, "height", height, "mines", mines)

	return game.View(), nil
}

func (that *gameService) GetGame(ctx context.Context, id string) (entity.View, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return entity.View{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return game.View(), nil
}

func (that *gameService) Attempt(ctx context.Context, id string, x, y int) (entity.View, error) {
	log := that.logger.With("method", "Attempt", "gameID", id)

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return entity.View{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if game.IsFinished() {
		return game.View(), apperror.ErrGameFinished
	}

	state := game.Board.Attempt(x, y)
	log.Debug("attempt", "x", x, "y", y, "state", state)

	if state.IsFinished() {
		log.Info("game finished", "state", state, "revealed", game.Board.Revealed())
	}

	return game.View(), nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}
