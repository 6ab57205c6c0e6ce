package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pepone42/minesweeper/internal/repository"
	"github.com/pepone42/minesweeper/internal/service"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Games   repository.GameRepository
	Service service.GameService
}

// New - wires an in-memory repository and a game service for a test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	games := repository.NewGameRepository()

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Games:   games,
		Service: service.NewGameService(logger, games),
	}
}
