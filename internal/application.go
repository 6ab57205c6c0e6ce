package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/pepone42/minesweeper/internal/config"
	"github.com/pepone42/minesweeper/internal/minefield"
	"github.com/pepone42/minesweeper/internal/repository"
	"github.com/pepone42/minesweeper/internal/service"
	"github.com/pepone42/minesweeper/internal/shell"
	"github.com/pepone42/minesweeper/transport/rest"
)

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	switch conf.Mode {
	case config.ModeHTTP:
		return runHTTP(ctx, logger, conf)
	default:
		return runShell(ctx, logger, conf)
	}
}

func runHTTP(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	gameRepo := repository.NewGameRepository()
	gameService := service.NewGameService(logger, gameRepo)
	server := rest.New(logger, gameService, conf.Board)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func runShell(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	board, err := minefield.New(conf.Board.Width, conf.Board.Height, conf.Board.Mines)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	rl, err := readline.New(shell.Prompt)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	var closeOnce sync.Once
	closeTerminal := func() {
		closeOnce.Do(func() {
			if closeErr := rl.Close(); closeErr != nil {
				log.Error("could not close terminal", "error", closeErr)
			}
		})
	}
	defer closeTerminal()

	// unblock a pending Readline when the context ends
	go func() {
		<-ctx.Done()
		closeTerminal()
	}()

	state, err := shell.New(logger, rl, rl.Stdout()).Play(ctx, board)
	if err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	log.Info("Game ended", "state", state, "revealed", board.Revealed())

	return nil
}
