package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pepone42/minesweeper/internal/config"
	"github.com/pepone42/minesweeper/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameService interface {
	CreateGame(ctx context.Context, width, height, mines int) (entity.View, error)
	GetGame(ctx context.Context, id string) (entity.View, error)
	Attempt(ctx context.Context, id string, x, y int) (entity.View, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger   *slog.Logger
	games    gameService
	defaults config.Board
}

func New(logger *slog.Logger, games gameService, defaults config.Board) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		games:    games,
		defaults: defaults,
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("POST /games", that.createGame)
	mux.HandleFunc("GET /games/{id}", that.getGame)
	mux.HandleFunc("DELETE /games/{id}", that.deleteGame)
	mux.HandleFunc("POST /games/{id}/attempt", that.attempt)

	return mux
}

// Start - serves HTTP until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
