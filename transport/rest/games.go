package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pepone42/minesweeper/internal/apperror"
	"github.com/pepone42/minesweeper/internal/entity"
)

var errMissingCoordinate = errors.New("x and y are required")

type createGameRequest struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Mines  *int `json:"mines"`
}

type attemptRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type errorResponse struct {
	Error string       `json:"error"`
	Game  *entity.View `json:"game,omitempty"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	// a zero size means the configured board; an explicit zero mine count is honored
	width, height, mines := req.Width, req.Height, that.defaults.Mines
	if width == 0 {
		width = that.defaults.Width
	}
	if height == 0 {
		height = that.defaults.Height
	}
	if req.Mines != nil {
		mines = *req.Mines
	}

	view, err := that.games.CreateGame(r.Context(), width, height, mines)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusCreated, view)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *Server) attempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	if req.X == nil || req.Y == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errMissingCoordinate.Error()})
		return
	}

	view, err := that.games.Attempt(r.Context(), r.PathValue("id"), *req.X, *req.Y)
	if err != nil {
		that.writeError(w, err, &view)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) writeError(w http.ResponseWriter, err error, view *entity.View) {
	switch {
	case errors.Is(err, apperror.ErrInvalidBoard):
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrGameFinished):
		that.writeJSON(w, http.StatusConflict, errorResponse{Error: apperror.ErrGameFinished.Error(), Game: view})
	default:
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
