package entity

import (
	"github.com/pepone42/minesweeper/internal/minefield"
	"github.com/pepone42/minesweeper/internal/render"
)

// Game is an identified minesweeper session.
type Game struct {
	ID    string
	Board *minefield.Board
}

// View is the public form of a game. Hidden cells are only ever sent as render.Hidden.
type View struct {
	ID       string          `json:"id"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Mines    int             `json:"mines"`
	Revealed int             `json:"revealed"`
	State    minefield.State `json:"state"`
	Rows     []string        `json:"rows"`
}

func NewGame(id string, board *minefield.Board) *Game {
	return &Game{
		ID:    id,
		Board: board,
	}
}

func (that *Game) IsFinished() bool {
	return that.Board.State().IsFinished()
}

func (that *Game) View() View {
	return View{
		ID:       that.ID,
		Width:    that.Board.Width(),
		Height:   that.Board.Height(),
		Mines:    that.Board.Mines(),
		Revealed: that.Board.Revealed(),
		State:    that.Board.State(),
		Rows:     render.Rows(that.Board),
	}
}
