package render

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/pepone42/minesweeper/internal/grid"
	"github.com/pepone42/minesweeper/internal/minefield"
)

const (
	Hidden = "▩"
	Blank  = " "
	Mine   = "x"

	// ColumnNames are the letters used to address columns.
	ColumnNames = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	clearScreen = "\x1b[2J"
)

// Viewer is the read-only board surface a renderer needs.
type Viewer interface {
	Width() int
	Height() int
	Cells() iter.Seq2[grid.Point, minefield.Cell]
}

// Symbol - visual form of a single cell.
func Symbol(cell minefield.Cell) string {
	switch {
	case !cell.Revealed:
		return Hidden
	case cell.Mine:
		return Mine
	case cell.Neighbors == 0:
		return Blank
	default:
		return strconv.Itoa(cell.Neighbors)
	}
}

// Rows returns one string of symbols per board row.
func Rows(board Viewer) []string {
	rows := make([]string, board.Height())

	var line strings.Builder
	for p, cell := range board.Cells() {
		line.WriteString(Symbol(cell))
		if p.X == board.Width()-1 {
			rows[p.Y] = line.String()
			line.Reset()
		}
	}

	return rows
}

// Board draws the board for a terminal: clear screen, lettered header, numbered rows.
func Board(w io.Writer, board Viewer) error {
	var out strings.Builder

	out.WriteString(clearScreen)
	out.WriteString("   ")
	for i := range min(board.Width(), len(ColumnNames)) {
		out.WriteByte(' ')
		out.WriteByte(ColumnNames[i])
	}

	for p, cell := range board.Cells() {
		if p.X == 0 {
			fmt.Fprintf(&out, "\n%03d ", p.Y)
		}
		out.WriteString(Symbol(cell))
		out.WriteByte(' ')
	}
	out.WriteByte('\n')

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("failed to draw board: %w", err)
	}

	return nil
}
