package render

import (
	"bytes"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepone42/minesweeper/internal/grid"
	"github.com/pepone42/minesweeper/internal/minefield"
)

type fakeBoard struct {
	width, height int
	cells         []minefield.Cell
}

func (that *fakeBoard) Width() int  { return that.width }
func (that *fakeBoard) Height() int { return that.height }

func (that *fakeBoard) Cells() iter.Seq2[grid.Point, minefield.Cell] {
	return func(yield func(grid.Point, minefield.Cell) bool) {
		for i, cell := range that.cells {
			if !yield(grid.Point{X: i % that.width, Y: i / that.width}, cell) {
				return
			}
		}
	}
}

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestSymbol(t *testing.T) {
	t.Run("Hidden cells are opaque whatever they hold", func(t *testing.T) {
		assert.Equal(t, Hidden, Symbol(minefield.Cell{}))
		assert.Equal(t, Hidden, Symbol(minefield.Cell{Mine: true}))
		assert.Equal(t, Hidden, Symbol(minefield.Cell{Neighbors: 3}))
	})

	t.Run("Revealed cells", func(t *testing.T) {
		assert.Equal(t, Blank, Symbol(minefield.Cell{Revealed: true}))
		assert.Equal(t, "3", Symbol(minefield.Cell{Revealed: true, Neighbors: 3}))
		assert.Equal(t, "8", Symbol(minefield.Cell{Revealed: true, Neighbors: 8}))
		assert.Equal(t, Mine, Symbol(minefield.Cell{Revealed: true, Mine: true, Neighbors: 2}))
	})
}

func TestRows(t *testing.T) {
	// Given: a 3x2 board with a mix of cells
	board := &fakeBoard{width: 3, height: 2, cells: []minefield.Cell{
		{Revealed: true}, {Revealed: true, Neighbors: 1}, {},
		{Revealed: true, Mine: true}, {}, {Revealed: true, Neighbors: 2},
	}}

	// When: the rows are rendered
	rows := Rows(board)

	// Then: each row holds one symbol per cell
	assert.Equal(t, []string{" 1▩", "x▩2"}, rows)
}

func TestBoard(t *testing.T) {
	t.Run("Draws header and numbered rows", func(t *testing.T) {
		// Given: a 2x2 board with one revealed count
		board := &fakeBoard{width: 2, height: 2, cells: []minefield.Cell{
			{Revealed: true, Neighbors: 1}, {},
			{}, {},
		}}
		var buf bytes.Buffer

		// When: the board is drawn
		err := Board(&buf, board)
		require.NoError(t, err)

		// Then: the layout matches the terminal format
		expected := clearScreen + "    A B" +
			"\n000 1 ▩ " +
			"\n001 ▩ ▩ " +
			"\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Write errors are reported", func(t *testing.T) {
		board := &fakeBoard{width: 1, height: 1, cells: []minefield.Cell{{}}}

		err := Board(failingWriter{}, board)

		require.ErrorIs(t, err, errBrokenPipe)
	})

	t.Run("Draws a real board", func(t *testing.T) {
		board, err := minefield.New(4, 3, 0)
		require.NoError(t, err)
		require.Equal(t, minefield.Win, board.Attempt(0, 0))

		assert.Equal(t, []string{"    ", "    ", "    "}, Rows(board))
	})
}
