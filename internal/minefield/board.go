package minefield

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/pepone42/minesweeper/internal/apperror"
	"github.com/pepone42/minesweeper/internal/grid"
)

const (
	// MaxSide keeps every coordinate inside the 0..255 input range.
	MaxSide = 256

	maxCoord = 255
)

var neighborOffsets = [8]grid.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

type Board struct {
	grid     *grid.Grid[Cell]
	mines    int
	revealed int
	state    State
}

type options struct {
	rng *rand.Rand
}

type Option func(*options)

// WithRand sets the random source used to lay out the mines.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// New - creates a board with exactly mines mines placed uniformly at random.
func New(width, height, mines int, opts ...Option) (*Board, error) {
	if width < 1 || width > MaxSide || height < 1 || height > MaxSide {
		return nil, fmt.Errorf("%w: size %dx%d must be within 1..%d", apperror.ErrInvalidBoard, width, height, MaxSide)
	}

	if mines < 0 || mines > width*height {
		return nil, fmt.Errorf("%w: %d mines do not fit a %dx%d board", apperror.ErrInvalidBoard, mines, width, height)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // not a security boundary
	}

	cells, err := grid.New[Cell](width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	// mines go to the first linear slots, the shuffle then makes every layout equally likely
	for i := range mines {
		x, y := cells.IndexToCoord(i)
		cells.Ptr(x, y).Mine = true
	}
	cells.Shuffle(o.rng)

	board := &Board{
		grid:  cells,
		mines: mines,
		state: Continue,
	}
	board.countNeighbors()

	return board, nil
}

func (that *Board) Width() int {
	return that.grid.Width()
}

func (that *Board) Height() int {
	return that.grid.Height()
}

func (that *Board) Mines() int {
	return that.mines
}

// Revealed - number of safe cells revealed so far.
func (that *Board) Revealed() int {
	return that.revealed
}

// Remaining - number of safe cells still hidden.
func (that *Board) Remaining() int {
	return that.grid.Len() - that.mines - that.revealed
}

func (that *Board) State() State {
	return that.state
}

// Valid reports whether (x, y) fits the input range and lies on the board.
func (that *Board) Valid(x, y int) bool {
	return x >= 0 && y >= 0 && x <= maxCoord && y <= maxCoord && that.grid.InBounds(x, y)
}

// Cell returns a copy of the cell at (x, y).
func (that *Board) Cell(x, y int) (Cell, bool) {
	if !that.Valid(x, y) {
		return Cell{}, false
	}

	return that.grid.At(x, y), true
}

// Cells yields copies of every cell in row-major order.
func (that *Board) Cells() iter.Seq2[grid.Point, Cell] {
	return func(yield func(grid.Point, Cell) bool) {
		for i, cell := range that.grid.All() {
			x, y := that.grid.IndexToCoord(i)
			if !yield(grid.Point{X: x, Y: y}, cell) {
				return
			}
		}
	}
}

// Attempt reveals (x, y) and evaluates the game. Invalid coordinates are ignored.
func (that *Board) Attempt(x, y int) State {
	if that.state.IsFinished() || !that.Valid(x, y) {
		return that.state
	}

	that.Reveal(x, y)

	switch {
	case that.grid.At(x, y).Mine:
		that.revealMines()
		that.state = GameOver
	case that.mines+that.revealed == that.grid.Len():
		that.revealMines()
		that.state = Win
	}

	return that.state
}

// Reveal uncovers (x, y) and cascades through connected zero-count cells.
// Revealing an invalid or already revealed cell does nothing.
func (that *Board) Reveal(x, y int) {
	if !that.Valid(x, y) {
		return
	}

	stack := []grid.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := that.grid.Ptr(p.X, p.Y)
		if cell.Revealed {
			continue
		}

		cell.Revealed = true
		if cell.Mine {
			continue
		}

		that.revealed++
		if cell.Neighbors > 0 {
			continue
		}

		for _, n := range that.neighbors(p) {
			if !that.grid.At(n.X, n.Y).Revealed {
				stack = append(stack, n)
			}
		}
	}
}

func (that *Board) revealMines() {
	for i, cell := range that.grid.All() {
		if cell.Mine {
			x, y := that.grid.IndexToCoord(i)
			that.grid.Ptr(x, y).Revealed = true
		}
	}
}

func (that *Board) countNeighbors() {
	for i, cell := range that.grid.All() {
		if !cell.Mine {
			continue
		}

		x, y := that.grid.IndexToCoord(i)
		for _, n := range that.neighbors(grid.Point{X: x, Y: y}) {
			that.grid.Ptr(n.X, n.Y).Neighbors++
		}
	}
}

// neighbors - the in-bounds 8-neighbors of p.
func (that *Board) neighbors(p grid.Point) []grid.Point {
	out := make([]grid.Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := grid.Point{X: p.X + d.X, Y: p.Y + d.Y}
		if that.grid.InBounds(n.X, n.Y) {
			out = append(out, n)
		}
	}

	return out
}
