package grid

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
)

var (
	ErrInvalidSize = errors.New("grid width and height must be positive")
	ErrTooLarge    = errors.New("grid size overflows addressable memory")
)

// Point is a (column, row) coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a fixed-size two-dimensional container backed by one row-major slice.
type Grid[T any] struct {
	width  int
	height int
	data   []T
}

// New allocates a width x height grid of zero values.
func New[T any](width, height int) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	return &Grid[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}, nil
}

func (that *Grid[T]) Width() int {
	return that.width
}

func (that *Grid[T]) Height() int {
	return that.height
}

// Len - total number of elements.
func (that *Grid[T]) Len() int {
	return len(that.data)
}

func (that *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < that.width && y < that.height
}

// At returns the element at (x, y). Out of range coordinates panic.
func (that *Grid[T]) At(x, y int) T {
	return that.data[that.checkedIndex(x, y)]
}

// Ptr returns a pointer to the element at (x, y) for in-place mutation.
// The pointer must not be kept past the current operation.
func (that *Grid[T]) Ptr(x, y int) *T {
	return &that.data[that.checkedIndex(x, y)]
}

func (that *Grid[T]) CoordToIndex(x, y int) int {
	return y*that.width + x
}

func (that *Grid[T]) IndexToCoord(i int) (int, int) {
	return i % that.width, i / that.width
}

// Shuffle permutes all elements uniformly at random (Fisher-Yates).
func (that *Grid[T]) Shuffle(r *rand.Rand) {
	r.Shuffle(len(that.data), func(i, j int) {
		that.data[i], that.data[j] = that.data[j], that.data[i]
	})
}

// All yields every element with its linear index in row-major order.
func (that *Grid[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range that.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// checkedIndex - a column past the width would silently alias the next row, so both axes are checked.
func (that *Grid[T]) checkedIndex(x, y int) int {
	if !that.InBounds(x, y) {
		panic(fmt.Sprintf("grid: coordinate (%d, %d) out of range %dx%d", x, y, that.width, that.height))
	}

	return that.CoordToIndex(x, y)
}
