// pkg/hexgrid/layout.go
package hexgrid

import (
	"errors"
	"fmt"

	"go-ironslay/pkg/hexmath"
)

var (
	// ErrOutOfBounds is returned for a coordinate or index outside the grid.
	ErrOutOfBounds = errors.New("hexgrid: coordinate out of bounds")
	// ErrInvalidSize is returned when a grid is created with a non-positive side.
	ErrInvalidSize = errors.New("hexgrid: width and height must be positive")
)

// OutOfBoundsError describes the rejected coordinate. It matches ErrOutOfBounds.
type OutOfBoundsError struct {
	Coord         hexmath.AxialCoord
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("hexgrid: coordinate %v outside %dx%d grid", e.Coord, e.Width, e.Height)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Layout maps cells of a Width x Height grid to row-major slot indices:
// index = y*Width + x.
type Layout struct {
	width, height int
}

// NewLayout validates the dimensions.
func NewLayout(width, height int) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return Layout{width: width, height: height}, nil
}

func (l Layout) Width() int  { return l.width }
func (l Layout) Height() int { return l.height }

// Len is the number of slots, always Width*Height.
func (l Layout) Len() int { return l.width * l.height }

// Contains reports whether c lies in [0,Width) x [0,Height).
func (l Layout) Contains(c hexmath.AxialCoord) bool {
	return c.X >= 0 && c.X < l.width && c.Y >= 0 && c.Y < l.height
}

// Check returns an *OutOfBoundsError for coordinates outside the grid.
func (l Layout) Check(c hexmath.AxialCoord) error {
	if !l.Contains(c) {
		return &OutOfBoundsError{Coord: c, Width: l.width, Height: l.height}
	}
	return nil
}

// Index converts a cell to its slot index.
func (l Layout) Index(c hexmath.AxialCoord) (int, error) {
	if err := l.Check(c); err != nil {
		return 0, err
	}
	return c.Y*l.width + c.X, nil
}

// Coord is the inverse of Index. Both directions use Width as the row stride.
func (l Layout) Coord(index int) (hexmath.AxialCoord, error) {
	if index < 0 || index >= l.Len() {
		return hexmath.AxialCoord{}, fmt.Errorf("%w: index %d of %d", ErrOutOfBounds, index, l.Len())
	}
	return hexmath.AxialCoord{X: index % l.width, Y: index / l.width}, nil
}

// Cells returns every coordinate in index order.
func (l Layout) Cells() []hexmath.AxialCoord {
	cells := make([]hexmath.AxialCoord, 0, l.Len())
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			cells = append(cells, hexmath.AxialCoord{X: x, Y: y})
		}
	}
	return cells
}
