// pkg/hexmath/coord.go
package hexmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ContinuousCoord is a point in the tiling's local 2D space (texture UV or a
// world-plane projection). float32 keeps host results in step with the shader.
type ContinuousCoord = mgl32.Vec2

// AxialCoord identifies one hex cell using the odd-row offset storage
// convention: rows are Y, and every odd row is shifted by half a cell along X.
type AxialCoord struct {
	X, Y int
}

// Vec returns a continuous coordinate.
func Vec(x, y float32) ContinuousCoord {
	return ContinuousCoord{x, y}
}

func (a AxialCoord) String() string {
	return fmt.Sprintf("(%d,%d)", a.X, a.Y)
}

// Add returns a+b component-wise.
func (a AxialCoord) Add(b AxialCoord) AxialCoord {
	return AxialCoord{X: a.X + b.X, Y: a.Y + b.Y}
}

// CellOf returns the integer cell whose hexagon contains uv.
func CellOf(uv ContinuousCoord) AxialCoord {
	return cellOfCenter(NearestCenter(uv))
}

// cellOfCenter rounds a cell center to its storage coordinate. The shader
// uses the same floor(x + 0.5) rounding.
func cellOfCenter(c ContinuousCoord) AxialCoord {
	row := int(math.Floor(float64(c.Y()/RowHeight) + 0.5))
	col := int(math.Floor(float64(c.X()-0.5*float32(row&1)) + 0.5))
	return AxialCoord{X: col, Y: row}
}

// CenterOf returns the continuous center of a cell. CellOf(CenterOf(a)) == a.
func CenterOf(a AxialCoord) ContinuousCoord {
	return ContinuousCoord{
		float32(a.X) + 0.5*float32(a.Y&1),
		float32(a.Y) * RowHeight,
	}
}
