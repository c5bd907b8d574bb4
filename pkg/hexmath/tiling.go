// pkg/hexmath/tiling.go
package hexmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sqrt3 is √3 rounded to float32.
const Sqrt3 float32 = 1.7320508

// RowHeight is the vertical distance between neighbouring rows of centers.
const RowHeight = Sqrt3 / 2

var (
	// R is the repeat vector of each rectangular sublattice.
	R = ContinuousCoord{1, Sqrt3}
	// H is half of R; the second sublattice is the first one shifted by H.
	H = R.Mul(0.5)
	// Axis is normalize(R), the slanted edge normal used by HexNorm.
	Axis = R.Normalize()
)

// Modulo2 is a component-wise truncated remainder: the result takes the sign
// of a, so it is negative for negative inputs.
func Modulo2(a, b ContinuousCoord) ContinuousCoord {
	return ContinuousCoord{
		float32(math.Mod(float64(a.X()), float64(b.X()))),
		float32(math.Mod(float64(a.Y()), float64(b.Y()))),
	}
}

// FloorMod2 is a component-wise floored modulo, a - b*floor(a/b). This is
// what GLSL and Kage mod() compute; the result is always in [0, b).
func FloorMod2(a, b ContinuousCoord) ContinuousCoord {
	return ContinuousCoord{floorMod(a.X(), b.X()), floorMod(a.Y(), b.Y())}
}

func floorMod(a, b float32) float32 {
	return a - b*float32(math.Floor(float64(a/b)))
}

// RelativeOffset returns the offset of uv from the center of its nearest
// cell. The tiling is two interleaved rectangular lattices; whichever lattice
// has the closer point owns uv.
func RelativeOffset(uv ContinuousCoord) ContinuousCoord {
	a := FloorMod2(uv, R).Sub(H)
	b := FloorMod2(uv.Add(H), R).Sub(H)
	if a.Len() < b.Len() {
		return a
	}
	return b
}

// HexNorm is the hexagonal norm max(|p.x|, dot(|p|, Axis)). It is 0.5 on the
// boundary of a unit cell.
func HexNorm(p ContinuousCoord) float32 {
	ap := ContinuousCoord{mgl32.Abs(p.X()), mgl32.Abs(p.Y())}
	return max(ap.X(), ap.Dot(Axis))
}

// EdgeDistance is a pseudo-distance to the cell boundary: 0.5 at the center,
// 0 on the edge, negative outside. offset comes from RelativeOffset.
func EdgeDistance(offset ContinuousCoord) float32 {
	return 0.5 - HexNorm(offset)
}

// NearestCenter returns the continuous center of the cell containing uv.
// Callers that need integer cells use CellOf.
func NearestCenter(uv ContinuousCoord) ContinuousCoord {
	return uv.Sub(RelativeOffset(uv))
}
