// pkg/hexmath/projection.go
package hexmath

// Projection maps screen pixels onto the tiling plane. Origin is the screen
// position of surface (0,0); one surface unit spans PixelsPerUnit pixels.
type Projection struct {
	Origin        ContinuousCoord
	PixelsPerUnit float32
}

// ScreenToSurface converts a screen position into surface coordinates.
func (p Projection) ScreenToSurface(x, y float64) ContinuousCoord {
	return Vec(float32(x), float32(y)).Sub(p.Origin).Mul(1 / p.PixelsPerUnit)
}

// SurfaceToScreen is the inverse of ScreenToSurface.
func (p Projection) SurfaceToScreen(uv ContinuousCoord) (x, y float64) {
	s := uv.Mul(p.PixelsPerUnit).Add(p.Origin)
	return float64(s.X()), float64(s.Y())
}

// CellAt returns the cell under a screen position.
func (p Projection) CellAt(x, y float64) AxialCoord {
	return CellOf(p.ScreenToSurface(x, y))
}

// CellToScreen returns the screen position of a cell center.
func (p Projection) CellToScreen(a AxialCoord) (x, y float64) {
	return p.SurfaceToScreen(CenterOf(a))
}
