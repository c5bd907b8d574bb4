// pkg/raster/raster.go
package raster

import (
	"fmt"
	"image"
	"image/color"

	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Options controls how the map is drawn.
type Options struct {
	// BorderWidth is in surface units. Pixels closer than this to a cell
	// edge are painted BorderColor.
	BorderWidth float32
	BorderColor color.RGBA
	// Background fills pixels that fall outside the grid.
	Background color.RGBA
}

// Rasterize paints every pixel of dst by sampling the tiling at the pixel
// center: the owning cell picks the fill, the distance to its edge picks the
// border.
func Rasterize(dst *image.RGBA, proj hexmath.Projection, layout hexgrid.Layout, fill func(hexmath.AxialCoord) color.RGBA, opts Options) {
	b := dst.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			uv := proj.ScreenToSurface(float64(px)+0.5, float64(py)+0.5)
			c := hexmath.CellOf(uv)
			switch {
			case !layout.Contains(c):
				dst.SetRGBA(px, py, opts.Background)
			case hexmath.EdgeDistance(hexmath.RelativeOffset(uv)) < opts.BorderWidth:
				dst.SetRGBA(px, py, opts.BorderColor)
			default:
				dst.SetRGBA(px, py, fill(c))
			}
		}
	}
}

// StateFill returns a fill that looks cells up in a per-cell state buffer laid
// out in layout index order; the state value indexes palette. Cells with a
// state outside palette, or outside the buffer, get the zero color.
func StateFill(layout hexgrid.Layout, state []uint32, palette []color.RGBA) func(hexmath.AxialCoord) color.RGBA {
	return func(c hexmath.AxialCoord) color.RGBA {
		i, err := layout.Index(c)
		if err != nil || i >= len(state) {
			return color.RGBA{}
		}
		if v := state[i]; int(v) < len(palette) {
			return palette[v]
		}
		return color.RGBA{}
	}
}

// DrawLabels writes "x,y" at the center of every cell.
func DrawLabels(dst *image.RGBA, proj hexmath.Projection, layout hexgrid.Layout, face font.Face, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	ascent := face.Metrics().Ascent
	for _, c := range layout.Cells() {
		label := Label(c)
		x, y := proj.CellToScreen(c)
		w := d.MeasureString(label)
		d.Dot = fixed.Point26_6{
			X: fixed.I(int(x)) - w/2,
			Y: fixed.I(int(y)) + ascent/2,
		}
		d.DrawString(label)
	}
}

// Label is the text DrawLabels prints for a cell.
func Label(c hexmath.AxialCoord) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
