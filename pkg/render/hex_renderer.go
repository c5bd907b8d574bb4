// pkg/render/hex_renderer.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"go-ironslay/internal/app"
	"go-ironslay/internal/component"
	"go-ironslay/internal/config"
	"go-ironslay/internal/terrain"
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexmath"
	"go-ironslay/pkg/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type HexRenderer struct {
	screenWidth  int
	screenHeight int
	colors       MapColors
	overlay      OverlayColors
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
	mapVersion   uint64
	shader       *ebiten.Shader
}

func NewHexRenderer(screenWidth, screenHeight int, colors MapColors, overlay OverlayColors) (*HexRenderer, error) {
	src, err := hexmath.KageSource()
	if err != nil {
		return nil, err
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile hex shader: %w", err)
	}
	return &HexRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		overlay:      overlay,
		fontFace:     basicfont.Face7x13,
		shader:       shader,
	}, nil
}

// RenderMapImage создаёт предрендеренное изображение задника на CPU.
func (r *HexRenderer) RenderMapImage(terr *terrain.Map, proj hexmath.Projection) {
	rgba := image.NewRGBA(image.Rect(0, 0, r.screenWidth, r.screenHeight))
	palette := make([]color.RGBA, 2)
	palette[component.Land] = r.colors.LandColor
	palette[component.Water] = r.colors.WaterColor
	fill := raster.StateFill(terr.Layout(), terr.Buffer(), palette)
	raster.Rasterize(rgba, proj, terr.Layout(), fill, raster.Options{
		BorderWidth: r.colors.BorderWidth,
		BorderColor: r.colors.BorderColor,
		Background:  r.colors.BackgroundColor,
	})
	if r.colors.ShowLabels {
		raster.DrawLabels(rgba, proj, terr.Layout(), r.fontFace, r.colors.TextColor)
	}

	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	r.mapImage = ebiten.NewImageFromImage(rgba)
	r.mapVersion = terr.Version()
}

// Draw рисует кадр: карту, юнитов и шейдерную подсветку клеток.
func (r *HexRenderer) Draw(screen *ebiten.Image, f *app.Frame) {
	if r.mapImage == nil || r.mapVersion != f.Terrain.Version() {
		r.RenderMapImage(f.Terrain, f.Projection)
	}
	screen.DrawImage(r.mapImage, nil)

	f.Units.Each(func(c hexmath.AxialCoord, id types.EntityID) bool {
		r.drawUnit(screen, f, c, id)
		return true
	})

	r.drawOverlay(screen, f)
}

func (r *HexRenderer) drawUnit(screen *ebiten.Image, f *app.Frame, c hexmath.AxialCoord, id types.EntityID) {
	u, ok := f.UnitInfo[id]
	if !ok {
		return
	}
	x, y := f.Projection.CellToScreen(c)
	cx, cy := float32(x), float32(y)
	radius := f.Projection.PixelsPerUnit * config.UnitRadiusFactor

	vector.DrawFilledCircle(screen, cx, cy, radius, u.Color, true)
	if u.HasStroke {
		vector.StrokeCircle(screen, cx, cy, radius, config.UnitStrokeWidth, config.UnitStrokeColor, true)
	}
	if u.Selected {
		vector.StrokeCircle(screen, cx, cy, radius+3, config.UnitStrokeWidth, config.SelectedUnitRing, true)
	}

	label := strconv.Itoa(u.Power)
	w := font.MeasureString(r.fontFace, label).Ceil()
	text.Draw(screen, label, r.fontFace, int(cx)-w/2, int(cy)+config.TextOffsetY, config.TextDarkColor)
}

func (r *HexRenderer) drawOverlay(screen *ebiten.Image, f *app.Frame) {
	if !f.Hover.Valid && !f.Selection.Active {
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Origin":        []float32{f.Projection.Origin.X(), f.Projection.Origin.Y()},
		"PixelsPerUnit": f.Projection.PixelsPerUnit,
		"BorderWidth":   r.colors.BorderWidth * 2,
		"Hovered":       []float32{float32(f.Hover.Cell.X), float32(f.Hover.Cell.Y)},
		"Selected":      []float32{float32(f.Selection.Cell.X), float32(f.Selection.Cell.Y)},
		"HasHover":      boolUniform(f.Hover.Valid),
		"HasSelection":  boolUniform(f.Selection.Active),
		"HoverColor":    hexmath.UniformColor(r.overlay.HoverColor),
		"SelectColor":   hexmath.UniformColor(r.overlay.SelectColor),
	}
	bounds := screen.Bounds()
	screen.DrawRectShader(bounds.Dx(), bounds.Dy(), r.shader, op)
}

func boolUniform(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
