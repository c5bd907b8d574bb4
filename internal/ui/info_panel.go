// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-ironslay/internal/app"
	"go-ironslay/internal/config"
	"go-ironslay/pkg/hexmath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 320
)

// InfoPanel показывает клетку под курсором и выбранную клетку.
type InfoPanel struct {
	IsVisible    bool
	fontFace     font.Face
	screenWidth  int
	screenHeight int
	currentY     float64
	targetY      float64
}

func NewInfoPanel(face font.Face, screenWidth, screenHeight int) *InfoPanel {
	return &InfoPanel{
		fontFace:     face,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		currentY:     float64(screenHeight),
		targetY:      float64(screenHeight),
	}
}

func (p *InfoPanel) Update(f *app.Frame) {
	if f.Hover.Valid || f.Selection.Active {
		p.IsVisible = true
		p.targetY = float64(p.screenHeight - config.PanelHeight)
	} else {
		p.targetY = float64(p.screenHeight)
	}

	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
		if p.currentY >= float64(p.screenHeight) {
			p.IsVisible = false
		}
	}
}

// Contains сообщает, закрывает ли панель точку экрана.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && y >= int(p.currentY)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, f *app.Frame) {
	if !p.IsVisible {
		return
	}
	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		p.screenWidth-panelMargin,
		int(p.currentY)+config.PanelHeight-panelMargin,
	)
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), config.PanelColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	x, y := panelRect.Min.X+15, panelRect.Min.Y+25
	if f.Hover.Valid {
		p.drawCell(screen, f, "Курсор", f.Hover.Cell, x, y)
	}
	if f.Selection.Active {
		p.drawCell(screen, f, "Выбрано", f.Selection.Cell, x+columnSpacing, y)
	}
	help := "ЛКМ: выбор/ход   ПКМ: снять выбор   S: создать юнита   Del: удалить   Tab: команда"
	text.Draw(screen, help, p.fontFace, x, panelRect.Max.Y-12, config.TextLightColor)
}

func (p *InfoPanel) drawCell(screen *ebiten.Image, f *app.Frame, title string, c hexmath.AxialCoord, x, y int) {
	t, _ := f.Terrain.At(c)
	lines := []string{fmt.Sprintf("%s: %v %s", title, c, t)}
	if id, u, ok := f.Occupant(c); ok {
		move := "неподвижен"
		if u.Moveable {
			move = "подвижен"
		}
		lines = append(lines, fmt.Sprintf("Юнит #%d  команда %d  сила %d  %s", id, u.Team, u.Power, move))
	} else {
		lines = append(lines, "Пусто")
	}
	for i, line := range lines {
		text.Draw(screen, line, p.fontFace, x, y+i*lineHeight, config.TextLightColor)
	}
}
