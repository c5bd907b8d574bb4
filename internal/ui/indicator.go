// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TeamIndicator показывает команду, за которую создаются юниты.
// При смене команды кружок коротко «вспыхивает».
type TeamIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewTeamIndicator(x, y, radius float32) *TeamIndicator {
	return &TeamIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Pulse запускает анимацию смены команды
func (i *TeamIndicator) Pulse() {
	i.LastClickTime = time.Now()
}

// Draw отрисовывает индикатор
func (i *TeamIndicator) Draw(screen *ebiten.Image, teamColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, teamColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 2, color.White, true)
}
