// internal/config/colors.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	UnitRadiusFactor = 0.3 // доля от PixelsPerUnit
	UnitStrokeWidth  = 2.0

	PanelHeight = 110
	TextOffsetY = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	LandColor       = color.RGBA{70, 100, 120, 255}
	WaterColor      = color.RGBA{40, 70, 160, 255}
	BorderColor     = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PanelColor      = color.RGBA{30, 30, 45, 220}

	HoverColor       = color.RGBA{255, 255, 0, 200}
	SelectColor      = color.RGBA{50, 205, 50, 255}
	UnitStrokeColor  = color.RGBA{255, 255, 255, 255}
	SelectedUnitRing = color.RGBA{255, 215, 0, 255}

	TeamColors = []color.RGBA{
		{255, 50, 50, 255},  // Red
		{50, 100, 255, 255}, // Blue
		{180, 50, 230, 255}, // Purple
		{255, 215, 0, 255},  // Gold
	}
)

// TeamColor возвращает цвет команды; номер берётся по модулю палитры,
// в том числе отрицательный. Неподвижные юниты рисуются темнее.
func TeamColor(team int, moveable bool) color.RGBA {
	n := len(TeamColors)
	c := TeamColors[(team%n+n)%n]
	if !moveable {
		c = DarkenColor(c, 0.6)
	}
	return c
}

// DarkenColor умножает RGB на factor из [0,1], альфа не меняется.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	factor = max(0, min(1, factor))
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
