// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	LandColor       color.RGBA
	WaterColor      color.RGBA
	BorderColor     color.RGBA
	TextColor       color.RGBA
	BorderWidth     float32 // surface units
	ShowLabels      bool
}

// OverlayColors holds the colors of the shader-drawn cell highlights.
type OverlayColors struct {
	HoverColor  color.RGBA
	SelectColor color.RGBA
}
