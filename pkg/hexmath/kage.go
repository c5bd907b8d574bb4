// pkg/hexmath/kage.go
package hexmath

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"text/template"
)

//go:embed hex.kage.tmpl
var kageTemplate string

var kageTmpl = template.Must(template.New("hex.kage").Parse(kageTemplate))

// KageSource returns the Kage fragment shader that draws hovered and selected
// cell borders on the GPU. Its constants come from this package so both sides
// agree on which cell is under the cursor.
func KageSource() ([]byte, error) {
	params := struct {
		Sqrt3, AxisX, AxisY, RowHeight string
	}{
		Sqrt3:     kageFloat(Sqrt3),
		AxisX:     kageFloat(Axis.X()),
		AxisY:     kageFloat(Axis.Y()),
		RowHeight: kageFloat(RowHeight),
	}
	var buf bytes.Buffer
	if err := kageTmpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("render hex shader: %w", err)
	}
	return buf.Bytes(), nil
}

// kageFloat always prints a decimal point; Kage treats 1 and 1.0 differently.
func kageFloat(v float32) string {
	return fmt.Sprintf("%.7f", v)
}

// UniformColor converts c to the premultiplied [0,1] vec4 the shader returns
// as-is; ebiten composites shader output as premultiplied alpha.
func UniformColor(c color.RGBA) []float32 {
	a := float32(c.A) / 255
	return []float32{
		float32(c.R) / 255 * a,
		float32(c.G) / 255 * a,
		float32(c.B) / 255 * a,
		a,
	}
}
