// internal/terrain/generator.go
package terrain

import (
	"fmt"

	"go-ironslay/internal/component"
	"go-ironslay/internal/config"
	"go-ironslay/pkg/hexmath"

	"github.com/aquilax/go-perlin"
)

// Generator заполняет карту типами клеток.
type Generator interface {
	Generate(m *Map)
}

// New выбирает генератор по конфигу.
func New(cfg config.TerrainConfig) (Generator, error) {
	switch cfg.Generator {
	case config.GeneratorBorder:
		return BorderGenerator{Depth: cfg.BorderDepth}, nil
	case config.GeneratorPerlin:
		return NewPerlinGenerator(cfg.Seed, cfg.WaterLevel, cfg.NoiseScale), nil
	}
	return nil, fmt.Errorf("unknown terrain generator %q", cfg.Generator)
}

// BorderGenerator делает водой полосу шириной Depth вдоль осей: x < Depth || y < Depth.
type BorderGenerator struct {
	Depth int
}

func (g BorderGenerator) Generate(m *Map) {
	for _, c := range m.Layout().Cells() {
		t := component.Land
		if c.X < g.Depth || c.Y < g.Depth {
			t = component.Water
		}
		m.Set(c, t)
	}
}

// PerlinGenerator сэмплирует шум Перлина в центрах клеток.
// Значение шума (от 0 до 1) ниже WaterLevel даёт воду.
type PerlinGenerator struct {
	WaterLevel float64
	Scale      float64
	noise      *perlin.Perlin
}

func NewPerlinGenerator(seed int64, waterLevel, scale float64) *PerlinGenerator {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &PerlinGenerator{
		WaterLevel: waterLevel,
		Scale:      scale,
		noise:      perlin.NewPerlin(alpha, beta, n, seed),
	}
}

// Sample возвращает значение шума для клетки в диапазоне примерно от 0 до 1.
func (g *PerlinGenerator) Sample(c hexmath.AxialCoord) float64 {
	center := hexmath.CenterOf(c)
	n := g.noise.Noise2D(float64(center.X())*g.Scale, float64(center.Y())*g.Scale)
	return (n + 1.0) / 2.0
}

func (g *PerlinGenerator) Generate(m *Map) {
	for _, c := range m.Layout().Cells() {
		t := component.Land
		if g.Sample(c) < g.WaterLevel {
			t = component.Water
		}
		m.Set(c, t)
	}
}
