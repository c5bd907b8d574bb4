package terrain

import (
	"testing"

	"go-ironslay/internal/component"
	"go-ironslay/internal/config"
	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMap(t *testing.T, w, h int) *Map {
	t.Helper()
	layout, err := hexgrid.NewLayout(w, h)
	require.NoError(t, err)
	return NewMap(layout)
}

func TestBorderGeneratorMatchesStartingMap(t *testing.T) {
	m := newMap(t, 8, 8)
	BorderGenerator{Depth: 3}.Generate(m)

	for _, c := range m.Layout().Cells() {
		got, ok := m.At(c)
		require.True(t, ok)
		want := component.Land
		if c.X < 3 || c.Y < 3 {
			want = component.Water
		}
		assert.Equal(t, want, got, "клетка %v", c)
	}
	assert.Equal(t, 25, m.Count(component.Land))
	assert.Equal(t, 39, m.Count(component.Water))
}

func TestBufferLayout(t *testing.T) {
	m := newMap(t, 4, 2)
	require.NoError(t, m.Set(hexmath.AxialCoord{X: 1, Y: 0}, component.Water))
	require.NoError(t, m.Set(hexmath.AxialCoord{X: 3, Y: 1}, component.Water))

	assert.Equal(t, []uint32{0, 1, 0, 0, 0, 0, 0, 1}, m.Buffer())
}

func TestVersionTracksChanges(t *testing.T) {
	m := newMap(t, 2, 2)
	v0 := m.Version()

	require.NoError(t, m.Set(hexmath.AxialCoord{X: 0, Y: 0}, component.Land))
	assert.Equal(t, v0, m.Version(), "запись того же значения не меняет версию")

	require.NoError(t, m.Set(hexmath.AxialCoord{X: 0, Y: 0}, component.Water))
	assert.Greater(t, m.Version(), v0)

	assert.ErrorIs(t, m.Set(hexmath.AxialCoord{X: 2, Y: 0}, component.Water), hexgrid.ErrOutOfBounds)
	tt, ok := m.At(hexmath.AxialCoord{X: -1, Y: 0})
	assert.False(t, ok)
	assert.Equal(t, component.Water, tt)
}

func TestPerlinGeneratorDeterministic(t *testing.T) {
	a := newMap(t, 10, 6)
	b := newMap(t, 10, 6)
	NewPerlinGenerator(7, 0.45, 0.35).Generate(a)
	NewPerlinGenerator(7, 0.45, 0.35).Generate(b)

	assert.Equal(t, a.Buffer(), b.Buffer())
}

func TestPerlinWaterGrowsWithLevel(t *testing.T) {
	low := newMap(t, 12, 12)
	high := newMap(t, 12, 12)
	NewPerlinGenerator(3, 0.3, 0.4).Generate(low)
	NewPerlinGenerator(3, 0.6, 0.4).Generate(high)

	for _, c := range low.Layout().Cells() {
		l, _ := low.At(c)
		h, _ := high.At(c)
		if l == component.Water {
			assert.Equal(t, component.Water, h, "клетка %v", c)
		}
	}
	assert.GreaterOrEqual(t, high.Count(component.Water), low.Count(component.Water))
}

func TestNewSelectsGenerator(t *testing.T) {
	g, err := New(config.TerrainConfig{Generator: config.GeneratorBorder, BorderDepth: 2})
	require.NoError(t, err)
	assert.Equal(t, BorderGenerator{Depth: 2}, g)

	g, err = New(config.TerrainConfig{Generator: config.GeneratorPerlin, Seed: 1, WaterLevel: 0.5, NoiseScale: 0.2})
	require.NoError(t, err)
	assert.IsType(t, &PerlinGenerator{}, g)

	_, err = New(config.TerrainConfig{Generator: "flat"})
	assert.Error(t, err)
}
