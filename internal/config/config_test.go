package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ironslay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.Grid.Width)
	assert.Equal(t, 8, cfg.Grid.Height)
	assert.Equal(t, GeneratorBorder, cfg.Terrain.Generator)
	assert.Equal(t, 3, cfg.Terrain.BorderDepth)
}

func TestLoadWithoutPathUsesEnvThenDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := writeConfig(t, "grid:\n  width: 5\n  height: 3\nunits: []\n")
	t.Setenv(EnvConfigPath, path)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Grid.Width)
	assert.Equal(t, 3, cfg.Grid.Height)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
surface:
  pixels_per_unit: 48
terrain:
  generator: perlin
  seed: 42
  water_level: 0.3
units:
  - {x: 1, y: 2, team: 1, power: 5, moveable: true}
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(48), cfg.Surface.PixelsPerUnit)
	assert.Equal(t, float32(120), cfg.Surface.OriginX, "не заданные поля берутся из Default")
	assert.Equal(t, GeneratorPerlin, cfg.Terrain.Generator)
	assert.Equal(t, int64(42), cfg.Terrain.Seed)
	assert.Equal(t, 0.35, cfg.Terrain.NoiseScale)
	assert.Equal(t, []UnitConfig{{X: 1, Y: 2, Team: 1, Power: 5, Moveable: true}}, cfg.Units)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "grid: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "grid:\n  width: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Grid = GridConfig{Width: 4, Height: 4}
	cfg.Surface.PixelsPerUnit = 0
	cfg.Render.BorderWidth = 0.5
	cfg.Terrain.Generator = "voronoi"
	cfg.Units = []UnitConfig{
		{X: 1, Y: 1},
		{X: 1, Y: 1},
		{X: 4, Y: 0},
		{X: 0, Y: 0, Team: 99},
	}
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	msg := err.Error()
	for _, want := range []string{
		"pixels_per_unit",
		"border_width",
		`generator "voronoi"`,
		"units[1] shares cell (1,1) with units[0]",
		"units[2] at (4,0) outside grid",
		"units[3].team 99",
		"log.level",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestExampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load("../../config.example.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDarkenColor(t *testing.T) {
	c := color.RGBA{255, 50, 50, 200}
	assert.Equal(t, color.RGBA{127, 25, 25, 200}, DarkenColor(c, 0.5))
	assert.Equal(t, c, DarkenColor(c, 2))
	assert.Equal(t, color.RGBA{0, 0, 0, 200}, DarkenColor(c, -1))
}

func TestTeamColorWrapsAnyTeam(t *testing.T) {
	n := len(TeamColors)
	assert.Equal(t, TeamColors[n-1], TeamColor(-1, true))
	assert.Equal(t, TeamColors[1], TeamColor(n+1, true))
	assert.Equal(t, TeamColors[0], TeamColor(-n, true))
	assert.Equal(t, DarkenColor(TeamColors[2], 0.6), TeamColor(2, false))
}
