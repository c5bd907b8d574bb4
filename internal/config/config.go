// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"go-ironslay/internal/logging"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath: переменная окружения с путём к конфигу, если флаг не задан.
const EnvConfigPath = "IRONSLAY_CONFIG"

const (
	GeneratorBorder = "border"
	GeneratorPerlin = "perlin"
)

// ErrInvalidConfig оборачивает все ошибки валидации.
var ErrInvalidConfig = errors.New("invalid config")

// Config корневая структура конфигурации.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Grid    GridConfig    `yaml:"grid"`
	Surface SurfaceConfig `yaml:"surface"`
	Render  RenderConfig  `yaml:"render"`
	Terrain TerrainConfig `yaml:"terrain"`
	Units   []UnitConfig  `yaml:"units"`
	Log     LogConfig     `yaml:"log"`
}

type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig: размеры сетки в клетках.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SurfaceConfig задаёт проекцию экрана на плоскость тайлинга.
type SurfaceConfig struct {
	OriginX       float32 `yaml:"origin_x"`
	OriginY       float32 `yaml:"origin_y"`
	PixelsPerUnit float32 `yaml:"pixels_per_unit"`
}

type RenderConfig struct {
	BorderWidth float32 `yaml:"border_width"` // в единицах поверхности, 0..0.5
	ShowLabels  bool    `yaml:"show_labels"`
}

type TerrainConfig struct {
	Generator   string  `yaml:"generator"`
	Seed        int64   `yaml:"seed"`
	WaterLevel  float64 `yaml:"water_level"`
	BorderDepth int     `yaml:"border_depth"`
	NoiseScale  float64 `yaml:"noise_scale"`
}

// UnitConfig: юнит, создаваемый при старте.
type UnitConfig struct {
	X        int  `yaml:"x"`
	Y        int  `yaml:"y"`
	Team     int  `yaml:"team"`
	Power    int  `yaml:"power"`
	Moveable bool `yaml:"moveable"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default возвращает конфигурацию по умолчанию: поле 8x8 с водной каймой.
func Default() *Config {
	return &Config{
		Screen:  ScreenConfig{Width: ScreenWidth, Height: ScreenHeight},
		Grid:    GridConfig{Width: 8, Height: 8},
		Surface: SurfaceConfig{OriginX: 120, OriginY: 120, PixelsPerUnit: 80},
		Render:  RenderConfig{BorderWidth: 0.04, ShowLabels: true},
		Terrain: TerrainConfig{
			Generator:   GeneratorBorder,
			Seed:        1,
			WaterLevel:  0.42,
			BorderDepth: 3,
			NoiseScale:  0.35,
		},
		Units: []UnitConfig{
			{X: 4, Y: 4, Team: 0, Power: 1, Moveable: true},
			{X: 6, Y: 5, Team: 1, Power: 2, Moveable: true},
			{X: 5, Y: 7, Team: 1, Power: 3, Moveable: false},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пробует ENV IRONSLAY_CONFIG, иначе возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения. Все найденные проблемы возвращаются разом.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		bad("screen %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		bad("grid %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Surface.PixelsPerUnit <= 0 {
		bad("surface.pixels_per_unit %v", c.Surface.PixelsPerUnit)
	}
	if c.Render.BorderWidth < 0 || c.Render.BorderWidth >= 0.5 {
		bad("render.border_width %v not in [0,0.5)", c.Render.BorderWidth)
	}

	switch c.Terrain.Generator {
	case GeneratorBorder:
		if c.Terrain.BorderDepth < 0 {
			bad("terrain.border_depth %d", c.Terrain.BorderDepth)
		}
	case GeneratorPerlin:
		if c.Terrain.WaterLevel < 0 || c.Terrain.WaterLevel > 1 {
			bad("terrain.water_level %v not in [0,1]", c.Terrain.WaterLevel)
		}
		if c.Terrain.NoiseScale <= 0 {
			bad("terrain.noise_scale %v", c.Terrain.NoiseScale)
		}
	default:
		bad("terrain.generator %q", c.Terrain.Generator)
	}

	seen := make(map[[2]int]int, len(c.Units))
	for i, u := range c.Units {
		if u.X < 0 || u.X >= c.Grid.Width || u.Y < 0 || u.Y >= c.Grid.Height {
			bad("units[%d] at (%d,%d) outside grid", i, u.X, u.Y)
		}
		if j, dup := seen[[2]int{u.X, u.Y}]; dup {
			bad("units[%d] shares cell (%d,%d) with units[%d]", i, u.X, u.Y, j)
		}
		seen[[2]int{u.X, u.Y}] = i
		if u.Team < 0 || u.Team >= len(TeamColors) {
			bad("units[%d].team %d", i, u.Team)
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		bad("log.level: %v", err)
	}
	return errors.Join(errs...)
}
