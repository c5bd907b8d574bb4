// internal/app/game.go
package app

import (
	"fmt"

	"go-ironslay/internal/component"
	"go-ironslay/internal/config"
	"go-ironslay/internal/entity"
	"go-ironslay/internal/event"
	"go-ironslay/internal/logging"
	"go-ironslay/internal/system"
	"go-ironslay/internal/terrain"
	"go-ironslay/internal/types"
	"go-ironslay/pkg/hexgrid"
	"go-ironslay/pkg/hexmath"
)

// Input: ввод игрока за один тик. Заполняется состоянием игры из ebiten.
type Input struct {
	CursorX, CursorY float64
	CursorValid      bool // курсор внутри окна

	LeftPressed   bool // выбрать клетку / переместить выбранного юнита
	RightPressed  bool // снять выбор
	SpawnPressed  bool // создать юнита под курсором
	RemovePressed bool // удалить выбранного юнита
	SpawnTeam     int
}

// Game holds the world and runs the tick pipeline.
type Game struct {
	Config          *config.Config
	ECS             *entity.ECS
	Grid            *hexgrid.Store[types.EntityID]
	Terrain         *terrain.Map
	Projection      hexmath.Projection
	EventDispatcher *event.Dispatcher

	PointerSystem   *system.PointerSystem
	CommandSystem   *system.CommandSystem
	SelectionSystem *system.SelectionSystem
	GridSystem      *system.GridSystem

	tick     uint64
	frame    *Frame
	rejected int
}

// NewGame строит мир по конфигу: сетку, рельеф и стартовых юнитов.
func NewGame(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout, err := hexgrid.NewLayout(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		Grid:            hexgrid.NewWithLayout[types.EntityID](layout),
		Terrain:         terrain.NewMap(layout),
		EventDispatcher: eventDispatcher,
		Projection: hexmath.Projection{
			Origin:        hexmath.Vec(cfg.Surface.OriginX, cfg.Surface.OriginY),
			PixelsPerUnit: cfg.Surface.PixelsPerUnit,
		},
	}
	g.PointerSystem = system.NewPointerSystem(ecs, g.Projection, layout, eventDispatcher)
	g.CommandSystem = system.NewCommandSystem(ecs, g.Grid, eventDispatcher)
	g.SelectionSystem = system.NewSelectionSystem(ecs)
	g.GridSystem = system.NewGridSystem(ecs, g.Grid, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GridRejected, listener)
	eventDispatcher.Subscribe(event.CellSelected, listener)
	eventDispatcher.Subscribe(event.OccupantAdded, listener)
	eventDispatcher.Subscribe(event.OccupantRemoved, listener)

	if err := g.generateTerrain(); err != nil {
		return nil, err
	}
	if err := g.placeInitialUnits(); err != nil {
		return nil, err
	}
	g.publish()

	logging.LogInfo("world ready: %dx%d grid, %d units, %d water cells",
		layout.Width(), layout.Height(), g.Grid.Count(), g.Terrain.Count(component.Water))
	return g, nil
}

// Update выполняет один тик. Порядок фаз фиксирован: курсор, команды,
// выделение, согласование сетки, публикация кадра.
func (g *Game) Update(in Input) {
	g.tick++

	g.PointerSystem.Update(in.CursorX, in.CursorY, in.CursorValid)

	hover := *g.ECS.Hover
	if in.LeftPressed && hover.Valid {
		g.CommandSystem.Click(hover.Cell)
	}
	if in.RightPressed {
		g.CommandSystem.ClearSelection()
	}
	if in.SpawnPressed && hover.Valid {
		g.CommandSystem.Spawn(hover.Cell, component.Unit{Team: in.SpawnTeam, Power: 1}, true)
	}
	if in.RemovePressed {
		g.CommandSystem.RemoveSelected()
	}

	g.SelectionSystem.Update()
	// Ошибка уже залогирована и разослана GridRejected.
	_ = g.GridSystem.Update()

	g.publish()
}

// Frame возвращает последний опубликованный кадр.
func (g *Game) Frame() *Frame {
	return g.frame
}

// Rejected: сколько пакетов изменений сетки было отклонено.
func (g *Game) Rejected() int {
	return g.rejected
}

func (g *Game) generateTerrain() error {
	gen, err := terrain.New(g.Config.Terrain)
	if err != nil {
		return err
	}
	gen.Generate(g.Terrain)
	return nil
}

func (g *Game) placeInitialUnits() error {
	for _, u := range g.Config.Units {
		g.ECS.SpawnUnit(hexmath.AxialCoord{X: u.X, Y: u.Y}, component.Unit{Team: u.Team, Power: u.Power}, u.Moveable)
	}
	return g.GridSystem.Update()
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GridRejected:
		l.game.rejected++
	case event.CellSelected:
		if d, ok := e.Data.(event.CellData); ok {
			t, _ := l.game.Terrain.At(d.Cell)
			logging.LogDebug("cell %v selected (%s)", d.Cell, t)
		}
	case event.OccupantAdded, event.OccupantRemoved:
		if d, ok := e.Data.(event.OccupantData); ok {
			logging.LogDebug("%s: unit %d at %v", e.Type, d.Entity, d.To)
		}
	}
}
