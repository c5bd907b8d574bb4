// internal/state/game_state.go
package state

import (
	"fmt"

	game "go-ironslay/internal/app"
	"go-ironslay/internal/config"
	"go-ironslay/internal/logging"
	"go-ironslay/internal/ui"
	"go-ironslay/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState: состояние игры
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	renderer  *render.HexRenderer
	infoPanel *ui.InfoPanel
	indicator *ui.TeamIndicator
	spawnTeam int
}

func NewGameState(sm *StateMachine, cfg *config.Config) (*GameState, error) {
	gameLogic, err := game.NewGame(cfg)
	if err != nil {
		return nil, err
	}

	// Создаем и заполняем структуру с цветами для рендерера
	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		LandColor:       config.LandColor,
		WaterColor:      config.WaterColor,
		BorderColor:     config.BorderColor,
		TextColor:       config.TextDarkColor,
		BorderWidth:     cfg.Render.BorderWidth,
		ShowLabels:      cfg.Render.ShowLabels,
	}
	overlay := render.OverlayColors{HoverColor: config.HoverColor, SelectColor: config.SelectColor}
	renderer, err := render.NewHexRenderer(cfg.Screen.Width, cfg.Screen.Height, mapColors, overlay)
	if err != nil {
		return nil, err
	}

	face, err := ui.LoadFace(14)
	if err != nil {
		return nil, err
	}

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		renderer:  renderer,
		infoPanel: ui.NewInfoPanel(face, cfg.Screen.Width, cfg.Screen.Height),
		indicator: ui.NewTeamIndicator(float32(cfg.Screen.Width-30), 30, 10),
	}, nil
}

func (g *GameState) Game() *game.Game { return g.game }

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.spawnTeam = (g.spawnTeam + 1) % len(config.TeamColors)
		g.indicator.Pulse()
		logging.LogDebug("spawn team switched to %d", g.spawnTeam)
	}

	g.game.Update(g.pollInput())
	g.infoPanel.Update(g.game.Frame())
	return nil
}

// pollInput собирает ввод ebiten за тик. Клики по панели в игру не идут.
func (g *GameState) pollInput() game.Input {
	x, y := ebiten.CursorPosition()
	screen := g.game.Config.Screen
	in := game.Input{
		CursorX:     float64(x),
		CursorY:     float64(y),
		CursorValid: x >= 0 && y >= 0 && x < screen.Width && y < screen.Height,
		SpawnTeam:   g.spawnTeam,
	}
	if g.infoPanel.Contains(x, y) {
		in.CursorValid = false
	}
	in.LeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.RightPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	in.SpawnPressed = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.RemovePressed = inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
	return in
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	f := g.game.Frame()
	g.renderer.Draw(screen, f)
	g.infoPanel.Draw(screen, f)
	g.indicator.Draw(screen, config.TeamColor(g.spawnTeam, true))

	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.0f  tick: %d  units: %d", ebiten.ActualTPS(), f.Tick, f.Units.Count()))
}

func (g *GameState) Exit() {}
