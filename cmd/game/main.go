// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-ironslay/internal/config"
	"go-ironslay/internal/logging"
	"go-ironslay/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (default: $"+config.EnvConfigPath+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Init(cfg.Log.Level, cfg.Log.Dir); err != nil {
		log.Fatal(err)
	}
	defer logging.Close()

	sm := state.NewStateMachine() // Создаём машину состояний
	gs, err := state.NewGameState(sm, cfg)
	if err != nil {
		log.Fatal(err)
	}
	sm.SetState(gs)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Screen.Width,
		height:         cfg.Screen.Height,
	}
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("IronSlay")
	if err := ebiten.RunGame(app); err != nil {
		logging.LogError("game stopped: %v", err)
	}
}
