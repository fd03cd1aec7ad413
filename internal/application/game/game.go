// Package game provides the main game loop that drives the scene and
// stage state machines.
package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/platformquest/internal/application/scene"
	"github.com/younwookim/platformquest/internal/application/state"
)

// Game implements ebiten.Game. Scenes request transitions on the flow
// during their Update; Game applies them once the tick is over.
type Game struct {
	flow    *scene.Flow
	scenes  map[state.Scene]scene.Scene
	current scene.Scene
	logger  *log.Logger
	screenW int
	screenH int
	dt      time.Duration
}

// New creates a Game showing the scene registered for the flow's
// current scene value. Its OnEnter is called immediately.
func New(flow *scene.Flow, scenes map[state.Scene]scene.Scene, logger *log.Logger, screenW, screenH int) (*Game, error) {
	current, ok := scenes[flow.Scene.Current()]
	if !ok {
		return nil, fmt.Errorf("game: no scene registered for %s", flow.Scene.Current())
	}

	g := &Game{
		flow:    flow,
		scenes:  scenes,
		current: current,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		dt:      time.Second / 60,
	}
	g.current.OnEnter()
	return g, nil
}

// Update updates the current scene, then applies pending transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if err := g.current.Update(g.dt); err != nil {
		return err
	}
	return g.applyTransitions()
}

// applyTransitions consumes both pending slots. The stage is applied
// first so the entered scene already sees it.
func (g *Game) applyTransitions() error {
	if prev, changed := g.flow.Stage.Apply(); changed {
		g.logger.Info("stage transition", "from", prev, "to", g.flow.Stage.Current())
	}

	prev, changed := g.flow.Scene.Apply()
	if !changed {
		return nil
	}

	to := g.flow.Scene.Current()
	next, ok := g.scenes[to]
	if !ok {
		return fmt.Errorf("game: no scene registered for %s", to)
	}
	g.logger.Info("scene transition", "from", prev, "to", to)

	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the tick length passed to scenes.
func (g *Game) SetDT(dt time.Duration) {
	g.dt = dt
}

// Scene returns the active scene value.
func (g *Game) Scene() state.Scene {
	return g.flow.Scene.Current()
}

// Shutdown leaves the current scene; call it after the window closes.
func (g *Game) Shutdown() {
	g.current.OnExit()
}
