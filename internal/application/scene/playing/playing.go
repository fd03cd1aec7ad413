// Package playing provides the main gameplay scene.
package playing

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/platformquest/internal/application/input"
	"github.com/younwookim/platformquest/internal/application/replay"
	"github.com/younwookim/platformquest/internal/application/scene"
	"github.com/younwookim/platformquest/internal/application/sim"
	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/application/system"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/domain/tilemap"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
	"github.com/younwookim/platformquest/internal/infrastructure/storage"
)

// Colors for rendering
var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorPlayer = color.RGBA{100, 200, 100, 255}
	colorDead   = color.RGBA{120, 120, 120, 255}

	wallColors = map[tilemap.Variant]color.RGBA{
		tilemap.VariantStage1: {80, 80, 100, 255},
		tilemap.VariantStage2: {110, 70, 60, 255},
	}
	backgroundColors = map[tilemap.Variant]color.RGBA{
		tilemap.VariantStage1: {36, 36, 60, 255},
		tilemap.VariantStage2: {50, 34, 40, 255},
	}
	enemyColors = map[entity.EnemyKind]color.RGBA{
		entity.Slime:       {90, 160, 220, 255},
		entity.Lizard:      {200, 100, 100, 255},
		entity.FlyingDemon: {170, 90, 200, 255},
	}
	weaponColors = map[entity.WeaponKind]color.RGBA{
		entity.Sword:   {230, 230, 230, 255},
		entity.Fire:    {255, 140, 40, 255},
		entity.Ice:     {140, 220, 255, 255},
		entity.Thunder: {255, 230, 80, 255},
	}
)

// Camera limits in tiles: the view never shows past the map's left edge
// or the last eleven columns.
const (
	cameraLeftTiles  = 9.5
	cameraRightTiles = 11
	cameraYTiles     = 7
)

// animFrameTime is how long a sprite frame stays on screen.
const animFrameTime = 100 * time.Millisecond

// RunStore persists the outcome of each attempt.
type RunStore interface {
	SaveRun(ctx context.Context, r storage.Run) (int64, error)
}

// Options configures optional gameplay features.
type Options struct {
	// Seed for enemy decisions; 0 picks one per attempt.
	Seed uint64

	// RecordPath, when set, receives the input of each attempt.
	RecordPath string

	// Store, when set, receives a record of each attempt.
	Store RunStore
}

// Playing is the main gameplay scene. Each OnEnter starts a fresh
// attempt at the flow's current stage.
type Playing struct {
	cfg    *config.GameConfig
	stages map[state.Stage]*system.Stage
	flow   *scene.Flow
	kb     input.Keyboard
	logger *log.Logger
	opts   Options

	sim      *sim.Simulation
	anim     *system.AnimationSystem
	recorder *replay.Recorder
	seed     uint64
	kills    int
	outcome  storage.Outcome

	screenW int
	screenH int
}

// New creates the gameplay scene.
func New(cfg *config.GameConfig, stages map[state.Stage]*system.Stage, flow *scene.Flow, kb input.Keyboard, logger *log.Logger, opts Options) *Playing {
	return &Playing{
		cfg:     cfg,
		stages:  stages,
		flow:    flow,
		kb:      kb,
		logger:  logger,
		opts:    opts,
		anim:    system.NewAnimationSystem(animFrameTime),
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
	}
}

// Sim returns the running attempt, nil outside the scene.
func (p *Playing) Sim() *sim.Simulation {
	return p.sim
}

// Recorder returns the input recorder of the attempt, if recording.
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

// OnEnter spawns the player and enemies of the current stage.
func (p *Playing) OnEnter() {
	id := p.flow.Stage.Current()
	st, ok := p.stages[id]
	if !ok {
		p.logger.Error("stage not loaded", "stage", id)
		return
	}

	p.seed = p.opts.Seed
	if p.seed == 0 {
		p.seed = uint64(time.Now().UnixNano())
	}
	p.sim = sim.New(p.cfg, st, system.NewRand(p.seed))
	p.kills = 0
	p.outcome = ""

	if p.opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(p.seed, id.String())
	}

	p.logger.Info("stage started",
		"stage", id,
		"cols", st.Map.Cols(),
		"rows", st.Map.Rows(),
		"enemies", len(st.Enemies),
		"seed", p.seed,
	)
}

// Update runs one simulation tick and turns its events into flow requests.
func (p *Playing) Update(dt time.Duration) error {
	if p.sim == nil {
		return nil
	}

	kb := input.Capture(p.kb)
	if p.recorder != nil {
		p.recorder.RecordFrame(kb)
	}

	ev := p.sim.Step(kb)
	p.anim.Update(p.sim.World(), dt)

	for _, hit := range ev.Kills {
		p.logger.Debug("enemy destroyed", "enemy", hit.EnemyKind, "weapon", hit.WeaponKind)
	}
	p.kills += len(ev.Kills)

	st := p.sim.Stage()
	if ev.Died != sim.CauseNone {
		p.logger.Info("player died", "stage", st.ID, "cause", ev.Died, "tick", p.sim.Tick())
		p.finish(storage.OutcomeDied)
	}
	if ev.DeathExpired {
		// retry the same stage
		p.flow.Scene.Set(state.SceneLoading)
	}

	if ev.Cleared {
		p.logger.Info("stage cleared", "stage", st.ID, "tick", p.sim.Tick(), "kills", p.kills)
		p.finish(storage.OutcomeCleared)
		switch {
		case st.HasNext:
			p.flow.Stage.Set(st.Next)
			p.flow.Scene.Set(state.SceneLoading)
		case st.Final:
			p.flow.Scene.Set(state.SceneEnding)
		}
	}
	return nil
}

// finish records the outcome of the attempt once.
func (p *Playing) finish(outcome storage.Outcome) {
	if p.outcome != "" {
		return
	}
	p.outcome = outcome

	if p.opts.Store == nil {
		return
	}
	_, err := p.opts.Store.SaveRun(context.Background(), storage.Run{
		Stage:   p.sim.Stage().ID.String(),
		Outcome: outcome,
		Ticks:   p.sim.Tick(),
		Kills:   p.kills,
		Seed:    p.seed,
	})
	if err != nil {
		p.logger.Warn("could not save run", "error", err)
	}
}

// saveRecording writes the attempt's input to the record path.
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		p.logger.Warn("failed to save recording", "path", p.opts.RecordPath, "error", err)
		return
	}
	p.logger.Info("recording saved", "path", p.opts.RecordPath, "frames", p.recorder.FrameCount())
}

// OnExit ends the attempt and destroys its entities.
func (p *Playing) OnExit() {
	if p.sim == nil {
		return
	}
	p.finish(storage.OutcomeQuit)
	p.saveRecording()
	p.sim.Close()
	p.sim = nil
}

// Camera returns the world point shown at the center of the screen.
func Camera(m *tilemap.Map, player collision.Vec2) collision.Vec2 {
	ts := m.TileSize()
	lo := ts * cameraLeftTiles
	hi := ts * float64(m.Cols()-cameraRightTiles)
	return collision.Vec2{
		X: math.Max(lo, math.Min(player.X, hi)),
		Y: ts * cameraYTiles,
	}
}

// Draw renders the stage around the player.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if p.sim == nil {
		return
	}

	w := p.sim.World()
	st := p.sim.Stage()
	pid, ok := w.Player()
	if !ok {
		return
	}
	cam := Camera(st.Map, w.Body[pid].Pos)

	p.drawTiles(screen, st.Map, cam)

	for _, id := range w.Enemies() {
		p.drawBox(screen, w.Body[id].Box(), cam, enemyColors[w.EnemyData[id].Kind])
	}
	for _, id := range w.Weapons() {
		b := w.Body[id].Box()
		b.Size = collision.Vec2{X: b.Size.X / 2, Y: b.Size.Y / 2}
		p.drawBox(screen, b, cam, weaponColors[w.WeaponData[id].Kind])
	}

	c := colorPlayer
	if !w.PlayerData[pid].Alive {
		c = colorDead
	}
	p.drawBox(screen, w.Body[pid].Box(), cam, c)

	p.drawUI(screen, st)
}

// toScreen maps a world point (y up) to screen pixels (y down).
func (p *Playing) toScreen(v, cam collision.Vec2) (float64, float64) {
	return v.X - cam.X + float64(p.screenW)/2, float64(p.screenH)/2 - (v.Y - cam.Y)
}

func (p *Playing) drawBox(screen *ebiten.Image, b collision.Box, cam collision.Vec2, c color.Color) {
	x, y := p.toScreen(collision.Vec2{X: b.Min().X, Y: b.Max().Y}, cam)
	ebitenutil.DrawRect(screen, x, y, b.Size.X, b.Size.Y, c)
}

func (p *Playing) drawTiles(screen *ebiten.Image, m *tilemap.Map, cam collision.Vec2) {
	ts := m.TileSize()
	half := float64(p.screenW)/2 + ts
	minCol, _ := m.CellOf(cam.X-half, 0)
	maxCol, _ := m.CellOf(cam.X+half, 0)

	for row := 0; row < m.Rows(); row++ {
		for col := max(minCol, 0); col <= maxCol && col < m.Cols(); col++ {
			var c color.RGBA
			switch m.At(col, row) {
			case tilemap.Wall:
				c = wallColors[m.Variant()]
			case tilemap.BackgroundB:
				c = backgroundColors[m.Variant()]
			default:
				continue
			}
			p.drawBox(screen, m.TileBox(col, row), cam, c)
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, st *system.Stage) {
	ebitenutil.DebugPrint(screen, "Arrows: Move | X: Jump | Z: Sword | A: Fire | S: Ice | D: Thunder")
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  kills: %d", st.Name, p.kills), 10, p.screenH-20)
	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, "REC", p.screenW-30, p.screenH-20)
	}
}
