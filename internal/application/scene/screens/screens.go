// Package screens holds the non-gameplay scenes: title, loading, stage
// title and ending.
package screens

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/platformquest/internal/application/input"
	"github.com/younwookim/platformquest/internal/application/scene"
	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/application/timer"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorBanner = color.RGBA{60, 60, 90, 255}
)

// Title waits for the confirm key.
type Title struct {
	flow  *scene.Flow
	kb    input.Keyboard
	title string
}

// NewTitle creates the title screen
func NewTitle(flow *scene.Flow, kb input.Keyboard, title string) *Title {
	return &Title{flow: flow, kb: kb, title: title}
}

func (s *Title) Update(time.Duration) error {
	if s.kb.JustPressed(input.Confirm) {
		s.flow.Scene.Set(state.SceneLoading)
	}
	return nil
}

func (s *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DrawRect(screen, 0, float64(h/2-40), float64(w), 80, colorBanner)
	ebitenutil.DebugPrintAt(screen, s.title, w/2-len(s.title)*3, h/2-20)
	ebitenutil.DebugPrintAt(screen, "Press Z to start", w/2-48, h/2+4)
}

func (s *Title) OnEnter() {}
func (s *Title) OnExit()  {}

// Loading holds for a fixed delay before the stage title.
type Loading struct {
	flow  *scene.Flow
	delay timer.Timer
}

// NewLoading creates the loading screen
func NewLoading(flow *scene.Flow, delay time.Duration) *Loading {
	return &Loading{flow: flow, delay: timer.New(delay, timer.Once)}
}

func (s *Loading) Update(dt time.Duration) error {
	if s.delay.Tick(dt).JustFinished() {
		s.flow.Scene.Set(state.SceneStageTitle)
	}
	return nil
}

func (s *Loading) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "Loading...", screen.Bounds().Dx()-80, screen.Bounds().Dy()-20)
}

func (s *Loading) OnEnter() { s.delay.Reset() }
func (s *Loading) OnExit()  {}

// StageTitle shows the name of the stage about to start.
type StageTitle struct {
	flow  *scene.Flow
	kb    input.Keyboard
	names map[state.Stage]string
}

// NewStageTitle creates the stage title screen. names maps stages to
// their display names; missing entries fall back to the stage id.
func NewStageTitle(flow *scene.Flow, kb input.Keyboard, names map[state.Stage]string) *StageTitle {
	return &StageTitle{flow: flow, kb: kb, names: names}
}

// Name returns the display name of the current stage.
func (s *StageTitle) Name() string {
	id := s.flow.Stage.Current()
	if n, ok := s.names[id]; ok && n != "" {
		return n
	}
	return id.String()
}

func (s *StageTitle) Update(time.Duration) error {
	if s.kb.JustPressed(input.Confirm) {
		s.flow.Scene.Set(state.SceneGame)
	}
	return nil
}

func (s *StageTitle) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	name := s.Name()
	ebitenutil.DebugPrintAt(screen, name, w/2-len(name)*3, h/2-8)
	ebitenutil.DebugPrintAt(screen, "Press Z", w/2-21, h/2+12)
}

func (s *StageTitle) OnEnter() {}
func (s *StageTitle) OnExit()  {}

// Ending steps through the ending images. Each image holds for a short
// sleep before the confirm key advances it; confirming the last image
// returns to the title with the stage reset.
type Ending struct {
	flow        *scene.Flow
	kb          input.Keyboard
	first, last int
	reset       state.Stage

	image int
	sleep timer.Timer
}

// NewEnding creates the ending screen; reset is the stage a new game
// starts from.
func NewEnding(flow *scene.Flow, kb input.Keyboard, cfg config.ScenesConfig, reset state.Stage) *Ending {
	return &Ending{
		flow:  flow,
		kb:    kb,
		first: cfg.EndingFirst,
		last:  cfg.EndingLast,
		reset: reset,
		sleep: timer.New(cfg.EndingSleep, timer.Once),
	}
}

// Image returns the number of the image on screen.
func (s *Ending) Image() int {
	return s.image
}

func (s *Ending) Update(dt time.Duration) error {
	s.sleep.Tick(dt)
	if !s.kb.JustPressed(input.Confirm) || !s.sleep.Finished() {
		return nil
	}

	if s.image >= s.last {
		s.flow.Scene.Set(state.SceneTitle)
		s.flow.Stage.Set(s.reset)
		return nil
	}
	s.image++
	s.sleep.Reset()
	return nil
}

func (s *Ending) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("scene_%d", s.image), 16, 16)
	if s.sleep.Finished() {
		ebitenutil.DebugPrintAt(screen, "Z: next", 16, screen.Bounds().Dy()-24)
	}
}

func (s *Ending) OnEnter() {
	s.image = s.first
	s.sleep.Reset()
}

func (s *Ending) OnExit() {}
