package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformquest/internal/application/game"
	"github.com/younwookim/platformquest/internal/application/input"
	"github.com/younwookim/platformquest/internal/application/replay"
	"github.com/younwookim/platformquest/internal/application/scene"
	"github.com/younwookim/platformquest/internal/application/scene/playing"
	"github.com/younwookim/platformquest/internal/application/scene/screens"
	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
	"github.com/younwookim/platformquest/internal/infrastructure/storage"
)

var (
	flagRecord string
	flagStage  string
)

func runGame(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cfg, stages, err := loadConfig()
	if err != nil {
		return err
	}

	first, ok := state.ParseStage(flagStage)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrUnknownStage, flagStage)
	}

	opts := playing.Options{Seed: flagSeed, RecordPath: recordPath(flagRecord)}
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run records", "error", err)
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	names := make(map[state.Stage]string, len(stages))
	for id, st := range stages {
		names[id] = st.Name
	}

	kb := input.NewEbitenKeyboard(input.DefaultBindings)
	flow := scene.NewFlow(first)
	scenes := map[state.Scene]scene.Scene{
		state.SceneTitle:      screens.NewTitle(flow, kb, cfg.Display.Title),
		state.SceneLoading:    screens.NewLoading(flow, cfg.Scenes.LoadingDelay),
		state.SceneStageTitle: screens.NewStageTitle(flow, kb, names),
		state.SceneGame:       playing.New(cfg, stages, flow, kb, logger, opts),
		state.SceneEnding:     screens.NewEnding(flow, kb, cfg.Scenes, state.Stage1),
	}

	g, err := game.New(flow, scenes, logger, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	if err != nil {
		return err
	}
	defer g.Shutdown()
	g.SetDT(cfg.Display.Tick())

	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	logger.Info("starting", "stage", first, "stages", len(stages), "tps", cfg.Display.TPS)
	return ebiten.RunGame(g)
}

// recordPath resolves the --record value. A directory or a bare extension
// such as ".mpk" gets a timestamped file name.
func recordPath(v string) string {
	if v == "" {
		return ""
	}
	if strings.HasSuffix(v, string(filepath.Separator)) || isDir(v) {
		return filepath.Join(v, replay.GenerateFilename(".json"))
	}
	if strings.HasPrefix(v, ".") && filepath.Ext(v) == v {
		return replay.GenerateFilename(v)
	}
	return v
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
