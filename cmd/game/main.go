// game is a side-scrolling platformer.
//
// Usage:
//
//	game                  - Open the game window
//	game replay <file>    - Re-run a recorded attempt without a window
//	game records          - List recent attempts
//
// Global flags:
//
//	--config <dir>     - Load configs from dir instead of the embedded defaults
//	--seed <value>     - Seed enemy decisions (0 = random per attempt)
//	--db <path>        - Record attempts in this SQLite database
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/application/system"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
	"github.com/younwookim/platformquest/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

var (
	// Global flags
	flagConfigDir string
	flagSeed      uint64
	flagDBPath    string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Platform Quest - a side-scrolling platformer",
	Long: `Platform Quest: walk, jump and fight through three stages.

Keys:
  Left/Right  walk
  X           jump
  Z           sword, confirm
  A / S / D   fire / ice / thunder

Examples:
  game
  game --stage Boss --record boss.mpk
  game replay boss.mpk
  game records --db ~/.platformquest/runs.db`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run records database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record each attempt's input to file (.json or .mpk); a directory or bare extension gets a timestamped name")
	rootCmd.Flags().StringVar(&flagStage, "stage", state.Stage1.String(), "Stage to start from")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(recordsCmd)
}

// newLogger builds the logger from --log-level.
func newLogger() (*log.Logger, error) {
	return logging.New(os.Stderr, flagLogLevel)
}

// loadConfig reads --config, or the embedded defaults when it is empty.
func loadConfig() (*config.GameConfig, map[state.Stage]*system.Stage, error) {
	var loader *config.Loader
	if flagConfigDir != "" {
		loader = config.NewLoader(flagConfigDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open embedded configs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	stages, err := system.LoadStages(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stages: %w", err)
	}
	return cfg, stages, nil
}
