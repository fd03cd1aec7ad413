package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformquest/internal/application/replay"
	"github.com/younwookim/platformquest/internal/application/sim"
	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/application/system"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded attempt without a window",
	Long: `Load a recording made with --record and run it through the
simulation headless, then print how the attempt ended.

Examples:
  game replay attempt.json
  game replay attempt.mpk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		cfg, stages, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := replay.Load(args[0])
		if err != nil {
			return err
		}
		logger.Debug("replay loaded", "file", args[0], "frames", len(data.Frames), "seed", data.Seed)

		return runReplay(cmd.OutOrStdout(), cfg, stages, *data)
	},
}

// runReplay plays data and writes a summary to w.
func runReplay(w io.Writer, cfg *config.GameConfig, stages map[state.Stage]*system.Stage, data replay.ReplayData) error {
	res, err := replay.Run(cfg, stages, data)
	if err != nil {
		return err
	}

	outcome := "incomplete"
	switch {
	case res.Cleared:
		outcome = "cleared"
	case res.Died != sim.CauseNone:
		outcome = "died (" + res.Died.String() + ")"
	}

	fmt.Fprintf(w, "Stage:   %s\n", res.Stage)
	fmt.Fprintf(w, "Seed:    %d\n", res.Seed)
	fmt.Fprintf(w, "Frames:  %d/%d\n", res.Frames, res.Total)
	fmt.Fprintf(w, "Outcome: %s\n", outcome)
	fmt.Fprintf(w, "Kills:   %d\n", res.Kills)
	fmt.Fprintf(w, "Player:  (%.1f, %.1f)\n", res.Player.X, res.Player.Y)
	return nil
}
