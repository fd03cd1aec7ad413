package replay

import (
	"fmt"

	"github.com/younwookim/platformquest/internal/application/sim"
	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/application/system"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

// Result is the end state of a headless replay.
type Result struct {
	Stage   state.Stage
	Seed    uint64
	Frames  int // frames played
	Total   int // frames in the recording
	Ticks   int
	Kills   int
	Died    sim.DeathCause
	Cleared bool
	Player  collision.Vec2
}

// Run replays data against a fresh simulation of its stage without a
// window. Playback stops when the frames run out, the stage is cleared
// or the death timer expires.
func Run(cfg *config.GameConfig, stages map[state.Stage]*system.Stage, data ReplayData) (Result, error) {
	id, ok := state.ParseStage(data.Stage)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", config.ErrUnknownStage, data.Stage)
	}
	st, ok := stages[id]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s not loaded", config.ErrUnknownStage, id)
	}

	r := NewReplayer(data)
	s := sim.New(cfg, st, system.NewRand(r.Seed()))
	defer s.Close()

	res := Result{Stage: id, Seed: r.Seed(), Total: r.TotalFrames()}
	for {
		kb, ok := r.Next()
		if !ok {
			break
		}
		ev := s.Step(kb)
		res.Kills += len(ev.Kills)
		if ev.Died != sim.CauseNone {
			res.Died = ev.Died
		}
		if ev.Cleared {
			res.Cleared = true
			break
		}
		if ev.DeathExpired {
			break
		}
	}

	res.Frames = r.CurrentFrame()
	res.Ticks = s.Tick()
	if pid, ok := s.World().Player(); ok {
		res.Player = s.World().Body[pid].Pos
	}
	return res, nil
}
