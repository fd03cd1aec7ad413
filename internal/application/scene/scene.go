// Package scene defines the Scene interface for game screens.
//
// Each screen (title, loading, stage title, gameplay, ending) implements
// Scene. Screens never switch scenes themselves: they request a
// transition on the shared Flow and the game applies it between ticks.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/platformquest/internal/application/state"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
type Scene interface {
	// Update advances the scene by one tick of length dt.
	// Returns an error to terminate the game.
	Update(dt time.Duration) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Flow holds the two orthogonal state machines: which screen is shown
// and which stage is being played.
type Flow struct {
	Scene *state.Machine[state.Scene]
	Stage *state.Machine[state.Stage]
}

// NewFlow starts at the title screen with first as the stage to play.
func NewFlow(first state.Stage) *Flow {
	return &Flow{
		Scene: state.NewMachine(state.SceneTitle),
		Stage: state.NewMachine(first),
	}
}
