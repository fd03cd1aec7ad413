// Package state holds the scene and stage enumerations and the pending
// transition machine that drives them.
package state

// Scene represents the current screen of the game
type Scene int

const (
	SceneTitle Scene = iota
	SceneLoading
	SceneStageTitle
	SceneGame
	SceneEnding
)

// String returns the string representation of the scene
func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "Title"
	case SceneLoading:
		return "Loading"
	case SceneStageTitle:
		return "StageTitle"
	case SceneGame:
		return "Game"
	case SceneEnding:
		return "Ending"
	default:
		return "Unknown"
	}
}

// Stage represents the current stage of a run
type Stage int

const (
	Stage1 Stage = iota
	Stage2
	StageBoss
)

// String returns the string representation of the stage
func (s Stage) String() string {
	switch s {
	case Stage1:
		return "Stage1"
	case Stage2:
		return "Stage2"
	case StageBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// ParseStage returns the stage named s (case-sensitive, as printed by String).
func ParseStage(s string) (Stage, bool) {
	for _, st := range []Stage{Stage1, Stage2, StageBoss} {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}
