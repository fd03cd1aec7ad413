package screens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/platformquest/internal/application/input"
	"github.com/younwookim/platformquest/internal/application/scene"
	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

const tick = time.Second / 60

var confirm = input.Idle.With(input.Confirm, true)

func TestScenesImplementScene(t *testing.T) {
	var _ scene.Scene = (*Title)(nil)
	var _ scene.Scene = (*Loading)(nil)
	var _ scene.Scene = (*StageTitle)(nil)
	var _ scene.Scene = (*Ending)(nil)
}

func TestTitle_ConfirmRequestsLoading(t *testing.T) {
	flow := scene.NewFlow(state.Stage1)
	kb := &input.Snapshot{}
	s := NewTitle(flow, kb, "Platform Quest")

	assert.NoError(t, s.Update(tick))
	_, pending := flow.Scene.Pending()
	assert.False(t, pending)

	*kb = input.Idle.With(input.Confirm, false)
	assert.NoError(t, s.Update(tick))
	_, pending = flow.Scene.Pending()
	assert.False(t, pending, "holding the key is not a press")

	*kb = confirm
	assert.NoError(t, s.Update(tick))
	next, pending := flow.Scene.Pending()
	assert.True(t, pending)
	assert.Equal(t, state.SceneLoading, next)
	assert.Equal(t, state.SceneTitle, flow.Scene.Current(), "applied by the game, not the scene")
}

func TestLoading_WaitsForDelay(t *testing.T) {
	flow := scene.NewFlow(state.Stage1)
	s := NewLoading(flow, time.Second)
	s.OnEnter()

	for i := 0; i < 59; i++ {
		assert.NoError(t, s.Update(tick))
	}
	_, pending := flow.Scene.Pending()
	assert.False(t, pending)

	// 60 truncated ticks fall just short of a second
	s.Update(tick)
	s.Update(tick)
	next, pending := flow.Scene.Pending()
	assert.True(t, pending)
	assert.Equal(t, state.SceneStageTitle, next)
}

func TestLoading_RestartsOnEnter(t *testing.T) {
	flow := scene.NewFlow(state.Stage1)
	s := NewLoading(flow, 100*time.Millisecond)

	s.OnEnter()
	s.Update(time.Second)
	flow.Scene.Apply()

	s.OnEnter()
	s.Update(50 * time.Millisecond)
	_, pending := flow.Scene.Pending()
	assert.False(t, pending)

	s.Update(50 * time.Millisecond)
	_, pending = flow.Scene.Pending()
	assert.True(t, pending)
}

func TestStageTitle(t *testing.T) {
	flow := scene.NewFlow(state.Stage2)
	kb := &input.Snapshot{}
	s := NewStageTitle(flow, kb, map[state.Stage]string{state.Stage1: "Stage 1", state.Stage2: "Stage 2"})

	assert.Equal(t, "Stage 2", s.Name())

	flow.Stage.Set(state.StageBoss)
	flow.Stage.Apply()
	assert.Equal(t, "Boss", s.Name(), "falls back to the stage id")

	*kb = confirm
	s.Update(tick)
	next, pending := flow.Scene.Pending()
	assert.True(t, pending)
	assert.Equal(t, state.SceneGame, next)
}

func TestEnding_StepsThroughImages(t *testing.T) {
	flow := scene.NewFlow(state.StageBoss)
	kb := &input.Snapshot{}
	s := NewEnding(flow, kb, config.ScenesConfig{
		EndingFirst: 5,
		EndingLast:  7,
		EndingSleep: 100 * time.Millisecond,
	}, state.Stage1)
	s.OnEnter()
	assert.Equal(t, 5, s.Image())

	*kb = confirm
	s.Update(50 * time.Millisecond)
	assert.Equal(t, 5, s.Image(), "confirm ignored during the sleep")

	s.Update(50 * time.Millisecond)
	assert.Equal(t, 6, s.Image())

	s.Update(10 * time.Millisecond)
	assert.Equal(t, 6, s.Image(), "sleep restarts per image")

	s.Update(100 * time.Millisecond)
	assert.Equal(t, 7, s.Image())
	_, pending := flow.Scene.Pending()
	assert.False(t, pending)

	s.Update(100 * time.Millisecond)
	next, pending := flow.Scene.Pending()
	assert.True(t, pending)
	assert.Equal(t, state.SceneTitle, next)
	stage, pending := flow.Stage.Pending()
	assert.True(t, pending)
	assert.Equal(t, state.Stage1, stage)
}

func TestEnding_OnEnterRewinds(t *testing.T) {
	flow := scene.NewFlow(state.StageBoss)
	kb := &input.Snapshot{}
	s := NewEnding(flow, kb, config.ScenesConfig{EndingFirst: 5, EndingLast: 14}, state.Stage1)
	s.OnEnter()

	*kb = confirm
	s.Update(tick)
	s.Update(tick)
	assert.Equal(t, 7, s.Image())

	s.OnEnter()
	assert.Equal(t, 5, s.Image())
}
