package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeKeyboard struct {
	held map[Action]bool
	edge map[Action]bool
}

func (f fakeKeyboard) Pressed(a Action) bool     { return f.held[a] }
func (f fakeKeyboard) JustPressed(a Action) bool { return f.edge[a] }

func TestCapture(t *testing.T) {
	kb := fakeKeyboard{
		held: map[Action]bool{Right: true, Jump: true},
		edge: map[Action]bool{Jump: true, Fire: true},
	}

	s := Capture(kb)

	assert.True(t, s.Pressed(Right))
	assert.True(t, s.Pressed(Jump))
	assert.False(t, s.Pressed(Left))
	assert.True(t, s.JustPressed(Jump))
	assert.True(t, s.JustPressed(Fire))
	assert.False(t, s.JustPressed(Right))
}

func TestSnapshot_With(t *testing.T) {
	s := Idle.With(Left, false).With(Thunder, true)

	assert.True(t, s.Pressed(Left))
	assert.False(t, s.JustPressed(Left))
	assert.True(t, s.Pressed(Thunder))
	assert.True(t, s.JustPressed(Thunder))
	assert.Equal(t, Snapshot{}, Idle, "With must not mutate the receiver")
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{Left, "Left"},
		{Jump, "Jump"},
		{Thunder, "Thunder"},
		{Confirm, "Confirm"},
		{Action(200), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.String())
		})
	}
}
