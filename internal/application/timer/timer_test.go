package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const tick = time.Second / 60

func TestOnce_FinishesAfterDuration(t *testing.T) {
	tm := New(30*tick, Once)

	for i := 0; i < 29; i++ {
		tm.Tick(tick)
		assert.False(t, tm.Finished(), "tick %d", i+1)
	}

	tm.Tick(tick)
	assert.True(t, tm.Finished())
	assert.True(t, tm.JustFinished())
	assert.Equal(t, time.Duration(0), tm.Remaining())

	tm.Tick(tick)
	assert.True(t, tm.Finished())
	assert.False(t, tm.JustFinished(), "JustFinished only fires once")
}

func TestOnce_Reset(t *testing.T) {
	tm := New(2*time.Second, Once)
	tm.Tick(3 * time.Second)
	assert.True(t, tm.Finished())
	assert.Equal(t, 2*time.Second, tm.Elapsed())

	tm.Reset()
	assert.False(t, tm.Finished())
	assert.Equal(t, time.Duration(0), tm.Elapsed())
	assert.Equal(t, 2*time.Second, tm.Remaining())
}

func TestRepeating_Wraps(t *testing.T) {
	tm := New(100*time.Millisecond, Repeating)

	assert.False(t, tm.Tick(60*time.Millisecond).Finished())
	assert.True(t, tm.Tick(60*time.Millisecond).Finished())
	assert.Equal(t, 20*time.Millisecond, tm.Elapsed())
	assert.Equal(t, 1, tm.Wraps())

	assert.False(t, tm.Tick(10*time.Millisecond).Finished(), "finished resets after the wrap tick")

	tm.Tick(250 * time.Millisecond)
	assert.True(t, tm.JustFinished())
	assert.Equal(t, 2, tm.Wraps())
	assert.Equal(t, 80*time.Millisecond, tm.Elapsed())
}

func TestRepeating_ZeroDuration(t *testing.T) {
	tm := New(0, Repeating)
	assert.True(t, tm.Tick(tick).Finished())
	assert.Equal(t, time.Duration(0), tm.Elapsed())
}
