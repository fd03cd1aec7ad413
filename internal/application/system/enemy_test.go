package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/ecs"
)

// platformMap has ground only under columns 0-9, a wall at column 0 and a
// lone block at column 14.
var platformMap = []string{
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"CAAAAAAAAAAAAACAAAAA",
	"CCCCCCCCCCAAAACAAAAA",
	"CCCCCCCCCCAAAACAAAAA",
}

func groundEnemy(walk float64, lifetime int) ecs.Enemy {
	return ecs.Enemy{Kind: entity.Slime, WalkStep: walk, Decision: 30, MoveLifetime: lifetime}
}

func TestEnemy_WalksInFacingDirection(t *testing.T) {
	m := newTestMap(t, platformMap)
	s := NewEnemySystem(testPhysics(), &fixedRand{vals: []int{0}})
	body, e := testBody(128, 64), groundEnemy(4, 30)
	facing := entity.DirLeft

	s.Update(m, &body, &e, &facing)

	assert.Equal(t, 124.0, body.Pos.X)
	assert.Equal(t, -4.0, body.Vel.X)
	assert.Equal(t, 29, e.MoveLifetime)
	assert.False(t, e.Stop)
}

func TestEnemy_StopsAtPlatformEdge(t *testing.T) {
	m := newTestMap(t, platformMap)
	s := NewEnemySystem(testPhysics(), &fixedRand{vals: []int{choiceStop, 0}})
	body, e := testBody(192, 64), groundEnemy(1, 30)
	facing := entity.DirRight

	for i := 0; i < 200; i++ {
		s.Update(m, &body, &e, &facing)
		require.True(t, m.Supported(body.Box()), "tick %d: enemy left the platform", i)
	}

	assert.True(t, e.Stop)
	assert.Equal(t, 288.0, body.Pos.X, "last column with floor")
}

func TestEnemy_WallStops(t *testing.T) {
	m := newTestMap(t, platformMap)
	s := NewEnemySystem(testPhysics(), &fixedRand{vals: []int{0}})
	// column 0 holds a wall at row 2; the enemy stands just right of it
	body, e := testBody(32, 64), groundEnemy(4, 30)
	facing := entity.DirLeft

	s.Update(m, &body, &e, &facing)

	assert.True(t, e.Stop)
	assert.Equal(t, 32.0, body.Pos.X)
	assert.Equal(t, 0.0, body.Vel.X)
}

func TestEnemy_LeftBoundaryStops(t *testing.T) {
	m := newTestMap(t, []string{"AAAA", "AAAA", "CCCC"})
	s := NewEnemySystem(testPhysics(), &fixedRand{vals: []int{0}})
	body, e := testBody(2, 32), groundEnemy(4, 30)
	facing := entity.DirLeft

	s.Update(m, &body, &e, &facing)

	assert.True(t, e.Stop)
	assert.Equal(t, 2.0, body.Pos.X)
}

func TestEnemy_DecisionOnlyWhenStopped(t *testing.T) {
	m := newTestMap(t, platformMap)
	rng := &fixedRand{vals: []int{choiceLeft}}
	s := NewEnemySystem(testPhysics(), rng)
	body, e := testBody(128, 64), groundEnemy(1, 1)
	facing := entity.DirRight

	s.Update(m, &body, &e, &facing)
	assert.Equal(t, 0, rng.calls, "walking enemies keep their course")
	assert.Equal(t, 30, e.MoveLifetime, "countdown resets")
	assert.Equal(t, entity.DirRight, facing)

	e.Stop = true
	e.MoveLifetime = 1
	s.Update(m, &body, &e, &facing)
	assert.Equal(t, 1, rng.calls)
	assert.Equal(t, entity.DirLeft, facing)
	assert.False(t, e.Stop)
}

func TestEnemy_DecisionTable(t *testing.T) {
	tests := []struct {
		name        string
		flying      bool
		vals        []int
		wantFacing  entity.Direction
		wantStop    bool
		wantHeading entity.Vertical
	}{
		{"stop facing right", false, []int{choiceStop, 0}, entity.DirRight, true, entity.Level},
		{"stop facing left", false, []int{choiceStop, 1}, entity.DirLeft, true, entity.Level},
		{"face right", false, []int{choiceRight}, entity.DirRight, false, entity.Level},
		{"face left", false, []int{choiceLeft}, entity.DirLeft, false, entity.Level},
		{"ground enemies never fly", false, []int{choiceUp, 0}, entity.DirRight, true, entity.Level},
		{"fly up", true, []int{choiceUp}, entity.DirLeft, false, entity.Up},
		{"fly down", true, []int{choiceDown}, entity.DirLeft, false, entity.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewEnemySystem(testPhysics(), &fixedRand{vals: tt.vals})
			e := ecs.Enemy{Flying: tt.flying}
			facing := entity.DirLeft

			s.decide(&e, &facing)

			assert.Equal(t, tt.wantFacing, facing)
			assert.Equal(t, tt.wantStop, e.Stop)
			assert.Equal(t, tt.wantHeading, e.Heading)
		})
	}
}

func TestEnemy_FlyingIgnoresFloor(t *testing.T) {
	m := newTestMap(t, platformMap)
	s := NewEnemySystem(testPhysics(), &fixedRand{vals: []int{choiceUp}})
	body := testBody(352, 96)
	e := ecs.Enemy{Kind: entity.FlyingDemon, WalkStep: 2, Flying: true, Decision: 30, MoveLifetime: 1}
	facing := entity.DirRight

	s.Update(m, &body, &e, &facing)

	assert.False(t, e.Stop)
	assert.Equal(t, entity.Up, e.Heading)
	assert.Equal(t, 354.0, body.Pos.X)
	assert.Equal(t, 98.0, body.Pos.Y)
}

func TestEnemy_FlyingBlockedByWall(t *testing.T) {
	m := newTestMap(t, platformMap)
	s := NewEnemySystem(testPhysics(), &fixedRand{vals: []int{0}})
	// column 14 is solid up to row 2; fly into it from the left
	body := testBody(414, 64)
	e := ecs.Enemy{Kind: entity.FlyingDemon, WalkStep: 4, Flying: true, Decision: 30, MoveLifetime: 30}
	facing := entity.DirRight

	s.Update(m, &body, &e, &facing)

	assert.True(t, e.Stop)
	assert.Equal(t, 414.0, body.Pos.X)
}
