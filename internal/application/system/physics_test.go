package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/ecs"
)

var pillarMap = []string{
	"AAAAAAAAAA",
	"AAAAAAAAAA",
	"AAAAACAAAA",
	"AAAAACAAAA",
	"CCCCCCCCCC",
	"CCCCCCCCCC",
}

var ceilingMap = []string{
	"AAAAAAAAAA",
	"AAAAAAAAAA",
	"AACAAAAAAA",
	"AAAAAAAAAA",
	"AAAAAAAAAA",
	"AAAAAAAAAA",
	"CCCCCCCCCC",
	"CCCCCCCCCC",
}

var ledgeMap = []string{
	"AAAAAAAAAA",
	"AAAAAAAAAA",
	"AAAAAAAAAA",
	"CCCCCAAAAA",
	"CCCCCCCCCC",
}

func TestMovePlayer_StandingStill(t *testing.T) {
	m := newTestMap(t, openMap)
	s := NewPhysicsSystem(testPhysics())
	body, p := testBody(64, 64), testPlayer()

	mo := s.MovePlayer(m, &body, &p, entity.DirRight)

	assert.Equal(t, Motion{}, mo)
	assert.Equal(t, 64.0, body.Pos.X)
	assert.Equal(t, 64.0, body.Pos.Y)
	assert.True(t, p.Grounded)
	assert.Equal(t, ecs.Grounded, ecs.StateOf(p, body))
}

func TestMovePlayer_Walk(t *testing.T) {
	m := newTestMap(t, openMap)
	s := NewPhysicsSystem(testPhysics())

	tests := []struct {
		name   string
		facing entity.Direction
		wantX  float64
	}{
		{"right", entity.DirRight, 68},
		{"left", entity.DirLeft, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, p := testBody(64, 64), testPlayer()
			p.WantsWalk = true

			s.MovePlayer(m, &body, &p, tt.facing)

			assert.Equal(t, tt.wantX, body.Pos.X)
			assert.Equal(t, 64.0, body.Pos.Y)
			assert.False(t, p.WantsWalk, "walk is consumed every tick")
		})
	}
}

func TestMovePlayer_WallCancelsHorizontalStep(t *testing.T) {
	m := newTestMap(t, pillarMap)
	s := NewPhysicsSystem(testPhysics())
	body, p := testBody(124, 64), testPlayer()

	p.WantsWalk = true
	mo := s.MovePlayer(m, &body, &p, entity.DirRight)
	require.False(t, mo.BlockedX, "touching the pillar is not a collision")
	assert.Equal(t, 128.0, body.Pos.X)

	p.WantsWalk = true
	mo = s.MovePlayer(m, &body, &p, entity.DirRight)
	assert.True(t, mo.BlockedX)
	assert.Equal(t, 128.0, body.Pos.X)
	assert.True(t, p.Grounded)
}

func TestMovePlayer_JumpVelocityTurnsNegativeAfter19Ticks(t *testing.T) {
	m := newTestMap(t, openMap)
	s := NewPhysicsSystem(testPhysics())
	body, p := testBody(64, 64), testPlayer()

	StartJump(&body, &p)
	require.Equal(t, ecs.Jumping, ecs.StateOf(p, body))

	for i := 1; i <= 18; i++ {
		s.MovePlayer(m, &body, &p, entity.DirRight)
		require.Greater(t, body.Vel.Y, 0.0, "tick %d", i)
	}

	s.MovePlayer(m, &body, &p, entity.DirRight)
	assert.Less(t, body.Vel.Y, 0.0)
	assert.Equal(t, ecs.Falling, ecs.StateOf(p, body))
	assert.False(t, p.Grounded)
}

func TestMovePlayer_ArcFollowsProjectileMotion(t *testing.T) {
	m := newTestMap(t, openMap)
	phys := testPhysics()
	s := NewPhysicsSystem(phys)
	body, p := testBody(64, 64), testPlayer()

	StartJump(&body, &p)
	for i := 1; i <= 10; i++ {
		s.MovePlayer(m, &body, &p, entity.DirRight)
		tt := float64(i) * phys.TimeStep
		want := 64 + 44*tt - 0.5*9.81*tt*tt
		assert.InDelta(t, want, body.Pos.Y, 1e-9, "tick %d", i)
	}
}

func TestMovePlayer_LandsExactlyOnWallTop(t *testing.T) {
	m := newTestMap(t, openMap)
	s := NewPhysicsSystem(testPhysics())
	body, p := testBody(64, 64), testPlayer()

	StartJump(&body, &p)
	landed := false
	for i := 0; i < 120 && !landed; i++ {
		landed = s.MovePlayer(m, &body, &p, entity.DirRight).Landed
	}

	require.True(t, landed)
	assert.Equal(t, 64.0, body.Pos.Y, "bottom edge sits on the wall top at 48")
	assert.Equal(t, 0.0, body.Vel.Y)
	assert.True(t, p.Grounded)
	assert.True(t, m.Supported(body.Box()))
}

func TestMovePlayer_HeadBump(t *testing.T) {
	m := newTestMap(t, ceilingMap)
	s := NewPhysicsSystem(testPhysics())
	body, p := testBody(64, 64), testPlayer()

	StartJump(&body, &p)
	var mo Motion
	for i := 0; i < 30 && !mo.Bumped; i++ {
		mo = s.MovePlayer(m, &body, &p, entity.DirRight)
	}

	require.True(t, mo.Bumped)
	assert.Equal(t, 128.0, body.Pos.Y, "top edge sits under the ceiling at 144")
	assert.Equal(t, 0.0, body.Vel.Y)
	assert.False(t, p.Grounded)

	for i := 0; i < 60 && !p.Grounded; i++ {
		s.MovePlayer(m, &body, &p, entity.DirRight)
	}
	assert.True(t, p.Grounded)
	assert.Equal(t, 64.0, body.Pos.Y)
}

func TestMovePlayer_WalkOffLedge(t *testing.T) {
	m := newTestMap(t, ledgeMap)
	s := NewPhysicsSystem(testPhysics())
	body, p := testBody(128, 64), testPlayer()

	var mo Motion
	steps := 0
	for !mo.Ungrounded && steps < 20 {
		p.WantsWalk = true
		mo = s.MovePlayer(m, &body, &p, entity.DirRight)
		steps++
	}

	require.True(t, mo.Ungrounded)
	assert.Equal(t, 160.0, body.Pos.X, "support holds until the box clears the ledge")
	assert.False(t, p.Grounded)

	for i := 0; i < 60 && !p.Grounded; i++ {
		s.MovePlayer(m, &body, &p, entity.DirRight)
	}
	assert.True(t, p.Grounded)
	assert.Equal(t, 32.0, body.Pos.Y)
}

func TestMovePlayer_FallStepIsClamped(t *testing.T) {
	m := newTestMap(t, []string{"AAAA", "AAAA"})
	phys := testPhysics()
	s := NewPhysicsSystem(phys)
	body, p := testBody(64, 2000), testPlayer()

	StartFall(&body, &p)
	prev := body.Pos.Y
	var dy float64
	for i := 0; i < 120; i++ {
		s.MovePlayer(m, &body, &p, entity.DirRight)
		dy = body.Pos.Y - prev
		assert.GreaterOrEqual(t, dy, -phys.MaxFallStep-1e-9)
		prev = body.Pos.Y
	}
	assert.InDelta(t, -phys.MaxFallStep, dy, 1e-9, "terminal step reached")
}

func TestResolveY_CornerContactLands(t *testing.T) {
	m := newTestMap(t, pillarMap)
	body := testBody(130, 100)

	// 2 units into the pillar sideways, 6 units vertically: classified Left
	y, landed, bumped := resolveY(m, body, 130, 90, -10)

	assert.True(t, landed)
	assert.False(t, bumped)
	assert.Equal(t, 128.0, y, "snapped onto the pillar top at 112")
}

func TestResolveY_RisingIgnoresTopContacts(t *testing.T) {
	m := newTestMap(t, openMap)
	body := testBody(64, 58)

	y, landed, bumped := resolveY(m, body, 64, 60, 2)

	assert.False(t, landed)
	assert.False(t, bumped)
	assert.Equal(t, 60.0, y)
}
