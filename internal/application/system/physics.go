package system

import (
	"time"

	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/domain/tilemap"
	"github.com/younwookim/platformquest/internal/ecs"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

// Physics holds the per-tick constants of the kinematic model.
type Physics struct {
	TileSize    float64
	CharSize    float64
	Gravity     float64
	TimeStep    float64 // arc time added per tick
	MaxFallStep float64 // 0 disables the clamp
	Tick        time.Duration
}

// NewPhysics builds the constants from configuration.
func NewPhysics(cfg config.PhysicsConfig, tps int) Physics {
	return Physics{
		TileSize:    cfg.TileSize,
		CharSize:    cfg.CharacterSize,
		Gravity:     cfg.Gravity,
		TimeStep:    cfg.TimeStep,
		MaxFallStep: cfg.MaxFallStep,
		Tick:        config.DisplayConfig{TPS: tps}.Tick(),
	}
}

// Ticks converts a tick count to a duration.
func (ph Physics) Ticks(n int) time.Duration {
	return time.Duration(n) * ph.Tick
}

// CharacterSize returns the actor box size.
func (ph Physics) CharacterSize() collision.Vec2 {
	return collision.Vec2{X: ph.CharSize, Y: ph.CharSize}
}

// arcHeight is the height gained t into an arc launched at v0.
func (ph Physics) arcHeight(v0, t float64) float64 {
	return v0*t - 0.5*ph.Gravity*t*t
}

// PhysicsSystem moves the player against the map one axis at a time:
// horizontal first, then vertical, so a correction never mixes axes.
type PhysicsSystem struct {
	phys Physics
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(phys Physics) *PhysicsSystem {
	return &PhysicsSystem{phys: phys}
}

// Motion reports what happened to the player during one tick.
type Motion struct {
	BlockedX   bool
	Ungrounded bool
	Landed     bool
	Bumped     bool
}

// StartFall un-grounds the player without an upward impulse.
func StartFall(body *ecs.Body, p *ecs.Player) {
	p.Grounded = false
	p.ArcStartY = body.Pos.Y
	p.ArcForce = 0
	p.ArcTime = 0
	body.Vel.Y = 0
}

// StartJump launches the player with its jump force.
func StartJump(body *ecs.Body, p *ecs.Player) {
	p.Grounded = false
	p.ArcStartY = body.Pos.Y
	p.ArcForce = p.JumpForce
	p.ArcTime = 0
	body.Vel.Y = p.JumpForce
}

// MovePlayer applies one tick of walking and arc motion.
func (s *PhysicsSystem) MovePlayer(m *tilemap.Map, body *ecs.Body, p *ecs.Player, facing entity.Direction) Motion {
	var mo Motion

	x := body.Pos.X
	nextX := x
	if p.WantsWalk {
		nextX += facing.Sign() * p.WalkStep
	}
	p.WantsWalk = false

	nextX, mo.BlockedX = resolveX(m, *body, nextX)

	if p.Grounded && !m.Supported(body.BoxAt(nextX, body.Pos.Y)) {
		StartFall(body, p)
		mo.Ungrounded = true
	}
	body.Vel.X = nextX - x
	body.Pos.X = nextX

	if p.Grounded {
		body.Vel.Y = 0
		return mo
	}

	t := p.ArcTime + s.phys.TimeStep
	nextY := p.ArcStartY + s.phys.arcHeight(p.ArcForce, t)
	if s.phys.MaxFallStep > 0 && nextY < body.Pos.Y-s.phys.MaxFallStep {
		nextY = body.Pos.Y - s.phys.MaxFallStep
		p.ArcStartY = nextY - s.phys.arcHeight(p.ArcForce, t)
	}
	p.ArcTime = t
	body.Vel.Y = p.ArcForce - s.phys.Gravity*t

	dy := nextY - body.Pos.Y
	y, landed, bumped := resolveY(m, *body, nextX, nextY, dy)
	body.Pos.Y = y

	switch {
	case landed:
		p.Grounded = true
		p.ArcForce = 0
		p.ArcTime = 0
		body.Vel.Y = 0
		mo.Landed = true
	case bumped:
		StartFall(body, p)
		mo.Bumped = true
	}
	return mo
}

// resolveX cancels a horizontal move that runs into a wall side.
func resolveX(m *tilemap.Map, body ecs.Body, nextX float64) (float64, bool) {
	for _, c := range m.Walls(body.BoxAt(nextX, body.Pos.Y)) {
		if c.Side.Horizontal() {
			return body.Pos.X, true
		}
	}
	return nextX, false
}

// resolveY snaps a vertical move out of any wall it would enter.
//
// Falling lands on Top and Inside contacts, and also on Left/Right since
// near a corner the shallow axis is often the horizontal one. Rising stops
// under Bottom and Inside contacts. The snap target is the obstruction's
// edge, which is tile-aligned.
func resolveY(m *tilemap.Map, body ecs.Body, x, nextY, dy float64) (y float64, landed, bumped bool) {
	if dy == 0 {
		return nextY, false, false
	}

	half := body.Size.Y / 2
	top, bottom := 0.0, 0.0
	for _, c := range m.Walls(body.BoxAt(x, nextY)) {
		switch {
		case dy < 0 && c.Side != collision.Bottom:
			if !landed || c.Wall.Max().Y > top {
				top = c.Wall.Max().Y
			}
			landed = true
		case dy > 0 && (c.Side == collision.Bottom || c.Side == collision.Inside):
			if !bumped || c.Wall.Min().Y < bottom {
				bottom = c.Wall.Min().Y
			}
			bumped = true
		}
	}

	switch {
	case landed:
		return top + half, true, false
	case bumped:
		return bottom - half, false, true
	default:
		return nextY, false, false
	}
}
