package ecs

import (
	"github.com/younwookim/platformquest/internal/application/timer"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/entity"
)

// Body is the kinematic state shared by every actor: center position,
// velocity and box size in world units.
type Body struct {
	Pos  collision.Vec2
	Vel  collision.Vec2
	Size collision.Vec2
}

// Box returns the body's bounding box at its current position.
func (b Body) Box() collision.Box {
	return collision.Box{Center: b.Pos, Size: b.Size}
}

// BoxAt returns the body's bounding box centered at (x, y).
func (b Body) BoxAt(x, y float64) collision.Box {
	return collision.NewBox(x, y, b.Size.X, b.Size.Y)
}

// PlayerState is the controller state derived from Player flags.
type PlayerState int

const (
	Grounded PlayerState = iota
	Jumping
	Falling
	Dead
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Jumping:
		return "Jumping"
	case Falling:
		return "Falling"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Player holds controller state.
//
// While airborne, height follows y = ArcStartY + ArcForce*t - g*t*t/2 with
// t = ArcTime; a fall without a jump has ArcForce 0.
type Player struct {
	WalkStep  float64
	JumpForce float64

	Alive     bool
	Grounded  bool
	WantsWalk bool

	ArcStartY float64
	ArcForce  float64
	ArcTime   float64

	DeathTimer timer.Timer
	DeathFired bool
}

// StateOf derives the controller state from the player and its body.
func StateOf(p Player, b Body) PlayerState {
	switch {
	case !p.Alive:
		return Dead
	case p.Grounded:
		return Grounded
	case b.Vel.Y > 0:
		return Jumping
	default:
		return Falling
	}
}

// Enemy holds AI state.
type Enemy struct {
	Kind         entity.EnemyKind
	WalkStep     float64
	Flying       bool
	Decision     int // ticks between decisions
	MoveLifetime int // ticks remaining before the next decision
	Stop         bool
	Heading      entity.Vertical
}

// Weapon holds a live hit-volume.
type Weapon struct {
	Kind     entity.WeaponKind
	Lifetime timer.Timer
	Warmup   timer.Timer
}

// Sprite is cosmetic animation state. Physics never reads it.
type Sprite struct {
	First, Last int
	Frame       int
	FlipX       bool
	Anim        timer.Timer
}
