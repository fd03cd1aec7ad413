package system

import (
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/domain/tilemap"
	"github.com/younwookim/platformquest/internal/ecs"
)

// Decision choices. Ground enemies draw from the first three.
const (
	choiceStop = iota
	choiceRight
	choiceLeft
	choiceUp
	choiceDown
)

// EnemySystem drives enemy movement: a periodic random decision, then a
// walk step that walls, the left map edge and missing floor can veto.
type EnemySystem struct {
	phys Physics
	rng  Rand
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(phys Physics, rng Rand) *EnemySystem {
	return &EnemySystem{phys: phys, rng: rng}
}

// Update advances one enemy by one tick.
func (s *EnemySystem) Update(m *tilemap.Map, body *ecs.Body, e *ecs.Enemy, facing *entity.Direction) {
	body.Vel.X, body.Vel.Y = 0, 0

	e.MoveLifetime--
	if e.MoveLifetime <= 0 {
		e.MoveLifetime = e.Decision
		if e.Flying || e.Stop {
			e.Stop = false
			s.decide(e, facing)
		}
	}

	if e.Stop {
		return
	}

	nextX := body.Pos.X + facing.Sign()*e.WalkStep
	nextY := body.Pos.Y
	if e.Flying {
		switch e.Heading {
		case entity.Up:
			nextY += e.WalkStep
		case entity.Down:
			nextY -= e.WalkStep
		}
	}

	if nextX <= 0 || m.Blocked(body.BoxAt(nextX, nextY)) {
		e.Stop = true
		return
	}

	if e.Flying {
		top := float64(m.Rows()-1) * m.TileSize()
		if nextY <= 0 || nextY >= top {
			e.Stop = true
			return
		}
	} else {
		ahead := body.Pos.X + facing.Sign()*s.phys.TileSize
		if !m.Supported(body.BoxAt(ahead, body.Pos.Y)) {
			e.Stop = true
			return
		}
	}

	body.Vel.X = nextX - body.Pos.X
	body.Vel.Y = nextY - body.Pos.Y
	body.Pos.X = nextX
	body.Pos.Y = nextY
}

// decide draws the next behavior. A stop also picks a random facing.
func (s *EnemySystem) decide(e *ecs.Enemy, facing *entity.Direction) {
	choices := 3
	if e.Flying {
		choices = 5
	}

	e.Heading = entity.Level
	switch s.rng.IntN(choices) {
	case choiceStop:
		if s.rng.IntN(2) == 0 {
			*facing = entity.DirRight
		} else {
			*facing = entity.DirLeft
		}
		e.Stop = true
	case choiceRight:
		*facing = entity.DirRight
	case choiceLeft:
		*facing = entity.DirLeft
	case choiceUp:
		e.Heading = entity.Up
	case choiceDown:
		e.Heading = entity.Down
	}
}
