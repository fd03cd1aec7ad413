package system

import (
	"time"

	"github.com/younwookim/platformquest/internal/application/timer"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/ecs"
)

// DeadFrame is the sprite frame shown for a dead player.
const DeadFrame = 4

// AnimationSystem advances cosmetic sprite state. It reads bodies and
// facings but writes only Sprite components.
type AnimationSystem struct {
	frameTime time.Duration
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(frameTime time.Duration) *AnimationSystem {
	return &AnimationSystem{frameTime: frameTime}
}

// Update advances every sprite by dt.
func (s *AnimationSystem) Update(w *ecs.World, dt time.Duration) {
	for id, sp := range w.Sprite {
		if sp.Anim.Duration() == 0 {
			sp.Anim = timer.New(s.frameTime, timer.Repeating)
			sp.First, sp.Last = framesFor(w, id)
		}

		facing := w.Facing[id]
		sp.FlipX = facing == entity.DirLeft

		if p, ok := w.PlayerData[id]; ok && !p.Alive {
			sp.Frame = DeadFrame
			sp.FlipX = !sp.FlipX
			w.Sprite[id] = sp
			continue
		}

		moving := w.Body[id].Vel.X != 0 || w.Body[id].Vel.Y != 0
		if !moving {
			sp.Frame = sp.First
			w.Sprite[id] = sp
			continue
		}

		if wraps := sp.Anim.Tick(dt).Wraps(); wraps > 0 {
			span := sp.Last - sp.First + 1
			sp.Frame = sp.First + (sp.Frame-sp.First+wraps)%span
		}
		w.Sprite[id] = sp
	}
}

func framesFor(w *ecs.World, id ecs.EntityID) (first, last int) {
	switch {
	case has(w.IsPlayer, id):
		return 0, 3
	case has(w.IsEnemy, id):
		return 0, 1
	default:
		return 0, 0
	}
}

func has(m map[ecs.EntityID]struct{}, id ecs.EntityID) bool {
	_, ok := m[id]
	return ok
}
