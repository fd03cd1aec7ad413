package system

import (
	"github.com/younwookim/platformquest/internal/application/input"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/ecs"
)

// attackKeys maps attack actions to weapon kinds, in spawn order.
var attackKeys = [...]struct {
	action input.Action
	kind   entity.WeaponKind
}{
	{input.Sword, entity.Sword},
	{input.Fire, entity.Fire},
	{input.Ice, entity.Ice},
	{input.Thunder, entity.Thunder},
}

// InputSystem is the player controller: it turns key state into facing,
// walk and jump changes on the player, and intents for everything else.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// UpdatePlayer reads kb for one tick. A dead player ignores all input.
func (s *InputSystem) UpdatePlayer(kb input.Keyboard, body *ecs.Body, p *ecs.Player, facing *entity.Direction) []Intent {
	if !p.Alive {
		return nil
	}

	if kb.Pressed(input.Left) {
		*facing = entity.DirLeft
		p.WantsWalk = true
	}
	if kb.Pressed(input.Right) {
		*facing = entity.DirRight
		p.WantsWalk = true
	}

	var intents []Intent
	if kb.JustPressed(input.Jump) && p.Grounded {
		StartJump(body, p)
		intents = append(intents, JumpIntent{Force: p.JumpForce})
	}

	for _, ak := range attackKeys {
		if kb.JustPressed(ak.action) {
			intents = append(intents, AttackIntent{Kind: ak.kind, Facing: *facing})
		}
	}
	return intents
}
