package system

import "github.com/younwookim/platformquest/internal/domain/entity"

// Intent represents an action the player controller wants performed
// outside the player's own components.
type Intent interface {
	isIntent()
}

// AttackIntent asks the weapon subsystem to spawn a weapon.
type AttackIntent struct {
	Kind   entity.WeaponKind
	Facing entity.Direction
}

func (AttackIntent) isIntent() {}

// JumpIntent records that a jump started this tick.
type JumpIntent struct {
	Force float64
}

func (JumpIntent) isIntent() {}
