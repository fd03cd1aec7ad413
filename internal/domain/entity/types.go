package entity

// Direction is a horizontal facing.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// Sign returns +1 for right and -1 for left.
func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

// Opposite returns the reverse facing.
func (d Direction) Opposite() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Vertical is the flight heading of a flying enemy.
type Vertical int

const (
	Level Vertical = iota
	Up
	Down
)

// EnemyKind identifies an enemy type.
type EnemyKind int

const (
	Slime EnemyKind = iota
	Lizard
	FlyingDemon
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case Slime:
		return "slime"
	case Lizard:
		return "lizard"
	case FlyingDemon:
		return "demon"
	default:
		return "unknown"
	}
}

// ParseEnemyKind returns the kind named s.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	for _, k := range []EnemyKind{Slime, Lizard, FlyingDemon} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// WeaponKind identifies a weapon type.
type WeaponKind int

const (
	Sword WeaponKind = iota
	Fire
	Ice
	Thunder
)

// WeaponKinds lists every weapon kind in spawn order.
var WeaponKinds = [...]WeaponKind{Sword, Fire, Ice, Thunder}

// String returns the string representation of the weapon kind
func (k WeaponKind) String() string {
	switch k {
	case Sword:
		return "sword"
	case Fire:
		return "fire"
	case Ice:
		return "ice"
	case Thunder:
		return "thunder"
	default:
		return "unknown"
	}
}

// DespawnsOnHit reports whether the weapon is consumed by its first hit.
func (k WeaponKind) DespawnsOnHit() bool {
	return k == Fire || k == Ice
}
