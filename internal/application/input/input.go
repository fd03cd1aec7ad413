// Package input maps physical keys to game actions and captures them per tick.
package input

// Action is a logical key.
type Action uint8

const (
	Left Action = iota
	Right
	Jump
	Sword
	Fire
	Ice
	Thunder
	Confirm
	actionCount
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Jump:
		return "Jump"
	case Sword:
		return "Sword"
	case Fire:
		return "Fire"
	case Ice:
		return "Ice"
	case Thunder:
		return "Thunder"
	case Confirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// Keyboard answers key queries for the current tick.
type Keyboard interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
}

// Snapshot is the frozen keyboard state of one tick.
type Snapshot struct {
	Held uint16
	Edge uint16
}

// Pressed reports whether a is held.
func (s Snapshot) Pressed(a Action) bool {
	return s.Held&(1<<a) != 0
}

// JustPressed reports whether a went down this tick.
func (s Snapshot) JustPressed(a Action) bool {
	return s.Edge&(1<<a) != 0
}

// With returns a copy with a held, and pressed this tick when edge is set.
func (s Snapshot) With(a Action, edge bool) Snapshot {
	s.Held |= 1 << a
	if edge {
		s.Edge |= 1 << a
	}
	return s
}

// Capture freezes k into a snapshot.
func Capture(k Keyboard) Snapshot {
	var s Snapshot
	for a := Action(0); a < actionCount; a++ {
		if k.Pressed(a) {
			s.Held |= 1 << a
		}
		if k.JustPressed(a) {
			s.Edge |= 1 << a
		}
	}
	return s
}

// Idle is a snapshot with nothing pressed.
var Idle = Snapshot{}
