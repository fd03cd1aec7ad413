package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings maps actions to keys: arrows walk, X jumps, Z swings the
// sword and confirms, A/S/D cast fire, ice and thunder.
var DefaultBindings = map[Action][]ebiten.Key{
	Left:    {ebiten.KeyArrowLeft},
	Right:   {ebiten.KeyArrowRight},
	Jump:    {ebiten.KeyX},
	Sword:   {ebiten.KeyZ},
	Fire:    {ebiten.KeyA},
	Ice:     {ebiten.KeyS},
	Thunder: {ebiten.KeyD},
	Confirm: {ebiten.KeyZ, ebiten.KeyEnter},
}

// EbitenKeyboard reads the live ebiten key state.
type EbitenKeyboard struct {
	bindings map[Action][]ebiten.Key
}

// NewEbitenKeyboard creates a keyboard with the given bindings, or
// DefaultBindings when nil.
func NewEbitenKeyboard(bindings map[Action][]ebiten.Key) *EbitenKeyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &EbitenKeyboard{bindings: bindings}
}

// Pressed reports whether any key bound to a is held.
func (k *EbitenKeyboard) Pressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any key bound to a went down this tick.
func (k *EbitenKeyboard) JustPressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
