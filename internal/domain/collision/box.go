// Package collision provides axis-aligned box overlap tests.
//
// Boxes are center-anchored in world units with y pointing up, matching
// the tile map where row 0 is ground level.
package collision

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box described by its center and size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{Center: Vec2{X: cx, Y: cy}, Size: Vec2{X: w, Y: h}}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// At returns a copy of the box moved to the given center.
func (b Box) At(x, y float64) Box {
	b.Center = Vec2{X: x, Y: y}
	return b
}

// Side classifies where box A touches box B.
type Side int

const (
	SideNone Side = iota
	Left          // A is left of B
	Right         // A is right of B
	Top           // A is above B
	Bottom        // A is below B
	Inside        // no single axis dominates
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Inside:
		return "Inside"
	default:
		return "None"
	}
}

// Horizontal reports whether the side is Left or Right.
func (s Side) Horizontal() bool {
	return s == Left || s == Right
}

// Overlap tests a against b. Touching edges do not overlap.
//
// On overlap it returns the side of least penetration. An axis where one
// box spans the other has infinite depth, so full containment and equal
// depths on both axes classify as Inside.
func Overlap(a, b Box) (Side, bool) {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()

	if !(amin.X < bmax.X && amax.X > bmin.X && amin.Y < bmax.Y && amax.Y > bmin.Y) {
		return SideNone, false
	}

	xSide, xDepth := Inside, math.Inf(1)
	switch {
	case amin.X < bmin.X && amax.X > bmin.X && amax.X < bmax.X:
		xSide, xDepth = Left, amax.X-bmin.X
	case amin.X > bmin.X && amin.X < bmax.X && amax.X > bmax.X:
		xSide, xDepth = Right, bmax.X-amin.X
	}

	ySide, yDepth := Inside, math.Inf(1)
	switch {
	case amin.Y < bmin.Y && amax.Y > bmin.Y && amax.Y < bmax.Y:
		ySide, yDepth = Bottom, amax.Y-bmin.Y
	case amin.Y > bmin.Y && amin.Y < bmax.Y && amax.Y > bmax.Y:
		ySide, yDepth = Top, bmax.Y-amin.Y
	}

	switch {
	case yDepth < xDepth:
		return ySide, true
	case xDepth < yDepth:
		return xSide, true
	default:
		return Inside, true
	}
}
