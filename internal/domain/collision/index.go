package collision

import (
	"math"

	"github.com/solarlune/resolv"
)

var tagActor = resolv.NewTag("actor")

// Index is a broadphase over actor boxes keyed by K.
//
// The resolv space only narrows the search to nearby cells. Every candidate
// is confirmed with Overlap, so coincident and nested boxes are hits and
// touching edges are not, the same as the tile passes.
type Index[K comparable] struct {
	space  *resolv.Space
	origin Vec2

	shapes map[K]resolv.IShape
	keys   map[resolv.IShape]K
	boxes  map[K]Box

	search     resolv.IShape
	searchSize Vec2
}

// NewIndex creates an index covering bounds, partitioned into square cells.
func NewIndex[K comparable](bounds Box, cellSize int) *Index[K] {
	min := bounds.Min()
	w := int(math.Ceil(bounds.Size.X))
	h := int(math.Ceil(bounds.Size.Y))

	return &Index[K]{
		space:  resolv.NewSpace(w, h, cellSize, cellSize),
		origin: min,
		shapes: make(map[K]resolv.IShape),
		keys:   make(map[resolv.IShape]K),
		boxes:  make(map[K]Box),
	}
}

// local converts a box center to space coordinates.
func (ix *Index[K]) local(b Box) (float64, float64) {
	return b.Center.X - ix.origin.X, b.Center.Y - ix.origin.Y
}

// Set inserts key or moves it to b.
func (ix *Index[K]) Set(key K, b Box) {
	x, y := ix.local(b)

	if sh, ok := ix.shapes[key]; ok && ix.boxes[key].Size == b.Size {
		sh.SetPosition(x, y)
		ix.boxes[key] = b
		return
	}
	ix.Remove(key)

	sh := resolv.NewRectangle(x, y, b.Size.X, b.Size.Y)
	sh.Tags().Set(tagActor)
	ix.space.Add(sh)

	ix.shapes[key] = sh
	ix.keys[sh] = key
	ix.boxes[key] = b
}

// Remove drops key from the index. Unknown keys are ignored.
func (ix *Index[K]) Remove(key K) {
	sh, ok := ix.shapes[key]
	if !ok {
		return
	}
	ix.space.Remove(sh)
	delete(ix.shapes, key)
	delete(ix.keys, sh)
	delete(ix.boxes, key)
}

// Retain removes every key for which keep returns false.
func (ix *Index[K]) Retain(keep func(K) bool) {
	for key := range ix.shapes {
		if !keep(key) {
			ix.Remove(key)
		}
	}
}

// Len returns the number of indexed keys.
func (ix *Index[K]) Len() int {
	return len(ix.shapes)
}

// Query calls fn for every indexed box overlapping b, with the side of b
// relative to that box. Returning false from fn stops the query.
func (ix *Index[K]) Query(b Box, fn func(key K, side Side) bool) {
	if len(ix.shapes) == 0 {
		return
	}

	x, y := ix.local(b)
	if ix.search == nil || ix.searchSize != b.Size {
		if ix.search != nil {
			ix.space.Remove(ix.search)
		}
		ix.search = resolv.NewRectangle(x, y, b.Size.X, b.Size.Y)
		ix.searchSize = b.Size
		ix.space.Add(ix.search)
	}
	ix.search.SetPosition(x, y)

	// ShapeFilter.ForEach ignores the callback's result, so stopping is tracked here.
	done := false
	ix.search.SelectTouchingCells(1).FilterShapes().ByTags(tagActor).ForEach(func(sh resolv.IShape) bool {
		if done || sh == ix.search {
			return true
		}
		key, ok := ix.keys[sh]
		if !ok {
			return true
		}
		side, hit := Overlap(b, ix.boxes[key])
		if hit && !fn(key, side) {
			done = true
		}
		return true
	})
}

// First returns the first indexed key overlapping b.
func (ix *Index[K]) First(b Box) (K, bool) {
	var found K
	var ok bool
	ix.Query(b, func(key K, _ Side) bool {
		found, ok = key, true
		return false
	})
	return found, ok
}
