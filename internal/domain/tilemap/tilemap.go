// Package tilemap decodes stage character grids into a solid/background tile map.
package tilemap

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/platformquest/internal/domain/collision"
)

// Cell is the content of one map cell.
type Cell uint8

const (
	Empty Cell = iota
	BackgroundA
	BackgroundB
	Wall
)

// String returns the string representation of the cell
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case BackgroundA:
		return "BackgroundA"
	case BackgroundB:
		return "BackgroundB"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Solid reports whether the cell blocks movement on both axes.
func (c Cell) Solid() bool {
	return c == Wall
}

// Variant selects the texture set a map is drawn with.
type Variant int

const (
	VariantStage1 Variant = iota
	VariantStage2
)

var (
	ErrEmptyMap    = errors.New("tilemap: no rows")
	ErrRaggedRows  = errors.New("tilemap: rows differ in width")
	ErrUnknownCell = errors.New("tilemap: unknown cell character")
	ErrBadTileSize = errors.New("tilemap: tile size must be positive")
)

// cellFor maps the source alphabet to cells.
func cellFor(ch byte) (Cell, bool) {
	switch ch {
	case 'A':
		return BackgroundA, true
	case 'B':
		return BackgroundB, true
	case 'C':
		return Wall, true
	default:
		return Empty, false
	}
}

// Map is a decoded tile grid. Row 0 is ground level; tile (col, row) is
// centered at (col*TileSize, row*TileSize).
type Map struct {
	cols     int
	rows     int
	cells    []Cell
	tileSize float64
	variant  Variant
}

// Decode builds a map from rows given top row first. The row order is
// inverted once so that the last source row becomes row 0.
func Decode(rows []string, tileSize float64, variant Variant) (*Map, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	if tileSize <= 0 {
		return nil, ErrBadTileSize
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrEmptyMap
	}

	m := &Map{
		cols:     cols,
		rows:     len(rows),
		cells:    make([]Cell, cols*len(rows)),
		tileSize: tileSize,
		variant:  variant,
	}

	for i, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(line), cols)
		}
		row := len(rows) - 1 - i
		for col := 0; col < cols; col++ {
			c, ok := cellFor(line[col])
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownCell, line[col], i, col)
			}
			m.cells[row*cols+col] = c
		}
	}

	return m, nil
}

// Cols returns the width in tiles.
func (m *Map) Cols() int { return m.cols }

// Rows returns the height in tiles.
func (m *Map) Rows() int { return m.rows }

// TileSize returns the cell size in world units.
func (m *Map) TileSize() float64 { return m.tileSize }

// Variant returns the texture set of the map.
func (m *Map) Variant() Variant { return m.variant }

// At returns the cell at (col, row). Cells outside the map are Empty.
func (m *Map) At(col, row int) Cell {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return Empty
	}
	return m.cells[row*m.cols+col]
}

// IsWall reports whether (col, row) holds a wall.
func (m *Map) IsWall(col, row int) bool {
	return m.At(col, row).Solid()
}

// TileCenter returns the world position of the center of (col, row).
func (m *Map) TileCenter(col, row int) collision.Vec2 {
	return collision.Vec2{X: float64(col) * m.tileSize, Y: float64(row) * m.tileSize}
}

// TileBox returns the box covering (col, row).
func (m *Map) TileBox(col, row int) collision.Box {
	c := m.TileCenter(col, row)
	return collision.NewBox(c.X, c.Y, m.tileSize, m.tileSize)
}

// Bounds returns the box covering the whole map.
func (m *Map) Bounds() collision.Box {
	half := m.tileSize / 2
	w := float64(m.cols) * m.tileSize
	h := float64(m.rows) * m.tileSize
	return collision.NewBox(w/2-half, h/2-half, w, h)
}

// Contact is a wall overlapping a query box.
type Contact struct {
	Col, Row int
	Wall     collision.Box
	Side     collision.Side
}

// Walls returns every wall overlapping b in row-major order, bottom row
// first, with the side of b relative to each wall.
func (m *Map) Walls(b collision.Box) []Contact {
	min, max := b.Min(), b.Max()
	half := m.tileSize / 2

	c0 := int(math.Floor((min.X - half) / m.tileSize))
	c1 := int(math.Ceil((max.X + half) / m.tileSize))
	r0 := int(math.Floor((min.Y - half) / m.tileSize))
	r1 := int(math.Ceil((max.Y + half) / m.tileSize))

	var out []Contact
	for row := max0(r0); row <= r1 && row < m.rows; row++ {
		for col := max0(c0); col <= c1 && col < m.cols; col++ {
			if !m.IsWall(col, row) {
				continue
			}
			wall := m.TileBox(col, row)
			if side, ok := collision.Overlap(b, wall); ok {
				out = append(out, Contact{Col: col, Row: row, Wall: wall, Side: side})
			}
		}
	}
	return out
}

// Blocked reports whether any wall overlaps b.
func (m *Map) Blocked(b collision.Box) bool {
	return len(m.Walls(b)) > 0
}

// Supported reports whether a wall lies within one unit below b.
func (m *Map) Supported(b collision.Box) bool {
	return m.Blocked(b.At(b.Center.X, b.Center.Y-1))
}

// CellOf returns the tile containing the world point (x, y).
func (m *Map) CellOf(x, y float64) (col, row int) {
	col = int(math.Floor((x + m.tileSize/2) / m.tileSize))
	row = int(math.Floor((y + m.tileSize/2) / m.tileSize))
	return col, row
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
