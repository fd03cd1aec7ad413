package system

import (
	"github.com/younwookim/platformquest/internal/domain/tilemap"
	"github.com/younwookim/platformquest/internal/ecs"
)

// ProgressionSystem detects the player reaching the right edge of a map.
type ProgressionSystem struct {
	threshold float64
}

// NewProgressionSystem sets the goal two tiles before the map's right edge.
func NewProgressionSystem(m *tilemap.Map) *ProgressionSystem {
	return &ProgressionSystem{threshold: m.TileSize() * float64(m.Cols()-2)}
}

// Threshold returns the x the player must exceed.
func (s *ProgressionSystem) Threshold() float64 {
	return s.threshold
}

// Reached reports whether body is past the goal.
func (s *ProgressionSystem) Reached(body ecs.Body) bool {
	return body.Pos.X > s.threshold
}
