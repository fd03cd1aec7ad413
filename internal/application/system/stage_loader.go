package system

import (
	"fmt"

	"github.com/younwookim/platformquest/internal/application/state"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/domain/tilemap"
	"github.com/younwookim/platformquest/internal/ecs"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

// EnemyPlacement is one enemy to create when the stage starts.
type EnemyPlacement struct {
	Pos    collision.Vec2
	Facing entity.Direction
	Spec   ecs.EnemySpec
}

// Stage is a loaded stage: its map, start positions and successor.
type Stage struct {
	ID      state.Stage
	Name    string
	Map     *tilemap.Map
	Spawn   collision.Vec2
	Enemies []EnemyPlacement

	Next    state.Stage
	HasNext bool
	Final   bool
}

// Goal reports whether reaching the right edge ends this stage.
func (s *Stage) Goal() bool {
	return s.HasNext || s.Final
}

// LoadStage converts a StageConfig into a Stage
func LoadStage(cfg *config.GameConfig, sc *config.StageConfig) (*Stage, error) {
	id, ok := state.ParseStage(sc.ID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStage, sc.ID)
	}

	variant := tilemap.VariantStage1
	if sc.Texture == "stage2" {
		variant = tilemap.VariantStage2
	}

	m, err := tilemap.Decode(sc.Map, cfg.Physics.TileSize, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to decode map of %s: %w", sc.ID, err)
	}

	st := &Stage{
		ID:    id,
		Name:  sc.Name,
		Map:   m,
		Spawn: m.TileCenter(cfg.Player.Spawn.Col, cfg.Player.Spawn.Row),
		Final: sc.Final,
	}
	if st.Name == "" {
		st.Name = id.String()
	}

	if sc.Next != "" {
		next, ok := state.ParseStage(sc.Next)
		if !ok {
			return nil, fmt.Errorf("%w: %s links to %q", config.ErrUnknownStage, sc.ID, sc.Next)
		}
		st.Next, st.HasNext = next, true
	}

	size := collision.Vec2{X: cfg.Physics.CharacterSize, Y: cfg.Physics.CharacterSize}
	for _, sp := range sc.Enemies {
		kind, ok := entity.ParseEnemyKind(sp.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: enemy kind %q in %s", config.ErrInvalid, sp.Kind, sc.ID)
		}
		ec := cfg.Enemies[kind.String()]

		lifetime := sp.MoveLifetime
		if lifetime <= 0 {
			lifetime = ec.Decision
		}
		facing := entity.DirLeft
		if sp.Facing == "right" {
			facing = entity.DirRight
		}

		st.Enemies = append(st.Enemies, EnemyPlacement{
			Pos:    m.TileCenter(sp.Col, sp.Row),
			Facing: facing,
			Spec: ecs.EnemySpec{
				Kind:         kind,
				Size:         size,
				WalkStep:     ec.WalkStep,
				Flying:       ec.Flying,
				Decision:     ec.Decision,
				MoveLifetime: lifetime,
			},
		})
	}

	return st, nil
}

// LoadStages loads every configured stage keyed by its ID.
func LoadStages(cfg *config.GameConfig) (map[state.Stage]*Stage, error) {
	out := make(map[state.Stage]*Stage, len(cfg.Stages))
	for _, sc := range cfg.Stages {
		st, err := LoadStage(cfg, sc)
		if err != nil {
			return nil, err
		}
		out[st.ID] = st
	}
	return out, nil
}
