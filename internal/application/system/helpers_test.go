package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/younwookim/platformquest/internal/application/timer"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/tilemap"
	"github.com/younwookim/platformquest/internal/ecs"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

func testPhysics() Physics {
	return NewPhysics(config.PhysicsConfig{
		TileSize:      32,
		CharacterSize: 32,
		Gravity:       9.81,
		TimeStep:      0.24,
		MaxFallStep:   30,
	}, 60)
}

func testWeapons() config.WeaponsConfig {
	return config.WeaponsConfig{
		Sword:   config.WeaponConfig{Lifetime: 15},
		Fire:    config.WeaponConfig{Lifetime: 30, Speed: 8},
		Ice:     config.WeaponConfig{Lifetime: 30, Speed: 8, Drift: 2},
		Thunder: config.WeaponConfig{Lifetime: 45, Warmup: 10, FallSpeed: 12, Altitude: 448},
	}
}

// openMap is 20x15: two ground rows, open sky, nothing else.
var openMap = []string{
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"AAAAAAAAAAAAAAAAAAAA",
	"CCCCCCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCCCCCC",
}

func newTestMap(t *testing.T, rows []string) *tilemap.Map {
	t.Helper()
	m, err := tilemap.Decode(rows, 32, tilemap.VariantStage1)
	require.NoError(t, err)
	return m
}

func createTestPlayer(w *ecs.World, x, y float64) ecs.EntityID {
	return w.CreatePlayer(collision.Vec2{X: x, Y: y}, ecs.PlayerSpec{
		Size:       collision.Vec2{X: 32, Y: 32},
		WalkStep:   4,
		JumpForce:  44,
		DeathDelay: timer.New(2*time.Second, timer.Once),
	})
}

func testBody(x, y float64) ecs.Body {
	return ecs.Body{Pos: collision.Vec2{X: x, Y: y}, Size: collision.Vec2{X: 32, Y: 32}}
}

func testPlayer() ecs.Player {
	return ecs.Player{WalkStep: 4, JumpForce: 44, Alive: true, Grounded: true}
}

// fixedRand returns its values in order, cycling.
type fixedRand struct {
	vals  []int
	calls int
}

func (r *fixedRand) IntN(n int) int {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v % n
}

func newIndex() *collision.Index[ecs.EntityID] {
	return collision.NewIndex[ecs.EntityID](collision.NewBox(320, 240, 1280, 1024), 32)
}
