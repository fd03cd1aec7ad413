package system

import (
	"slices"

	"github.com/younwookim/platformquest/internal/application/timer"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/ecs"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

// Hit records a weapon destroying an enemy.
type Hit struct {
	Weapon     ecs.EntityID
	WeaponKind entity.WeaponKind
	Enemy      ecs.EntityID
	EnemyKind  entity.EnemyKind
}

// CombatSystem is the weapon subsystem: it spawns weapons, moves them by
// kind, resolves enemy hits and expires them.
type CombatSystem struct {
	phys    Physics
	weapons config.WeaponsConfig
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(phys Physics, weapons config.WeaponsConfig) *CombatSystem {
	return &CombatSystem{phys: phys, weapons: weapons}
}

// Spawn creates a weapon of kind next to the player. At most one weapon of
// each kind lives at a time; a second request is ignored.
func (s *CombatSystem) Spawn(w *ecs.World, kind entity.WeaponKind, player ecs.Body, facing entity.Direction) (ecs.EntityID, bool) {
	if _, ok := w.WeaponOfKind(kind); ok {
		return 0, false
	}

	cfg := s.weapons.For(kind)
	pos := player.Pos
	switch kind {
	case entity.Thunder:
		pos.Y = cfg.Altitude
	default:
		pos.X += facing.Sign() * s.phys.TileSize
	}

	data := ecs.Weapon{
		Kind:     kind,
		Lifetime: timer.New(s.phys.Ticks(cfg.Lifetime), timer.Once),
		Warmup:   timer.New(s.phys.Ticks(cfg.Warmup), timer.Once),
	}
	return w.CreateWeapon(pos, s.phys.CharacterSize(), facing, data), true
}

// Update advances every weapon by one tick. Each weapon first destroys
// the enemies it overlaps, then moves, then ages. Enemies destroyed here
// are removed from the index too.
func (s *CombatSystem) Update(w *ecs.World, enemies *collision.Index[ecs.EntityID]) []Hit {
	var hits []Hit

	for _, id := range w.Weapons() {
		data := w.WeaponData[id]
		body := w.Body[id]
		facing := w.Facing[id]

		var struck []ecs.EntityID
		enemies.Query(body.Box(), func(enemy ecs.EntityID, _ collision.Side) bool {
			struck = append(struck, enemy)
			return true
		})
		slices.Sort(struck)
		for _, enemy := range struck {
			hits = append(hits, Hit{
				Weapon:     id,
				WeaponKind: data.Kind,
				Enemy:      enemy,
				EnemyKind:  w.EnemyData[enemy].Kind,
			})
			enemies.Remove(enemy)
			w.DestroyEntity(enemy)
		}
		if len(struck) > 0 && data.Kind.DespawnsOnHit() {
			w.DestroyEntity(id)
			continue
		}

		s.move(w, &body, &data, facing)

		if data.Lifetime.Tick(s.phys.Tick).Finished() {
			w.DestroyEntity(id)
			continue
		}
		w.Body[id] = body
		w.WeaponData[id] = data
	}
	return hits
}

// move applies the kind's trajectory rule.
func (s *CombatSystem) move(w *ecs.World, body *ecs.Body, data *ecs.Weapon, facing entity.Direction) {
	cfg := s.weapons.For(data.Kind)
	before := body.Pos

	switch data.Kind {
	case entity.Sword:
		if pid, ok := w.Player(); ok {
			pos := w.Body[pid].Pos
			pos.X += facing.Sign() * s.phys.TileSize
			body.Pos = pos
		}
	case entity.Fire:
		body.Pos.X += facing.Sign() * cfg.Speed
	case entity.Ice:
		body.Pos.X += facing.Sign() * cfg.Speed
		body.Pos.Y -= cfg.Drift
	case entity.Thunder:
		if data.Warmup.Tick(s.phys.Tick).Finished() {
			body.Pos.Y -= cfg.FallSpeed
		}
	}

	body.Vel = collision.Vec2{X: body.Pos.X - before.X, Y: body.Pos.Y - before.Y}
}
