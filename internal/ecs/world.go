package ecs

import (
	"slices"

	"github.com/younwookim/platformquest/internal/application/timer"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Body       map[EntityID]Body
	Facing     map[EntityID]entity.Direction
	PlayerData map[EntityID]Player
	EnemyData  map[EntityID]Enemy
	WeaponData map[EntityID]Weapon
	Sprite     map[EntityID]Sprite

	// Tags
	IsPlayer map[EntityID]struct{}
	IsEnemy  map[EntityID]struct{}
	IsWeapon map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Body:       make(map[EntityID]Body),
		Facing:     make(map[EntityID]entity.Direction),
		PlayerData: make(map[EntityID]Player),
		EnemyData:  make(map[EntityID]Enemy),
		WeaponData: make(map[EntityID]Weapon),
		Sprite:     make(map[EntityID]Sprite),
		IsPlayer:   make(map[EntityID]struct{}),
		IsEnemy:    make(map[EntityID]struct{}),
		IsWeapon:   make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Body, id)
	delete(w.Facing, id)
	delete(w.PlayerData, id)
	delete(w.EnemyData, id)
	delete(w.WeaponData, id)
	delete(w.Sprite, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsWeapon, id)

	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// DestroyAll removes every entity. IDs keep counting up.
func (w *World) DestroyAll() {
	clear(w.Body)
	clear(w.Facing)
	clear(w.PlayerData)
	clear(w.EnemyData)
	clear(w.WeaponData)
	clear(w.Sprite)
	clear(w.IsPlayer)
	clear(w.IsEnemy)
	clear(w.IsWeapon)
	w.PlayerID = 0
}

// Exists checks if an entity has a Body component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Body[id]
	return ok
}

// PlayerSpec holds the movement parameters of a new player.
type PlayerSpec struct {
	Size       collision.Vec2
	WalkStep   float64
	JumpForce  float64
	DeathDelay timer.Timer
}

// CreatePlayer creates the player entity, grounded and facing right.
// A world holds at most one player; a second call is a programming error.
func (w *World) CreatePlayer(pos collision.Vec2, spec PlayerSpec) EntityID {
	if _, ok := w.Player(); ok {
		panic("ecs: player already exists")
	}

	id := w.NewEntity()
	w.Body[id] = Body{Pos: pos, Size: spec.Size}
	w.Facing[id] = entity.DirRight
	w.PlayerData[id] = Player{
		WalkStep:   spec.WalkStep,
		JumpForce:  spec.JumpForce,
		Alive:      true,
		Grounded:   true,
		DeathTimer: spec.DeathDelay,
	}
	w.Sprite[id] = Sprite{}
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// EnemySpec holds the per-kind parameters of a new enemy.
type EnemySpec struct {
	Kind         entity.EnemyKind
	Size         collision.Vec2
	WalkStep     float64
	Flying       bool
	Decision     int
	MoveLifetime int
}

// CreateEnemy creates an enemy entity
func (w *World) CreateEnemy(pos collision.Vec2, spec EnemySpec, facing entity.Direction) EntityID {
	id := w.NewEntity()

	w.Body[id] = Body{Pos: pos, Size: spec.Size}
	w.Facing[id] = facing
	w.EnemyData[id] = Enemy{
		Kind:         spec.Kind,
		WalkStep:     spec.WalkStep,
		Flying:       spec.Flying,
		Decision:     spec.Decision,
		MoveLifetime: spec.MoveLifetime,
	}
	w.Sprite[id] = Sprite{FlipX: facing == entity.DirLeft}
	w.IsEnemy[id] = struct{}{}

	return id
}

// CreateWeapon creates a weapon entity
func (w *World) CreateWeapon(pos, size collision.Vec2, facing entity.Direction, data Weapon) EntityID {
	id := w.NewEntity()

	w.Body[id] = Body{Pos: pos, Size: size}
	w.Facing[id] = facing
	w.WeaponData[id] = data
	w.Sprite[id] = Sprite{FlipX: facing == entity.DirLeft}
	w.IsWeapon[id] = struct{}{}

	return id
}

// Player returns the live player, if any.
func (w *World) Player() (EntityID, bool) {
	if w.PlayerID == 0 {
		return 0, false
	}
	_, ok := w.IsPlayer[w.PlayerID]
	return w.PlayerID, ok
}

// Enemies returns enemy IDs in creation order.
func (w *World) Enemies() []EntityID {
	return sortedKeys(w.IsEnemy)
}

// Weapons returns weapon IDs in creation order.
func (w *World) Weapons() []EntityID {
	return sortedKeys(w.IsWeapon)
}

// WeaponOfKind returns the live weapon of the given kind, if any.
func (w *World) WeaponOfKind(kind entity.WeaponKind) (EntityID, bool) {
	for _, id := range w.Weapons() {
		if w.WeaponData[id].Kind == kind {
			return id, true
		}
	}
	return 0, false
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.Body)
}

func sortedKeys(m map[EntityID]struct{}) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
