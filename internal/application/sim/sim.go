// Package sim runs one stage of gameplay as a fixed-tick simulation,
// independent of windowing and rendering.
package sim

import (
	"github.com/younwookim/platformquest/internal/application/input"
	"github.com/younwookim/platformquest/internal/application/system"
	"github.com/younwookim/platformquest/internal/application/timer"
	"github.com/younwookim/platformquest/internal/domain/collision"
	"github.com/younwookim/platformquest/internal/domain/entity"
	"github.com/younwookim/platformquest/internal/ecs"
	"github.com/younwookim/platformquest/internal/infrastructure/config"
)

// DeathCause says why the player died.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseFell
	CauseEnemy
)

// String returns the string representation of the death cause
func (c DeathCause) String() string {
	switch c {
	case CauseFell:
		return "fell"
	case CauseEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Events is what happened during one tick.
type Events struct {
	Spawned      []entity.WeaponKind
	Kills        []system.Hit
	Jumped       bool
	Died         DeathCause
	DeathExpired bool // death timer finished; fires once per life
	Cleared      bool // goal reached; fires once per stage
}

// Simulation owns the world of one stage attempt.
type Simulation struct {
	phys  system.Physics
	stage *system.Stage
	world *ecs.World
	index *collision.Index[ecs.EntityID]

	input    *system.InputSystem
	physics  *system.PhysicsSystem
	combat   *system.CombatSystem
	enemies  *system.EnemySystem
	progress *system.ProgressionSystem

	tick    int
	cleared bool
}

// New creates the stage's player and enemies.
func New(cfg *config.GameConfig, stage *system.Stage, rng system.Rand) *Simulation {
	phys := system.NewPhysics(cfg.Physics, cfg.Display.TPS)

	bounds := stage.Map.Bounds()
	margin := 8 * phys.TileSize
	bounds.Size.X += 2 * margin
	bounds.Size.Y += 2 * margin

	s := &Simulation{
		phys:     phys,
		stage:    stage,
		world:    ecs.NewWorld(),
		index:    collision.NewIndex[ecs.EntityID](bounds, int(phys.TileSize)),
		input:    system.NewInputSystem(),
		physics:  system.NewPhysicsSystem(phys),
		combat:   system.NewCombatSystem(phys, cfg.Weapons),
		enemies:  system.NewEnemySystem(phys, rng),
		progress: system.NewProgressionSystem(stage.Map),
	}

	s.world.CreatePlayer(stage.Spawn, ecs.PlayerSpec{
		Size:       phys.CharacterSize(),
		WalkStep:   cfg.Player.WalkStep,
		JumpForce:  cfg.Player.JumpForce,
		DeathDelay: timer.New(cfg.Player.DeathDelay, timer.Once),
	})
	for _, ep := range stage.Enemies {
		s.world.CreateEnemy(ep.Pos, ep.Spec, ep.Facing)
	}
	return s
}

// World returns the entity registry.
func (s *Simulation) World() *ecs.World { return s.world }

// Stage returns the stage being played.
func (s *Simulation) Stage() *system.Stage { return s.stage }

// Physics returns the kinematic constants.
func (s *Simulation) Physics() system.Physics { return s.phys }

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int { return s.tick }

// Close destroys every entity of the attempt.
func (s *Simulation) Close() {
	s.world.DestroyAll()
	s.index.Retain(func(ecs.EntityID) bool { return false })
}

// Step runs one fixed tick: player input and movement, weapons, the
// player-vs-enemy check, enemy AI, then the goal and death timer.
func (s *Simulation) Step(kb input.Keyboard) Events {
	var ev Events
	s.tick++

	pid, ok := s.world.Player()
	if !ok {
		return ev
	}
	body := s.world.Body[pid]
	p := s.world.PlayerData[pid]
	facing := s.world.Facing[pid]

	intents := s.input.UpdatePlayer(kb, &body, &p, &facing)
	if p.Alive {
		s.physics.MovePlayer(s.stage.Map, &body, &p, facing)
		if body.Pos.Y < 0 {
			s.kill(&p, &ev, CauseFell)
		}
	}
	s.world.Body[pid] = body
	s.world.PlayerData[pid] = p
	s.world.Facing[pid] = facing

	for _, in := range intents {
		switch in := in.(type) {
		case system.JumpIntent:
			ev.Jumped = true
		case system.AttackIntent:
			if _, ok := s.combat.Spawn(s.world, in.Kind, body, in.Facing); ok {
				ev.Spawned = append(ev.Spawned, in.Kind)
			}
		}
	}

	s.syncIndex()
	ev.Kills = s.combat.Update(s.world, s.index)

	if p.Alive {
		if _, hit := s.index.First(body.Box()); hit {
			s.kill(&p, &ev, CauseEnemy)
		}
	}

	for _, id := range s.world.Enemies() {
		eb := s.world.Body[id]
		ed := s.world.EnemyData[id]
		ef := s.world.Facing[id]
		s.enemies.Update(s.stage.Map, &eb, &ed, &ef)
		s.world.Body[id] = eb
		s.world.EnemyData[id] = ed
		s.world.Facing[id] = ef
	}

	if p.Alive && !s.cleared && s.stage.Goal() && s.progress.Reached(body) {
		s.cleared = true
		ev.Cleared = true
	}

	if !p.Alive && !p.DeathFired {
		if p.DeathTimer.Tick(s.phys.Tick).Finished() {
			p.DeathFired = true
			ev.DeathExpired = true
		}
	}
	s.world.PlayerData[pid] = p

	return ev
}

// kill marks the player dead and restarts the death timer.
func (s *Simulation) kill(p *ecs.Player, ev *Events, cause DeathCause) {
	p.Alive = false
	p.WantsWalk = false
	p.DeathTimer.Reset()
	ev.Died = cause
}

// syncIndex mirrors enemy boxes into the broadphase.
func (s *Simulation) syncIndex() {
	s.index.Retain(func(id ecs.EntityID) bool {
		_, ok := s.world.IsEnemy[id]
		return ok
	})
	for _, id := range s.world.Enemies() {
		s.index.Set(id, s.world.Body[id].Box())
	}
}
