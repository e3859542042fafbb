// internal/entity/ecs.go
package entity

import (
	"fmt"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"

	"github.com/mlange-42/ark/ecs"
)

// ECS is the entity store. Every component type has its own column in the
// underlying ark world; an entity is a unit or a tower only by the set of
// components it carries.
type ECS struct {
	World *ecs.World

	Positions *ecs.Map[component.Position]
	Healths   *ecs.Map[component.Health]
	Speeds    *ecs.Map[component.Speed]
	Waypoints *ecs.Map[component.Waypoint]
	Damages   *ecs.Map[component.Damage]
	Ranges    *ecs.Map[component.Range]
	Scores    *ecs.Map[component.Score]
	Targets   *ecs.Map[component.Target]

	unitMapper  *ecs.Map4[component.Position, component.Speed, component.Health, component.Waypoint]
	towerMapper *ecs.Map5[component.Position, component.Damage, component.Range, component.Score, component.Target]

	// Movers are entities the motion system advances.
	Movers *ecs.Filter3[component.Position, component.Waypoint, component.Speed]
	// Units can be targeted and removed as dead or arrived.
	Units *ecs.Filter2[component.Health, component.Position]
	// Towers carry everything needed to fire.
	Towers *ecs.Filter5[component.Position, component.Damage, component.Range, component.Score, component.Target]
	// Armed entities carry Damage, regardless of the rest.
	Armed *ecs.Filter2[component.Position, component.Damage]
	// Living is every entity with Health.
	Living *ecs.Filter1[component.Health]
	// Scorers is every entity with Score.
	Scorers *ecs.Filter1[component.Score]
	// Placed is every entity with Position.
	Placed *ecs.Filter1[component.Position]
}

func NewECS() *ECS {
	world := ecs.NewWorld()
	return &ECS{
		World: world,

		Positions: ecs.NewMap[component.Position](world),
		Healths:   ecs.NewMap[component.Health](world),
		Speeds:    ecs.NewMap[component.Speed](world),
		Waypoints: ecs.NewMap[component.Waypoint](world),
		Damages:   ecs.NewMap[component.Damage](world),
		Ranges:    ecs.NewMap[component.Range](world),
		Scores:    ecs.NewMap[component.Score](world),
		Targets:   ecs.NewMap[component.Target](world),

		unitMapper:  ecs.NewMap4[component.Position, component.Speed, component.Health, component.Waypoint](world),
		towerMapper: ecs.NewMap5[component.Position, component.Damage, component.Range, component.Score, component.Target](world),

		Movers:  ecs.NewFilter3[component.Position, component.Waypoint, component.Speed](world),
		Units:   ecs.NewFilter2[component.Health, component.Position](world),
		Towers:  ecs.NewFilter5[component.Position, component.Damage, component.Range, component.Score, component.Target](world),
		Armed:   ecs.NewFilter2[component.Position, component.Damage](world),
		Living:  ecs.NewFilter1[component.Health](world),
		Scorers: ecs.NewFilter1[component.Score](world),
		Placed:  ecs.NewFilter1[component.Position](world),
	}
}

// NewUnit spawns a unit. Max health is taken from the initial value.
func (s *ECS) NewUnit(pos component.Position, speed, health int, waypoint int) types.EntityID {
	return s.unitMapper.NewEntity(
		&pos,
		&component.Speed{Value: speed},
		&component.Health{Value: health, Max: health},
		&component.Waypoint{Index: waypoint},
	)
}

// NewTower spawns a tower with no kills and no target.
func (s *ECS) NewTower(pos component.Position, damage, rng int) types.EntityID {
	return s.towerMapper.NewEntity(
		&pos,
		&component.Damage{Value: damage},
		&component.Range{Value: rng},
		&component.Score{},
		&component.Target{},
	)
}

// Alive reports whether id still refers to an existing entity.
func (s *ECS) Alive(id types.EntityID) bool {
	return s.World.Alive(id)
}

// RemoveEntity despawns id. Removing a handle that is no longer alive means a
// system lost track of its own removal list, so it panics.
func (s *ECS) RemoveEntity(id types.EntityID) {
	if !s.World.Alive(id) {
		panic(fmt.Sprintf("entity: remove of stale handle %d", id.ID()))
	}
	s.World.RemoveEntity(id)
}

// UnitView is a read-only copy of a unit's state.
type UnitView struct {
	ID       types.EntityID
	Position component.Position
	Health   component.Health
}

// TowerView is a read-only copy of a tower's state.
type TowerView struct {
	ID       types.EntityID
	Position component.Position
	Damage   int
	Range    int
	Kills    int
	Target   component.Target
}

// ForEachUnit calls fn with a copy of every entity carrying Health and
// Position. fn must not spawn or remove entities.
func (s *ECS) ForEachUnit(fn func(UnitView)) {
	query := s.Units.Query()
	for query.Next() {
		health, pos := query.Get()
		fn(UnitView{ID: query.Entity(), Position: *pos, Health: *health})
	}
}

// ForEachTower calls fn with a copy of every tower. fn must not spawn or
// remove entities.
func (s *ECS) ForEachTower(fn func(TowerView)) {
	query := s.Towers.Query()
	for query.Next() {
		pos, damage, rng, score, target := query.Get()
		fn(TowerView{
			ID:       query.Entity(),
			Position: *pos,
			Damage:   damage.Value,
			Range:    rng.Value,
			Kills:    score.Kills,
			Target:   *target,
		})
	}
}
