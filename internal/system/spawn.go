// internal/system/spawn.go
package system

import (
	"errors"
	"fmt"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/logger"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"
)

var ErrInvalidCount = errors.New("spawn count must be >= 0")

// Spawner creates units and towers from the scenario's spawn tables and
// handles the build, remove and select commands.
type Spawner struct {
	ecs             *entity.ECS
	units           defs.UnitDefinition
	towers          defs.TowerDefinition
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawner(ecs *entity.ECS, scenario defs.Scenario, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *Spawner {
	return &Spawner{
		ecs:             ecs,
		units:           scenario.Unit,
		towers:          scenario.Tower,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// SpawnUnits creates n units scattered around origin, all heading for the
// first waypoint.
func (s *Spawner) SpawnUnits(n int, origin component.Position) ([]types.EntityID, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d units", ErrInvalidCount, n)
	}
	ids := make([]types.EntityID, 0, n)
	for i := 0; i < n; i++ {
		pos := component.Position{
			X: origin.X + s.rng.Symmetric(s.units.OffsetExtent),
			Y: origin.Y + s.rng.Symmetric(s.units.OffsetExtent),
		}
		speed := s.rng.Range(s.units.Speed)
		health := s.rng.Range(s.units.Health)
		ids = append(ids, s.ecs.NewUnit(pos, speed, health, 0))
	}
	if n > 0 {
		logger.Log.Debug("units spawned", zap.Int("count", n))
		s.eventDispatcher.Dispatch(event.Event{Type: event.UnitsSpawned, Data: n})
	}
	return ids, nil
}

// SpawnTowers creates n towers at random positions.
func (s *Spawner) SpawnTowers(n int) ([]types.EntityID, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d towers", ErrInvalidCount, n)
	}
	ids := make([]types.EntityID, 0, n)
	for i := 0; i < n; i++ {
		pos := component.Position{
			X: s.rng.Symmetric(s.towers.PlacementExtent),
			Y: s.rng.Symmetric(s.towers.PlacementExtent),
		}
		ids = append(ids, s.SpawnTower(pos))
	}
	return ids, nil
}

// SpawnTower builds a single tower at pos.
func (s *Spawner) SpawnTower(pos component.Position) types.EntityID {
	damage := s.rng.Range(s.towers.Damage)
	rng := s.rng.Range(s.towers.Range)
	id := s.ecs.NewTower(pos, damage, rng)
	logger.Log.Debug("tower placed",
		zap.Uint32("tower", id.ID()),
		zap.Int("x", pos.X), zap.Int("y", pos.Y),
		zap.Int("damage", damage), zap.Int("range", rng))
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id
}

// RemoveTower removes the armed entity closest to pos, if one lies within
// the proximity threshold.
func (s *Spawner) RemoveTower(pos component.Position) (types.EntityID, bool) {
	var closest types.EntityID
	minDistance := 0
	found := false

	query := s.ecs.Armed.Query()
	for query.Next() {
		towerPos, _ := query.Get()
		distance := towerPos.Manhattan(pos)
		if distance >= config.ProximityThreshold {
			continue
		}
		if !found || distance < minDistance {
			closest = query.Entity()
			minDistance = distance
			found = true
		}
	}
	if !found {
		return types.EntityID{}, false
	}

	s.ecs.RemoveEntity(closest)
	logger.Log.Debug("tower removed", zap.Uint32("tower", closest.ID()))
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: closest})
	return closest, true
}

// Selection is a read-only copy of every component of one entity. Components
// the entity does not carry are nil.
type Selection struct {
	ID       types.EntityID
	Position component.Position
	Health   *component.Health
	Speed    *component.Speed
	Waypoint *component.Waypoint
	Damage   *component.Damage
	Range    *component.Range
	Score    *component.Score
	Target   *component.Target
}

// IsTower reports whether the selected entity can fire.
func (s Selection) IsTower() bool {
	return s.Damage != nil
}

// Select snapshots the entity of any kind closest to pos within the
// proximity threshold.
func (s *Spawner) Select(pos component.Position) (Selection, bool) {
	var closest types.EntityID
	var closestPos component.Position
	minDistance := 0
	found := false

	query := s.ecs.Placed.Query()
	for query.Next() {
		p := query.Get()
		distance := p.Manhattan(pos)
		if distance >= config.ProximityThreshold {
			continue
		}
		if !found || distance < minDistance {
			closest = query.Entity()
			closestPos = *p
			minDistance = distance
			found = true
		}
	}
	if !found {
		return Selection{}, false
	}

	sel := Selection{ID: closest, Position: closestPos}
	sel.Health = copyOf(s.ecs.Healths, closest)
	sel.Speed = copyOf(s.ecs.Speeds, closest)
	sel.Waypoint = copyOf(s.ecs.Waypoints, closest)
	sel.Damage = copyOf(s.ecs.Damages, closest)
	sel.Range = copyOf(s.ecs.Ranges, closest)
	sel.Score = copyOf(s.ecs.Scores, closest)
	sel.Target = copyOf(s.ecs.Targets, closest)
	return sel, true
}

func copyOf[T any](m *ecs.Map[T], id types.EntityID) *T {
	if !m.Has(id) {
		return nil
	}
	v := *m.Get(id)
	return &v
}
