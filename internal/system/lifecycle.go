package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/logger"
	"go-tower-sim/internal/types"

	"go.uber.org/zap"
)

// LifecycleSystem culls dead and arrived units and tallies what is left.
type LifecycleSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewLifecycleSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *LifecycleSystem {
	return &LifecycleSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// RemoveDead removes every entity whose health is at or below zero and
// returns how many were removed.
func (s *LifecycleSystem) RemoveDead() int {
	var toRemove []types.EntityID
	query := s.ecs.Living.Query()
	for query.Next() {
		if health := query.Get(); !health.Alive() {
			toRemove = append(toRemove, query.Entity())
		}
	}
	return s.remove(toRemove, event.UnitDied, "unit died")
}

// RemoveArrived removes every unit standing exactly on terminal and returns
// how many were removed.
func (s *LifecycleSystem) RemoveArrived(terminal component.Position) int {
	var toRemove []types.EntityID
	query := s.ecs.Units.Query()
	for query.Next() {
		if _, pos := query.Get(); *pos == terminal {
			toRemove = append(toRemove, query.Entity())
		}
	}
	return s.remove(toRemove, event.UnitArrived, "unit reached its target")
}

// UnitsLeft counts entities carrying Health.
func (s *LifecycleSystem) UnitsLeft() int {
	count := 0
	query := s.ecs.Living.Query()
	for query.Next() {
		count++
	}
	return count
}

// Score sums the kills of every tower still standing.
func (s *LifecycleSystem) Score() int {
	total := 0
	query := s.ecs.Scorers.Query()
	for query.Next() {
		total += query.Get().Kills
	}
	return total
}

// remove runs after the query is exhausted; the world rejects structural
// changes while one is open.
func (s *LifecycleSystem) remove(ids []types.EntityID, eventType event.EventType, msg string) int {
	for _, id := range ids {
		s.ecs.RemoveEntity(id)
		logger.Log.Debug(msg, zap.Uint32("unit", id.ID()))
		s.eventDispatcher.Dispatch(event.Event{Type: eventType, Data: id})
	}
	return len(ids)
}
