package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/logger"
	"go-tower-sim/internal/types"

	"go.uber.org/zap"
)

// CombatSystem makes every tower fire at the closest unit in range.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update resolves one volley. It writes unit Health and tower Score/Target
// and never removes entities; units killed here are culled by the lifecycle
// system at the start of the next step.
func (s *CombatSystem) Update() {
	towers := s.ecs.Towers.Query()
	for towers.Next() {
		towerID := towers.Entity()
		pos, damage, rng, score, target := towers.Get()

		unitID, found := s.findNearestUnitInRange(towerID, *pos, rng.Value)
		if !found {
			target.Clear()
			continue
		}

		health := s.ecs.Healths.Get(unitID)
		unitPos := *s.ecs.Positions.Get(unitID)

		if health.Alive() {
			health.Value -= damage.Value
			logger.Log.Debug("unit damaged",
				zap.Uint32("unit", unitID.ID()),
				zap.Uint32("tower", towerID.ID()),
				zap.Int("damage", damage.Value),
				zap.Int("health", health.Value))

			if !health.Alive() {
				score.Kills++
				logger.Log.Debug("unit killed",
					zap.Uint32("unit", unitID.ID()),
					zap.Uint32("tower", towerID.ID()))
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.UnitKilled,
					Data: event.Kill{Tower: towerID, Unit: unitID, Position: unitPos},
				})
			}
		}
		target.Engage(unitID, unitPos)
	}
}

// findNearestUnitInRange uses Manhattan distance for both the range test and
// the ordering. Equal distances keep the first unit the query yields.
func (s *CombatSystem) findNearestUnitInRange(towerID types.EntityID, towerPos component.Position, rangeValue int) (types.EntityID, bool) {
	var nearest types.EntityID
	minDistance := 0
	found := false

	units := s.ecs.Units.Query()
	for units.Next() {
		unitID := units.Entity()
		if unitID == towerID {
			continue
		}
		_, unitPos := units.Get()
		distance := towerPos.Manhattan(*unitPos)
		if distance > rangeValue {
			continue
		}
		if !found || distance < minDistance {
			nearest = unitID
			minDistance = distance
			found = true
		}
	}
	return nearest, found
}
