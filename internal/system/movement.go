// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/entity"
	"go-tower-sim/pkg/utils"
)

// MovementSystem advances units along the shared waypoint path.
type MovementSystem struct {
	ecs       *entity.ECS
	waypoints []component.Position
}

// NewMovementSystem takes the path by reference; it is never written.
func NewMovementSystem(ecs *entity.ECS, waypoints []component.Position) *MovementSystem {
	return &MovementSystem{ecs: ecs, waypoints: waypoints}
}

// Update moves every entity with Position, Waypoint and Speed one step toward
// its current waypoint. Each axis moves by at most Speed on its own, so
// diagonal travel is faster than axis-aligned travel. A unit whose index is
// past the end of the path stays put until it is removed.
func (s *MovementSystem) Update() {
	query := s.ecs.Movers.Query()
	for query.Next() {
		pos, waypoint, speed := query.Get()
		if waypoint.Index < 0 || waypoint.Index >= len(s.waypoints) {
			continue
		}
		target := s.waypoints[waypoint.Index]

		pos.X += utils.ClampedStep(target.X-pos.X, speed.Value)
		pos.Y += utils.ClampedStep(target.Y-pos.Y, speed.Value)

		if *pos == target {
			waypoint.Index++
		}
	}
}
