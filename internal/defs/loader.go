// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is the static world a run plays out in: the waypoint path every
// unit follows and the tables units and towers are rolled from.
type Scenario struct {
	Path  []component.Position `json:"path"`
	Unit  UnitDefinition       `json:"unit"`
	Tower TowerDefinition      `json:"tower"`
}

func DefaultScenario() Scenario {
	return Scenario{
		Path: []component.Position{
			{X: config.PathStartX, Y: config.PathStartY},
			{X: config.PathEndX, Y: config.PathEndY},
		},
		Unit: UnitDefinition{
			OffsetExtent: config.UnitOffsetExtent,
			Speed:        IntRange{Min: config.UnitSpeedMin, Max: config.UnitSpeedMax},
			Health:       IntRange{Min: config.UnitHealthMin, Max: config.UnitHealthMax},
		},
		Tower: TowerDefinition{
			PlacementExtent: config.TowerPlacementExtent,
			Damage:          IntRange{Min: config.TowerDamageMin, Max: config.TowerDamageMax},
			Range:           IntRange{Min: config.TowerRangeMin, Max: config.TowerRangeMax},
		},
	}
}

// Start is the first waypoint, where units are spawned around.
func (s Scenario) Start() component.Position {
	return s.Path[0]
}

// End is the last waypoint; a unit standing on it has arrived.
func (s Scenario) End() component.Position {
	return s.Path[len(s.Path)-1]
}

func (s Scenario) Validate() error {
	if len(s.Path) < 2 {
		return fmt.Errorf("%w: path needs at least 2 waypoints, got %d", ErrInvalidScenario, len(s.Path))
	}
	for i, p := range s.Path {
		if !worldBounds.Contains(p.X) || !worldBounds.Contains(p.Y) {
			return fmt.Errorf("%w: waypoint %d (%d, %d) exceeds +-%d", ErrInvalidScenario, i, p.X, p.Y, config.WorldExtent)
		}
	}
	if err := s.Unit.Validate(); err != nil {
		return err
	}
	return s.Tower.Validate()
}

// LoadScenario reads a JSON scenario. Sections missing from the file keep
// their DefaultScenario values.
func LoadScenario(path string) (Scenario, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario := DefaultScenario()
	if err := json.Unmarshal(file, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return Scenario{}, err
	}
	return scenario, nil
}
