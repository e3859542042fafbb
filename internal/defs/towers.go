// internal/defs/towers.go
package defs

import "fmt"

// TowerDefinition holds the spawn tables for towers.
type TowerDefinition struct {
	// PlacementExtent bounds batch-spawned tower coordinates to [-e, e).
	PlacementExtent int      `json:"placement_extent"`
	Damage          IntRange `json:"damage"`
	Range           IntRange `json:"range"`
}

func (d TowerDefinition) Validate() error {
	if err := validateExtent("tower placement extent", d.PlacementExtent); err != nil {
		return err
	}
	if err := d.Damage.Validate("tower damage"); err != nil {
		return err
	}
	if err := d.Range.Validate("tower range"); err != nil {
		return err
	}
	if d.Range.Min < 0 {
		return fmt.Errorf("%w: tower range must be >= 0, got min %d", ErrInvalidScenario, d.Range.Min)
	}
	return nil
}
