// internal/defs/units.go
package defs

import "fmt"

// UnitDefinition holds the spawn tables for units.
type UnitDefinition struct {
	// OffsetExtent bounds the per-axis offset from the spawn point to [-e, e).
	OffsetExtent int      `json:"offset_extent"`
	Speed        IntRange `json:"speed"`
	Health       IntRange `json:"health"`
}

func (d UnitDefinition) Validate() error {
	if err := validateExtent("unit offset extent", d.OffsetExtent); err != nil {
		return err
	}
	if err := d.Speed.Validate("unit speed"); err != nil {
		return err
	}
	if d.Speed.Min < 1 {
		return fmt.Errorf("%w: unit speed must be >= 1, got min %d", ErrInvalidScenario, d.Speed.Min)
	}
	if err := d.Health.Validate("unit health"); err != nil {
		return err
	}
	if d.Health.Min < 1 {
		return fmt.Errorf("%w: unit health must be >= 1, got min %d", ErrInvalidScenario, d.Health.Min)
	}
	return nil
}
