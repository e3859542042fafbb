// internal/defs/types.go
package defs

import (
	"fmt"

	"go-tower-sim/internal/config"
)

var worldBounds = IntRange{Min: -config.WorldExtent, Max: config.WorldExtent + 1}

// IntRange is a half-open interval [Min, Max).
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r IntRange) Validate(name string) error {
	if !worldBounds.Contains(r.Min) || !worldBounds.Contains(r.Max) {
		return fmt.Errorf("%w: %s range [%d, %d) exceeds +-%d", ErrInvalidScenario, name, r.Min, r.Max, config.WorldExtent)
	}
	if r.Max <= r.Min {
		return fmt.Errorf("%w: %s range [%d, %d) is empty", ErrInvalidScenario, name, r.Min, r.Max)
	}
	return nil
}

func validateExtent(name string, extent int) error {
	if extent < 0 || extent > config.WorldExtent {
		return fmt.Errorf("%w: %s must be in [0, %d], got %d", ErrInvalidScenario, name, config.WorldExtent, extent)
	}
	return nil
}

// Contains reports whether v lies in [Min, Max).
func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v < r.Max
}
