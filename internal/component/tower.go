// component/tower.go
package component

import "go-tower-sim/internal/types"

// Score counts the kills credited to a tower.
type Score struct {
	Kills int
}

// Target is the unit a tower fired at during the last step. Display only,
// recomputed every step.
type Target struct {
	Entity   types.EntityID
	Position Position
	Engaged  bool
}

// Engage points the tower at a unit.
func (t *Target) Engage(id types.EntityID, pos Position) {
	t.Entity = id
	t.Position = pos
	t.Engaged = true
}

// Clear drops the current target.
func (t *Target) Clear() {
	*t = Target{}
}
