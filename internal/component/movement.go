// component/movement.go
package component

import "go-tower-sim/pkg/utils"

// Position is a point in world-distance units.
type Position struct {
	X, Y int
}

// Speed is the distance a unit advances per simulation step, at least 1.
type Speed struct {
	Value int
}

// Waypoint indexes the shared path; it points at the waypoint the unit is
// currently heading for.
type Waypoint struct {
	Index int
}

// Sub returns p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Manhattan returns |dx| + |dy|.
func (p Position) Manhattan(other Position) int {
	d := p.Sub(other)
	return utils.Abs(d.X) + utils.Abs(d.Y)
}
