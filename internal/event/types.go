// internal/event/types.go
package event

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
)

const (
	TowerPlaced  EventType = "TowerPlaced"  // Data: types.EntityID
	TowerRemoved EventType = "TowerRemoved" // Data: types.EntityID
	UnitsSpawned EventType = "UnitsSpawned" // Data: int, the batch size
	UnitKilled   EventType = "UnitKilled"   // Data: Kill
	UnitDied     EventType = "UnitDied"     // Data: types.EntityID, already removed
	UnitArrived  EventType = "UnitArrived"  // Data: types.EntityID, already removed
)

// Kill is the payload of UnitKilled.
type Kill struct {
	Tower    types.EntityID
	Unit     types.EntityID
	Position component.Position
}
