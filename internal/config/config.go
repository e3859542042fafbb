// internal/config/config.go
package config

const (
	DefaultTowers = 10
	DefaultUnits  = 10

	// Manhattan distance below which a click picks an entity.
	ProximityThreshold = 10

	// WorldExtent bounds every scenario coordinate, extent and table value
	// to [-WorldExtent, WorldExtent]. Sums and Manhattan distances over such
	// values fit in a 32-bit int.
	WorldExtent = 1 << 24

	// Default path: the spawn corner and the defended point.
	PathStartX = -1000
	PathStartY = 1000
	PathEndX   = 0
	PathEndY   = 0

	// Unit spawn tables, all half-open [min, max).
	UnitOffsetExtent = 1000
	UnitSpeedMin     = 1
	UnitSpeedMax     = 5
	UnitHealthMin    = 30
	UnitHealthMax    = 200

	// Tower spawn tables, all half-open [min, max).
	TowerPlacementExtent = 100
	TowerDamageMin       = 3
	TowerDamageMax       = 5
	TowerRangeMin        = 300
	TowerRangeMax        = 500
)

const (
	EnvPrefix = "TD_"
	EnvFile   = ".env"
)
