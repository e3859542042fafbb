// internal/types/types.go
package types

import "github.com/mlange-42/ark/ecs"

// EntityID is the handle of a live entity. Generations keep a removed handle
// distinct from any entity spawned later in the same slot.
type EntityID = ecs.Entity
