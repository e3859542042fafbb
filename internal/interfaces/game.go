package interfaces

import "go-tower-sim/internal/action"

// Game is what the run states drive once per cycle.
type Game interface {
	HandleAction(a action.Action)
	Step()
	Done() bool
}
