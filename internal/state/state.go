// internal/state/state.go
package state

import (
	"go-tower-sim/internal/action"
	"go-tower-sim/internal/logger"

	"go.uber.org/zap"
)

// State is one mode of the run loop. Name identifies it in logs.
type State interface {
	Enter()
	Update(a action.Action)
	Exit()
	Name() string
}

// StateMachine holds the current state.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no state set.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		logger.Log.Debug("state changed", zap.String("state", sm.current.Name()))
		sm.current.Enter()
	}
}

// Update feeds one cycle's action to the current state.
func (sm *StateMachine) Update(a action.Action) {
	if sm.current != nil {
		sm.current.Update(a)
	}
}

// Current returns the active state, or nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}
