package state

import (
	"go-tower-sim/internal/action"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/logger"
)

var _ State = (*PausedState)(nil)

// PausedState applies commands without stepping. Leaving the pause steps in
// the same cycle.
type PausedState struct {
	sm   *StateMachine
	game interfaces.Game
}

func NewPausedState(sm *StateMachine, game interfaces.Game) *PausedState {
	return &PausedState{sm: sm, game: game}
}

func (s *PausedState) Enter() {
	logger.Log.Info("simulation paused")
}

func (s *PausedState) Update(a action.Action) {
	if a.Kind == action.TogglePause {
		s.sm.SetState(NewRunningState(s.sm, s.game))
		s.game.Step()
		return
	}
	s.game.HandleAction(a)
}

func (s *PausedState) Exit() {
	logger.Log.Info("simulation resumed")
}

func (s *PausedState) Name() string { return "paused" }
