package state

import (
	"go-tower-sim/internal/action"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/logger"
)

var _ State = (*RunningState)(nil)

// RunningState applies the cycle's action and then advances the simulation.
type RunningState struct {
	sm   *StateMachine
	game interfaces.Game
}

func NewRunningState(sm *StateMachine, game interfaces.Game) *RunningState {
	return &RunningState{sm: sm, game: game}
}

func (s *RunningState) Enter() {
	logger.Log.Debug("simulation running")
}

func (s *RunningState) Update(a action.Action) {
	if a.Kind == action.TogglePause {
		s.sm.SetState(NewPausedState(s.sm, s.game))
		return
	}
	s.game.HandleAction(a)
	if s.game.Done() {
		return
	}
	s.game.Step()
}

func (s *RunningState) Exit() {}

func (s *RunningState) Name() string { return "running" }
