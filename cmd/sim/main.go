// cmd/sim/main.go
package main

import (
	"fmt"
	"io"
	"os"

	"go-tower-sim/internal/action"
	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/logger"
	"go-tower-sim/internal/state"

	"go.uber.org/zap"
)

func main() {
	if _, err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run plays one simulation. Commands are read from in when the run is
// interactive; the state dump and the final score line go to out.
func run(args []string, in io.Reader, out io.Writer) (app.Snapshot, error) {
	settings, err := config.LoadSettings(args)
	if err != nil {
		return app.Snapshot{}, err
	}
	if err := logger.Init(settings.LogLevel, settings.LogTimeFormat); err != nil {
		return app.Snapshot{}, err
	}
	defer logger.Log.Sync() //nolint:errcheck

	scenario := defs.DefaultScenario()
	if settings.ScenarioFile != "" {
		scenario, err = defs.LoadScenario(settings.ScenarioFile)
		if err != nil {
			return app.Snapshot{}, err
		}
	}

	game, err := app.NewGame(settings, scenario)
	if err != nil {
		return app.Snapshot{}, err
	}
	game.Out = out

	sm := state.NewStateMachine()
	if settings.Paused {
		sm.SetState(state.NewPausedState(sm, game))
	} else {
		sm.SetState(state.NewRunningState(sm, game))
	}

	var input *action.Reader
	if settings.Interactive {
		input = action.NewReader(in)
	}

	for !game.Done() {
		if settings.MaxSteps > 0 && game.Steps() >= settings.MaxSteps {
			break
		}
		if input == nil && game.UnitsLeft() == 0 {
			break
		}
		a := action.Action{}
		if input != nil {
			a = input.Next(game.Mode())
		}
		sm.Update(a)
	}
	if input != nil {
		if err := input.Err(); err != nil {
			logger.Log.Warn("input closed", zap.Error(err))
		}
	}

	s := game.Snapshot()
	logger.Log.Info("simulation finished",
		zap.String("run", game.RunID),
		zap.String("state", sm.Current().Name()),
		zap.Int("steps", s.Step),
		zap.Int("score", s.Score),
		zap.Int("killed", s.Killed),
		zap.Int("arrived", s.Arrived),
		zap.Int("units_left", s.UnitsLeft))
	if _, err := fmt.Fprintf(out, "score %d\n", s.Score); err != nil {
		return s, fmt.Errorf("write score: %w", err)
	}
	return s, nil
}
