// internal/app/game.go
package app

import (
	"fmt"
	"io"
	"os"

	"go-tower-sim/internal/action"
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/logger"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game owns the entity store and every running total of one simulation run.
type Game struct {
	ECS             *entity.ECS
	Waypoints       []component.Position
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	LifecycleSystem *system.LifecycleSystem
	Spawner         *system.Spawner
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	RunID           string
	// Out receives the PrintState dump.
	Out io.Writer

	settings  config.Settings
	step      int
	arrived   int
	killed    int
	selection *system.Selection
	mode      action.Mode
	debug     bool
	done      bool
}

// NewGame validates its inputs and spawns the initial batch: settings.Units
// units around the start of the path and settings.Towers towers.
func NewGame(settings config.Settings, scenario defs.Scenario) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	waypoints := append([]component.Position(nil), scenario.Path...)

	g := &Game{
		ECS:             ecs,
		Waypoints:       waypoints,
		MovementSystem:  system.NewMovementSystem(ecs, waypoints),
		CombatSystem:    system.NewCombatSystem(ecs, eventDispatcher),
		LifecycleSystem: system.NewLifecycleSystem(ecs, eventDispatcher),
		Spawner:         system.NewSpawner(ecs, scenario, rng, eventDispatcher),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		RunID:           uuid.NewString(),
		Out:             os.Stdout,
		settings:        settings,
	}

	listener := &TelemetryListener{runID: g.RunID}
	for _, t := range []event.EventType{
		event.TowerPlaced, event.TowerRemoved, event.UnitsSpawned,
		event.UnitKilled, event.UnitDied, event.UnitArrived,
	} {
		eventDispatcher.Subscribe(t, listener)
	}

	if _, err := g.Spawner.SpawnUnits(settings.Units, scenario.Start()); err != nil {
		return nil, err
	}
	if _, err := g.Spawner.SpawnTowers(settings.Towers); err != nil {
		return nil, err
	}

	logger.Log.Info("simulation created",
		zap.String("run", g.RunID),
		zap.Int64("seed", rng.Seed()),
		zap.Int("units", settings.Units),
		zap.Int("towers", settings.Towers),
		zap.Int("waypoints", len(waypoints)))
	return g, nil
}

// Step advances the simulation once: motion, then removal of the dead, then
// removal of the arrived, then combat. Units killed in combat stay in the
// store until the next step.
func (g *Game) Step() {
	g.MovementSystem.Update()
	g.killed += g.LifecycleSystem.RemoveDead()
	g.arrived += g.LifecycleSystem.RemoveArrived(g.End())
	g.CombatSystem.Update()
	g.step++

	if g.debug {
		s := g.Snapshot()
		logger.Log.Info("step",
			zap.String("run", g.RunID),
			zap.Int("step", s.Step),
			zap.Int("units_left", s.UnitsLeft),
			zap.Int("arrived", s.Arrived),
			zap.Int("killed", s.Killed),
			zap.Int("score", s.Score),
			zap.Stringer("mode", s.Mode))
	}
}

// HandleAction applies one command. Pausing is the run state's business and
// is ignored here.
func (g *Game) HandleAction(a action.Action) {
	switch a.Kind {
	case action.None, action.TogglePause:
	case action.Spawn:
		if _, err := g.Spawner.SpawnUnits(g.settings.Units, g.Start()); err != nil {
			logger.Log.Error("spawn failed", zap.Error(err))
		}
	case action.Build:
		g.BuildTower(a.Position)
	case action.Remove:
		g.RemoveTower(a.Position)
	case action.View:
		g.Select(a.Position)
	case action.PrintState:
		if err := g.PrintState(g.Out); err != nil {
			logger.Log.Error("print state failed", zap.Error(err))
		}
	case action.ChangeMode:
		g.mode = a.Mode
		logger.Log.Debug("mode changed", zap.Stringer("mode", g.mode))
	case action.ToggleDebug:
		g.debug = !g.debug
		logger.Log.Info("debug toggled", zap.Bool("debug", g.debug))
	case action.Quit:
		g.done = true
	default:
		logger.Log.Warn("unknown action", zap.Stringer("kind", a.Kind))
	}
}

// Done reports whether a Quit command was received.
func (g *Game) Done() bool {
	return g.done
}

func (g *Game) Start() component.Position { return g.Waypoints[0] }

func (g *Game) End() component.Position { return g.Waypoints[len(g.Waypoints)-1] }

func (g *Game) Mode() action.Mode { return g.mode }

func (g *Game) Steps() int { return g.step }

func (g *Game) UnitsLeft() int { return g.LifecycleSystem.UnitsLeft() }

// Score is the kill total of the towers still standing.
func (g *Game) Score() int { return g.LifecycleSystem.Score() }

// Snapshot is the scalar HUD block.
type Snapshot struct {
	Step      int
	UnitsLeft int
	Arrived   int
	Killed    int
	Score     int
	Mode      action.Mode
	Debug     bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Step:      g.step,
		UnitsLeft: g.UnitsLeft(),
		Arrived:   g.arrived,
		Killed:    g.killed,
		Score:     g.Score(),
		Mode:      g.mode,
		Debug:     g.debug,
	}
}

// Selection returns the last selected entity while it is still in the store.
// The copy is taken at selection time and is not refreshed by later steps.
func (g *Game) Selection() (system.Selection, bool) {
	if g.selection == nil {
		return system.Selection{}, false
	}
	if !g.ECS.Alive(g.selection.ID) {
		g.selection = nil
		return system.Selection{}, false
	}
	return *g.selection, true
}

// PrintState writes every unit and tower, one per line.
func (g *Game) PrintState(w io.Writer) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	s := g.Snapshot()
	printf("step %d units %d arrived %d killed %d score %d\n",
		s.Step, s.UnitsLeft, s.Arrived, s.Killed, s.Score)
	g.ECS.ForEachUnit(func(u entity.UnitView) {
		printf("unit %d health %d/%d at (%d, %d)\n",
			u.ID.ID(), u.Health.Value, u.Health.Max, u.Position.X, u.Position.Y)
	})
	g.ECS.ForEachTower(func(t entity.TowerView) {
		target := "none"
		if t.Target.Engaged {
			target = fmt.Sprintf("%d at (%d, %d)", t.Target.Entity.ID(), t.Target.Position.X, t.Target.Position.Y)
		}
		printf("tower %d at (%d, %d) damage %d range %d score %d target %s\n",
			t.ID.ID(), t.Position.X, t.Position.Y, t.Damage, t.Range, t.Kills, target)
	})
	return err
}

// TelemetryListener logs every simulation event.
type TelemetryListener struct {
	runID string
}

func (l *TelemetryListener) OnEvent(e event.Event) {
	fields := []zap.Field{zap.String("run", l.runID), zap.String("event", string(e.Type))}
	switch data := e.Data.(type) {
	case event.Kill:
		fields = append(fields,
			zap.Uint32("tower", data.Tower.ID()),
			zap.Uint32("unit", data.Unit.ID()),
			zap.Int("x", data.Position.X), zap.Int("y", data.Position.Y))
	case int:
		fields = append(fields, zap.Int("count", data))
	default:
		fields = append(fields, zap.Any("data", data))
	}
	logger.Log.Debug("event", fields...)
}
