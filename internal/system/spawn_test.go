package system

import (
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/utils"
	pkgutils "go-tower-sim/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpawner(t *testing.T) (*entity.ECS, *Spawner, *recorder) {
	t.Helper()
	store := entity.NewECS()
	d := event.NewDispatcher()
	rec := listenAll(d)
	return store, NewSpawner(store, defs.DefaultScenario(), utils.NewPRNGService(42), d), rec
}

func TestSpawnUnitsWithinTables(t *testing.T) {
	store, s, rec := newSpawner(t)
	tables := defs.DefaultScenario().Unit
	origin := pos(-1000, 1000)

	ids, err := s.SpawnUnits(200, origin)
	require.NoError(t, err)
	require.Len(t, ids, 200)
	assert.Equal(t, 1, rec.count(event.UnitsSpawned))

	for _, id := range ids {
		p := *store.Positions.Get(id)
		assert.True(t, pkgutils.Abs(p.X-origin.X) <= tables.OffsetExtent)
		assert.True(t, pkgutils.Abs(p.Y-origin.Y) <= tables.OffsetExtent)
		assert.True(t, tables.Speed.Contains(store.Speeds.Get(id).Value))
		health := *store.Healths.Get(id)
		assert.True(t, tables.Health.Contains(health.Value))
		assert.Equal(t, health.Value, health.Max)
		assert.Equal(t, 0, store.Waypoints.Get(id).Index)
	}
}

func TestSpawnTowersWithinTables(t *testing.T) {
	store, s, rec := newSpawner(t)
	tables := defs.DefaultScenario().Tower

	ids, err := s.SpawnTowers(50)
	require.NoError(t, err)
	require.Len(t, ids, 50)
	assert.Equal(t, 50, rec.count(event.TowerPlaced))

	for _, id := range ids {
		p := *store.Positions.Get(id)
		assert.True(t, p.X >= -tables.PlacementExtent && p.X < tables.PlacementExtent)
		assert.True(t, p.Y >= -tables.PlacementExtent && p.Y < tables.PlacementExtent)
		assert.True(t, tables.Damage.Contains(store.Damages.Get(id).Value))
		assert.True(t, tables.Range.Contains(store.Ranges.Get(id).Value))
		assert.Equal(t, 0, store.Scores.Get(id).Kills)
		assert.False(t, store.Targets.Get(id).Engaged)
	}
}

func TestSpawnCounts(t *testing.T) {
	_, s, rec := newSpawner(t)

	ids, err := s.SpawnUnits(0, pos(0, 0))
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, rec.count(event.UnitsSpawned), "empty batches are not announced")

	_, err = s.SpawnUnits(-1, pos(0, 0))
	assert.ErrorIs(t, err, ErrInvalidCount)
	_, err = s.SpawnTowers(-3)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestSpawnIsReproducible(t *testing.T) {
	positions := func() []component.Position {
		store := entity.NewECS()
		s := NewSpawner(store, defs.DefaultScenario(), utils.NewPRNGService(7), nil)
		ids, err := s.SpawnTowers(5)
		require.NoError(t, err)
		out := make([]component.Position, 0, len(ids))
		for _, id := range ids {
			out = append(out, *store.Positions.Get(id))
		}
		return out
	}
	assert.Equal(t, positions(), positions())
}

func TestRemoveTowerProximity(t *testing.T) {
	store, s, rec := newSpawner(t)
	tower := store.NewTower(pos(100, 100), 3, 300)

	_, ok := s.RemoveTower(pos(105, 105))
	assert.False(t, ok, "distance 10 is outside the threshold")
	assert.True(t, store.Alive(tower))

	id, ok := s.RemoveTower(pos(105, 104))
	require.True(t, ok)
	assert.Equal(t, tower, id)
	assert.False(t, store.Alive(tower))
	assert.Equal(t, 1, rec.count(event.TowerRemoved))

	_, ok = s.RemoveTower(pos(100, 100))
	assert.False(t, ok)
}

func TestRemoveTowerPicksClosestAndSkipsUnits(t *testing.T) {
	store, s, _ := newSpawner(t)
	unit := store.NewUnit(pos(0, 0), 1, 10, 0)
	far := store.NewTower(pos(6, 0), 3, 300)
	near := store.NewTower(pos(-2, 0), 3, 300)

	id, ok := s.RemoveTower(pos(0, 0))
	require.True(t, ok)
	assert.Equal(t, near, id)
	assert.True(t, store.Alive(far))
	assert.True(t, store.Alive(unit))
}

func TestSelectTowerAndUnit(t *testing.T) {
	store, s, _ := newSpawner(t)
	tower := store.NewTower(pos(0, 0), 4, 350)
	unit := store.NewUnit(pos(50, 50), 3, 80, 1)

	sel, ok := s.Select(pos(3, 3))
	require.True(t, ok)
	assert.Equal(t, tower, sel.ID)
	assert.True(t, sel.IsTower())
	require.NotNil(t, sel.Range)
	assert.Equal(t, 350, sel.Range.Value)
	assert.Nil(t, sel.Health)

	sel, ok = s.Select(pos(52, 49))
	require.True(t, ok)
	assert.Equal(t, unit, sel.ID)
	assert.False(t, sel.IsTower())
	require.NotNil(t, sel.Health)
	assert.Equal(t, 80, sel.Health.Value)
	assert.Equal(t, 1, sel.Waypoint.Index)

	sel.Health.Value = 1
	assert.Equal(t, 80, store.Healths.Get(unit).Value, "selection is a copy")

	_, ok = s.Select(pos(25, 25))
	assert.False(t, ok)
}

func TestSpawnAtWorldEdgeDoesNotOverflow(t *testing.T) {
	scenario := defs.DefaultScenario()
	edge := config.WorldExtent
	scenario.Path = []component.Position{pos(edge, -edge), pos(-edge, edge)}
	scenario.Unit = defs.UnitDefinition{
		OffsetExtent: edge,
		Speed:        defs.IntRange{Min: 1, Max: edge},
		Health:       defs.IntRange{Min: 1, Max: edge},
	}
	scenario.Tower = defs.TowerDefinition{
		PlacementExtent: edge,
		Damage:          defs.IntRange{Min: 1, Max: edge},
		Range:           defs.IntRange{Min: 0, Max: edge},
	}
	require.NoError(t, scenario.Validate())

	store := entity.NewECS()
	s := NewSpawner(store, scenario, utils.NewPRNGService(9), nil)
	assert.NotPanics(t, func() {
		_, err := s.SpawnUnits(20, scenario.Start())
		require.NoError(t, err)
		_, err = s.SpawnTowers(20)
		require.NoError(t, err)
		NewMovementSystem(store, scenario.Path).Update()
		NewCombatSystem(store, nil).Update()
	})
	store.ForEachUnit(func(u entity.UnitView) {
		assert.LessOrEqual(t, pkgutils.Abs(u.Position.X), 2*edge)
		assert.LessOrEqual(t, pkgutils.Abs(u.Position.Y), 2*edge)
	})
}
