package entity

import (
	"testing"

	"go-tower-sim/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitCarriesUnitComponents(t *testing.T) {
	store := NewECS()
	id := store.NewUnit(component.Position{X: 5, Y: -5}, 3, 42, 0)

	require.True(t, store.Alive(id))
	assert.Equal(t, component.Position{X: 5, Y: -5}, *store.Positions.Get(id))
	assert.Equal(t, component.Health{Value: 42, Max: 42}, *store.Healths.Get(id))
	assert.Equal(t, 3, store.Speeds.Get(id).Value)
	assert.Equal(t, 0, store.Waypoints.Get(id).Index)
	assert.False(t, store.Damages.Has(id))
	assert.False(t, store.Scores.Has(id))
}

func TestNewTowerCarriesTowerComponents(t *testing.T) {
	store := NewECS()
	id := store.NewTower(component.Position{X: 1, Y: 2}, 4, 350)

	require.True(t, store.Alive(id))
	assert.Equal(t, 4, store.Damages.Get(id).Value)
	assert.Equal(t, 350, store.Ranges.Get(id).Value)
	assert.Equal(t, 0, store.Scores.Get(id).Kills)
	assert.False(t, store.Targets.Get(id).Engaged)
	assert.False(t, store.Healths.Has(id))
	assert.False(t, store.Speeds.Has(id))
}

func TestFiltersMatchByComponentSet(t *testing.T) {
	store := NewECS()
	store.NewUnit(component.Position{}, 1, 10, 0)
	store.NewUnit(component.Position{X: 1}, 1, 10, 0)
	store.NewTower(component.Position{X: 2}, 3, 300)

	count := func(next func() bool) int {
		n := 0
		for next() {
			n++
		}
		return n
	}

	units := store.Units.Query()
	assert.Equal(t, 2, count(units.Next))
	movers := store.Movers.Query()
	assert.Equal(t, 2, count(movers.Next))
	towers := store.Towers.Query()
	assert.Equal(t, 1, count(towers.Next))
	placed := store.Placed.Query()
	assert.Equal(t, 3, count(placed.Next))
}

func TestRemoveEntity(t *testing.T) {
	store := NewECS()
	id := store.NewUnit(component.Position{}, 1, 10, 0)

	store.RemoveEntity(id)
	assert.False(t, store.Alive(id))

	assert.Panics(t, func() { store.RemoveEntity(id) }, "stale handle must not be removed twice")
}

func TestRemovedHandleIsNotReused(t *testing.T) {
	store := NewECS()
	old := store.NewUnit(component.Position{}, 1, 10, 0)
	store.RemoveEntity(old)

	fresh := store.NewUnit(component.Position{}, 1, 10, 0)
	assert.NotEqual(t, old, fresh)
	assert.False(t, store.Alive(old))
	assert.True(t, store.Alive(fresh))
}

func TestForEachViewsAreCopies(t *testing.T) {
	store := NewECS()
	unit := store.NewUnit(component.Position{X: 7, Y: 8}, 2, 30, 0)
	tower := store.NewTower(component.Position{X: 0, Y: 0}, 3, 400)

	var units []UnitView
	store.ForEachUnit(func(v UnitView) {
		v.Health.Value = -100
		units = append(units, v)
	})
	require.Len(t, units, 1)
	assert.Equal(t, unit, units[0].ID)
	assert.Equal(t, component.Position{X: 7, Y: 8}, units[0].Position)
	assert.Equal(t, 30, store.Healths.Get(unit).Value)

	var towers []TowerView
	store.ForEachTower(func(v TowerView) { towers = append(towers, v) })
	require.Len(t, towers, 1)
	assert.Equal(t, tower, towers[0].ID)
	assert.Equal(t, 3, towers[0].Damage)
	assert.Equal(t, 400, towers[0].Range)
	assert.Equal(t, 0, towers[0].Kills)
}
