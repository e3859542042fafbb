// internal/app/tower_management.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/logger"
	"go-tower-sim/internal/types"

	"go.uber.org/zap"
)

// BuildTower places a tower with random damage and range at pos.
func (g *Game) BuildTower(pos component.Position) types.EntityID {
	return g.Spawner.SpawnTower(pos)
}

// RemoveTower removes the tower closest to pos within the proximity
// threshold. A selection pointing at it is dropped.
func (g *Game) RemoveTower(pos component.Position) bool {
	id, ok := g.Spawner.RemoveTower(pos)
	if !ok {
		logger.Log.Debug("no tower to remove", zap.Int("x", pos.X), zap.Int("y", pos.Y))
		return false
	}
	if g.selection != nil && g.selection.ID == id {
		g.selection = nil
	}
	return true
}

// Select remembers a copy of the entity closest to pos. Selecting empty
// ground clears the selection.
func (g *Game) Select(pos component.Position) bool {
	sel, ok := g.Spawner.Select(pos)
	if !ok {
		g.selection = nil
		return false
	}
	g.selection = &sel
	logger.Log.Info("entity selected",
		zap.Uint32("entity", sel.ID.ID()),
		zap.Bool("tower", sel.IsTower()),
		zap.Int("x", sel.Position.X), zap.Int("y", sel.Position.Y))
	return true
}
