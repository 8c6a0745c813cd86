// internal/app/tower_management.go
package app

import (
	"log"
	"math"

	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/internal/event"
	"lane-defense/internal/types"
	"lane-defense/pkg/grid"
)

// PlacementPreview — ответ на запрос предпросмотра: легальность ячейки и
// характеристики первого уровня выбранной башни.
type PlacementPreview struct {
	Legal bool
	Stats defs.LevelStats
}

// PreviewPlacement проверяет ячейку и возвращает предпросмотр первого уровня.
// Вызывается UI до фактического запроса установки.
func (g *Game) PreviewPlacement(cell grid.Cell, towerDefID int) PlacementPreview {
	def, ok := defs.TowerLibrary[towerDefID]
	if !ok {
		return PlacementPreview{}
	}
	stats := def.Levels[0]
	legal := g.GridMap.CanPlace(cell) && stats.Cost <= g.coins
	return PlacementPreview{Legal: legal, Stats: stats}
}

// AttemptPlacement пытается поставить башню towerDefID в ячейку cell.
// Невалидные попытки (занято, дорожка, за границей, не хватает монет)
// отклоняются синхронно и без каких-либо мутаций. Ошибка сервиса
// возвращается вызывающему.
func (g *Game) AttemptPlacement(cell grid.Cell, towerDefID int) (bool, error) {
	def, ok := defs.TowerLibrary[towerDefID]
	if !ok {
		// Определения принадлежат внешнему конфигу: лог и пропуск действия.
		log.Printf("game: unknown tower definition %d, placement skipped", towerDefID)
		return false, nil
	}
	stats := def.Levels[0]
	if !g.GridMap.CanPlace(cell) || stats.Cost > g.coins {
		return false, nil
	}

	ctx, cancel := g.authorityContext()
	defer cancel()
	res, err := g.Authority.RequestPlacement(ctx, towerDefID, stats.Cost)
	if err != nil {
		return false, err
	}
	if !res.Accepted {
		return false, nil
	}
	g.coins = res.Coins

	x, y := g.GridMap.CellToPixel(cell)
	d := &entity.Defender{
		ID:         g.State.NewID(),
		DefID:      towerDefID,
		Cell:       cell,
		X:          x,
		Y:          y,
		Level:      1,
		Stats:      stats,
		AttackType: def.AttackType,
		Targeting:  def.DefaultTargeting,
		LastFired:  math.Inf(-1), // свежая башня готова стрелять сразу
	}
	g.State.AddDefender(d)
	g.GridMap.SetOccupied(cell, true)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: d.ID})
	return true, nil
}

// UpgradeDefender повышает уровень башни. Снимок характеристик заменяется
// атомарно вместе с уровнем после подтверждения сервиса.
func (g *Game) UpgradeDefender(id types.EntityID) (bool, error) {
	d := g.State.DefenderByID(id)
	if d == nil {
		return false, nil
	}
	def, ok := defs.TowerLibrary[d.DefID]
	if !ok {
		log.Printf("game: unknown tower definition %d for upgrade, skipped", d.DefID)
		return false, nil
	}
	nextLevel := d.Level + 1
	stats, ok := def.StatsForLevel(nextLevel)
	if !ok || stats.Cost > g.coins {
		return false, nil
	}

	ctx, cancel := g.authorityContext()
	defer cancel()
	res, err := g.Authority.RequestUpgrade(ctx, d.DefID, nextLevel, stats.Cost)
	if err != nil {
		return false, err
	}
	if !res.Accepted {
		return false, nil
	}
	g.coins = res.Coins
	d.Level = nextLevel
	d.Stats = stats
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: d.ID})
	return true, nil
}

// SellDefender продаёт башню и освобождает её ячейку.
func (g *Game) SellDefender(id types.EntityID) (bool, error) {
	d := g.State.DefenderByID(id)
	if d == nil {
		return false, nil
	}

	ctx, cancel := g.authorityContext()
	defer cancel()
	res, err := g.Authority.RequestSell(ctx, d.DefID, d.Level, d.Stats.SellValue)
	if err != nil {
		return false, err
	}
	if !res.Accepted {
		return false, nil
	}
	g.coins = res.Coins

	g.State.RemoveDefender(id)
	g.GridMap.SetOccupied(d.Cell, false)
	if g.selectedDefender == id {
		g.selectedDefender = 0
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: id})
	return true, nil
}

// SetTargetingMode меняет режим прицеливания башни. Для башен-аур режим
// не выбирается.
func (g *Game) SetTargetingMode(id types.EntityID, mode defs.TargetingMode) bool {
	d := g.State.DefenderByID(id)
	if d == nil || d.AttackType == defs.AttackAura {
		return false
	}
	d.Targeting = mode
	return true
}

// CycleTargetingMode переключает режим прицеливания на следующий по кругу.
func (g *Game) CycleTargetingMode(id types.EntityID) bool {
	d := g.State.DefenderByID(id)
	if d == nil || d.AttackType == defs.AttackAura {
		return false
	}
	for i, m := range defs.TargetingModes {
		if m == d.Targeting {
			d.Targeting = defs.TargetingModes[(i+1)%len(defs.TargetingModes)]
			return true
		}
	}
	d.Targeting = defs.TargetingModes[0]
	return true
}

// DefenderAt возвращает id башни в ячейке cell.
func (g *Game) DefenderAt(cell grid.Cell) (types.EntityID, bool) {
	for _, d := range g.State.Defenders {
		if d.Cell == cell {
			return d.ID, true
		}
	}
	return 0, false
}

// HostileAt возвращает id живого врага, чья фигура накрывает точку (x, y).
func (g *Game) HostileAt(x, y float64) (types.EntityID, bool) {
	for _, h := range g.State.Hostiles {
		if !h.Alive() {
			continue
		}
		def, ok := defs.EnemyLibrary[h.DefID]
		size := 10.0
		if ok {
			size = def.Size
		}
		dx := h.X - x
		dy := h.Y - y
		if dx*dx+dy*dy <= size*size {
			return h.ID, true
		}
	}
	return 0, false
}
