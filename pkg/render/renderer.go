// pkg/render/renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"lane-defense/internal/app"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/pkg/grid"
)

// LaneRenderer рисует поле и снимок состояния игры. Симуляция о нём не знает:
// на вход идёт только *app.Snapshot, опубликованный на конце тика.
type LaneRenderer struct {
	gridMap      *grid.Map
	screenWidth  int
	screenHeight int
	fontFace     font.Face
	mapImage     *ebiten.Image // предрендеренный задник
}

func NewLaneRenderer(gridMap *grid.Map, fontFace font.Face, screenWidth, screenHeight int) *LaneRenderer {
	r := &LaneRenderer{
		gridMap:      gridMap,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fontFace:     fontFace,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.renderMapImage()
	return r
}

// renderMapImage отрисовывает задник один раз при инициализации.
func (r *LaneRenderer) renderMapImage() {
	r.mapImage.Fill(config.BackgroundColor)

	cell := float32(r.gridMap.CellSize)
	for row := 0; row < r.gridMap.Rows; row++ {
		y := float32(row) * cell
		fill := config.FieldColor
		if r.gridMap.IsLane(grid.Cell{Col: 0, Row: row}) {
			fill = config.LaneColor
		}
		vector.DrawFilledRect(r.mapImage, 0, y, float32(r.gridMap.Cols)*cell, cell, fill, false)
	}

	// Линии сетки
	for col := 0; col <= r.gridMap.Cols; col++ {
		x := float32(col) * cell
		vector.StrokeLine(r.mapImage, x, 0, x, float32(r.gridMap.Rows)*cell, 1, config.GridLineColor, false)
	}
	for row := 0; row <= r.gridMap.Rows; row++ {
		y := float32(row) * cell
		vector.StrokeLine(r.mapImage, 0, y, float32(r.gridMap.Cols)*cell, y, 1, config.GridLineColor, false)
	}
}

func (r *LaneRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.DrawImage(r.mapImage, nil)
	if snap == nil {
		return
	}

	r.drawDefenders(screen, snap)
	r.drawHostiles(screen, snap)
	r.drawProjectiles(screen, snap)
	r.drawHUD(screen, snap)
}

func (r *LaneRenderer) drawDefenders(screen *ebiten.Image, snap *app.Snapshot) {
	for i := range snap.Defenders {
		d := &snap.Defenders[i]
		def, ok := defs.TowerLibrary[d.DefID]
		if !ok {
			continue
		}
		radius := float32(config.CellSize * def.Visuals.RadiusFactor)
		cx, cy := float32(d.X), float32(d.Y)

		if d.Selected {
			if d.AttackType == defs.AttackAura {
				vector.StrokeCircle(screen, cx, cy, float32(d.AuraRadius), 1, config.RangeColor, true)
			} else {
				vector.StrokeCircle(screen, cx, cy, float32(d.Range), 1, config.RangeColor, true)
			}
		}

		vector.DrawFilledCircle(screen, cx, cy, radius, def.Visuals.Color, true)
		stroke := config.TowerStroke
		if d.Selected {
			stroke = config.SelectionColor
		}
		vector.StrokeCircle(screen, cx, cy, radius, 2, stroke, true)

		// Точки уровня под башней
		for lvl := 0; lvl < d.Level; lvl++ {
			px := cx - radius + float32(lvl)*6
			py := cy + radius + 5
			vector.DrawFilledCircle(screen, px, py, 2, config.TextLightColor, true)
		}
	}
}

func (r *LaneRenderer) drawHostiles(screen *ebiten.Image, snap *app.Snapshot) {
	for i := range snap.Hostiles {
		h := &snap.Hostiles[i]
		def, ok := defs.EnemyLibrary[h.DefID]
		if !ok {
			continue
		}
		radius := float32(config.CellSize * def.Visuals.RadiusFactor)
		cx, cy := float32(h.X), float32(h.Y)

		vector.DrawFilledCircle(screen, cx, cy, radius, def.Visuals.Color, true)
		if h.Selected {
			vector.StrokeCircle(screen, cx, cy, radius+2, 2, config.SelectionColor, true)
		}

		r.drawHealthBar(screen, cx, cy, h.HealthRatio)
		r.drawEffectIcons(screen, cx, cy, h.Effects)
	}
}

func (r *LaneRenderer) drawHealthBar(screen *ebiten.Image, cx, cy float32, ratio float64) {
	if ratio >= 1 {
		return
	}
	w := float32(config.HealthBarWidth)
	hgt := float32(config.HealthBarHeight)
	x := cx - w/2
	y := cy - float32(config.HealthBarOffsetY)
	vector.DrawFilledRect(screen, x, y, w, hgt, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), hgt, config.HealthFillColor, false)
}

func (r *LaneRenderer) drawEffectIcons(screen *ebiten.Image, cx, cy float32, effects []defs.EffectType) {
	if len(effects) == 0 {
		return
	}
	// Квадратики-иконки над полосой здоровья, без дублей
	seen := make(map[defs.EffectType]struct{}, len(effects))
	x := cx - float32(config.HealthBarWidth)/2
	y := cy - float32(config.HealthBarOffsetY) - 8
	for _, e := range effects {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		vector.DrawFilledRect(screen, x, y, 6, 6, effectColor(e), false)
		x += 8
	}
}

func effectColor(e defs.EffectType) color.RGBA {
	switch e {
	case defs.EffectSlow:
		return config.SlowColor
	case defs.EffectPoison:
		return config.PoisonColor
	case defs.EffectMark:
		return config.MarkColor
	case defs.EffectArmorShred:
		return config.ShredColor
	}
	return config.TextLightColor
}

func (r *LaneRenderer) drawProjectiles(screen *ebiten.Image, snap *app.Snapshot) {
	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(config.ProjectileRadius), config.TextLightColor, true)
	}
}

func (r *LaneRenderer) drawHUD(screen *ebiten.Image, snap *app.Snapshot) {
	hud := fmt.Sprintf("Coins: %d   Lives: %d   Wave: %d   Kills: %d", snap.Coins, snap.Lives, snap.Wave, snap.Kills)
	if snap.WaveActive && snap.WaveTotal > 0 {
		hud += fmt.Sprintf("   Progress: %d/%d", snap.WaveDealt, snap.WaveTotal)
	}
	text.Draw(screen, hud, r.fontFace, 10, 16, config.TextLightColor)

	if snap.GameOver {
		msg := "GAME OVER"
		bounds := text.BoundString(r.fontFace, msg)
		text.Draw(screen, msg, r.fontFace, (r.screenWidth-bounds.Dx())/2, r.screenHeight/2, config.WaveStateColor)
	}
}
