// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"lane-defense/internal/app"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/types"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 190
	titleFontSize  = 16
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel displays information about the selected defender or hostile.
type InfoPanel struct {
	IsVisible     bool
	TargetEntity  types.EntityID
	fontFace      font.Face
	titleFontFace font.Face
	currentY      float64
	targetY       float64
	UpgradeButton Button
	SellButton    Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(font font.Face, titleFont font.Face) *InfoPanel {
	return &InfoPanel{
		IsVisible:     false,
		fontFace:      font,
		titleFontFace: titleFont,
		currentY:      config.ScreenHeight,
		targetY:       config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Update(game *app.Game) {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}

	// Обработка кликов по кнопкам
	if p.IsVisible && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cursorX, cursorY := ebiten.CursorPosition()
		clickPoint := image.Point{X: cursorX, Y: cursorY}

		if p.TargetEntity == game.SelectedDefender() && p.TargetEntity != 0 {
			if clickPoint.In(p.UpgradeButton.Rect) {
				if _, err := game.UpgradeDefender(p.TargetEntity); err != nil {
					log.Printf("ui: upgrade: %v", err)
				}
			}
			if clickPoint.In(p.SellButton.Rect) {
				if ok, err := game.SellDefender(p.TargetEntity); err != nil {
					log.Printf("ui: sell: %v", err)
				} else if ok {
					p.Hide()
				}
			}
		}
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, game *app.Game) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.TargetEntity == 0 {
		return
	}

	p.drawEntityInfo(screen, game, panelRect.Min.X+15, panelRect.Min.Y+15)

	if d := game.State.DefenderByID(p.TargetEntity); d != nil {
		p.drawDefenderButtons(screen, game, panelRect)
	}
}

func (p *InfoPanel) drawEntityInfo(screen *ebiten.Image, game *app.Game, startX, startY int) {
	yPos := startY + titleFontSize

	if d := game.State.DefenderByID(p.TargetEntity); d != nil {
		if def, ok := defs.TowerLibrary[d.DefID]; ok {
			title := fmt.Sprintf("%s (lvl %d/%d)", def.Name, d.Level, def.MaxLevel())
			text.Draw(screen, title, p.titleFontFace, startX, yPos, config.TextLightColor)
			p.drawDefenderInfo(screen, d.Stats, string(d.Targeting), startX, yPos+lineHeight)
		}
		return
	}

	if h := game.State.HostileByID(p.TargetEntity); h != nil {
		if def, ok := defs.EnemyLibrary[h.DefID]; ok {
			text.Draw(screen, def.Name, p.titleFontFace, startX, yPos, config.TextLightColor)
			y := yPos + lineHeight
			text.Draw(screen, fmt.Sprintf("Health: %.0f / %.0f", h.Health, h.MaxHealth), p.fontFace, startX, y, config.TextLightColor)
			text.Draw(screen, fmt.Sprintf("Speed: %.0f", h.Speed), p.fontFace, startX+columnSpacing, y, config.TextLightColor)
			y += lineHeight
			text.Draw(screen, fmt.Sprintf("Armor: %.0f", def.Armor), p.fontFace, startX, y, config.TextLightColor)
			text.Draw(screen, fmt.Sprintf("Reward: %d", h.Reward), p.fontFace, startX+columnSpacing, y, config.TextLightColor)
			if len(h.Effects) > 0 {
				y += lineHeight
				line := "Effects:"
				for _, e := range h.Effects {
					line += fmt.Sprintf(" %s(%.1fs)", e.Type, e.Remaining)
				}
				text.Draw(screen, line, p.fontFace, startX, y, config.TextLightColor)
			}
		}
		return
	}

	text.Draw(screen, "Unknown Entity", p.titleFontFace, startX, yPos, config.TextLightColor)
}

func (p *InfoPanel) drawDefenderInfo(screen *ebiten.Image, stats defs.LevelStats, targeting string, startX, startY int) {
	y := startY
	col1X := startX
	col2X := startX + columnSpacing

	text.Draw(screen, fmt.Sprintf("Damage: %.0f", stats.Damage), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", stats.FireRate), p.fontFace, col2X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", stats.Range), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Targeting: %s", targeting), p.fontFace, col2X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Sell: %d", stats.SellValue), p.fontFace, col1X, y, config.TextLightColor)
}

func (p *InfoPanel) drawDefenderButtons(screen *ebiten.Image, game *app.Game, panelRect image.Rectangle) {
	btnWidth := 130
	btnHeight := 36

	p.SellButton.Rect = image.Rect(
		panelRect.Max.X-btnWidth-20,
		panelRect.Max.Y-btnHeight-20,
		panelRect.Max.X-20,
		panelRect.Max.Y-20,
	)
	p.SellButton.Text = "Sell"
	p.drawButton(screen, &p.SellButton, color.RGBA{R: 120, G: 60, B: 60, A: 255})

	d := game.State.DefenderByID(p.TargetEntity)
	def, ok := defs.TowerLibrary[d.DefID]
	if !ok || d.Level >= def.MaxLevel() {
		p.UpgradeButton.Rect = image.Rectangle{}
		return
	}
	next, _ := def.StatsForLevel(d.Level + 1)

	p.UpgradeButton.Rect = image.Rect(
		panelRect.Max.X-btnWidth*2-40,
		panelRect.Max.Y-btnHeight-20,
		panelRect.Max.X-btnWidth-40,
		panelRect.Max.Y-20,
	)
	p.UpgradeButton.Text = fmt.Sprintf("Upgrade (%d)", next.Cost)

	btnColor := color.RGBA{R: 60, G: 120, B: 60, A: 255}
	if game.Coins() < next.Cost {
		btnColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	}
	p.drawButton(screen, &p.UpgradeButton, btnColor)
}

func (p *InfoPanel) drawButton(screen *ebiten.Image, btn *Button, btnColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(btn.Rect.Min.X), float32(btn.Rect.Min.Y), float32(btn.Rect.Dx()), float32(btn.Rect.Dy()), btnColor, true)

	textBounds := text.BoundString(p.fontFace, btn.Text)
	textX := btn.Rect.Min.X + (btn.Rect.Dx()-textBounds.Dx())/2
	textY := btn.Rect.Min.Y + (btn.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, btn.Text, p.fontFace, textX, textY, color.White)
}
