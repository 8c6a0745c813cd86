// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	game "lane-defense/internal/app"
	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/session"
	"lane-defense/internal/ui"
	"lane-defense/internal/utils"
	"lane-defense/pkg/grid"
	"lane-defense/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *game.Game
	gridMap     *grid.Map
	renderer    *render.LaneRenderer
	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	infoPanel   *ui.InfoPanel
	fontFace    font.Face

	// Какую башню ставит игрок; выбирается клавишами 1-9.
	selectedTowerDefID int

	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, authority session.Authority, fontFace font.Face) *GameState {
	gridMap := grid.NewMap(config.GridCols, config.GridRows, config.CellSize, config.LaneRowIndexes)
	rng := utils.NewPRNGService(time.Now().UnixNano())
	gameLogic := game.NewGame(gridMap, authority, rng, config.StartingCoins, config.StartingLives)

	renderer := render.NewLaneRenderer(gridMap, fontFace, config.ScreenWidth, config.ScreenHeight)

	indicator := ui.NewStateIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	speedButton := ui.NewSpeedButton(
		float32(config.ScreenWidth-config.IndicatorOffsetX*3),
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize),
	)
	pauseButton := ui.NewPauseButton(
		float32(config.ScreenWidth-config.IndicatorOffsetX*5),
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize),
	)
	infoPanel := ui.NewInfoPanel(fontFace, fontFace)

	return &GameState{
		sm:                 sm,
		game:               gameLogic,
		gridMap:            gridMap,
		renderer:           renderer,
		indicator:          indicator,
		speedButton:        speedButton,
		pauseButton:        pauseButton,
		infoPanel:          infoPanel,
		fontFace:           fontFace,
		selectedTowerDefID: 1,
		lastClickTime:      time.Now(),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

// Game отдаёт игровую логику; нужно PauseState для возобновления.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update(g.game)

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pauseButton.Toggle()
		g.sm.SetState(NewPauseState(g.sm, g, g.fontFace))
		return
	}

	g.handleKeys()
	g.game.Update(deltaTime)

	if g.game.WaveActive() {
		g.indicator.SetState(ui.IndicatorWave)
	} else {
		g.indicator.SetState(ui.IndicatorBuild)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleGameClick(x, y)
		}
		g.lastClickTime = time.Now()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.ClearSelection()
		g.infoPanel.Hide()
	}
}

func (g *GameState) handleKeys() {
	// Выбор башни для постройки
	digitKeys := []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			if _, ok := defs.TowerLibrary[i+1]; ok {
				g.selectedTowerDefID = i + 1
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.game.WaveActive() {
		if err := g.game.StartWave(); err != nil {
			log.Printf("state: start wave: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.ToggleSpeed()
		g.speedButton.ToggleState()
	}
	if id := g.game.SelectedDefender(); id != 0 {
		if inpututil.IsKeyJustPressed(ebiten.KeyU) {
			if _, err := g.game.UpgradeDefender(id); err != nil {
				log.Printf("state: upgrade: %v", err)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyX) {
			if ok, err := g.game.SellDefender(id); err != nil {
				log.Printf("state: sell: %v", err)
			} else if ok {
				g.infoPanel.Hide()
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			g.game.CycleTargetingMode(id)
		}
	}
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	if g.speedButton.IsClicked(x, y) || g.pauseButton.IsClicked(x, y) || g.indicator.IsClicked(x, y) {
		return true
	}
	if g.infoPanel.IsVisible && y > config.ScreenHeight-config.InfoPanelHeight {
		return true
	}
	return false
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	debounce := time.Duration(config.ClickDebounceTime) * time.Millisecond
	if time.Since(g.lastClickTime) < debounce {
		return
	}
	switch {
	case g.speedButton.IsClicked(x, y):
		g.game.ToggleSpeed()
		g.speedButton.ToggleState()
	case g.pauseButton.IsClicked(x, y):
		g.pauseButton.Toggle()
		g.sm.SetState(NewPauseState(g.sm, g, g.fontFace))
	case g.indicator.IsClicked(x, y):
		if !g.game.WaveActive() {
			if err := g.game.StartWave(); err != nil {
				log.Printf("state: start wave: %v", err)
			}
		}
	}
	// Клики по кнопкам инфо-панели обрабатывает сама панель в Update.
}

// handleGameClick обрабатывает клики по полю: выбор сущности или постройка.
func (g *GameState) handleGameClick(x, y int) {
	// Сначала враги: они ходят по дорожкам, где башен не бывает.
	if id, ok := g.game.HostileAt(float64(x), float64(y)); ok {
		g.game.SelectHostile(id)
		g.infoPanel.SetTarget(id)
		return
	}

	cell := g.gridMap.PixelToCell(float64(x), float64(y))
	if id, ok := g.game.DefenderAt(cell); ok {
		g.game.SelectDefender(id)
		g.infoPanel.SetTarget(id)
		return
	}

	if _, err := g.game.AttemptPlacement(cell, g.selectedTowerDefID); err != nil {
		log.Printf("state: placement: %v", err)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Snapshot())

	g.indicator.Draw(screen)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.infoPanel.Draw(screen, g.game)

	if def, ok := defs.TowerLibrary[g.selectedTowerDefID]; ok {
		label := fmt.Sprintf("Build: %s (%d)", def.Name, def.Levels[0].Cost)
		text.Draw(screen, label, g.fontFace, 10, 34, config.TextLightColor)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
