// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"lane-defense/internal/config"
	"lane-defense/internal/session"
)

// MenuState — стартовый экран. Пробел начинает игру.
type MenuState struct {
	sm        *StateMachine
	authority session.Authority
	fontFace  font.Face
}

func NewMenuState(sm *StateMachine, authority session.Authority, fontFace font.Face) *MenuState {
	return &MenuState{sm: sm, authority: authority, fontFace: fontFace}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.authority, m.fontFace))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	msg := "LANE DEFENSE — press SPACE to start"
	bounds := text.BoundString(m.fontFace, msg)
	text.Draw(screen, msg, m.fontFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
