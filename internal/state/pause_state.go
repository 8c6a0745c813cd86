// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"lane-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию; предыдущее состояние рисуется под
// затемняющим слоем.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	fontFace      font.Face
}

func NewPauseState(sm *StateMachine, prevState State, fontFace font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		fontFace:      fontFace,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		// "Отжимаем" кнопку паузы в игровом состоянии перед возвратом.
		if gs, ok := s.previousState.(*GameState); ok {
			gs.pauseButton.Toggle()
		}
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	bounds := text.BoundString(s.fontFace, pauseText)
	text.Draw(screen, pauseText, s.fontFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-20, color.White)
}

func (s *PauseState) Exit() {}
