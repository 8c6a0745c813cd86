// internal/ui/pause_button.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lane-defense/internal/config"
)

// PauseButton — две вертикальные полосы в режиме паузы,
// треугольник "play" при остановленной симуляции.
type PauseButton struct {
	X, Y          float32
	Size          float32
	Paused        bool
	LastClickTime time.Time
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := config.TextLightColor
	if b.Paused {
		// Треугольник "продолжить"
		fillTriangle(screen, b.X-size/2, b.Y-size*0.6, b.X+size*0.7, b.Y, b.X-size/2, b.Y+size*0.6, c)
		return
	}

	barW := size * 0.35
	barH := size * 1.2
	gap := size * 0.25
	vector.DrawFilledRect(screen, b.X-gap-barW, b.Y-barH/2, barW, barH, c, true)
	vector.DrawFilledRect(screen, b.X+gap, b.Y-barH/2, barW, barH, c, true)
}

func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	r := float64(b.Size) * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *PauseButton) Toggle() {
	b.Paused = !b.Paused
	b.LastClickTime = time.Now()
}
