// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lane-defense/internal/config"
)

// Фазы, которые показывает индикатор.
const (
	IndicatorBuild = iota // фаза строительства, клик запускает волну
	IndicatorWave         // волна в процессе
)

// StateIndicator — круглый индикатор фазы игры в верхнем углу.
// В фазе строительства клик по нему запускает следующую волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	CurrentState  int
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, CurrentState: IndicatorBuild}
}

func (si *StateIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(si.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := si.Radius * float32(scale)

	c := config.BuildStateColor
	if si.CurrentState == IndicatorWave {
		c = config.WaveStateColor
	}

	vector.DrawFilledCircle(screen, si.X, si.Y, radius, c, true)
	vector.StrokeCircle(screen, si.X, si.Y, radius, 2, config.IndicatorStroke, true)
}

func (si *StateIndicator) IsClicked(x, y int) bool {
	dx := float64(float32(x) - si.X)
	dy := float64(float32(y) - si.Y)
	return dx*dx+dy*dy <= float64(si.Radius*si.Radius)*2.25
}

func (si *StateIndicator) SetState(state int) {
	if si.CurrentState != state {
		si.CurrentState = state
		si.LastClickTime = time.Now()
	}
}
