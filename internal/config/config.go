// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 720

	// Сетка: прямоугольное поле из квадратных ячеек.
	CellSize = 48.0
	GridCols = 25
	GridRows = 15

	MaxDeltaTime = 0.06

	// Множители скорости симуляции: обычный режим и ускоренный.
	SpeedNormal = 1.0
	SpeedFast   = 3.0

	// Радиус, на котором снаряд засчитывается как попавший в цель.
	HitRadius = 15.0

	StartingCoins = 120
	StartingLives = 20

	// Минимальная доля базовой скорости под замедлением.
	MinSlowSpeedFactor = 0.1

	ProjectileRadius = 5.0
	HealthBarWidth   = 30.0
	HealthBarHeight  = 4.0
	HealthBarOffsetY = 22.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonY     = 30
	SpeedButtonSize  = 18.0

	InfoPanelWidth  = 230
	InfoPanelHeight = 150

	ClickDebounceTime = 100 // ms

	AuthorityRequestTimeout = 3 // seconds, websocket client
)

// Ряды сетки, по которым идут враги.
var LaneRowIndexes = []int{3, 7, 11}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FieldColor      = color.RGBA{40, 48, 60, 255}
	LaneColor       = color.RGBA{70, 100, 120, 220}
	GridLineColor   = color.RGBA{30, 36, 46, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	BuildStateColor = color.RGBA{70, 130, 180, 220}
	WaveStateColor  = color.RGBA{220, 60, 60, 220}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	EnemyColor      = color.RGBA{200, 60, 60, 255}
	TowerStroke     = color.RGBA{255, 255, 255, 255}
	SelectionColor  = color.RGBA{255, 215, 0, 255}
	RangeColor      = color.RGBA{240, 240, 240, 60}
	HealthBackColor = color.RGBA{60, 20, 20, 255}
	HealthFillColor = color.RGBA{50, 205, 50, 255}

	// Цвета иконок статус-эффектов над врагами.
	SlowColor   = color.RGBA{80, 160, 255, 255}
	PoisonColor = color.RGBA{90, 200, 90, 255}
	MarkColor   = color.RGBA{255, 120, 220, 255}
	ShredColor  = color.RGBA{210, 180, 100, 255}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220}, // x1
		{220, 60, 60, 220},  // x3
	}
)
