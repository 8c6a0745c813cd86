// internal/ui/common.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Общий 1x1 белый спрайт для закраски треугольников.
var whiteImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()
