// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition — статическое описание типа врага.
type EnemyDefinition struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"` // пикселей в секунду
	Reward  int     `json:"reward"`
	Size    float64 `json:"size"` // радиус в пикселях
	Armor   float64 `json:"armor,omitempty"`
	Visuals Visuals `json:"visuals"`
}

// EnemyLibrary — библиотека определений врагов по целочисленным ID.
var EnemyLibrary = defaultEnemyLibrary()

func defaultEnemyLibrary() map[int]EnemyDefinition {
	return map[int]EnemyDefinition{
		1: {ID: 1, Name: "Runner", Health: 40, Speed: 110, Reward: 4, Size: 9,
			Visuals: Visuals{Color: color.RGBA{200, 60, 60, 255}, RadiusFactor: 0.2}},
		2: {ID: 2, Name: "Grunt", Health: 100, Speed: 80, Reward: 6, Size: 11,
			Visuals: Visuals{Color: color.RGBA{170, 80, 40, 255}, RadiusFactor: 0.24}},
		3: {ID: 3, Name: "Shell", Health: 140, Speed: 60, Reward: 9, Size: 12, Armor: 6,
			Visuals: Visuals{Color: color.RGBA{120, 120, 160, 255}, RadiusFactor: 0.26}},
		4: {ID: 4, Name: "Sprinter", Health: 55, Speed: 160, Reward: 7, Size: 8,
			Visuals: Visuals{Color: color.RGBA{230, 170, 40, 255}, RadiusFactor: 0.18}},
		5: {ID: 5, Name: "Brute", Health: 900, Speed: 45, Reward: 60, Size: 16, Armor: 10,
			Visuals: Visuals{Color: color.RGBA{90, 30, 30, 255}, RadiusFactor: 0.34}},
	}
}
