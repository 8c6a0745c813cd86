// internal/defs/towers.go
package defs

import "image/color"

// LevelStats — снимок боевых характеристик башни для одного уровня.
type LevelStats struct {
	Damage          float64        `json:"damage"`
	Range           float64        `json:"range"`            // пиксели
	FireRate        float64        `json:"fire_rate"`        // выстрелов в секунду
	ProjectileSpeed float64        `json:"projectile_speed"` // пикселей в секунду
	PierceCount     int            `json:"pierce_count,omitempty"`
	ChainCount      int            `json:"chain_count,omitempty"`
	TargetCount     int            `json:"target_count,omitempty"`
	SplashRadius    float64        `json:"splash_radius,omitempty"`
	SplashChance    float64        `json:"splash_chance,omitempty"` // проценты, 0..100
	Effect          *EffectDef     `json:"effect,omitempty"`
	AuraRadius      float64        `json:"aura_radius,omitempty"`
	AuraEffect      AuraEffectKind `json:"aura_effect,omitempty"`
	AuraStrength    float64        `json:"aura_strength,omitempty"` // проценты
	Cost            int            `json:"cost"` // уровень 1 — цена постройки, дальше — цена апгрейда
	SellValue       int            `json:"sell_value"`
}

// Visuals — параметры отрисовки сущности.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

// TowerDefinition — статическое описание типа башни.
type TowerDefinition struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	AttackType       AttackType    `json:"attack_type"`
	DefaultTargeting TargetingMode `json:"default_targeting"`
	Levels           []LevelStats  `json:"levels"`
	Visuals          Visuals       `json:"visuals"`
}

// MaxLevel возвращает максимальный уровень башни.
func (d *TowerDefinition) MaxLevel() int {
	return len(d.Levels)
}

// StatsForLevel возвращает снимок характеристик для уровня level (1..MaxLevel).
func (d *TowerDefinition) StatsForLevel(level int) (LevelStats, bool) {
	if level < 1 || level > len(d.Levels) {
		return LevelStats{}, false
	}
	return d.Levels[level-1], true
}

// TowerLibrary — библиотека определений башен по целочисленным ID.
// Заполняется значениями по умолчанию и может быть перекрыта JSON-файлом.
var TowerLibrary = defaultTowerLibrary()

func defaultTowerLibrary() map[int]TowerDefinition {
	return map[int]TowerDefinition{
		1: {
			ID: 1, Name: "Arrow", AttackType: AttackSingle, DefaultTargeting: TargetFirst,
			Levels: []LevelStats{
				{Damage: 12, Range: 140, FireRate: 1.6, ProjectileSpeed: 340, Cost: 30, SellValue: 20},
				{Damage: 20, Range: 155, FireRate: 1.9, ProjectileSpeed: 360, Cost: 35, SellValue: 40},
				{Damage: 34, Range: 170, FireRate: 2.2, ProjectileSpeed: 380, Cost: 55, SellValue: 70},
			},
			Visuals: Visuals{Color: color.RGBA{255, 50, 50, 255}, RadiusFactor: 0.3},
		},
		2: {
			ID: 2, Name: "Lance", AttackType: AttackPierce, DefaultTargeting: TargetFirst,
			Levels: []LevelStats{
				{Damage: 16, Range: 160, FireRate: 0.9, ProjectileSpeed: 420, PierceCount: 2, Cost: 45, SellValue: 30},
				{Damage: 26, Range: 175, FireRate: 1.1, ProjectileSpeed: 440, PierceCount: 3, Cost: 50, SellValue: 60},
			},
			Visuals: Visuals{Color: color.RGBA{50, 255, 50, 255}, RadiusFactor: 0.3},
		},
		3: {
			ID: 3, Name: "Mortar", AttackType: AttackSplash, DefaultTargeting: TargetStrongest,
			Levels: []LevelStats{
				{Damage: 22, Range: 190, FireRate: 0.6, ProjectileSpeed: 220, SplashRadius: 60, SplashChance: 60, Cost: 60, SellValue: 40},
				{Damage: 36, Range: 205, FireRate: 0.7, ProjectileSpeed: 230, SplashRadius: 70, SplashChance: 80, Cost: 70, SellValue: 80},
			},
			Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}, RadiusFactor: 0.34},
		},
		4: {
			ID: 4, Name: "Tesla", AttackType: AttackChain, DefaultTargeting: TargetNearest,
			Levels: []LevelStats{
				{Damage: 14, Range: 150, FireRate: 1.0, ProjectileSpeed: 500, ChainCount: 2, Cost: 55, SellValue: 35},
				{Damage: 22, Range: 165, FireRate: 1.2, ProjectileSpeed: 520, ChainCount: 4, Cost: 65, SellValue: 70},
			},
			Visuals: Visuals{Color: color.RGBA{180, 50, 230, 255}, RadiusFactor: 0.3},
		},
		5: {
			ID: 5, Name: "Hive", AttackType: AttackMulti, DefaultTargeting: TargetWeakest,
			Levels: []LevelStats{
				{Damage: 8, Range: 150, FireRate: 1.4, ProjectileSpeed: 300, TargetCount: 3,
					Effect: &EffectDef{Type: EffectPoison, Duration: 3, Strength: 6}, Cost: 65, SellValue: 45},
				{Damage: 12, Range: 165, FireRate: 1.6, ProjectileSpeed: 320, TargetCount: 4,
					Effect: &EffectDef{Type: EffectPoison, Duration: 3.5, Strength: 10}, Cost: 75, SellValue: 90},
			},
			Visuals: Visuals{Color: color.RGBA{230, 170, 40, 255}, RadiusFactor: 0.3},
		},
		6: {
			ID: 6, Name: "Frost", AttackType: AttackSingle, DefaultTargeting: TargetFirst,
			Levels: []LevelStats{
				{Damage: 6, Range: 145, FireRate: 1.2, ProjectileSpeed: 320,
					Effect: &EffectDef{Type: EffectSlow, Duration: 2, Strength: 40}, Cost: 40, SellValue: 25},
				{Damage: 10, Range: 160, FireRate: 1.4, ProjectileSpeed: 340,
					Effect: &EffectDef{Type: EffectSlow, Duration: 2.5, Strength: 55}, Cost: 45, SellValue: 55},
			},
			Visuals: Visuals{Color: color.RGBA{80, 160, 255, 255}, RadiusFactor: 0.3},
		},
		7: {
			ID: 7, Name: "Hex", AttackType: AttackSingle, DefaultTargeting: TargetStrongest,
			Levels: []LevelStats{
				{Damage: 5, Range: 170, FireRate: 0.8, ProjectileSpeed: 360,
					Effect: &EffectDef{Type: EffectMark, Duration: 4, Strength: 25}, Cost: 50, SellValue: 30},
				{Damage: 9, Range: 185, FireRate: 1.0, ProjectileSpeed: 380,
					Effect: &EffectDef{Type: EffectMark, Duration: 5, Strength: 40}, Cost: 60, SellValue: 65},
			},
			Visuals: Visuals{Color: color.RGBA{255, 120, 220, 255}, RadiusFactor: 0.3},
		},
		8: {
			ID: 8, Name: "Acid", AttackType: AttackSplash, DefaultTargeting: TargetFirst,
			Levels: []LevelStats{
				{Damage: 10, Range: 160, FireRate: 0.9, ProjectileSpeed: 260, SplashRadius: 50, SplashChance: 100,
					Effect: &EffectDef{Type: EffectArmorShred, Duration: 4, Strength: 50}, Cost: 55, SellValue: 35},
			},
			Visuals: Visuals{Color: color.RGBA{150, 210, 90, 255}, RadiusFactor: 0.3},
		},
		9: {
			ID: 9, Name: "Banner", AttackType: AttackAura, DefaultTargeting: TargetFirst,
			Levels: []LevelStats{
				{AuraRadius: 120, AuraEffect: AuraDamage, AuraStrength: 20, Cost: 70, SellValue: 45},
				{AuraRadius: 150, AuraEffect: AuraDamage, AuraStrength: 35, Cost: 80, SellValue: 95},
			},
			Visuals: Visuals{Color: color.RGBA{255, 215, 0, 255}, RadiusFactor: 0.34},
		},
	}
}
