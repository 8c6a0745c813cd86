// internal/system/aura.go
package system

import (
	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
)

// DamageAuraMultiplier — чистая функция запроса аур: суммирует силу всех чужих
// башен-аур с эффектом усиления урона, чей радиус накрывает позицию d, и
// возвращает множитель 1 + сумма/100. Результат никогда не кэшируется на башне,
// поэтому установка или продажа ауры действует уже на следующем тике.
func DamageAuraMultiplier(defenders []*entity.Defender, d *entity.Defender) float64 {
	if d == nil {
		return 1
	}
	sum := 0.0
	for _, other := range defenders {
		if other == d || other.AttackType != defs.AttackAura {
			continue
		}
		if other.Stats.AuraEffect != defs.AuraDamage || other.Stats.AuraRadius <= 0 {
			continue
		}
		if dist(other.X, other.Y, d.X, d.Y) <= other.Stats.AuraRadius {
			sum += other.Stats.AuraStrength
		}
	}
	return 1 + sum/100
}
