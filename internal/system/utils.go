// internal/system/utils.go
package system

import (
	"math"

	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/internal/event"
)

// HitDamage рассчитывает итоговый урон попадания по врагу: базовый урон,
// множитель метки на цели, множитель аур вокруг стреляющей башни и броня цели
// (после снятия). Метка никогда не влияет на шансы сплеша — только на величину
// урона. source может быть nil (башня продана до прилёта снаряда) — тогда
// бафф ауры не действует.
func HitDamage(st *entity.State, h *entity.Hostile, source *entity.Defender, base float64) float64 {
	if base <= 0 {
		return 0
	}
	damage := base * (1 + h.MarkStrength()/100)
	damage *= DamageAuraMultiplier(st.Defenders, source)

	def, ok := defs.EnemyLibrary[h.DefID]
	if ok && def.Armor > 0 {
		armor := def.Armor * (1 - h.MaxShredPercent()/100)
		if armor < 0 {
			armor = 0
		}
		damage -= armor
		if damage < 1 {
			damage = 1 // положительный удар всегда наносит хотя бы единицу
		}
	}
	return damage
}

// ApplyDamage отнимает здоровье и центрально обрабатывает смерть: флаг Dead
// ставится ровно один раз независимо от источника урона (снаряд, сплеш, цепь,
// яд), после чего отправляется единственное событие HostileKilled. Уже мёртвый
// враг урон не получает.
func ApplyDamage(st *entity.State, dispatcher *event.Dispatcher, h *entity.Hostile, damage float64) bool {
	if h == nil || !h.Alive() || damage <= 0 {
		return false
	}
	h.Health -= damage
	if h.Health > 0 {
		return false
	}
	h.Health = 0
	h.Dead = true
	if dispatcher != nil {
		dispatcher.Dispatch(event.Event{
			Type: event.HostileKilled,
			Data: event.HostilePayload{ID: h.ID, DefID: h.DefID, Reward: h.Reward},
		})
	}
	return true
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
