// internal/system/status_effect.go
package system

import (
	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/internal/event"
)

// StatusEffectSystem старит эффекты на врагах и применяет яд.
// Выполняется после урона в тике, чтобы смертельный тик яда и смертельное
// попадание в одном кадре не посчитали убийство дважды.
type StatusEffectSystem struct {
	st         *entity.State
	dispatcher *event.Dispatcher
}

func NewStatusEffectSystem(st *entity.State, dispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{st: st, dispatcher: dispatcher}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, h := range s.st.Hostiles {
		if !h.Alive() {
			continue
		}

		poison := 0.0
		kept := h.Effects[:0]
		for _, e := range h.Effects {
			e.Remaining -= deltaTime
			if e.Type == defs.EffectPoison {
				// Сила яда — урон в секунду.
				poison += e.Strength * deltaTime
			}
			if e.Remaining > 0 {
				kept = append(kept, e)
			}
		}
		h.Effects = kept

		if poison > 0 {
			// Суммарный яд тика идёт через общий путь смерти (ровно один раз).
			ApplyDamage(s.st, s.dispatcher, h, poison)
		}
	}
}
