// internal/system/movement.go
package system

import (
	"lane-defense/internal/config"
	"lane-defense/internal/entity"
	"lane-defense/internal/event"
)

// MovementSystem продвигает врагов вдоль дорожки.
type MovementSystem struct {
	st         *entity.State
	dispatcher *event.Dispatcher
	pathEndX   float64
}

func NewMovementSystem(st *entity.State, dispatcher *event.Dispatcher, pathEndX float64) *MovementSystem {
	return &MovementSystem{st: st, dispatcher: dispatcher, pathEndX: pathEndX}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, h := range s.st.Hostiles {
		if !h.Alive() {
			continue
		}

		// Замедления не складываются: действует сильнейшее, пол — 10% базовой скорости.
		factor := 1 - h.MaxSlowPercent()/100
		if factor < config.MinSlowSpeedFactor {
			factor = config.MinSlowSpeedFactor
		}
		h.X += h.Speed * factor * deltaTime

		if h.X >= s.pathEndX {
			// Враг покинул поле: одна потерянная жизнь, в счёт волны идёт
			// наравне со смертью, но взаимоисключимо с ней.
			h.Leaked = true
			s.dispatcher.Dispatch(event.Event{
				Type: event.HostileLeaked,
				Data: event.HostilePayload{ID: h.ID, DefID: h.DefID, Reward: h.Reward},
			})
		}
	}
}
