package system

import (
	"math"

	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/internal/event"
	"lane-defense/internal/types"
)

var negInf = math.Inf(-1)

// eventRecorder собирает события для проверок в тестах.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecordingDispatcher() (*event.Dispatcher, *eventRecorder) {
	d := event.NewDispatcher()
	r := &eventRecorder{}
	d.Subscribe(event.HostileKilled, r)
	d.Subscribe(event.HostileLeaked, r)
	return d, r
}

// addHostile добавляет врага без брони (Runner) в указанной точке.
func addHostile(st *entity.State, x, y, health float64) *entity.Hostile {
	h := &entity.Hostile{
		ID:        st.NewID(),
		DefID:     1,
		Health:    health,
		MaxHealth: health,
		Reward:    4,
		Speed:     100,
		X:         x,
		Y:         y,
	}
	st.AddHostile(h)
	return h
}

// addDefender добавляет башню с заданным типом атаки и характеристиками.
func addDefender(st *entity.State, x, y float64, attack defs.AttackType, mode defs.TargetingMode, stats defs.LevelStats) *entity.Defender {
	d := &entity.Defender{
		ID:         st.NewID(),
		DefID:      1,
		X:          x,
		Y:          y,
		Level:      1,
		Stats:      stats,
		AttackType: attack,
		Targeting:  mode,
		LastFired:  negInf,
	}
	st.AddDefender(d)
	return d
}

// addProjectileAt создаёт снаряд, уже находящийся в точке цели.
func addProjectileAt(st *entity.State, target *entity.Hostile, source *entity.Defender, damage float64, attack defs.AttackType) *entity.Projectile {
	var sourceID types.EntityID
	if source != nil {
		sourceID = source.ID
	}
	p := &entity.Projectile{
		ID:         st.NewID(),
		X:          target.X,
		Y:          target.Y,
		TargetID:   target.ID,
		SourceID:   sourceID,
		Damage:     damage,
		Speed:      300,
		AttackType: attack,
		HitIDs:     make(map[types.EntityID]bool),
	}
	st.AddProjectile(p)
	return p
}
