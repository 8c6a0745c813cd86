// internal/system/targeting.go
package system

import (
	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/internal/types"
)

// TargetingSystem выбирает цели для башен и порождает снаряды.
type TargetingSystem struct {
	st *entity.State
}

func NewTargetingSystem(st *entity.State) *TargetingSystem {
	return &TargetingSystem{st: st}
}

func (s *TargetingSystem) Update(deltaTime float64) {
	for _, d := range s.st.Defenders {
		// Башни-ауры никогда не стреляют.
		if d.AttackType == defs.AttackAura || d.Stats.FireRate <= 0 {
			continue
		}
		cooldown := 1.0 / d.Stats.FireRate
		if s.st.GameTime-d.LastFired < cooldown {
			continue
		}

		inRange := s.hostilesInRange(d)
		if len(inRange) == 0 {
			// Кулдаун не сбрасывается: башня выстрелит сразу, как цель появится.
			continue
		}

		fired := 0
		if d.AttackType == defs.AttackMulti {
			count := d.Stats.TargetCount
			if count < 1 {
				count = 1
			}
			for _, t := range selectTargets(d, inRange, count) {
				s.fire(d, t)
				fired++
			}
		} else {
			s.fire(d, bestTarget(d, inRange))
			fired++
		}

		// Метка времени обновляется только если снаряд действительно произведён.
		if fired > 0 {
			d.LastFired = s.st.GameTime
		}
	}
}

// hostilesInRange возвращает живых врагов в радиусе башни, сохраняя порядок
// обхода живого набора (он же документированный tie-break).
func (s *TargetingSystem) hostilesInRange(d *entity.Defender) []*entity.Hostile {
	var result []*entity.Hostile
	for _, h := range s.st.Hostiles {
		if !h.Alive() {
			continue
		}
		if dist(d.X, d.Y, h.X, h.Y) <= d.Stats.Range {
			result = append(result, h)
		}
	}
	return result
}

// better сообщает, строго ли кандидат a лучше текущего лучшего b в режиме
// прицеливания башни. Равенство оставляет первого встреченного.
func better(mode defs.TargetingMode, d *entity.Defender, a, b *entity.Hostile) bool {
	switch mode {
	case defs.TargetFirst:
		return a.X > b.X // дальше всех по пути
	case defs.TargetLast:
		return a.X < b.X
	case defs.TargetNearest:
		return dist(d.X, d.Y, a.X, a.Y) < dist(d.X, d.Y, b.X, b.Y)
	case defs.TargetStrongest:
		return a.Health > b.Health
	case defs.TargetWeakest:
		return a.Health < b.Health
	}
	return false
}

func bestTarget(d *entity.Defender, candidates []*entity.Hostile) *entity.Hostile {
	best := candidates[0]
	for _, h := range candidates[1:] {
		if better(d.Targeting, d, h, best) {
			best = h
		}
	}
	return best
}

// selectTargets выбирает до count лучших целей по режиму башни как по убывающему
// приоритету, не нарушая tie-break первого встреченного.
func selectTargets(d *entity.Defender, candidates []*entity.Hostile, count int) []*entity.Hostile {
	if count >= len(candidates) {
		count = len(candidates)
	}
	chosen := make(map[types.EntityID]bool, count)
	result := make([]*entity.Hostile, 0, count)
	for len(result) < count {
		var best *entity.Hostile
		for _, h := range candidates {
			if chosen[h.ID] {
				continue
			}
			if best == nil || better(d.Targeting, d, h, best) {
				best = h
			}
		}
		if best == nil {
			break
		}
		chosen[best.ID] = true
		result = append(result, best)
	}
	return result
}

// fire создаёт снаряд по цели t, копируя характеристики из снимка башни.
// Тип атаки фиксируется на снаряде на весь его жизненный цикл.
func (s *TargetingSystem) fire(d *entity.Defender, t *entity.Hostile) {
	p := &entity.Projectile{
		ID:           s.st.NewID(),
		X:            d.X,
		Y:            d.Y,
		TargetID:     t.ID,
		SourceID:     d.ID,
		Damage:       d.Stats.Damage,
		Speed:        d.Stats.ProjectileSpeed,
		AttackType:   d.AttackType,
		HitIDs:       make(map[types.EntityID]bool),
		PierceLeft:   d.Stats.PierceCount,
		ChainLeft:    d.Stats.ChainCount,
		SplashRadius: d.Stats.SplashRadius,
		SplashChance: d.Stats.SplashChance,
		Effect:       d.Stats.Effect,
	}
	s.st.AddProjectile(p)
}
