// internal/system/impact.go
package system

import (
	"log"

	"lane-defense/internal/config"
	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/internal/event"
	"lane-defense/internal/utils"
)

// ImpactSystem фиксирует прилёты снарядов и разрешает их последствия:
// урон, пробитие, цепь, сплеш и наложение статус-эффектов. Случайность
// (шанс сплеша) берётся из внедрённого PRNG-сервиса, чтобы разрешение
// было воспроизводимо в тестах.
type ImpactSystem struct {
	st         *entity.State
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
}

func NewImpactSystem(st *entity.State, dispatcher *event.Dispatcher, rng *utils.PRNGService) *ImpactSystem {
	return &ImpactSystem{st: st, dispatcher: dispatcher, rng: rng}
}

func (s *ImpactSystem) Update(deltaTime float64) {
	for _, p := range s.st.Projectiles {
		if p.Done {
			continue
		}
		target := s.st.HostileByID(p.TargetID)
		if target == nil {
			p.Done = true
			continue
		}
		if dist(p.X, p.Y, target.X, target.Y) >= config.HitRadius {
			continue
		}
		s.resolve(p, target)
	}
}

// resolve выполняет разбор по неизменному типу атаки снаряда.
// Перечисление обязано покрывать всё закрытое множество типов.
func (s *ImpactSystem) resolve(p *entity.Projectile, target *entity.Hostile) {
	switch p.AttackType {
	case defs.AttackSingle, defs.AttackMulti:
		s.strike(p, target)
		p.Done = true

	case defs.AttackPierce:
		s.strike(p, target)
		p.PierceLeft--
		if p.PierceLeft <= 0 {
			p.Done = true
			return
		}
		next := s.nextPierceTarget(p)
		if next == nil {
			p.Done = true
			return
		}
		p.TargetID = next.ID

	case defs.AttackSplash:
		// Основная цель получает удар всегда; соседи — по независимому броску.
		cx, cy := target.X, target.Y
		s.strike(p, target)
		for _, h := range s.st.Hostiles {
			if h == target || !h.Alive() {
				continue
			}
			if dist(cx, cy, h.X, h.Y) <= p.SplashRadius && s.rng.Roll(p.SplashChance) {
				s.strike(p, h)
			}
		}
		p.Done = true

	case defs.AttackChain:
		// Позиция освобождённой цели становится началом следующего перелёта.
		lastX, lastY := target.X, target.Y
		s.strike(p, target)
		p.ChainLeft--
		if p.ChainLeft <= 0 {
			p.Done = true
			return
		}
		next := s.nearestUnhit(p, lastX, lastY)
		if next == nil {
			p.Done = true
			return
		}
		p.X = lastX
		p.Y = lastY
		p.TargetID = next.ID

	case defs.AttackAura:
		// Ауры не порождают снарядов; такой снаряд — испорченные данные.
		log.Printf("ImpactSystem: projectile %d carries aura attack type, discarded", p.ID)
		p.Done = true
	}
}

// strike наносит один удар по врагу h: урон с учётом метки, аур источника и
// брони, затем статус-эффект снаряда. Эффект не накладывается, если удар стал
// смертельным — носить его уже некому.
func (s *ImpactSystem) strike(p *entity.Projectile, h *entity.Hostile) {
	p.HitIDs[h.ID] = true
	source := s.st.DefenderByID(p.SourceID)
	killed := ApplyDamage(s.st, s.dispatcher, h, HitDamage(s.st, h, source, p.Damage))
	if killed || p.Effect == nil {
		return
	}
	h.ApplyEffect(entity.StatusEffect{
		Type:      p.Effect.Type,
		Remaining: p.Effect.Duration,
		Strength:  p.Effect.Strength,
		SourceID:  p.SourceID,
	})
}

// nextPierceTarget ищет продолжение для пробивающего снаряда: ближайший ещё не
// задетый враг впереди по пути (больший x), иначе ближайший не задетый вообще.
func (s *ImpactSystem) nextPierceTarget(p *entity.Projectile) *entity.Hostile {
	var ahead, any *entity.Hostile
	var aheadDist, anyDist float64
	for _, h := range s.st.Hostiles {
		if !h.Alive() || p.HitIDs[h.ID] {
			continue
		}
		d := dist(p.X, p.Y, h.X, h.Y)
		if any == nil || d < anyDist {
			any = h
			anyDist = d
		}
		if h.X > p.X && (ahead == nil || d < aheadDist) {
			ahead = h
			aheadDist = d
		}
	}
	if ahead != nil {
		return ahead
	}
	return any
}

// nearestUnhit ищет ближайшего к точке (x, y) живого врага, не задетого этим
// снарядом, без ограничения направления и дальности.
func (s *ImpactSystem) nearestUnhit(p *entity.Projectile, x, y float64) *entity.Hostile {
	var best *entity.Hostile
	var bestDist float64
	for _, h := range s.st.Hostiles {
		if !h.Alive() || p.HitIDs[h.ID] {
			continue
		}
		d := dist(x, y, h.X, h.Y)
		if best == nil || d < bestDist {
			best = h
			bestDist = d
		}
	}
	return best
}
