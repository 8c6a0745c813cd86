// internal/system/projectile.go
package system

import (
	"lane-defense/internal/entity"
)

// ProjectileMotionSystem ведёт снаряды по прямой к текущей позиции их цели.
// Цель движется, поэтому траектория искривляется (самонаведение).
type ProjectileMotionSystem struct {
	st *entity.State
}

func NewProjectileMotionSystem(st *entity.State) *ProjectileMotionSystem {
	return &ProjectileMotionSystem{st: st}
}

func (s *ProjectileMotionSystem) Update(deltaTime float64) {
	for _, p := range s.st.Projectiles {
		if p.Done {
			continue
		}
		target := s.st.HostileByID(p.TargetID)
		if target == nil {
			// Цель пропала до прилёта — ожидаемый исход, снаряд тихо исчезает.
			p.Done = true
			continue
		}

		dx := target.X - p.X
		dy := target.Y - p.Y
		d := dist(p.X, p.Y, target.X, target.Y)
		step := p.Speed * deltaTime
		if d <= step {
			// Прилёт фиксирует система попаданий; здесь только доводим позицию.
			p.X = target.X
			p.Y = target.Y
		} else {
			p.X += dx / d * step
			p.Y += dy / d * step
		}
	}
}
