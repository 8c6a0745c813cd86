package system

import (
	"math"
	"testing"

	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
)

func TestProjectileMovesTowardTarget(t *testing.T) {
	st := entity.NewState()
	sys := NewProjectileMotionSystem(st)

	h := addHostile(st, 100, 0, 50)
	p := addProjectileAt(st, h, nil, 10, defs.AttackSingle)
	p.X, p.Y = 0, 0
	p.Speed = 100

	sys.Update(0.5)

	if math.Abs(p.X-50) > 1e-9 || p.Y != 0 {
		t.Fatalf("expected projectile at (50, 0), got (%v, %v)", p.X, p.Y)
	}
}

func TestProjectileHomesOnMovingTarget(t *testing.T) {
	st := entity.NewState()
	sys := NewProjectileMotionSystem(st)

	h := addHostile(st, 100, 100, 50)
	p := addProjectileAt(st, h, nil, 10, defs.AttackSingle)
	p.X, p.Y = 0, 0
	p.Speed = 100

	sys.Update(0.5)
	h.X = 200 // цель сместилась, курс обновляется
	sys.Update(0.5)

	dx := 200 - p.X
	dy := 100 - p.Y
	before := math.Hypot(200-35.355, 100-35.355)
	if math.Hypot(dx, dy) >= before {
		t.Fatalf("projectile must close in on the new target position")
	}
}

func TestProjectileSnapsWhenClose(t *testing.T) {
	st := entity.NewState()
	sys := NewProjectileMotionSystem(st)

	h := addHostile(st, 100, 0, 50)
	p := addProjectileAt(st, h, nil, 10, defs.AttackSingle)
	p.X = 95
	p.Speed = 300 // шаг больше оставшейся дистанции

	sys.Update(0.1)

	if p.X != h.X || p.Y != h.Y {
		t.Fatalf("projectile must snap onto the target, got (%v, %v)", p.X, p.Y)
	}
	if p.Done {
		t.Fatalf("motion must not consume the projectile; impact resolution does")
	}
}

func TestProjectileTargetVanishedQuietly(t *testing.T) {
	st := entity.NewState()
	sys := NewProjectileMotionSystem(st)

	h := addHostile(st, 100, 0, 50)
	p := addProjectileAt(st, h, nil, 10, defs.AttackSingle)
	p.X = 0
	h.Dead = true

	sys.Update(0.1)

	if !p.Done {
		t.Fatalf("projectile must be discarded when its target vanishes")
	}
	if p.X != 0 {
		t.Fatalf("discarded projectile must not move")
	}
}
