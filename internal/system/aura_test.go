package system

import (
	"math"
	"testing"

	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
)

func bannerStats(radius, strength float64) defs.LevelStats {
	return defs.LevelStats{AuraRadius: radius, AuraEffect: defs.AuraDamage, AuraStrength: strength}
}

func TestAuraMultiplierNoEmitters(t *testing.T) {
	st := entity.NewState()
	d := addDefender(st, 0, 0, defs.AttackSingle, defs.TargetFirst, singleShotStats())

	if got := DamageAuraMultiplier(st.Defenders, d); got != 1 {
		t.Fatalf("no emitters must mean multiplier 1, got %v", got)
	}
}

func TestAuraMultiplierInRange(t *testing.T) {
	st := entity.NewState()
	addDefender(st, 0, 0, defs.AttackAura, defs.TargetFirst, bannerStats(120, 20))
	d := addDefender(st, 100, 0, defs.AttackSingle, defs.TargetFirst, singleShotStats())

	if got := DamageAuraMultiplier(st.Defenders, d); math.Abs(got-1.2) > 1e-9 {
		t.Fatalf("expected 1.2 under a 20%% aura, got %v", got)
	}
}

func TestAuraMultiplierOutOfRange(t *testing.T) {
	st := entity.NewState()
	addDefender(st, 0, 0, defs.AttackAura, defs.TargetFirst, bannerStats(120, 20))
	d := addDefender(st, 500, 0, defs.AttackSingle, defs.TargetFirst, singleShotStats())

	if got := DamageAuraMultiplier(st.Defenders, d); got != 1 {
		t.Fatalf("tower outside aura radius must not be buffed, got %v", got)
	}
}

func TestAuraMultipleEmittersSum(t *testing.T) {
	st := entity.NewState()
	addDefender(st, 0, 0, defs.AttackAura, defs.TargetFirst, bannerStats(120, 20))
	addDefender(st, 50, 50, defs.AttackAura, defs.TargetFirst, bannerStats(150, 35))
	d := addDefender(st, 60, 0, defs.AttackSingle, defs.TargetFirst, singleShotStats())

	if got := DamageAuraMultiplier(st.Defenders, d); math.Abs(got-1.55) > 1e-9 {
		t.Fatalf("overlapping auras must sum: expected 1.55, got %v", got)
	}
}

func TestAuraEmitterDoesNotBuffItself(t *testing.T) {
	st := entity.NewState()
	banner := addDefender(st, 0, 0, defs.AttackAura, defs.TargetFirst, bannerStats(120, 20))

	if got := DamageAuraMultiplier(st.Defenders, banner); got != 1 {
		t.Fatalf("aura must not buff its own emitter, got %v", got)
	}
}

func TestAuraRemovalTakesEffectImmediately(t *testing.T) {
	st := entity.NewState()
	banner := addDefender(st, 0, 0, defs.AttackAura, defs.TargetFirst, bannerStats(120, 20))
	d := addDefender(st, 100, 0, defs.AttackSingle, defs.TargetFirst, singleShotStats())

	if got := DamageAuraMultiplier(st.Defenders, d); math.Abs(got-1.2) > 1e-9 {
		t.Fatalf("expected buffed multiplier before removal, got %v", got)
	}

	st.RemoveDefender(banner.ID)

	// Никакого кэша: следующий запрос уже не видит проданную ауру.
	if got := DamageAuraMultiplier(st.Defenders, d); got != 1 {
		t.Fatalf("sold aura must stop buffing immediately, got %v", got)
	}
}

func TestAuraNilSource(t *testing.T) {
	st := entity.NewState()
	addDefender(st, 0, 0, defs.AttackAura, defs.TargetFirst, bannerStats(120, 20))

	if got := DamageAuraMultiplier(st.Defenders, nil); got != 1 {
		t.Fatalf("nil source (sold tower) must yield neutral multiplier, got %v", got)
	}
}
