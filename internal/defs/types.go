// internal/defs/types.go
package defs

// AttackType — закрытое множество поведений снаряда при попадании.
// Разбор по типу в системе попаданий обязан перечислять все варианты.
type AttackType string

const (
	AttackSingle AttackType = "SINGLE"
	AttackPierce AttackType = "PIERCE"
	AttackSplash AttackType = "SPLASH"
	AttackChain  AttackType = "CHAIN"
	AttackMulti  AttackType = "MULTI"
	AttackAura   AttackType = "AURA"
)

// TargetingMode — выбираемый игроком компаратор ранжирования целей.
type TargetingMode string

const (
	TargetFirst     TargetingMode = "FIRST"
	TargetLast      TargetingMode = "LAST"
	TargetNearest   TargetingMode = "NEAREST"
	TargetStrongest TargetingMode = "STRONGEST"
	TargetWeakest   TargetingMode = "WEAKEST"
)

// TargetingModes — порядок переключения режимов в UI.
var TargetingModes = []TargetingMode{
	TargetFirst, TargetLast, TargetNearest, TargetStrongest, TargetWeakest,
}

// EffectType — вид временного статус-эффекта на враге.
type EffectType string

const (
	EffectSlow       EffectType = "SLOW"
	EffectPoison     EffectType = "POISON"
	EffectMark       EffectType = "MARK"
	EffectArmorShred EffectType = "ARMOR_SHRED"
)

// AuraEffectKind — вид пассивного усиления от башни-ауры.
type AuraEffectKind string

const (
	AuraDamage AuraEffectKind = "DAMAGE"
)

// EffectDef описывает статус-эффект, который снаряд накладывает при попадании.
type EffectDef struct {
	Type     EffectType `json:"type"`
	Duration float64    `json:"duration"` // секунды
	Strength float64    `json:"strength"` // проценты или урон-в-секунду для яда
}
