// internal/entity/state.go
package entity

import (
	"lane-defense/internal/defs"
	"lane-defense/internal/types"
	"lane-defense/pkg/grid"
)

// StatusEffect — экземпляр временного эффекта на враге.
// Инвариант: не больше одного экземпляра на пару (тип, источник).
type StatusEffect struct {
	Type      defs.EffectType
	Remaining float64 // секунды
	Strength  float64
	SourceID  types.EntityID
}

// Hostile — живой враг на поле.
type Hostile struct {
	ID        types.EntityID
	DefID     int
	Health    float64
	MaxHealth float64 // после масштабирования волны
	Reward    int     // после масштабирования волны
	Speed     float64 // базовая скорость из определения
	X, Y      float64
	Dead      bool // смерть уже учтена, слот ждёт уборки
	Leaked    bool // дошёл до конца пути
	Effects   []StatusEffect
}

// Alive сообщает, участвует ли враг ещё в симуляции.
func (h *Hostile) Alive() bool {
	return !h.Dead && !h.Leaked
}

// ApplyEffect накладывает эффект: существующая пара (тип, источник)
// обновляется, вторая копия никогда не добавляется.
func (h *Hostile) ApplyEffect(e StatusEffect) {
	for i := range h.Effects {
		if h.Effects[i].Type == e.Type && h.Effects[i].SourceID == e.SourceID {
			h.Effects[i].Remaining = e.Remaining
			h.Effects[i].Strength = e.Strength
			return
		}
	}
	h.Effects = append(h.Effects, e)
}

// maxEffectStrength возвращает максимальную силу среди активных эффектов типа t.
// Эффекты одного типа не складываются — действует сильнейший.
func (h *Hostile) maxEffectStrength(t defs.EffectType) float64 {
	max := 0.0
	for i := range h.Effects {
		if h.Effects[i].Type == t && h.Effects[i].Strength > max {
			max = h.Effects[i].Strength
		}
	}
	return max
}

// MaxSlowPercent — сильнейшее активное замедление в процентах.
func (h *Hostile) MaxSlowPercent() float64 {
	return h.maxEffectStrength(defs.EffectSlow)
}

// MarkStrength — сила активной метки в процентах (0, если метки нет).
func (h *Hostile) MarkStrength() float64 {
	return h.maxEffectStrength(defs.EffectMark)
}

// MaxShredPercent — сильнейшее активное снятие брони в процентах.
func (h *Hostile) MaxShredPercent() float64 {
	return h.maxEffectStrength(defs.EffectArmorShred)
}

// Defender — установленная башня.
type Defender struct {
	ID         types.EntityID
	DefID      int
	Cell       grid.Cell // неизменна после установки
	X, Y       float64   // производные от ячейки
	Level      int
	Stats      defs.LevelStats // снимок характеристик текущего уровня
	AttackType defs.AttackType // неизменная классификация
	Targeting  defs.TargetingMode
	LastFired  float64 // игровое время последнего выстрела
}

// Projectile — снаряд в полёте.
type Projectile struct {
	ID           types.EntityID
	X, Y         float64
	TargetID     types.EntityID
	SourceID     types.EntityID
	Damage       float64
	Speed        float64
	AttackType   defs.AttackType // копия с башни в момент выстрела
	HitIDs       map[types.EntityID]bool
	PierceLeft   int
	ChainLeft    int
	SplashRadius float64
	SplashChance float64
	Effect       *defs.EffectDef
	Done         bool // снаряд отработал, слот ждёт уборки
}

// State — арена живых коллекций симуляции. Слайсы дают стабильный порядок
// обхода (он же документированный tie-break при выборе целей); удаление
// помечается флагами Dead/Leaked/Done и применяется уплотнением на границе
// тика, чтобы системы внутри тика не перевыделяли коллекции.
type State struct {
	GameTime    float64
	nextID      types.EntityID
	Hostiles    []*Hostile
	Defenders   []*Defender
	Projectiles []*Projectile
}

// NewState создаёт пустую арену.
func NewState() *State {
	return &State{nextID: 1}
}

// NewID выдаёт следующий идентификатор сущности.
func (s *State) NewID() types.EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// AddHostile добавляет врага в живой набор.
func (s *State) AddHostile(h *Hostile) {
	s.Hostiles = append(s.Hostiles, h)
}

// AddDefender добавляет башню в живой набор.
func (s *State) AddDefender(d *Defender) {
	s.Defenders = append(s.Defenders, d)
}

// AddProjectile добавляет снаряд в живой набор.
func (s *State) AddProjectile(p *Projectile) {
	s.Projectiles = append(s.Projectiles, p)
}

// HostileByID возвращает живого врага по id, nil если он мёртв или отсутствует.
func (s *State) HostileByID(id types.EntityID) *Hostile {
	for _, h := range s.Hostiles {
		if h.ID == id && h.Alive() {
			return h
		}
	}
	return nil
}

// DefenderByID возвращает башню по id.
func (s *State) DefenderByID(id types.EntityID) *Defender {
	for _, d := range s.Defenders {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// RemoveDefender удаляет башню (продажа происходит вне тика).
func (s *State) RemoveDefender(id types.EntityID) bool {
	for i, d := range s.Defenders {
		if d.ID == id {
			s.Defenders = append(s.Defenders[:i], s.Defenders[i+1:]...)
			return true
		}
	}
	return false
}

// Flush уплотняет арену: выбрасывает мёртвых и ушедших врагов и отработавшие
// снаряды, сохраняя порядок остальных. Вызывается один раз на границе тика.
func (s *State) Flush() {
	liveH := s.Hostiles[:0]
	for _, h := range s.Hostiles {
		if h.Alive() {
			liveH = append(liveH, h)
		}
	}
	for i := len(liveH); i < len(s.Hostiles); i++ {
		s.Hostiles[i] = nil
	}
	s.Hostiles = liveH

	liveP := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Done {
			liveP = append(liveP, p)
		}
	}
	for i := len(liveP); i < len(s.Projectiles); i++ {
		s.Projectiles[i] = nil
	}
	s.Projectiles = liveP
}
