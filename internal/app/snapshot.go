// internal/app/snapshot.go
package app

import (
	"lane-defense/internal/defs"
	"lane-defense/internal/types"
)

// Снимок состояния на конец тика. Структуры не содержат ссылок в живые
// коллекции: наблюдатель (рендер) может читать их без оглядки на симуляцию,
// а ядро ничего не знает о рендере.

// DefenderView — данные башни, достаточные для отрисовки.
type DefenderView struct {
	ID         types.EntityID
	DefID      int
	Level      int
	X, Y       float64
	Range      float64
	AuraRadius float64
	AttackType defs.AttackType
	Targeting  defs.TargetingMode
	Selected   bool
}

// HostileView — данные врага: позиция, доля здоровья, активные эффекты.
type HostileView struct {
	ID          types.EntityID
	DefID       int
	X, Y        float64
	HealthRatio float64
	Effects     []defs.EffectType
	Selected    bool
}

// ProjectileView — позиция и тип снаряда.
type ProjectileView struct {
	X, Y       float64
	AttackType defs.AttackType
}

// Snapshot — неизменяемый срез состояния игры на конец тика.
type Snapshot struct {
	GameTime    float64
	Wave        int
	Coins       int
	Lives       int
	Kills       int
	WaveDealt   int // убитые + просочившиеся в текущей волне
	WaveTotal   int
	WaveActive  bool
	GameOver    bool
	Defenders   []DefenderView
	Hostiles    []HostileView
	Projectiles []ProjectileView
}

func (g *Game) buildSnapshot() *Snapshot {
	snap := &Snapshot{
		GameTime:   g.State.GameTime,
		Wave:       g.wave,
		Coins:      g.coins,
		Lives:      g.lives,
		Kills:      g.kills,
		WaveDealt:  g.waveDealt,
		WaveTotal:  g.waveTotal,
		WaveActive: g.waveActive,
		GameOver:   g.gameOver,
	}

	snap.Defenders = make([]DefenderView, 0, len(g.State.Defenders))
	for _, d := range g.State.Defenders {
		snap.Defenders = append(snap.Defenders, DefenderView{
			ID:         d.ID,
			DefID:      d.DefID,
			Level:      d.Level,
			X:          d.X,
			Y:          d.Y,
			Range:      d.Stats.Range,
			AuraRadius: d.Stats.AuraRadius,
			AttackType: d.AttackType,
			Targeting:  d.Targeting,
			Selected:   d.ID == g.selectedDefender,
		})
	}

	snap.Hostiles = make([]HostileView, 0, len(g.State.Hostiles))
	for _, h := range g.State.Hostiles {
		if !h.Alive() {
			continue
		}
		var effects []defs.EffectType
		for i := range h.Effects {
			effects = append(effects, h.Effects[i].Type)
		}
		ratio := 0.0
		if h.MaxHealth > 0 {
			ratio = h.Health / h.MaxHealth
		}
		snap.Hostiles = append(snap.Hostiles, HostileView{
			ID:          h.ID,
			DefID:       h.DefID,
			X:           h.X,
			Y:           h.Y,
			HealthRatio: ratio,
			Effects:     effects,
			Selected:    h.ID == g.selectedHostile,
		})
	}

	snap.Projectiles = make([]ProjectileView, 0, len(g.State.Projectiles))
	for _, p := range g.State.Projectiles {
		if p.Done {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X:          p.X,
			Y:          p.Y,
			AttackType: p.AttackType,
		})
	}

	return snap
}

// Snapshot возвращает снимок, опубликованный на конце последнего тика.
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot
}
