// internal/system/spawn.go
package system

import (
	"log"
	"math"

	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/pkg/grid"
)

// SpawnEntry — одна запись манифеста волны: кого и через сколько выпустить.
type SpawnEntry struct {
	EnemyID    int
	SpawnDelay float64 // секунды от начала волны
}

type pendingSpawn struct {
	enemyID int
	dueAt   float64
	lane    int
}

// SpawnSystem превращает манифест волны в последовательность появлений врагов.
// Множители масштабирования фиксируются на всю волну и применяются один раз —
// в момент появления врага.
type SpawnSystem struct {
	st         *entity.State
	gridMap    *grid.Map
	elapsed    float64
	pending    []pendingSpawn
	wave       int
	healthMult float64
	rewardMult float64
	spawned    int
}

func NewSpawnSystem(st *entity.State, gridMap *grid.Map) *SpawnSystem {
	return &SpawnSystem{st: st, gridMap: gridMap}
}

// StartWave загружает манифест новой волны. Дорожки распределяются по записям
// по кругу.
func (s *SpawnSystem) StartWave(wave int, manifest []SpawnEntry, healthMult, rewardMult float64) {
	s.wave = wave
	s.healthMult = healthMult
	s.rewardMult = rewardMult
	s.elapsed = 0
	s.spawned = 0
	s.pending = s.pending[:0]
	for i, e := range manifest {
		s.pending = append(s.pending, pendingSpawn{
			enemyID: e.EnemyID,
			dueAt:   e.SpawnDelay,
			lane:    i % max(1, len(s.gridMap.LaneRows)),
		})
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	if len(s.pending) == 0 {
		return
	}
	s.elapsed += deltaTime

	remaining := s.pending[:0]
	for _, p := range s.pending {
		if p.dueAt <= s.elapsed {
			s.spawn(p)
		} else {
			remaining = append(remaining, p)
		}
	}
	s.pending = remaining
}

func (s *SpawnSystem) spawn(p pendingSpawn) {
	def, ok := defs.EnemyLibrary[p.enemyID]
	if !ok {
		// Определения принадлежат внешнему конфигу: пропуск записи, не фатал.
		log.Printf("SpawnSystem: unknown enemy definition %d, entry skipped", p.enemyID)
		return
	}

	h := &entity.Hostile{
		ID:        s.st.NewID(),
		DefID:     p.enemyID,
		Health:    scale(def.Health, s.wave, s.healthMult),
		MaxHealth: scale(def.Health, s.wave, s.healthMult),
		Reward:    int(scale(float64(def.Reward), s.wave, s.rewardMult)),
		Speed:     def.Speed,
		X:         s.gridMap.SpawnX(),
		Y:         s.gridMap.LaneY(p.lane),
	}
	s.st.AddHostile(h)
	s.spawned++
}

// scale применяет формулу масштабирования волны: round(base * (1 + wave*mult)).
func scale(base float64, wave int, mult float64) float64 {
	return math.Round(base * (1 + float64(wave)*mult))
}

// PendingCount — сколько записей манифеста ещё не выпущено.
func (s *SpawnSystem) PendingCount() int {
	return len(s.pending)
}

// SpawnedCount — сколько врагов выпущено в текущей волне.
func (s *SpawnSystem) SpawnedCount() int {
	return s.spawned
}
