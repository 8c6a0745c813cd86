// internal/session/local.go
package session

import (
	"context"
	"fmt"
)

// waveDef описывает состав одной волны локального сервиса.
type waveDef struct {
	EnemyID       int
	Count         int
	SpawnInterval float64 // секунды между появлениями
}

// wavePatterns определяет последовательность волн. Ключ карты — номер волны;
// волны после последней повторяются по кругу из позднего диапазона.
var wavePatterns = map[int]waveDef{
	1:  {EnemyID: 1, Count: 6, SpawnInterval: 0.8},
	2:  {EnemyID: 1, Count: 9, SpawnInterval: 0.8},
	3:  {EnemyID: 2, Count: 8, SpawnInterval: 1.0},
	4:  {EnemyID: 4, Count: 10, SpawnInterval: 0.5},
	5:  {EnemyID: 2, Count: 12, SpawnInterval: 0.8},
	6:  {EnemyID: 3, Count: 10, SpawnInterval: 0.9},
	7:  {EnemyID: 4, Count: 14, SpawnInterval: 0.45},
	8:  {EnemyID: 3, Count: 12, SpawnInterval: 0.75},
	9:  {EnemyID: 2, Count: 18, SpawnInterval: 0.5},
	10: {EnemyID: 5, Count: 1, SpawnInterval: 1.0},
}

const (
	healthWaveMultiplier = 0.1
	rewardWaveMultiplier = 0.05
)

// Local — внутрипроцессный сессионный сервис: ведёт кошелёк и жизни и строит
// манифесты волн из таблицы. Используется в офлайн-игре и тестах.
// Рассчитан на однопоточный игровой цикл.
type Local struct {
	coins int
	lives int
}

// NewLocal создаёт локальный сервис с начальным балансом и запасом жизней.
func NewLocal(coins, lives int) *Local {
	return &Local{coins: coins, lives: lives}
}

// Coins возвращает текущий баланс (для индикаторов до первой операции).
func (l *Local) Coins() int { return l.coins }

// Lives возвращает текущий запас жизней.
func (l *Local) Lives() int { return l.lives }

func (l *Local) StartWave(_ context.Context, wave int) (WaveStart, error) {
	if wave < 1 {
		return WaveStart{}, fmt.Errorf("invalid wave number %d", wave)
	}
	def, ok := wavePatterns[wave]
	if !ok {
		// Волны после таблицы: повторяем поздний диапазон (6..10).
		repeating := ((wave - 6) % 5) + 6
		def = wavePatterns[repeating]
	}

	manifest := make([]SpawnEntry, 0, def.Count)
	for i := 0; i < def.Count; i++ {
		manifest = append(manifest, SpawnEntry{
			EnemyID:    def.EnemyID,
			SpawnDelay: float64(i) * def.SpawnInterval,
		})
	}
	return WaveStart{
		Wave:             wave,
		Manifest:         manifest,
		HealthMultiplier: healthWaveMultiplier,
		RewardMultiplier: rewardWaveMultiplier,
	}, nil
}

func (l *Local) RequestPlacement(_ context.Context, towerDefID, cost int) (PurchaseResult, error) {
	return l.spend(cost)
}

func (l *Local) RequestUpgrade(_ context.Context, towerDefID, level, cost int) (PurchaseResult, error) {
	return l.spend(cost)
}

func (l *Local) RequestSell(_ context.Context, towerDefID, level, refund int) (PurchaseResult, error) {
	l.coins += refund
	return PurchaseResult{Accepted: true, Coins: l.coins}, nil
}

func (l *Local) CreditKills(_ context.Context, kills, reward int) (int, error) {
	l.coins += reward
	return l.coins, nil
}

func (l *Local) ReportLifeLost(_ context.Context, leaked int) (LivesUpdate, error) {
	l.lives -= leaked
	if l.lives < 0 {
		l.lives = 0
	}
	return LivesUpdate{Lives: l.lives, GameOver: l.lives <= 0}, nil
}

func (l *Local) spend(cost int) (PurchaseResult, error) {
	if cost < 0 || cost > l.coins {
		return PurchaseResult{Accepted: false, Coins: l.coins}, nil
	}
	l.coins -= cost
	return PurchaseResult{Accepted: true, Coins: l.coins}, nil
}
