// internal/session/authority.go
package session

import "context"

// SpawnEntry — запись манифеста волны от сессионного сервиса.
type SpawnEntry struct {
	EnemyID    int     `json:"enemyId"`
	SpawnDelay float64 `json:"spawnDelay"` // секунды от начала волны
}

// WaveStart — ответ сервиса на запуск волны: манифест плюс пара множителей
// масштабирования, фиксированных на всю волну.
type WaveStart struct {
	Wave             int          `json:"wave"`
	Manifest         []SpawnEntry `json:"manifest"`
	HealthMultiplier float64      `json:"healthMultiplier"`
	RewardMultiplier float64      `json:"rewardMultiplier"`
}

// PurchaseResult — вердикт сервиса по финансовой операции и итоговый баланс.
type PurchaseResult struct {
	Accepted bool `json:"accepted"`
	Coins    int  `json:"coins"`
}

// LivesUpdate — авторитетный остаток жизней после утечки врагов.
type LivesUpdate struct {
	Lives    int  `json:"lives"`
	GameOver bool `json:"gameOver"`
}

// Authority — сессионный сервис, владеющий финансовым состоянием (монеты,
// жизни) и манифестами волн. Бой и движение локально авторитетны; монеты и
// жизни никогда не мутируются до подтверждения сервиса.
type Authority interface {
	StartWave(ctx context.Context, wave int) (WaveStart, error)
	RequestPlacement(ctx context.Context, towerDefID, cost int) (PurchaseResult, error)
	RequestUpgrade(ctx context.Context, towerDefID, level, cost int) (PurchaseResult, error)
	RequestSell(ctx context.Context, towerDefID, level, refund int) (PurchaseResult, error)
	// CreditKills зачисляет награду за kills убийств и возвращает баланс.
	CreditKills(ctx context.Context, kills, reward int) (int, error)
	// ReportLifeLost списывает leaked жизней и возвращает остаток.
	ReportLifeLost(ctx context.Context, leaked int) (LivesUpdate, error)
}
