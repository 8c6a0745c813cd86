// internal/session/messages.go
package session

import "encoding/json"

// Типы сообщений протокола сессионного сервиса.
const (
	msgWaveStart  = "wave.start"
	msgPlaceTower = "tower.place"
	msgUpgrade    = "tower.upgrade"
	msgSell       = "tower.sell"
	msgCredit     = "kills.credit"
	msgLifeLost   = "life.lost"
)

// requestEnvelope — конверт запроса: тип, сквозной номер и полезная нагрузка.
type requestEnvelope struct {
	Type    string          `json:"type"`
	Seq     uint64          `json:"seq"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// responseEnvelope — конверт ответа, соотносимый с запросом по Seq.
type responseEnvelope struct {
	Type    string          `json:"type"`
	Seq     uint64          `json:"seq"`
	Error   string          `json:"error,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type waveStartRequest struct {
	Wave int `json:"wave"`
}

type placementRequest struct {
	TowerDefID int `json:"towerDefId"`
	Cost       int `json:"cost"`
}

type upgradeRequest struct {
	TowerDefID int `json:"towerDefId"`
	Level      int `json:"level"`
	Cost       int `json:"cost"`
}

type sellRequest struct {
	TowerDefID int `json:"towerDefId"`
	Level      int `json:"level"`
	Refund     int `json:"refund"`
}

type creditRequest struct {
	Kills  int `json:"kills"`
	Reward int `json:"reward"`
}

type creditResponse struct {
	Coins int `json:"coins"`
}

type lifeLostRequest struct {
	Leaked int `json:"leaked"`
}
