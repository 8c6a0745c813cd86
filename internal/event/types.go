// internal/event/types.go
package event

const (
	HostileKilled  EventType = "HostileKilled"  // Враг уничтожен уроном
	HostileLeaked  EventType = "HostileLeaked"  // Враг дошёл до конца пути
	WaveEnded      EventType = "WaveEnded"      // Волна закончилась
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	TowerUpgraded  EventType = "TowerUpgraded"  // Башня улучшена
	TowerSold      EventType = "TowerSold"      // Башня продана
	GameOver       EventType = "GameOver"       // Жизни закончились
)
