// internal/app/game.go
package app

import (
	"context"
	"log"
	"time"

	"lane-defense/internal/config"
	"lane-defense/internal/entity"
	"lane-defense/internal/event"
	"lane-defense/internal/session"
	"lane-defense/internal/system"
	"lane-defense/internal/types"
	"lane-defense/internal/utils"
	"lane-defense/pkg/grid"
)

// Game holds the main game state and logic.
// Всё изменяемое состояние симуляции собрано в одном агрегате и передаётся
// системам явно — никаких синглтонов.
type Game struct {
	GridMap         *grid.Map
	State           *entity.State
	EventDispatcher *event.Dispatcher
	Authority       session.Authority
	Rng             *utils.PRNGService

	SpawnSystem        *system.SpawnSystem
	MovementSystem     *system.MovementSystem
	TargetingSystem    *system.TargetingSystem
	ProjectileSystem   *system.ProjectileMotionSystem
	ImpactSystem       *system.ImpactSystem
	StatusEffectSystem *system.StatusEffectSystem

	SpeedMultiplier float64

	// Авторитетные значения сервиса; мутируются только по подтверждению.
	coins int
	lives int

	wave       int
	waveActive bool
	kills      int
	waveDealt  int // убитые + просочившиеся в текущей волне
	waveTotal  int
	gameOver   bool
	resigned   bool

	selectedDefender types.EntityID
	selectedHostile  types.EntityID

	// Накопленные за тик обращения к сервису; отправляются после тика.
	pendingKills  int
	pendingReward int
	pendingLeaks  int

	snapshot *Snapshot
}

// NewGame initializes a new game instance.
func NewGame(gridMap *grid.Map, authority session.Authority, rng *utils.PRNGService, coins, lives int) *Game {
	if gridMap == nil {
		panic("gridMap cannot be nil")
	}

	st := entity.NewState()
	dispatcher := event.NewDispatcher()
	g := &Game{
		GridMap:         gridMap,
		State:           st,
		EventDispatcher: dispatcher,
		Authority:       authority,
		Rng:             rng,
		SpeedMultiplier: config.SpeedNormal,
		coins:           coins,
		lives:           lives,
	}
	g.SpawnSystem = system.NewSpawnSystem(st, gridMap)
	g.MovementSystem = system.NewMovementSystem(st, dispatcher, gridMap.PathEndX())
	g.TargetingSystem = system.NewTargetingSystem(st)
	g.ProjectileSystem = system.NewProjectileMotionSystem(st)
	g.ImpactSystem = system.NewImpactSystem(st, dispatcher, rng)
	g.StatusEffectSystem = system.NewStatusEffectSystem(st, dispatcher)

	listener := &gameEventListener{game: g}
	dispatcher.Subscribe(event.HostileKilled, listener)
	dispatcher.Subscribe(event.HostileLeaked, listener)

	g.snapshot = g.buildSnapshot()
	return g
}

// gameEventListener обрабатывает события, важные для основного игрового цикла.
type gameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *gameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.HostileKilled:
		p, ok := e.Data.(event.HostilePayload)
		if !ok {
			return
		}
		// Центральный учёт смерти: событие приходит ровно один раз на врага.
		g.kills++
		g.waveDealt++
		g.pendingKills++
		g.pendingReward += p.Reward
		if g.selectedHostile == p.ID {
			g.selectedHostile = 0
		}
	case event.HostileLeaked:
		p, ok := e.Data.(event.HostilePayload)
		if !ok {
			return
		}
		g.waveDealt++
		g.pendingLeaks++
		if g.selectedHostile == p.ID {
			g.selectedHostile = 0
		}
	}
}

// Update progresses the game state by one tick. Порядок систем фиксирован и
// является инвариантом корректности: каждая система читает состояние,
// оставленное предыдущей в этом же тике.
func (g *Game) Update(deltaTime float64) {
	if g.Finished() {
		// Терминальное состояние: следующие тики не выполняются.
		return
	}

	dt := deltaTime * g.SpeedMultiplier
	g.State.GameTime += dt

	if g.waveActive {
		g.SpawnSystem.Update(dt)
		g.MovementSystem.Update(dt)
		g.TargetingSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
		g.ImpactSystem.Update(dt)
		g.StatusEffectSystem.Update(dt)
		g.State.Flush()
		g.checkWaveEnd()
	}

	g.snapshot = g.buildSnapshot()

	// Обращения к сервису — вне границ тика.
	g.flushAuthority()
}

func (g *Game) checkWaveEnd() {
	if g.SpawnSystem.PendingCount() > 0 || len(g.State.Hostiles) > 0 {
		return
	}
	g.waveActive = false
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: g.wave})
}

// flushAuthority отправляет накопленные кредиты за убийства и потери жизней.
// При ошибке сервиса очередь сохраняется и уйдёт со следующим кадром; боевое
// состояние от этого не страдает.
func (g *Game) flushAuthority() {
	if g.pendingKills > 0 {
		ctx, cancel := g.authorityContext()
		balance, err := g.Authority.CreditKills(ctx, g.pendingKills, g.pendingReward)
		cancel()
		if err != nil {
			log.Printf("game: kill credit failed, will retry: %v", err)
		} else {
			g.coins = balance
			g.pendingKills = 0
			g.pendingReward = 0
		}
	}

	if g.pendingLeaks > 0 {
		ctx, cancel := g.authorityContext()
		upd, err := g.Authority.ReportLifeLost(ctx, g.pendingLeaks)
		cancel()
		if err != nil {
			log.Printf("game: life loss report failed, will retry: %v", err)
		} else {
			g.lives = upd.Lives
			g.pendingLeaks = 0
			if upd.GameOver && !g.gameOver {
				g.gameOver = true
				g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
			}
		}
	}
}

func (g *Game) authorityContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.AuthorityRequestTimeout*time.Second)
}

// StartWave запрашивает у сервиса манифест следующей волны и запускает её.
func (g *Game) StartWave() error {
	if g.waveActive || g.Finished() {
		return nil
	}
	ctx, cancel := g.authorityContext()
	defer cancel()

	ws, err := g.Authority.StartWave(ctx, g.wave+1)
	if err != nil {
		return err
	}

	manifest := make([]system.SpawnEntry, 0, len(ws.Manifest))
	for _, e := range ws.Manifest {
		manifest = append(manifest, system.SpawnEntry{EnemyID: e.EnemyID, SpawnDelay: e.SpawnDelay})
	}
	g.wave = ws.Wave
	g.waveTotal = len(manifest)
	g.waveDealt = 0
	g.waveActive = true
	g.SpawnSystem.StartWave(ws.Wave, manifest, ws.HealthMultiplier, ws.RewardMultiplier)
	return nil
}

// Resign — добровольная сдача: терминальный переход, текущий тик доработает,
// следующий уже не начнётся.
func (g *Game) Resign() {
	g.resigned = true
}

// Finished сообщает, достигла ли сессия терминального состояния.
func (g *Game) Finished() bool {
	return g.gameOver || g.resigned
}

// ToggleSpeed переключает множитель скорости между обычным и ускоренным.
func (g *Game) ToggleSpeed() {
	if g.SpeedMultiplier == config.SpeedNormal {
		g.SpeedMultiplier = config.SpeedFast
	} else {
		g.SpeedMultiplier = config.SpeedNormal
	}
}

// SelectDefender выбирает башню для осмотра; выбор врага при этом снимается.
func (g *Game) SelectDefender(id types.EntityID) {
	g.selectedDefender = id
	g.selectedHostile = 0
}

// SelectHostile выбирает врага для осмотра; выбор башни при этом снимается.
func (g *Game) SelectHostile(id types.EntityID) {
	g.selectedHostile = id
	g.selectedDefender = 0
}

// ClearSelection снимает любой выбор.
func (g *Game) ClearSelection() {
	g.selectedDefender = 0
	g.selectedHostile = 0
}

// --- Public Accessors ---

func (g *Game) Coins() int { return g.coins }

func (g *Game) Lives() int { return g.lives }

func (g *Game) Wave() int { return g.wave }

func (g *Game) Kills() int { return g.kills }

func (g *Game) WaveActive() bool { return g.waveActive }

func (g *Game) SelectedDefender() types.EntityID { return g.selectedDefender }

func (g *Game) SelectedHostile() types.EntityID { return g.selectedHostile }

func (g *Game) GameTime() float64 { return g.State.GameTime }
