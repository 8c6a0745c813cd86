package app

import (
	"context"
	"fmt"
	"testing"

	"lane-defense/internal/defs"
	"lane-defense/internal/entity"
	"lane-defense/internal/session"
	"lane-defense/internal/system"
	"lane-defense/internal/utils"
	"lane-defense/pkg/grid"
)

func newTestGame(coins, lives int) *Game {
	gm := grid.NewMap(25, 15, 48, []int{3, 7, 11})
	auth := session.NewLocal(coins, lives)
	return NewGame(gm, auth, utils.NewPRNGService(1), coins, lives)
}

// stubAuthority подменяет сессионный сервис в тестах: управляемые манифесты,
// отказы и ошибки.
type stubAuthority struct {
	manifest  []session.SpawnEntry
	rejectAll bool
	failAll   bool
	coins     int
	lives     int
}

func (s *stubAuthority) StartWave(_ context.Context, wave int) (session.WaveStart, error) {
	if s.failAll {
		return session.WaveStart{}, fmt.Errorf("stub failure")
	}
	return session.WaveStart{Wave: wave, Manifest: s.manifest}, nil
}

func (s *stubAuthority) purchase(cost int) (session.PurchaseResult, error) {
	if s.failAll {
		return session.PurchaseResult{}, fmt.Errorf("stub failure")
	}
	if s.rejectAll || cost > s.coins {
		return session.PurchaseResult{Accepted: false, Coins: s.coins}, nil
	}
	s.coins -= cost
	return session.PurchaseResult{Accepted: true, Coins: s.coins}, nil
}

func (s *stubAuthority) RequestPlacement(_ context.Context, _, cost int) (session.PurchaseResult, error) {
	return s.purchase(cost)
}

func (s *stubAuthority) RequestUpgrade(_ context.Context, _, _, cost int) (session.PurchaseResult, error) {
	return s.purchase(cost)
}

func (s *stubAuthority) RequestSell(_ context.Context, _, _, refund int) (session.PurchaseResult, error) {
	if s.failAll {
		return session.PurchaseResult{}, fmt.Errorf("stub failure")
	}
	s.coins += refund
	return session.PurchaseResult{Accepted: true, Coins: s.coins}, nil
}

func (s *stubAuthority) CreditKills(_ context.Context, _, reward int) (int, error) {
	if s.failAll {
		return 0, fmt.Errorf("stub failure")
	}
	s.coins += reward
	return s.coins, nil
}

func (s *stubAuthority) ReportLifeLost(_ context.Context, leaked int) (session.LivesUpdate, error) {
	if s.failAll {
		return session.LivesUpdate{}, fmt.Errorf("stub failure")
	}
	s.lives -= leaked
	if s.lives < 0 {
		s.lives = 0
	}
	return session.LivesUpdate{Lives: s.lives, GameOver: s.lives <= 0}, nil
}

func TestStartWaveActivatesAndSpawns(t *testing.T) {
	g := newTestGame(120, 20)

	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	if g.Wave() != 1 || !g.WaveActive() {
		t.Fatalf("expected active wave 1, got wave %d active %v", g.Wave(), g.WaveActive())
	}

	g.Update(0.016)
	if len(g.State.Hostiles) == 0 {
		t.Fatalf("first manifest entry must spawn on the first tick")
	}

	// Повторный запуск во время активной волны игнорируется.
	if err := g.StartWave(); err != nil {
		t.Fatalf("StartWave during active wave: %v", err)
	}
	if g.Wave() != 1 {
		t.Fatalf("wave number must not advance while a wave is active")
	}
}

func TestPlacementHappyPath(t *testing.T) {
	g := newTestGame(120, 20)
	cell := grid.Cell{Col: 5, Row: 5}

	ok, err := g.AttemptPlacement(cell, 1) // Arrow, 30 монет
	if err != nil || !ok {
		t.Fatalf("placement failed: %v %v", ok, err)
	}
	if g.Coins() != 90 {
		t.Fatalf("expected 90 coins after spending 30, got %d", g.Coins())
	}
	if !g.GridMap.IsOccupied(cell) {
		t.Fatalf("cell must be occupied after placement")
	}
	id, found := g.DefenderAt(cell)
	if !found {
		t.Fatalf("defender must exist at the cell")
	}
	d := g.State.DefenderByID(id)
	if d.Level != 1 || d.AttackType != defs.AttackSingle {
		t.Fatalf("placed defender must start at level 1 with its definition attack type")
	}

	// Та же ячейка: отказ без каких-либо мутаций.
	ok, err = g.AttemptPlacement(cell, 1)
	if err != nil || ok {
		t.Fatalf("occupied cell must decline placement")
	}
	if g.Coins() != 90 || len(g.State.Defenders) != 1 {
		t.Fatalf("declined placement must not mutate state")
	}
}

func TestPlacementRejections(t *testing.T) {
	g := newTestGame(20, 20) // не хватает даже на Arrow

	cases := []struct {
		name string
		cell grid.Cell
		def  int
	}{
		{"lane cell", grid.Cell{Col: 5, Row: 7}, 1},
		{"out of bounds", grid.Cell{Col: -1, Row: 5}, 1},
		{"insufficient funds", grid.Cell{Col: 5, Row: 5}, 1},
		{"unknown definition", grid.Cell{Col: 5, Row: 5}, 999},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := g.AttemptPlacement(tc.cell, tc.def)
			if err != nil || ok {
				t.Fatalf("placement must be declined synchronously")
			}
			if g.Coins() != 20 || len(g.State.Defenders) != 0 {
				t.Fatalf("declined placement must not mutate state")
			}
		})
	}
}

func TestPlacementAuthorityRejection(t *testing.T) {
	gm := grid.NewMap(25, 15, 48, []int{3, 7, 11})
	auth := &stubAuthority{coins: 120, lives: 20, rejectAll: true}
	g := NewGame(gm, auth, utils.NewPRNGService(1), 120, 20)

	ok, err := g.AttemptPlacement(grid.Cell{Col: 5, Row: 5}, 1)
	if err != nil || ok {
		t.Fatalf("authority rejection must decline placement")
	}
	if g.Coins() != 120 || len(g.State.Defenders) != 0 || g.GridMap.IsOccupied(grid.Cell{Col: 5, Row: 5}) {
		t.Fatalf("rejected placement must leave state untouched")
	}
}

func TestPlacementAuthorityError(t *testing.T) {
	gm := grid.NewMap(25, 15, 48, []int{3, 7, 11})
	auth := &stubAuthority{coins: 120, lives: 20, failAll: true}
	g := NewGame(gm, auth, utils.NewPRNGService(1), 120, 20)

	ok, err := g.AttemptPlacement(grid.Cell{Col: 5, Row: 5}, 1)
	if err == nil || ok {
		t.Fatalf("authority error must surface to the caller")
	}
	if g.Coins() != 120 || len(g.State.Defenders) != 0 {
		t.Fatalf("failed placement must leave state untouched")
	}
}

func TestUpgradeAndSell(t *testing.T) {
	g := newTestGame(200, 20)
	cell := grid.Cell{Col: 5, Row: 5}

	g.AttemptPlacement(cell, 1) // 30 монет, остаток 170
	id, _ := g.DefenderAt(cell)

	ok, err := g.UpgradeDefender(id) // уровень 2 за 35, остаток 135
	if err != nil || !ok {
		t.Fatalf("upgrade failed: %v %v", ok, err)
	}
	d := g.State.DefenderByID(id)
	if d.Level != 2 || d.Stats.Damage != 20 {
		t.Fatalf("upgrade must swap level and stats atomically, got level %d damage %v", d.Level, d.Stats.Damage)
	}
	if g.Coins() != 135 {
		t.Fatalf("expected 135 coins, got %d", g.Coins())
	}

	g.SelectDefender(id)
	ok, err = g.SellDefender(id) // возврат SellValue уровня 2 = 40
	if err != nil || !ok {
		t.Fatalf("sell failed: %v %v", ok, err)
	}
	if g.Coins() != 175 {
		t.Fatalf("expected 175 coins after refund, got %d", g.Coins())
	}
	if g.GridMap.IsOccupied(cell) {
		t.Fatalf("sold tower must free its cell")
	}
	if g.SelectedDefender() != 0 {
		t.Fatalf("selling the selected tower must clear the selection")
	}
	if _, found := g.DefenderAt(cell); found {
		t.Fatalf("sold tower must be removed")
	}
}

func TestUpgradeAtMaxLevel(t *testing.T) {
	g := newTestGame(1000, 20)
	cell := grid.Cell{Col: 5, Row: 5}
	g.AttemptPlacement(cell, 2) // Lance, 2 уровня
	id, _ := g.DefenderAt(cell)

	if ok, _ := g.UpgradeDefender(id); !ok {
		t.Fatalf("upgrade to level 2 must succeed")
	}
	if ok, _ := g.UpgradeDefender(id); ok {
		t.Fatalf("upgrade past max level must be declined")
	}
}

func TestTargetingModeCycle(t *testing.T) {
	g := newTestGame(500, 20)
	g.AttemptPlacement(grid.Cell{Col: 5, Row: 5}, 1)
	arrowID, _ := g.DefenderAt(grid.Cell{Col: 5, Row: 5})

	d := g.State.DefenderByID(arrowID)
	start := d.Targeting
	seen := map[defs.TargetingMode]bool{start: true}
	for i := 1; i < len(defs.TargetingModes); i++ {
		if !g.CycleTargetingMode(arrowID) {
			t.Fatalf("cycle must succeed for attacking towers")
		}
		seen[d.Targeting] = true
	}
	if len(seen) != len(defs.TargetingModes) {
		t.Fatalf("cycle must visit every mode, saw %d of %d", len(seen), len(defs.TargetingModes))
	}
	g.CycleTargetingMode(arrowID)
	if d.Targeting != start {
		t.Fatalf("full cycle must return to the starting mode")
	}

	// Башня-аура не имеет режима прицеливания.
	g.AttemptPlacement(grid.Cell{Col: 6, Row: 5}, 9)
	bannerID, _ := g.DefenderAt(grid.Cell{Col: 6, Row: 5})
	if g.CycleTargetingMode(bannerID) || g.SetTargetingMode(bannerID, defs.TargetFirst) {
		t.Fatalf("aura towers must refuse targeting changes")
	}
}

func TestKillCreditsCoinsAndEndsWave(t *testing.T) {
	gm := grid.NewMap(25, 15, 48, []int{3, 7, 11})
	auth := &stubAuthority{coins: 120, lives: 20, manifest: []session.SpawnEntry{{EnemyID: 1, SpawnDelay: 0}}}
	g := NewGame(gm, auth, utils.NewPRNGService(1), 120, 20)

	g.StartWave()
	g.Update(0.016) // спавн

	if len(g.State.Hostiles) != 1 {
		t.Fatalf("expected spawned hostile")
	}
	h := g.State.Hostiles[0]
	reward := h.Reward

	system.ApplyDamage(g.State, g.EventDispatcher, h, 1e9)
	g.Update(0.016) // уборка, конец волны, расчёт с сервисом

	if g.Kills() != 1 {
		t.Fatalf("kill must be counted once, got %d", g.Kills())
	}
	if g.Coins() != 120+reward {
		t.Fatalf("authority balance must include the reward: expected %d, got %d", 120+reward, g.Coins())
	}
	if g.WaveActive() {
		t.Fatalf("wave must end when manifest is exhausted and field is clear")
	}
	if len(g.State.Hostiles) != 0 {
		t.Fatalf("dead hostile must be compacted at the tick boundary")
	}
	snap := g.Snapshot()
	if snap.WaveDealt != 1 || snap.WaveTotal != 1 {
		t.Fatalf("wave progress must count the kill: %d/%d", snap.WaveDealt, snap.WaveTotal)
	}
}

func TestLeakLosesLifeAndGameOver(t *testing.T) {
	gm := grid.NewMap(25, 15, 48, []int{3, 7, 11})
	auth := &stubAuthority{coins: 120, lives: 1, manifest: []session.SpawnEntry{{EnemyID: 1, SpawnDelay: 0}}}
	g := NewGame(gm, auth, utils.NewPRNGService(1), 120, 1)

	g.StartWave()
	g.Update(0.016)

	h := g.State.Hostiles[0]
	h.X = gm.PathEndX() - 0.1
	g.Update(0.016)

	if g.Lives() != 0 {
		t.Fatalf("leak must cost a life, got %d", g.Lives())
	}
	if !g.Finished() {
		t.Fatalf("zero lives must finish the session")
	}

	// Терминальное состояние: время больше не идёт.
	before := g.GameTime()
	g.Update(1.0)
	if g.GameTime() != before {
		t.Fatalf("finished game must not advance time")
	}
	if g.Kills() != 0 {
		t.Fatalf("leaked hostile must never be counted as a kill")
	}
	if snap := g.Snapshot(); snap.WaveDealt != 1 {
		t.Fatalf("leak must count toward wave progress, got %d", snap.WaveDealt)
	}
}

func TestResignIsTerminal(t *testing.T) {
	g := newTestGame(120, 20)
	g.Resign()

	if !g.Finished() {
		t.Fatalf("resign must finish the session")
	}
	before := g.GameTime()
	g.Update(1.0)
	if g.GameTime() != before {
		t.Fatalf("resigned game must not advance time")
	}
}

func TestToggleSpeedScalesTime(t *testing.T) {
	g := newTestGame(120, 20)

	g.Update(1.0)
	if g.GameTime() != 1.0 {
		t.Fatalf("normal speed must advance 1:1, got %v", g.GameTime())
	}

	g.ToggleSpeed()
	g.Update(1.0)
	if g.GameTime() != 4.0 {
		t.Fatalf("fast speed must advance x3, got %v", g.GameTime())
	}

	g.ToggleSpeed()
	g.Update(1.0)
	if g.GameTime() != 5.0 {
		t.Fatalf("toggling back must restore normal speed, got %v", g.GameTime())
	}
}

func TestSelectionMutualExclusion(t *testing.T) {
	g := newTestGame(120, 20)

	g.SelectDefender(7)
	if g.SelectedDefender() != 7 || g.SelectedHostile() != 0 {
		t.Fatalf("selecting a defender must clear hostile selection")
	}
	g.SelectHostile(9)
	if g.SelectedHostile() != 9 || g.SelectedDefender() != 0 {
		t.Fatalf("selecting a hostile must clear defender selection")
	}
	g.ClearSelection()
	if g.SelectedDefender() != 0 || g.SelectedHostile() != 0 {
		t.Fatalf("clear must drop both selections")
	}
}

func TestSnapshotReflectsTickEnd(t *testing.T) {
	gm := grid.NewMap(25, 15, 48, []int{3, 7, 11})
	auth := &stubAuthority{coins: 120, lives: 20, manifest: []session.SpawnEntry{
		{EnemyID: 1, SpawnDelay: 0},
		{EnemyID: 1, SpawnDelay: 0},
	}}
	g := NewGame(gm, auth, utils.NewPRNGService(1), 120, 20)

	g.AttemptPlacement(grid.Cell{Col: 5, Row: 5}, 1)
	g.StartWave()
	g.Update(0.016)

	snap := g.Snapshot()
	if len(snap.Hostiles) != 2 || len(snap.Defenders) != 1 {
		t.Fatalf("snapshot must mirror the live sets: %d hostiles, %d defenders",
			len(snap.Hostiles), len(snap.Defenders))
	}
	if snap.Wave != 1 || !snap.WaveActive {
		t.Fatalf("snapshot must carry wave metadata")
	}

	// Убитый до конца тика враг в снимок не попадает.
	system.ApplyDamage(g.State, g.EventDispatcher, g.State.Hostiles[0], 1e9)
	g.Update(0.016)
	if got := len(g.Snapshot().Hostiles); got != 1 {
		t.Fatalf("snapshot must exclude dead hostiles, got %d", got)
	}
}

func TestHostileAtUsesBodySize(t *testing.T) {
	g := newTestGame(120, 20)

	h := &entity.Hostile{ID: g.State.NewID(), DefID: 1, Health: 40, MaxHealth: 40, X: 100, Y: 100}
	g.State.AddHostile(h)

	if id, ok := g.HostileAt(105, 100); !ok || id != h.ID {
		t.Fatalf("click within body radius must hit the hostile")
	}
	if _, ok := g.HostileAt(130, 100); ok {
		t.Fatalf("click outside body radius must miss")
	}
}

func TestPreviewPlacement(t *testing.T) {
	g := newTestGame(120, 20)

	p := g.PreviewPlacement(grid.Cell{Col: 5, Row: 5}, 1)
	if !p.Legal || p.Stats.Cost != 30 {
		t.Fatalf("free affordable cell must preview legal: %+v", p)
	}
	if p := g.PreviewPlacement(grid.Cell{Col: 5, Row: 7}, 1); p.Legal {
		t.Fatalf("lane cell must preview illegal")
	}
	if p := g.PreviewPlacement(grid.Cell{Col: 5, Row: 5}, 999); p.Legal {
		t.Fatalf("unknown definition must preview illegal")
	}
}
