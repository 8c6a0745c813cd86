package session

import (
	"context"
	"testing"
)

func TestLocalStartWaveManifest(t *testing.T) {
	l := NewLocal(100, 20)

	ws, err := l.StartWave(context.Background(), 1)
	if err != nil {
		t.Fatalf("StartWave: %v", err)
	}
	if ws.Wave != 1 {
		t.Fatalf("expected wave 1, got %d", ws.Wave)
	}
	if len(ws.Manifest) != 6 {
		t.Fatalf("wave 1 must carry 6 entries, got %d", len(ws.Manifest))
	}
	if ws.HealthMultiplier != healthWaveMultiplier || ws.RewardMultiplier != rewardWaveMultiplier {
		t.Fatalf("wave multipliers must come from the service")
	}
	for i, e := range ws.Manifest {
		if e.EnemyID != 1 {
			t.Fatalf("wave 1 must spawn Runners, entry %d is %d", i, e.EnemyID)
		}
		if want := float64(i) * 0.8; e.SpawnDelay != want {
			t.Fatalf("entry %d expected delay %v, got %v", i, want, e.SpawnDelay)
		}
	}
}

func TestLocalStartWaveRepeatsLateRange(t *testing.T) {
	l := NewLocal(100, 20)

	// Волны после таблицы циклически повторяют диапазон 6..10.
	for _, tc := range []struct{ wave, same int }{
		{11, 6}, {12, 7}, {15, 10}, {16, 6},
	} {
		got, err := l.StartWave(context.Background(), tc.wave)
		if err != nil {
			t.Fatalf("StartWave(%d): %v", tc.wave, err)
		}
		want, _ := l.StartWave(context.Background(), tc.same)
		if len(got.Manifest) != len(want.Manifest) {
			t.Fatalf("wave %d must repeat wave %d (%d entries, got %d)",
				tc.wave, tc.same, len(want.Manifest), len(got.Manifest))
		}
		if got.Manifest[0].EnemyID != want.Manifest[0].EnemyID {
			t.Fatalf("wave %d must repeat wave %d roster", tc.wave, tc.same)
		}
	}
}

func TestLocalStartWaveRejectsInvalid(t *testing.T) {
	l := NewLocal(100, 20)
	if _, err := l.StartWave(context.Background(), 0); err == nil {
		t.Fatalf("wave 0 must be rejected")
	}
}

func TestLocalPurchaseLedger(t *testing.T) {
	l := NewLocal(100, 20)
	ctx := context.Background()

	res, err := l.RequestPlacement(ctx, 1, 30)
	if err != nil || !res.Accepted || res.Coins != 70 {
		t.Fatalf("placement for 30 from 100: %+v, %v", res, err)
	}

	res, _ = l.RequestUpgrade(ctx, 1, 2, 50)
	if !res.Accepted || res.Coins != 20 {
		t.Fatalf("upgrade for 50 from 70: %+v", res)
	}

	// Не хватает монет: отказ без мутации.
	res, _ = l.RequestPlacement(ctx, 1, 30)
	if res.Accepted || res.Coins != 20 {
		t.Fatalf("unaffordable purchase must be declined without mutation: %+v", res)
	}

	res, _ = l.RequestSell(ctx, 1, 1, 20)
	if !res.Accepted || res.Coins != 40 {
		t.Fatalf("sell must credit the refund: %+v", res)
	}

	balance, err := l.CreditKills(ctx, 3, 12)
	if err != nil || balance != 52 {
		t.Fatalf("kill credit must add reward: %d, %v", balance, err)
	}
}

func TestLocalLifeLossAndGameOver(t *testing.T) {
	l := NewLocal(100, 3)
	ctx := context.Background()

	upd, err := l.ReportLifeLost(ctx, 2)
	if err != nil || upd.Lives != 1 || upd.GameOver {
		t.Fatalf("after losing 2 of 3 lives: %+v, %v", upd, err)
	}

	upd, _ = l.ReportLifeLost(ctx, 5)
	if upd.Lives != 0 || !upd.GameOver {
		t.Fatalf("lives must clamp at 0 and flag game over: %+v", upd)
	}
}

func TestLocalNegativeCostRejected(t *testing.T) {
	l := NewLocal(100, 20)
	res, _ := l.RequestPlacement(context.Background(), 1, -10)
	if res.Accepted {
		t.Fatalf("negative cost must be declined")
	}
	if res.Coins != 100 {
		t.Fatalf("declined request must not mutate the balance")
	}
}
