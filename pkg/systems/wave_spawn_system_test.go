package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/game"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// tenInTenSeconds 10 秒内生成 10 个的指令，周期长度 10
func tenInTenSeconds() config.SpawnDirective {
	return config.SpawnDirective{ID: "undead-1", Race: "undead", Power: "1", Count: 10, StartTime: "0:00", EndTime: "0:10"}
}

func countEnemies(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](em))
}

func TestWaveSpawn_QuotaScenario(t *testing.T) {
	cfg := newTestGameplay()
	schedule := newTestSchedule(t, tenInTenSeconds())
	if schedule.CycleLength != 10 {
		t.Fatalf("Expected cycle length 10, got %v", schedule.CycleLength)
	}
	sys, em, state := newTestWaveSystem(t, cfg, schedule)

	t.Run("t=5.0 生成 5 个", func(t *testing.T) {
		var report game.TickReport
		if err := sys.EvaluateAt(5.0, utils.Vec2{}, &report); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(report.Spawns) != 5 {
			t.Errorf("Expected 5 spawn requests, got %d", len(report.Spawns))
		}
		if n, _ := state.Tracker.Peek(game.SpawnKey{DirectiveID: "undead-1", Cycle: 0}); n != 5 {
			t.Errorf("Expected tracker=5, got %d", n)
		}
	})

	t.Run("t=15.0 下一轮独立计数", func(t *testing.T) {
		var report game.TickReport
		if err := sys.EvaluateAt(15.0, utils.Vec2{}, &report); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(report.Spawns) != 5 {
			t.Errorf("Expected 5 spawn requests in cycle 1, got %d", len(report.Spawns))
		}
		if n, _ := state.Tracker.Peek(game.SpawnKey{DirectiveID: "undead-1", Cycle: 1}); n != 5 {
			t.Errorf("Expected cycle 1 tracker=5, got %d", n)
		}
		if n, _ := state.Tracker.Peek(game.SpawnKey{DirectiveID: "undead-1", Cycle: 0}); n != 5 {
			t.Errorf("Cycle 0 tracker should be untouched, got %d", n)
		}
		for _, req := range report.Spawns {
			if req.Cycle != 1 {
				t.Errorf("Expected cycle 1, got %d", req.Cycle)
			}
			if req.Stats.Health != 20 {
				t.Errorf("Expected scaled health 20 in cycle 1, got %d", req.Stats.Health)
			}
		}
	})

	if got := countEnemies(em); got != 10 {
		t.Errorf("Expected 10 enemies total, got %d", got)
	}
}

func TestWaveSpawn_SameInstantIsIdempotent(t *testing.T) {
	sys, em, _ := newTestWaveSystem(t, newTestGameplay(), newTestSchedule(t, tenInTenSeconds()))

	for i := 0; i < 3; i++ {
		if err := sys.EvaluateAt(5.0, utils.Vec2{}, nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if got := countEnemies(em); got != 5 {
		t.Errorf("Repeated evaluation at the same instant should not double-spawn, got %d", got)
	}
}

func TestWaveSpawn_SaturatesAtCount(t *testing.T) {
	// 第二条指令把周期延长到 20 秒，使 t=10 仍在第 0 轮
	schedule := newTestSchedule(t,
		tenInTenSeconds(),
		config.SpawnDirective{ID: "orc-1", Race: "orc", Power: "1", Count: 1, StartTime: "0:19", EndTime: "0:20"},
	)
	sys, _, state := newTestWaveSystem(t, newTestGameplay(), schedule)

	for _, now := range []float64{3.3, 7.7, 10.0} {
		if err := sys.EvaluateAt(now, utils.Vec2{}, nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	if n, _ := state.Tracker.Peek(game.SpawnKey{DirectiveID: "undead-1", Cycle: 0}); n != 10 {
		t.Errorf("Expected saturation at 10, got %d", n)
	}

	// 窗口之外不再评估
	if err := sys.EvaluateAt(12.0, utils.Vec2{}, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n, _ := state.Tracker.Peek(game.SpawnKey{DirectiveID: "undead-1", Cycle: 0}); n != 10 {
		t.Errorf("Tracker should stay at 10, got %d", n)
	}
}

func TestWaveSpawn_IrregularTicksConverge(t *testing.T) {
	// 所有步长都能被二进制精确表示，总和均为 7.5
	sequences := map[string][]float64{
		"均匀 0.25": repeat(0.25, 30),
		"不规则": {0.5, 1.0, 0.125, 0.375, 2.0, 3.5},
		"单个大步": {7.5},
		"细碎步长": repeat(0.0625, 120),
		"先大后小": append([]float64{6.0}, repeat(0.125, 12)...),
	}

	key := game.SpawnKey{DirectiveID: "undead-1", Cycle: 0}
	for name, deltas := range sequences {
		t.Run(name, func(t *testing.T) {
			cfg := newTestGameplay()
			cfg.SpawnEvaluationInterval = 0.25
			sys, em, state := newTestWaveSystem(t, cfg, newTestSchedule(t, tenInTenSeconds()))

			for _, dt := range deltas {
				state.Advance(dt)
				if err := sys.Update(nil); err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
			}

			if state.Elapsed != 7.5 {
				t.Fatalf("Expected elapsed 7.5, got %v", state.Elapsed)
			}
			if n, _ := state.Tracker.Peek(key); n != 7 {
				t.Errorf("Expected already_spawned=7, got %d", n)
			}
			if got := countEnemies(em); got != 7 {
				t.Errorf("Expected 7 enemies, got %d", got)
			}
		})
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestWaveSpawn_TrackerMonotonicWithinCycle(t *testing.T) {
	cfg := newTestGameplay()
	sys, _, state := newTestWaveSystem(t, cfg, newTestSchedule(t, tenInTenSeconds()))
	key := game.SpawnKey{DirectiveID: "undead-1", Cycle: 0}

	rng := rand.New(rand.NewSource(7))
	last := uint32(0)
	for state.Elapsed < 9.9 {
		state.Advance(rng.Float64() * 0.2)
		if state.Elapsed >= 10 {
			break
		}
		if err := sys.Update(nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		n, _ := state.Tracker.Peek(key)
		if n < last {
			t.Fatalf("Tracker decreased from %d to %d at t=%v", last, n, state.Elapsed)
		}
		last = n
	}
}

func TestWaveSpawn_UnknownStatsIsFatal(t *testing.T) {
	schedule := newTestSchedule(t, config.SpawnDirective{
		ID: "dragon-1", Race: "dragon", Power: "1", Count: 5, StartTime: "0:00", EndTime: "0:10",
	})
	sys, em, _ := newTestWaveSystem(t, newTestGameplay(), schedule)

	err := sys.EvaluateAt(5.0, utils.Vec2{}, nil)
	if !errors.Is(err, config.ErrUnknownEnemyStats) {
		t.Fatalf("Expected ErrUnknownEnemyStats, got %v", err)
	}
	if got := countEnemies(em); got != 0 {
		t.Errorf("No enemy should spawn on fatal error, got %d", got)
	}
}

func TestWaveSpawn_NoPlayerIsNoop(t *testing.T) {
	em := ecs.NewEntityManager()
	schedule := newTestSchedule(t, tenInTenSeconds())
	state := game.NewSessionState(schedule.CycleLength)
	sys, err := NewWaveSpawnSystem(em, schedule, newTestStats(t), state, newTestGameplay(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	state.Advance(5)
	if err := sys.Update(nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := countEnemies(em); got != 0 {
		t.Errorf("Expected no enemies without player, got %d", got)
	}
	if state.Tracker.Len() != 0 {
		t.Errorf("Tracker should not be touched without player, got %d entries", state.Tracker.Len())
	}
}

func TestWaveSpawn_PositionsInAnnulus(t *testing.T) {
	cfg := newTestGameplay()
	schedule := newTestSchedule(t, config.SpawnDirective{
		ID: "orc-1", Race: "orc", Power: "1", Count: 200, StartTime: "0:00", EndTime: "0:01",
	})
	sys, _, _ := newTestWaveSystem(t, cfg, schedule)

	center := utils.Vec2{X: 300, Y: -120}
	var report game.TickReport
	if err := sys.EvaluateAt(1.0, center, &report); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(report.Spawns) != 200 {
		t.Fatalf("Expected 200 spawns, got %d", len(report.Spawns))
	}
	for _, req := range report.Spawns {
		d := utils.Vec2{X: req.X, Y: req.Y}.Distance(center)
		if d < cfg.SpawnInnerRadius-1e-6 || d > cfg.SpawnOuterRadius+1e-6 {
			t.Errorf("Spawn at distance %v outside [%v,%v]", d, cfg.SpawnInnerRadius, cfg.SpawnOuterRadius)
		}
		if req.Race.String() != "orc" {
			t.Errorf("Expected race orc, got %s", req.Race)
		}
	}
}

func TestNewWaveSpawnSystem_Validation(t *testing.T) {
	em := ecs.NewEntityManager()
	schedule := newTestSchedule(t, tenInTenSeconds())
	state := game.NewSessionState(schedule.CycleLength)

	if _, err := NewWaveSpawnSystem(em, nil, newTestStats(t), state, newTestGameplay(), nil); err == nil {
		t.Error("Expected error for nil schedule")
	}

	cfg := newTestGameplay()
	cfg.SpawnEvaluationInterval = 0
	if _, err := NewWaveSpawnSystem(em, schedule, newTestStats(t), state, cfg, nil); err == nil {
		t.Error("Expected error for zero evaluation interval")
	}

	broken := *schedule
	broken.CycleLength = 0
	if _, err := NewWaveSpawnSystem(em, &broken, newTestStats(t), state, newTestGameplay(), nil); !errors.Is(err, ErrInvalidCycleLength) {
		t.Errorf("Expected ErrInvalidCycleLength, got %v", err)
	}
}
