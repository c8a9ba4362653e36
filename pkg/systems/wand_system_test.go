package systems

import (
	"math"
	"testing"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/game"
	"github.com/gonewx/gauntlet/pkg/utils"
)

func TestWandSystem_Fire(t *testing.T) {
	cfg := newTestGameplay()
	em := ecs.NewEntityManager()
	player := spawnPlayer(t, em, 0, 0)
	target := spawnEnemy(t, em, 200, 50, 100)
	spawnEnemy(t, em, 0, 200, 100)

	damage := NewDamageSystem(em, cfg)
	wand := NewWandSystem(em, damage, cfg)
	cursor := &utils.Vec2{X: 400, Y: 0}

	t.Run("冷却未到不开火", func(t *testing.T) {
		if wand.Update(cfg.WandFireInterval/2, WandInput{Cursor: cursor, FirePressed: true}) {
			t.Error("Should not fire before interval elapses")
		}
	})

	t.Run("冷却到期开火", func(t *testing.T) {
		if !wand.Update(cfg.WandFireInterval/2, WandInput{Cursor: cursor, FirePressed: true}) {
			t.Fatal("Expected wand to fire")
		}
		if damage.Pending() != 1 {
			t.Fatalf("Expected 1 queued event, got %d", damage.Pending())
		}

		var report game.TickReport
		damage.Update(&report)
		ev := report.Damages[0]
		if ev.Target != target || ev.Source != player || !ev.Primary {
			t.Errorf("Unexpected primary event: %+v", ev)
		}
		if ev.ArcsRemaining != cfg.WandInitialArcs {
			t.Errorf("Expected %d arcs, got %d", cfg.WandInitialArcs, ev.ArcsRemaining)
		}
		if ev.Amount != cfg.WandBaseDamage {
			t.Errorf("Expected level-1 damage %v, got %v", cfg.WandBaseDamage, ev.Amount)
		}
	})

	t.Run("开火后重置冷却", func(t *testing.T) {
		if wand.Update(0.01, WandInput{Cursor: cursor, FirePressed: true}) {
			t.Error("Cooldown should reset after firing")
		}
	})
}

func TestWandSystem_NoCursorOrButton(t *testing.T) {
	cfg := newTestGameplay()
	em := ecs.NewEntityManager()
	spawnPlayer(t, em, 0, 0)
	spawnEnemy(t, em, 100, 0, 100)

	damage := NewDamageSystem(em, cfg)
	wand := NewWandSystem(em, damage, cfg)

	if wand.Update(10, WandInput{Cursor: nil, FirePressed: true}) {
		t.Error("Should not fire without cursor")
	}
	if wand.Update(10, WandInput{Cursor: &utils.Vec2{X: 1}, FirePressed: false}) {
		t.Error("Should not fire without button")
	}
	// 松开按键期间冷却照常累积
	if !wand.Update(0, WandInput{Cursor: &utils.Vec2{X: 1}, FirePressed: true}) {
		t.Error("Expected immediate fire after accumulated cooldown")
	}
}

func TestWandSystem_NoPlayerOrTarget(t *testing.T) {
	cfg := newTestGameplay()

	t.Run("没有玩家", func(t *testing.T) {
		em := ecs.NewEntityManager()
		spawnEnemy(t, em, 100, 0, 100)
		wand := NewWandSystem(em, NewDamageSystem(em, cfg), cfg)
		if wand.Update(10, WandInput{Cursor: &utils.Vec2{X: 1}, FirePressed: true}) {
			t.Error("Should not fire without player")
		}
	})

	t.Run("锥形内没有敌人仍消耗冷却", func(t *testing.T) {
		em := ecs.NewEntityManager()
		id := spawnPlayer(t, em, 0, 0)
		spawnEnemy(t, em, -100, 0, 100)
		wand := NewWandSystem(em, NewDamageSystem(em, cfg), cfg)
		if wand.Update(10, WandInput{Cursor: &utils.Vec2{X: 1}, FirePressed: true}) {
			t.Error("Should not fire at enemy behind the player")
		}
		comp, _ := ecs.GetComponent[*components.WandComponent](em, id)
		if comp.SinceLastShot != 0 {
			t.Errorf("Expected cooldown reset, got %v", comp.SinceLastShot)
		}
	})
}

func TestWandDamage(t *testing.T) {
	cfg := newTestGameplay()
	tests := []struct {
		level uint32
		want  float64
	}{
		{0, 5},
		{1, 5},
		{3, 5.5},
		{21, 10},
	}
	for _, tt := range tests {
		if got := WandDamage(cfg, tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WandDamage(level=%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
