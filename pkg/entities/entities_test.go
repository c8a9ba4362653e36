package entities

import (
	"testing"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/types"
)

// TestNewEnemyEntity 测试敌人实体创建
func TestNewEnemyEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	tests := []struct {
		name    string
		spec    EnemySpec
		wantErr bool
	}{
		{
			name: "创建兽人",
			spec: EnemySpec{
				DirectiveID: "orc-2-0",
				Race:        "Orc",
				Power:       "2",
				Stats:       config.EnemyStats{Health: 40, Damage: 3},
				Cycle:       1,
				X:           1200,
				Y:           -300,
			},
		},
		{
			name: "未知种族归入亡灵",
			spec: EnemySpec{
				Race:  "slime",
				Power: "1",
				Stats: config.EnemyStats{Health: 5, Damage: 1},
			},
		},
		{
			name:    "血量为 0",
			spec:    EnemySpec{Race: "orc", Power: "1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewEnemyEntity(em, tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEnemyEntity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if id != 0 {
					t.Errorf("Expected id 0 on error, got %d", id)
				}
				return
			}

			if id == 0 {
				t.Fatal("Expected valid entity ID, got 0")
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok {
				t.Fatal("Enemy should have PositionComponent")
			}
			if pos.X != tt.spec.X || pos.Y != tt.spec.Y {
				t.Errorf("Position: expected (%v, %v), got (%v, %v)", tt.spec.X, tt.spec.Y, pos.X, pos.Y)
			}

			enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
			if !ok {
				t.Fatal("Enemy should have EnemyComponent")
			}
			if enemy.CurrentHealth != float64(tt.spec.Stats.Health) {
				t.Errorf("CurrentHealth: expected %d, got %v", tt.spec.Stats.Health, enemy.CurrentHealth)
			}
			if enemy.Stats != tt.spec.Stats {
				t.Errorf("Stats: expected %+v, got %+v", tt.spec.Stats, enemy.Stats)
			}

			kind, ok := ecs.GetComponent[*components.EnemyTypeComponent](em, id)
			if !ok {
				t.Fatal("Enemy should have EnemyTypeComponent")
			}
			expectedRace := types.ParseEnemyRace(tt.spec.Race)
			if kind.Race != expectedRace {
				t.Errorf("Race: expected %v, got %v", expectedRace, kind.Race)
			}
			if kind.Animation != expectedRace.AnimationFor(tt.spec.Power) {
				t.Errorf("Animation mismatch: %+v", kind.Animation)
			}
			if kind.Cycle != tt.spec.Cycle || kind.DirectiveID != tt.spec.DirectiveID {
				t.Errorf("Type component mismatch: %+v", kind)
			}
		})
	}

	t.Run("实体管理器为 nil", func(t *testing.T) {
		if _, err := NewEnemyEntity(nil, EnemySpec{Stats: config.EnemyStats{Health: 1}}); err == nil {
			t.Error("Expected error for nil entity manager")
		}
	})
}

// TestNewPlayerEntity 测试玩家实体创建
func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewPlayerEntity(em, 10, 20, 100)
	if err != nil {
		t.Fatalf("NewPlayerEntity failed: %v", err)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("Player should have PlayerComponent")
	}
	if player.Level != 1 || player.Health != 100 || player.Experience != 0 {
		t.Errorf("Unexpected initial player state: %+v", player)
	}
	if !ecs.HasComponent[*components.WandComponent](em, id) {
		t.Error("Player should carry a wand")
	}

	if _, err := NewPlayerEntity(em, 0, 0, 0); err == nil {
		t.Error("Expected error for non-positive health")
	}
}

// TestNewArcTrailEntity 测试弧线视觉描述实体
func TestNewArcTrailEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewArcTrailEntity(em, components.ArcTrailComponent{FromX: 1, ToX: 2, Primary: true}, 1.4)

	trail, ok := ecs.GetComponent[*components.ArcTrailComponent](em, id)
	if !ok || !trail.Primary || trail.ToX != 2 {
		t.Fatalf("Unexpected trail component: %+v", trail)
	}
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || lifetime.MaxLifetime != 1.4 {
		t.Fatalf("Unexpected lifetime component: %+v", lifetime)
	}
}
