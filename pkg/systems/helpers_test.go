package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/entities"
	"github.com/gonewx/gauntlet/pkg/game"
)

const testStatsYAML = `
undead:
  "1": {health: 10, damage: 2}
  "2": {health: 25, damage: 4}
orc:
  "1": {health: 15, damage: 3}
`

// newTestStats 创建测试用属性表
func newTestStats(t *testing.T) *config.EnemyStatsConfig {
	t.Helper()
	stats, err := config.ParseEnemyStats([]byte(testStatsYAML))
	if err != nil {
		t.Fatalf("Failed to parse test stats: %v", err)
	}
	return stats
}

// newTestSchedule 由指令列表创建已完成加载期计算的刷怪表
func newTestSchedule(t *testing.T, directives ...config.SpawnDirective) *config.SpawnScheduleConfig {
	t.Helper()
	schedule := &config.SpawnScheduleConfig{EnemySpawns: directives}
	if err := schedule.Prepare(); err != nil {
		t.Fatalf("Failed to prepare schedule: %v", err)
	}
	return schedule
}

// newTestGameplay 返回默认参数的副本
func newTestGameplay() *config.GameplayConfig {
	cfg := config.DefaultGameplayConfig()
	return &cfg
}

// spawnPlayer 在指定位置创建玩家
func spawnPlayer(t *testing.T, em *ecs.EntityManager, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayerEntity(em, x, y, 100)
	if err != nil {
		t.Fatalf("Failed to create player: %v", err)
	}
	return id
}

// spawnEnemy 在指定位置创建一个血量为 health 的敌人
func spawnEnemy(t *testing.T, em *ecs.EntityManager, x, y float64, health uint32) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(em, entities.EnemySpec{
		DirectiveID: "test",
		Race:        "undead",
		Power:       "1",
		Stats:       config.EnemyStats{Health: health, Damage: 2},
		X:           x,
		Y:           y,
	})
	if err != nil {
		t.Fatalf("Failed to create enemy: %v", err)
	}
	return id
}

// enemyHealth 读取敌人当前血量
func enemyHealth(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) float64 {
	t.Helper()
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok {
		t.Fatalf("Entity %d has no EnemyComponent", id)
	}
	return enemy.CurrentHealth
}

// newTestWaveSystem 创建带玩家的刷怪测试环境
func newTestWaveSystem(t *testing.T, cfg *config.GameplayConfig, schedule *config.SpawnScheduleConfig) (*WaveSpawnSystem, *ecs.EntityManager, *game.SessionState) {
	t.Helper()
	em := ecs.NewEntityManager()
	spawnPlayer(t, em, 0, 0)
	state := game.NewSessionState(schedule.CycleLength)
	sys, err := NewWaveSpawnSystem(em, schedule, newTestStats(t), state, cfg, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Failed to create wave spawn system: %v", err)
	}
	return sys, em, state
}
