package systems

import (
	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/game"
)

// DeathSystem 死亡清扫系统
//
// 在伤害结算之后运行：血量 <= 0 的敌人发出 DeathNotice 并被清除，
// 每个清除的敌人为玩家提供 1 点经验和 1 点分数。没有玩家时照常清除。
type DeathSystem struct {
	entityManager *ecs.EntityManager
}

// NewDeathSystem 创建死亡清扫系统
func NewDeathSystem(em *ecs.EntityManager) *DeathSystem {
	return &DeathSystem{entityManager: em}
}

// Update 清扫死亡敌人，返回本次清除的数量
func (s *DeathSystem) Update(report *game.TickReport) int {
	_, player, _, hasPlayer := findPlayer(s.entityManager)

	removed := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !enemy.IsDead() {
			continue
		}

		notice := game.DeathNotice{Entity: id}
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			notice.X, notice.Y = pos.X, pos.Y
		}
		if info, ok := ecs.GetComponent[*components.EnemyTypeComponent](s.entityManager, id); ok {
			notice.Race, notice.Power = info.Race, info.Power
		}
		if report != nil {
			report.Deaths = append(report.Deaths, notice)
		}
		if hasPlayer {
			player.Experience++
			player.Score++
		}

		s.entityManager.DestroyEntity(id)
		removed++
	}

	s.entityManager.RemoveMarkedEntities()
	return removed
}
