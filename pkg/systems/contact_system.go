package systems

import (
	"log"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/game"
)

// ContactSystem 接触伤害系统
//
// 与玩家距离不超过 ContactRadius 的敌人每秒造成 Stats.Damage 点伤害。
// 只结算伤害，不做碰撞分离。玩家生命值降到 0 及以下时设置 GameOver。
type ContactSystem struct {
	entityManager *ecs.EntityManager
	state         *game.SessionState
	radius        float64
}

// NewContactSystem 创建接触伤害系统
func NewContactSystem(em *ecs.EntityManager, state *game.SessionState, radius float64) *ContactSystem {
	return &ContactSystem{
		entityManager: em,
		state:         state,
		radius:        radius,
	}
}

// Update 结算本 tick 的接触伤害，返回玩家本 tick 受到的总伤害
func (s *ContactSystem) Update(dt float64) float64 {
	if dt <= 0 || s.state.GameOver {
		return 0
	}
	_, player, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return 0
	}

	origin := playerPos.Vec()
	radiusSq := s.radius * s.radius
	total := 0.0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if enemy.IsDead() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		d := pos.Vec().Sub(origin)
		if d.Dot(d) > radiusSq {
			continue
		}
		total += enemy.Stats.Damage * dt
	}

	if total > 0 {
		player.Health -= total
		if player.Health <= 0 {
			s.state.GameOver = true
			log.Printf("[ContactSystem] Player died at t=%.2f (level=%d, score=%d)", s.state.Elapsed, player.Level, player.Score)
		}
	}
	return total
}
