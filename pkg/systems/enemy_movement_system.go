package systems

import (
	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
)

// EnemyMovementSystem 敌人追击系统
// 所有敌人以 speed 沿直线朝玩家移动。本步会到达或越过玩家时停在原地，
// 敌人因此不会与玩家重合（重合的敌人没有方向，法杖锥形无法瞄准）。
type EnemyMovementSystem struct {
	entityManager *ecs.EntityManager
	speed         float64
}

// NewEnemyMovementSystem 创建敌人追击系统
func NewEnemyMovementSystem(em *ecs.EntityManager, speed float64) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		entityManager: em,
		speed:         speed,
	}
}

// Update 移动所有敌人，不会到达或越过玩家位置
func (s *EnemyMovementSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	_, _, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	target := playerPos.Vec()
	step := s.speed * dt

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		offset := target.Sub(pos.Vec())
		dist := offset.Length()
		if dist <= step {
			continue
		}
		dir, ok := offset.Normalize()
		if !ok {
			continue
		}
		pos.Set(pos.Vec().Add(dir.Scale(step)))
	}
}
