package systems

import (
	"log"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/entities"
	"github.com/gonewx/gauntlet/pkg/game"
)

// DamageSystem 伤害传播系统（连锁闪电）
//
// 职责：
//   - 按先进先出顺序处理伤害事件，每个事件只处理一次
//   - 扣减目标血量（不做下限截断，死亡由 DeathSystem 清扫）
//   - 为每次命中创建一段弧线视觉描述实体
//   - ArcsRemaining-1 > 0 时，在 ArcSearchRadius 内寻找最近的其他敌人并追加下一跳
//
// 连锁长度：
//
//	初始弧数为 N 时，一次射击最多产生 N 个伤害事件（主目标 1 个 + N-1 次跳跃），
//	每跳弧数减 1，因此队列必然在有限步内清空。
//
// 跳跃只排除刚被命中的敌人，A→B→A 这样的往返是允许的。
type DamageSystem struct {
	entityManager *ecs.EntityManager
	queue         []game.DamageEvent

	arcSearchRadius  float64
	arcTrailLifetime float64
}

// NewDamageSystem 创建伤害传播系统
func NewDamageSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *DamageSystem {
	return &DamageSystem{
		entityManager:    em,
		queue:            make([]game.DamageEvent, 0, 8),
		arcSearchRadius:  cfg.ArcSearchRadius,
		arcTrailLifetime: cfg.ArcTrailLifetime,
	}
}

// Enqueue 追加一个待处理的伤害事件
func (s *DamageSystem) Enqueue(ev game.DamageEvent) {
	s.queue = append(s.queue, ev)
}

// Pending 返回尚未处理的事件数
func (s *DamageSystem) Pending() int {
	return len(s.queue)
}

// Update 处理队列中的全部事件（包括处理过程中追加的跳跃）
//
// 已处理的事件按处理顺序追加到 report.Damages（report 可以为 nil）。
func (s *DamageSystem) Update(report *game.TickReport) {
	for i := 0; i < len(s.queue); i++ {
		s.process(s.queue[i], report)
	}
	s.queue = s.queue[:0]
}

// process 处理单个伤害事件
func (s *DamageSystem) process(ev game.DamageEvent, report *game.TickReport) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, ev.Target)
	if !ok {
		// 目标已被清除，丢弃事件，不再跳跃
		log.Printf("[DamageSystem] Target %d no longer exists, dropping event", ev.Target)
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, ev.Target)
	if !ok {
		return
	}

	enemy.CurrentHealth -= ev.Amount
	ev.ToX, ev.ToY = pos.X, pos.Y

	entities.NewArcTrailEntity(s.entityManager, components.ArcTrailComponent{
		FromX:   ev.FromX,
		FromY:   ev.FromY,
		ToX:     ev.ToX,
		ToY:     ev.ToY,
		Primary: ev.Primary,
	}, s.arcTrailLifetime)

	if report != nil {
		report.Damages = append(report.Damages, ev)
	}

	if ev.ArcsRemaining <= 1 {
		return
	}

	next, nextPos, found := FindNearestInRadius(s.entityManager, pos.Vec(), s.arcSearchRadius, ev.Target)
	if !found {
		return
	}
	s.Enqueue(game.DamageEvent{
		Source:        ev.Target,
		Target:        next,
		Amount:        ev.Amount,
		ArcsRemaining: ev.ArcsRemaining - 1,
		FromX:         pos.X,
		FromY:         pos.Y,
		ToX:           nextPos.X,
		ToY:           nextPos.Y,
	})
}
