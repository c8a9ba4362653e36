package game

import (
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/types"
)

// SpawnRequest 一个已生成敌人的描述，供表现层实例化贴图
type SpawnRequest struct {
	Entity      ecs.EntityID
	DirectiveID string
	Race        types.EnemyRace
	Power       string
	Animation   types.AnimationIndices
	X, Y        float64
	Stats       config.EnemyStats // 已按轮次缩放
	Cycle       int
}

// DamageEvent 一次伤害（主目标命中或弧跳跃）
//
// ArcsRemaining 每跳减 1；处理时若 ArcsRemaining-1 > 0 才会继续跳跃。
type DamageEvent struct {
	Source        ecs.EntityID // 造成本跳的实体（主目标命中时为玩家）
	Target        ecs.EntityID
	Amount        float64
	ArcsRemaining uint32
	Primary       bool

	// 起止点，用于表现层绘制闪电
	FromX, FromY float64
	ToX, ToY     float64
}

// DeathNotice 敌人血量降到 0 及以下并被清除
type DeathNotice struct {
	Entity ecs.EntityID
	Race   types.EnemyRace
	Power  string
	X, Y   float64
}

// EventListener 接收核心输出的协作者（表现层、音效、计分）
type EventListener interface {
	OnSpawn(req SpawnRequest)
	OnDamage(ev DamageEvent)
	OnDeath(notice DeathNotice)
}

// TickReport 一个 tick 内产生的全部输出，按发生顺序排列
type TickReport struct {
	Spawns  []SpawnRequest
	Damages []DamageEvent
	Deaths  []DeathNotice
}

// Reset 清空报告以便复用底层数组
func (r *TickReport) Reset() {
	r.Spawns = r.Spawns[:0]
	r.Damages = r.Damages[:0]
	r.Deaths = r.Deaths[:0]
}

// Empty 检查本 tick 是否没有任何输出
func (r *TickReport) Empty() bool {
	return len(r.Spawns) == 0 && len(r.Damages) == 0 && len(r.Deaths) == 0
}
