package components

import (
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/types"
)

// EnemyComponent 敌人的战斗数据
//
// CurrentHealth 在生成时等于缩放后的最大血量，被伤害事件扣减，不做下限截断；
// 降到 0 及以下后由死亡清扫系统在同一 tick 末尾移除。
// Stats 在生成时按轮次缩放，之后不再修改。
type EnemyComponent struct {
	CurrentHealth float64
	Stats         config.EnemyStats
}

// IsDead 检查血量是否已降到 0 及以下
func (e *EnemyComponent) IsDead() bool {
	return e.CurrentHealth <= 0
}

// EnemyTypeComponent 敌人的种类信息（供表现层选择贴图）
type EnemyTypeComponent struct {
	Race        types.EnemyRace
	Power       string                 // 强度等级键
	Animation   types.AnimationIndices // 图集帧区间
	DirectiveID string                 // 生成该敌人的刷怪指令
	Cycle       int                    // 生成时的轮次
}
