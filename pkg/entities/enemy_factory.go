package entities

import (
	"fmt"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/types"
)

// EnemySpec 创建敌人所需的全部参数
type EnemySpec struct {
	DirectiveID string
	Race        string            // 配置中的种族名
	Power       string            // 强度等级键
	Stats       config.EnemyStats // 已按轮次缩放的属性
	Cycle       int
	X, Y        float64
}

// NewEnemyEntity 创建敌人实体
//
// 参数:
//   - em: 实体管理器
//   - spec: 敌人参数（属性必须已经缩放）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewEnemyEntity(em *ecs.EntityManager, spec EnemySpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Stats.Health == 0 {
		return 0, fmt.Errorf("enemy %s/%s: health must be positive", spec.Race, spec.Power)
	}

	race := types.ParseEnemyRace(spec.Race)

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{
		X: spec.X,
		Y: spec.Y,
	})

	// 当前血量初始化为缩放后的最大血量
	em.AddComponent(entityID, &components.EnemyComponent{
		CurrentHealth: float64(spec.Stats.Health),
		Stats:         spec.Stats,
	})

	em.AddComponent(entityID, &components.EnemyTypeComponent{
		Race:        race,
		Power:       spec.Power,
		Animation:   race.AnimationFor(spec.Power),
		DirectiveID: spec.DirectiveID,
		Cycle:       spec.Cycle,
	})

	return entityID, nil
}
