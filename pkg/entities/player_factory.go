package entities

import (
	"fmt"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体（含法杖）
// 玩家从 1 级、零经验开始；法杖计时器从 0 开始，需要等待一个射击间隔后才能开火
func NewPlayerEntity(em *ecs.EntityManager, x, y, health float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if health <= 0 {
		return 0, fmt.Errorf("player health must be positive, got %v", health)
	}

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entityID, &components.PlayerComponent{
		Health: health,
		Level:  1,
	})
	em.AddComponent(entityID, &components.WandComponent{})

	return entityID, nil
}
