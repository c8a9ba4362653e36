package entities

import (
	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
)

// NewArcTrailEntity 创建一段闪电弧线的视觉描述实体
func NewArcTrailEntity(em *ecs.EntityManager, trail components.ArcTrailComponent, lifetime float64) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &trail)
	em.AddComponent(entityID, &components.LifetimeComponent{MaxLifetime: lifetime})
	return entityID
}
