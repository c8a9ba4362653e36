package systems

import (
	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
)

// findPlayer 返回唯一的玩家实体及其组件
// 不存在玩家时返回 false；存在多个时取 ID 最小者
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, *components.PlayerComponent, *components.PositionComponent, bool) {
	ids := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em)
	if len(ids) == 0 {
		return 0, nil, nil, false
	}
	id := ids[0]
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return id, player, pos, true
}
