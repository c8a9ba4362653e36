package systems

import (
	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/game"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// WandInput 法杖本 tick 的输入
type WandInput struct {
	// Cursor 光标的世界坐标；nil 表示光标不可用（窗口失焦等）
	Cursor *utils.Vec2
	// FirePressed 射击键是否按住
	FirePressed bool
}

// WandSystem 法杖射击系统
//
// 按住射击键时，每隔 WandFireInterval 在朝向光标的锥形内寻找最近的敌人，
// 找到后向 DamageSystem 追加一个携带 WandInitialArcs 个弧的主目标伤害事件。
// 冷却到期但锥形内没有敌人时同样消耗本次射击。
type WandSystem struct {
	entityManager *ecs.EntityManager
	damage        *DamageSystem
	cfg           *config.GameplayConfig
}

// NewWandSystem 创建法杖射击系统
func NewWandSystem(em *ecs.EntityManager, damage *DamageSystem, cfg *config.GameplayConfig) *WandSystem {
	return &WandSystem{
		entityManager: em,
		damage:        damage,
		cfg:           cfg,
	}
}

// Update 推进射击冷却并在条件满足时开火
//
// 返回是否发出了主目标伤害事件
func (s *WandSystem) Update(dt float64, input WandInput) bool {
	if input.Cursor == nil {
		return false
	}
	playerID, player, pos, ok := findPlayer(s.entityManager)
	if !ok {
		return false
	}
	wand, ok := ecs.GetComponent[*components.WandComponent](s.entityManager, playerID)
	if !ok {
		return false
	}

	if dt > 0 {
		wand.SinceLastShot += dt
	}
	if !input.FirePressed || wand.SinceLastShot < s.cfg.WandFireInterval {
		return false
	}
	wand.SinceLastShot = 0

	origin := pos.Vec()
	target, found := FindNearestInCone(s.entityManager, origin, *input.Cursor, s.cfg.WandConeMaxDistance, s.cfg.WandConeAngle)
	if !found {
		return false
	}
	targetPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, target)

	s.damage.Enqueue(game.DamageEvent{
		Source:        playerID,
		Target:        target,
		Amount:        WandDamage(s.cfg, player.Level),
		ArcsRemaining: s.cfg.WandInitialArcs,
		Primary:       true,
		FromX:         origin.X,
		FromY:         origin.Y,
		ToX:           targetPos.X,
		ToY:           targetPos.Y,
	})
	return true
}

// WandDamage 计算指定等级下的单次伤害: base * (1 + (level-1) * perLevel)
func WandDamage(cfg *config.GameplayConfig, level uint32) float64 {
	if level < 1 {
		level = 1
	}
	return cfg.WandBaseDamage * (1 + float64(level-1)*cfg.WandDamagePerLevel)
}
