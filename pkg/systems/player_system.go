package systems

import (
	"log"

	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// PlayerSystem 玩家移动与升级
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameplayConfig
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// Update 按移动意图移动玩家，然后检查升级
//
// moveX/moveY 为移动意图（如 WASD 合成的方向），长度不为 1 时先归一化；
// 意图为零向量时不移动。每个 tick 最多升一级，多余的经验保留到下一级。
func (s *PlayerSystem) Update(dt float64, moveX, moveY float64) {
	_, player, pos, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}

	if dir, ok := (utils.Vec2{X: moveX, Y: moveY}).Normalize(); ok && dt > 0 {
		pos.Set(pos.Vec().Add(dir.Scale(s.cfg.PlayerSpeed * dt)))
	}

	required := ExperienceForLevel(s.cfg, player.Level)
	if player.Experience >= required {
		player.Experience -= required
		player.Level++
		log.Printf("[PlayerSystem] Level up: level=%d, next=%.1f", player.Level, ExperienceForLevel(s.cfg, player.Level))
	}
}

// ExperienceForLevel 计算从 level 升到 level+1 所需的经验
//
// 公式: (ScaleValue(EaseInOutQuint(p), 10) + p²) * ExperiencePerLevel，
// 其中 p = min(level / MaxLevel, 1)。
func ExperienceForLevel(cfg *config.GameplayConfig, level uint32) float64 {
	p := 1.0
	if cfg.MaxLevel > 0 {
		p = utils.Clamp(float64(level)/float64(cfg.MaxLevel), 0, 1)
	}
	return (utils.ScaleValue(utils.EaseInOutQuint(p), 10) + p*p) * cfg.ExperiencePerLevel
}
