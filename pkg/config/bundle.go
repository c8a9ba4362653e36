package config

import (
	"fmt"
	"path"
)

// 数据目录下的标准文件名
const (
	EnemyStatsFile    = "enemies.yaml"
	SpawnScheduleFile = "enemy_spawns.yaml"
	GameplayFile      = "gameplay.yaml"
)

// Bundle 一局战斗需要的全部配置
type Bundle struct {
	Stats    *EnemyStatsConfig
	Schedule *SpawnScheduleConfig
	Gameplay *GameplayConfig
}

// LoadBundle 从数据目录加载全部配置并做交叉校验
//
// 参数:
//   - dir: 数据目录（通常为 "data"，此时优先读取嵌入资源）
//
// gameplay.yaml 可以不存在，此时使用默认参数；另外两个文件必须存在。
func LoadBundle(dir string) (*Bundle, error) {
	stats, err := LoadEnemyStats(path.Join(dir, EnemyStatsFile))
	if err != nil {
		return nil, err
	}

	schedule, err := LoadSpawnSchedule(path.Join(dir, SpawnScheduleFile))
	if err != nil {
		return nil, err
	}

	gameplayPath := path.Join(dir, GameplayFile)
	var gameplay *GameplayConfig
	if configFileExists(gameplayPath) {
		gameplay, err = LoadGameplayConfig(gameplayPath)
		if err != nil {
			return nil, err
		}
	} else {
		defaults := DefaultGameplayConfig()
		gameplay = &defaults
	}

	if err := ValidateScheduleAgainstStats(schedule, stats); err != nil {
		return nil, fmt.Errorf("spawn schedule references missing stats: %w", err)
	}

	return &Bundle{Stats: stats, Schedule: schedule, Gameplay: gameplay}, nil
}
