package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownEnemyStats 种族/强度等级组合在属性表中不存在
// 这是内容配置错误，不应在运行时被静默跳过
var ErrUnknownEnemyStats = errors.New("unknown enemy race/power combination")

// EnemyStats 单个敌人种类的基础属性
type EnemyStats struct {
	Health uint32  `yaml:"health"` // 基础血量（随轮次缩放）
	Damage float64 `yaml:"damage"` // 接触伤害（每秒，不随轮次缩放）
}

// EnemyStatsConfig 敌人属性表
//
// 配置文件结构（data/enemies.yaml）：
//
//	undead:
//	  "1": {health: 10, damage: 1}
//	  "2": {health: 20, damage: 2}
//	orc:
//	  "1": {health: 15, damage: 1.5}
//
// 种族名在加载时统一转为小写，查询时大小写不敏感。
type EnemyStatsConfig struct {
	Races map[string]map[string]EnemyStats // 种族 -> 强度等级 -> 属性
}

// LoadEnemyStats 从 YAML 文件加载敌人属性表
// 参数：
//
//	filepath - 配置文件路径（"data/" 开头时优先读取嵌入资源）
//
// 返回：
//
//	*EnemyStatsConfig - 解析后的配置对象
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadEnemyStats(filepath string) (*EnemyStatsConfig, error) {
	data, err := readConfigFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy stats file %s: %w", filepath, err)
	}

	config, err := ParseEnemyStats(data)
	if err != nil {
		return nil, fmt.Errorf("invalid enemy stats in %s: %w", filepath, err)
	}

	return config, nil
}

// ParseEnemyStats 解析并验证 YAML 格式的敌人属性表
func ParseEnemyStats(data []byte) (*EnemyStatsConfig, error) {
	var raw map[string]map[string]EnemyStats
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse enemy stats YAML: %w", err)
	}

	config := &EnemyStatsConfig{Races: make(map[string]map[string]EnemyStats, len(raw))}
	for race, tiers := range raw {
		key := strings.ToLower(strings.TrimSpace(race))
		if _, dup := config.Races[key]; dup {
			return nil, fmt.Errorf("race %q declared more than once (race names are case-insensitive)", race)
		}
		config.Races[key] = tiers
	}

	if err := validateEnemyStats(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateEnemyStats 验证属性表的完整性和合法性
func validateEnemyStats(config *EnemyStatsConfig) error {
	if len(config.Races) == 0 {
		return fmt.Errorf("at least one enemy race is required")
	}

	for race, tiers := range config.Races {
		if race == "" {
			return fmt.Errorf("race name cannot be empty")
		}
		if len(tiers) == 0 {
			return fmt.Errorf("race %s: at least one power tier is required", race)
		}
		for power, stats := range tiers {
			if power == "" {
				return fmt.Errorf("race %s: power tier key cannot be empty", race)
			}
			if stats.Health == 0 {
				return fmt.Errorf("race %s power %s: health must be positive", race, power)
			}
			if stats.Damage < 0 {
				return fmt.Errorf("race %s power %s: damage cannot be negative, got %v", race, power, stats.Damage)
			}
		}
	}

	return nil
}

// GetEnemyStats 获取指定种族和强度等级的基础属性
// 如果组合不存在，返回零值和 false
func (c *EnemyStatsConfig) GetEnemyStats(race, power string) (EnemyStats, bool) {
	tiers, ok := c.Races[strings.ToLower(strings.TrimSpace(race))]
	if !ok {
		return EnemyStats{}, false
	}
	stats, ok := tiers[power]
	return stats, ok
}

// Lookup 与 GetEnemyStats 相同，但组合不存在时返回包装了 ErrUnknownEnemyStats 的错误
func (c *EnemyStatsConfig) Lookup(race, power string) (EnemyStats, error) {
	stats, ok := c.GetEnemyStats(race, power)
	if !ok {
		return EnemyStats{}, fmt.Errorf("%w: race=%q power=%q", ErrUnknownEnemyStats, race, power)
	}
	return stats, nil
}

// RaceNames 返回已配置的种族名（升序）
func (c *EnemyStatsConfig) RaceNames() []string {
	names := make([]string, 0, len(c.Races))
	for race := range c.Races {
		names = append(names, race)
	}
	sort.Strings(names)
	return names
}
