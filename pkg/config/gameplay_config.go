package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GameplayConfig 战斗核心的可调参数
//
// 配置文件位置: data/gameplay.yaml
// 所有字段均可省略，省略的字段使用 DefaultGameplayConfig 中的默认值。
// 距离单位为世界像素，时间单位为秒。
type GameplayConfig struct {
	// 刷怪
	SpawnEvaluationInterval float64 `yaml:"spawnEvaluationInterval"` // 刷怪评估间隔（不是每帧都评估）
	SpawnInnerRadius        float64 `yaml:"spawnInnerRadius"`        // 出生环内半径（保证在屏幕外）
	SpawnOuterRadius        float64 `yaml:"spawnOuterRadius"`        // 出生环外半径
	HealthCycleFactor       float64 `yaml:"healthCycleFactor"`       // 血量轮次系数：base * (1 + floor(factor * cycle))

	// 法杖与连锁闪电
	WandFireInterval    float64 `yaml:"wandFireInterval"`    // 两次射击的最小间隔
	WandConeMaxDistance float64 `yaml:"wandConeMaxDistance"` // 锥形索敌最大距离
	WandConeAngle       float64 `yaml:"wandConeAngle"`       // 锥形索敌总角度（度），半角为其一半
	WandInitialArcs     uint32  `yaml:"wandInitialArcs"`     // 主目标命中时携带的弧数
	WandBaseDamage      float64 `yaml:"wandBaseDamage"`      // 1 级时的单次伤害
	WandDamagePerLevel  float64 `yaml:"wandDamagePerLevel"`  // 每升一级的伤害加成比例
	ArcSearchRadius     float64 `yaml:"arcSearchRadius"`     // 弧跳跃的搜索半径
	ArcTrailLifetime    float64 `yaml:"arcTrailLifetime"`    // 弧线视觉描述实体的存活时间

	// 角色
	EnemySpeed         float64 `yaml:"enemySpeed"`         // 敌人追击速度（像素/秒）
	PlayerSpeed        float64 `yaml:"playerSpeed"`        // 玩家移动速度（像素/秒）
	PlayerHealth       float64 `yaml:"playerHealth"`       // 玩家初始生命值
	ContactRadius      float64 `yaml:"contactRadius"`      // 敌人接触伤害判定半径
	ExperiencePerLevel float64 `yaml:"experiencePerLevel"` // 经验曲线基数
	MaxLevel           uint32  `yaml:"maxLevel"`           // 经验曲线封顶等级
}

// DefaultGameplayConfig 返回默认参数
func DefaultGameplayConfig() GameplayConfig {
	return GameplayConfig{
		SpawnEvaluationInterval: 0.1,
		SpawnInnerRadius:        1000,
		SpawnOuterRadius:        5000,
		HealthCycleFactor:       1.2,

		WandFireInterval:    0.5,
		WandConeMaxDistance: 300,
		WandConeAngle:       90,
		WandInitialArcs:     3,
		WandBaseDamage:      5,
		WandDamagePerLevel:  0.05,
		ArcSearchRadius:     150,
		ArcTrailLifetime:    1.4,

		EnemySpeed:         60,
		PlayerSpeed:        180,
		PlayerHealth:       100,
		ContactRadius:      24,
		ExperiencePerLevel: 10,
		MaxLevel:           50,
	}
}

// LoadGameplayConfig 加载可调参数
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 默认值被文件内容覆盖后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}

	config, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid gameplay config %s: %w", path, err)
	}

	return config, nil
}

// ParseGameplayConfig 在默认值基础上解析 YAML 覆盖项
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	config := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate 验证配置有效性
func (c *GameplayConfig) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"spawnEvaluationInterval", c.SpawnEvaluationInterval},
		{"spawnOuterRadius", c.SpawnOuterRadius},
		{"wandFireInterval", c.WandFireInterval},
		{"wandConeMaxDistance", c.WandConeMaxDistance},
		{"wandConeAngle", c.WandConeAngle},
		{"arcSearchRadius", c.ArcSearchRadius},
		{"playerHealth", c.PlayerHealth},
		{"experiencePerLevel", c.ExperiencePerLevel},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}

	if c.SpawnInnerRadius < 0 || c.SpawnInnerRadius > c.SpawnOuterRadius {
		return fmt.Errorf("spawn annulus invalid: inner(%.1f) must be in [0, outer(%.1f)]",
			c.SpawnInnerRadius, c.SpawnOuterRadius)
	}
	if c.WandConeAngle > 360 {
		return fmt.Errorf("wandConeAngle must be <= 360, got %v", c.WandConeAngle)
	}
	if c.HealthCycleFactor < 0 {
		return fmt.Errorf("healthCycleFactor cannot be negative, got %v", c.HealthCycleFactor)
	}
	if c.WandBaseDamage < 0 || c.WandDamagePerLevel < 0 {
		return fmt.Errorf("wand damage values cannot be negative")
	}
	if c.EnemySpeed < 0 || c.PlayerSpeed < 0 || c.ContactRadius < 0 || c.ArcTrailLifetime < 0 {
		return fmt.Errorf("speeds, contactRadius and arcTrailLifetime cannot be negative")
	}
	if c.MaxLevel == 0 {
		return fmt.Errorf("maxLevel must be at least 1")
	}

	return nil
}
