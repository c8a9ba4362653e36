package config

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrZeroCycleLength 刷怪表的周期长度为 0
// 没有任何指令，或所有指令的结束时间都为 0:00 时出现；必须在加载时拦截，
// 否则轮次计算会除以零
var ErrZeroCycleLength = errors.New("spawn schedule cycle length must be positive")

// SpawnDirective 一条刷怪指令
//
// 在一个周期内的 [StartTime, EndTime] 窗口中，按时间线性生成 Count 个
// 指定种族和强度等级的敌人。加载后不可变。
type SpawnDirective struct {
	ID        string `yaml:"id"`         // 唯一标识；留空时按 "种族-等级-序号" 自动生成
	Race      string `yaml:"race"`       // 种族（大小写不敏感）
	Power     string `yaml:"power"`      // 强度等级键（如 "1".."5"）
	Count     uint32 `yaml:"count"`      // 一个完整窗口内的目标数量
	StartTime string `yaml:"start_time"` // 窗口开始时间 "MM:SS"
	EndTime   string `yaml:"end_time"`   // 窗口结束时间 "MM:SS"

	// StartOffset / EndOffset 由 StartTime / EndTime 解析得到（秒，周期内偏移）
	StartOffset float64 `yaml:"-"`
	EndOffset   float64 `yaml:"-"`
}

// SpawnScheduleConfig 刷怪表（data/enemy_spawns.yaml）
type SpawnScheduleConfig struct {
	EnemySpawns []SpawnDirective `yaml:"enemy_spawns"`

	// CycleLength 周期长度 = 所有指令 EndOffset 的最大值，加载时计算一次
	CycleLength float64 `yaml:"-"`
}

// LoadSpawnSchedule 从 YAML 文件加载刷怪表
//
// 参数:
//   - filepath: 配置文件路径（如 "data/enemy_spawns.yaml"）
//
// 返回:
//   - *SpawnScheduleConfig: 已解析时间偏移并计算周期长度的刷怪表
//   - error: 读取、解析或验证失败（包括周期长度为 0）时返回错误
func LoadSpawnSchedule(filepath string) (*SpawnScheduleConfig, error) {
	data, err := readConfigFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn schedule file %s: %w", filepath, err)
	}

	schedule, err := ParseSpawnSchedule(data)
	if err != nil {
		return nil, fmt.Errorf("invalid spawn schedule in %s: %w", filepath, err)
	}

	return schedule, nil
}

// ParseSpawnSchedule 解析 YAML 格式的刷怪表并完成加载期计算
func ParseSpawnSchedule(data []byte) (*SpawnScheduleConfig, error) {
	var schedule SpawnScheduleConfig
	if err := yaml.Unmarshal(data, &schedule); err != nil {
		return nil, fmt.Errorf("failed to parse spawn schedule YAML: %w", err)
	}

	if err := schedule.Prepare(); err != nil {
		return nil, err
	}

	return &schedule, nil
}

// Prepare 解析时间字符串、补全 ID、计算周期长度并验证
//
// 由代码直接构造的刷怪表（测试、工具）也必须调用一次。
func (s *SpawnScheduleConfig) Prepare() error {
	s.CycleLength = 0
	for i := range s.EnemySpawns {
		d := &s.EnemySpawns[i]
		d.StartOffset = ParseTimeToSeconds(d.StartTime)
		d.EndOffset = ParseTimeToSeconds(d.EndTime)
		if d.ID == "" {
			d.ID = d.Race + "-" + d.Power + "-" + strconv.Itoa(i)
		}
		if d.EndOffset > s.CycleLength {
			s.CycleLength = d.EndOffset
		}
	}

	return s.Validate()
}

// Validate 验证刷怪表
//
// 检查:
//   - 至少一条指令
//   - ID 唯一，种族与等级非空
//   - 每条指令 StartOffset <= EndOffset
//   - 周期长度大于 0
func (s *SpawnScheduleConfig) Validate() error {
	if len(s.EnemySpawns) == 0 {
		return fmt.Errorf("%w: no spawn directives configured", ErrZeroCycleLength)
	}

	seen := make(map[string]int, len(s.EnemySpawns))
	for i, d := range s.EnemySpawns {
		if prev, dup := seen[d.ID]; dup {
			return fmt.Errorf("directive %d: id %q already used by directive %d", i, d.ID, prev)
		}
		seen[d.ID] = i

		if d.Race == "" {
			return fmt.Errorf("directive %s: race cannot be empty", d.ID)
		}
		if d.Power == "" {
			return fmt.Errorf("directive %s: power cannot be empty", d.ID)
		}
		if d.StartOffset > d.EndOffset {
			return fmt.Errorf("directive %s: start_time %q (%.1fs) is after end_time %q (%.1fs)",
				d.ID, d.StartTime, d.StartOffset, d.EndTime, d.EndOffset)
		}
	}

	if s.CycleLength <= 0 {
		return fmt.Errorf("%w: latest end_time is %.1fs", ErrZeroCycleLength, s.CycleLength)
	}

	return nil
}

// ValidateScheduleAgainstStats 检查刷怪表中的每个种族/等级组合都在属性表中存在
//
// 在启动时调用，把内容配置错误提前暴露给操作者；
// 运行时刷怪仍会再次检查并返回 ErrUnknownEnemyStats。
func ValidateScheduleAgainstStats(schedule *SpawnScheduleConfig, stats *EnemyStatsConfig) error {
	for _, d := range schedule.EnemySpawns {
		if _, err := stats.Lookup(d.Race, d.Power); err != nil {
			return fmt.Errorf("directive %s: %w", d.ID, err)
		}
	}
	return nil
}
