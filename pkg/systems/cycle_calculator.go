package systems

import (
	"errors"
	"math"

	"github.com/gonewx/gauntlet/pkg/config"
)

// ErrInvalidCycleLength 周期长度不是正的有限数
var ErrInvalidCycleLength = errors.New("cycle length must be positive and finite")

// healthScaleEpsilon 吸收 factor*cycle 在整数边界上的浮点误差（如 1.2*5）
const healthScaleEpsilon = 1e-9

// CycleCalculator 轮次计算器
//
// 刷怪表在 [0, CycleLength] 内定义一轮，之后整表按轮次平移重放。
// 计算器只包含纯函数，不持有任何可变状态。
//
// 公式:
//   - 轮次: cycle = floor(elapsed / CycleLength)
//   - 窗口: [start + cycle*L, end + cycle*L]
//   - 配额: floor(count * (now - start) / (end - start))，截断在 [0, count]
//   - 血量: base * (1 + floor(factor * cycle))
type CycleCalculator struct {
	cycleLength  float64
	healthFactor float64
}

// NewCycleCalculator 创建轮次计算器
//
// 参数:
//   - cycleLength: 周期长度（秒），必须 > 0
//   - healthFactor: 血量轮次系数（默认 1.2）
func NewCycleCalculator(cycleLength, healthFactor float64) (*CycleCalculator, error) {
	if !(cycleLength > 0) || math.IsInf(cycleLength, 1) {
		return nil, ErrInvalidCycleLength
	}
	return &CycleCalculator{
		cycleLength:  cycleLength,
		healthFactor: healthFactor,
	}, nil
}

// CycleLength 返回周期长度
func (c *CycleCalculator) CycleLength() float64 {
	return c.cycleLength
}

// CycleIndex 计算经过 elapsed 秒时所处的轮次（从 0 开始）
func (c *CycleCalculator) CycleIndex(elapsed float64) int {
	if elapsed <= 0 {
		return 0
	}
	return int(math.Floor(elapsed / c.cycleLength))
}

// ProjectWindow 把指令的时间窗口平移到指定轮次
func (c *CycleCalculator) ProjectWindow(d config.SpawnDirective, cycle int) (start, end float64) {
	shift := float64(cycle) * c.cycleLength
	return d.StartOffset + shift, d.EndOffset + shift
}

// InWindow 检查 now 是否落在闭区间 [start, end] 内
func InWindow(now, start, end float64) bool {
	return now >= start && now <= end
}

// SpawnQuota 计算到 now 为止该窗口应当累计生成的敌人数
//
// 线性爬坡：窗口开始时为 0，窗口结束时达到 count。
// 零宽窗口（start == end）在 now >= start 时直接返回 count。
func SpawnQuota(count uint32, start, end, now float64) uint32 {
	if now < start {
		return 0
	}
	width := end - start
	if width <= 0 {
		return count
	}
	ratio := (now - start) / width
	if ratio >= 1 {
		return count
	}
	quota := math.Floor(float64(count) * ratio)
	if quota <= 0 {
		return 0
	}
	if quota >= float64(count) {
		return count
	}
	return uint32(quota)
}

// ScaledHealth 按轮次缩放基础血量: base * (1 + floor(factor * cycle))
//
// 结果超出 uint32 时饱和到 math.MaxUint32。
func ScaledHealth(base uint32, cycle int, factor float64) uint32 {
	if cycle < 0 {
		cycle = 0
	}
	steps := math.Floor(factor*float64(cycle) + healthScaleEpsilon)
	if steps < 0 {
		steps = 0
	}
	scaled := float64(base) * (1 + steps)
	if scaled >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(scaled)
}

// ScaleStats 返回按轮次缩放后的属性（只缩放血量，伤害保持不变）
func (c *CycleCalculator) ScaleStats(base config.EnemyStats, cycle int) config.EnemyStats {
	return config.EnemyStats{
		Health: ScaledHealth(base.Health, cycle, c.healthFactor),
		Damage: base.Damage,
	}
}
