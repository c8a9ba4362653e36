package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/entities"
	"github.com/gonewx/gauntlet/pkg/game"
	"github.com/gonewx/gauntlet/pkg/types"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// gridEpsilon 判断时钟是否越过评估时刻时的浮点容差
// 0.1 这类间隔无法精确表示，累加后可能差 1ulp 才到达整数倍
const gridEpsilon = 1e-9

// WaveSpawnSystem 波次生成系统
//
// 职责：
//   - 按固定间隔（SpawnEvaluationInterval）评估刷怪表，而不是每帧评估
//   - 把每条指令的窗口平移到当前轮次，按线性爬坡计算应生成总数
//   - 与 SpawnTracker 中的已生成数比较，只补齐差额
//   - 按轮次缩放血量，在玩家周围的圆环内随机放置新敌人
//
// 评估时刻：
//
//	评估只发生在间隔的整数倍时刻 k*interval。一个 tick 越过多个评估时刻时，
//	只在最后越过的那个时刻评估一次（配额是累计值，中间时刻的差额会被一并补齐）。
//	因此无论 tick 长短如何分布，只要最终时钟相同，每个 (指令, 轮次) 的
//	已生成数都相同。
//
// 致命错误：
//
//	指令引用了属性表中不存在的种族/强度等级时，Update 返回包装了
//	config.ErrUnknownEnemyStats 的错误，由宿主终止本局。
type WaveSpawnSystem struct {
	entityManager *ecs.EntityManager
	schedule      *config.SpawnScheduleConfig
	stats         *config.EnemyStatsConfig
	state         *game.SessionState
	calculator    *CycleCalculator
	rng           *rand.Rand

	interval    float64
	innerRadius float64
	outerRadius float64

	// lastGrid 上一次评估的时刻序号（评估时刻 = lastGrid * interval）
	lastGrid int64
}

// NewWaveSpawnSystem 创建波次生成系统
//
// 参数：
//
//	em - 实体管理器
//	schedule - 已验证的刷怪表
//	stats - 敌人属性表
//	state - 本局调度状态（时钟与刷怪计数器）
//	cfg - 可调参数（评估间隔、出生环半径、血量系数）
//	rng - 随机数源（由调用方注入，便于复现）
func NewWaveSpawnSystem(
	em *ecs.EntityManager,
	schedule *config.SpawnScheduleConfig,
	stats *config.EnemyStatsConfig,
	state *game.SessionState,
	cfg *config.GameplayConfig,
	rng *rand.Rand,
) (*WaveSpawnSystem, error) {
	if schedule == nil || stats == nil || state == nil || cfg == nil {
		return nil, fmt.Errorf("wave spawn system: schedule, stats, state and gameplay config are required")
	}
	if !(cfg.SpawnEvaluationInterval > 0) {
		return nil, fmt.Errorf("wave spawn system: evaluation interval must be positive, got %v", cfg.SpawnEvaluationInterval)
	}
	calc, err := NewCycleCalculator(schedule.CycleLength, cfg.HealthCycleFactor)
	if err != nil {
		return nil, fmt.Errorf("wave spawn system: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return &WaveSpawnSystem{
		entityManager: em,
		schedule:      schedule,
		stats:         stats,
		state:         state,
		calculator:    calc,
		rng:           rng,
		interval:      cfg.SpawnEvaluationInterval,
		innerRadius:   cfg.SpawnInnerRadius,
		outerRadius:   cfg.SpawnOuterRadius,
	}, nil
}

// Calculator 返回系统使用的轮次计算器
func (s *WaveSpawnSystem) Calculator() *CycleCalculator {
	return s.calculator
}

// Update 读取 SessionState.Elapsed，越过新的评估时刻时评估一次刷怪表
//
// 时钟由调用方在本方法之前推进。没有玩家时评估时刻照常消耗，但不生成任何敌人。
func (s *WaveSpawnSystem) Update(report *game.TickReport) error {
	grid := int64(math.Floor(s.state.Elapsed/s.interval + gridEpsilon))
	if grid <= s.lastGrid {
		return nil
	}
	s.lastGrid = grid

	_, _, playerPos, ok := findPlayer(s.entityManager)
	if !ok {
		return nil
	}
	return s.EvaluateAt(float64(grid)*s.interval, playerPos.Vec(), report)
}

// EvaluateAt 在时刻 now 评估所有指令，补齐各指令在当前轮次的差额
//
// 参数：
//
//	now - 评估时刻（秒）
//	center - 出生环的圆心（玩家位置）
//	report - 生成记录追加到 report.Spawns（可以为 nil）
func (s *WaveSpawnSystem) EvaluateAt(now float64, center utils.Vec2, report *game.TickReport) error {
	cycle := s.calculator.CycleIndex(now)

	for _, directive := range s.schedule.EnemySpawns {
		start, end := s.calculator.ProjectWindow(directive, cycle)
		if !InWindow(now, start, end) {
			continue
		}

		base, err := s.stats.Lookup(directive.Race, directive.Power)
		if err != nil {
			return fmt.Errorf("directive %q: %w", directive.ID, err)
		}

		key := game.SpawnKey{DirectiveID: directive.ID, Cycle: cycle}
		quota := SpawnQuota(directive.Count, start, end, now)
		already := s.state.Tracker.AlreadySpawned(key)
		if quota <= already {
			continue
		}

		scaled := s.calculator.ScaleStats(base, cycle)
		race := types.ParseEnemyRace(directive.Race)
		for i := already; i < quota; i++ {
			pos := s.randomSpawnPosition(center)
			id, err := entities.NewEnemyEntity(s.entityManager, entities.EnemySpec{
				DirectiveID: directive.ID,
				Race:        directive.Race,
				Power:       directive.Power,
				Stats:       scaled,
				Cycle:       cycle,
				X:           pos.X,
				Y:           pos.Y,
			})
			if err != nil {
				return fmt.Errorf("directive %q: %w", directive.ID, err)
			}
			if report != nil {
				report.Spawns = append(report.Spawns, game.SpawnRequest{
					Entity:      id,
					DirectiveID: directive.ID,
					Race:        race,
					Power:       directive.Power,
					Animation:   race.AnimationFor(directive.Power),
					X:           pos.X,
					Y:           pos.Y,
					Stats:       scaled,
					Cycle:       cycle,
				})
			}
		}
		s.state.Tracker.Set(key, quota)

		log.Printf("[WaveSpawnSystem] t=%.2f cycle=%d directive=%s spawned %d (%d/%d), health=%d",
			now, cycle, directive.ID, quota-already, quota, directive.Count, scaled.Health)
	}
	return nil
}

// randomSpawnPosition 在以 center 为圆心的圆环 [inner, outer) 内随机取点
func (s *WaveSpawnSystem) randomSpawnPosition(center utils.Vec2) utils.Vec2 {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := s.innerRadius
	if s.outerRadius > s.innerRadius {
		dist += s.rng.Float64() * (s.outerRadius - s.innerRadius)
	}
	return center.Add(utils.FromAngle(angle, dist))
}
