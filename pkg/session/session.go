// Package session 把战斗核心的各个系统按固定顺序组装成一个 tick 循环
//
// 宿主（ebiten 窗口、终端界面、测试）每帧调用一次 Session.Tick，
// 传入本帧时长和输入，取回本帧产生的生成、伤害和死亡事件。
package session

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/entities"
	"github.com/gonewx/gauntlet/pkg/game"
	"github.com/gonewx/gauntlet/pkg/systems"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// Input 宿主在一个 tick 内采集到的玩家输入
type Input struct {
	// MoveX / MoveY 移动意图，分量通常为 -1/0/1
	MoveX, MoveY float64
	// Cursor 光标的世界坐标；nil 表示不可用
	Cursor *utils.Vec2
	// FirePressed 射击键是否按住
	FirePressed bool
}

// Options 创建 Session 所需的配置
type Options struct {
	Stats    *config.EnemyStatsConfig
	Schedule *config.SpawnScheduleConfig
	Gameplay *config.GameplayConfig
	// Rand 随机数源；nil 时使用固定种子 1
	Rand *rand.Rand
	// Listener 可选的事件接收者，在 Tick 返回前按发生顺序回调
	Listener game.EventListener
}

// Session 一局战斗
//
// 非线程安全：宿主只能在自己的更新 goroutine 中调用。
type Session struct {
	entityManager *ecs.EntityManager
	state         *game.SessionState
	gameplay      *config.GameplayConfig
	listener      game.EventListener
	playerID      ecs.EntityID

	playerSystem   *systems.PlayerSystem
	spawnSystem    *systems.WaveSpawnSystem
	movementSystem *systems.EnemyMovementSystem
	wandSystem     *systems.WandSystem
	damageSystem   *systems.DamageSystem
	contactSystem  *systems.ContactSystem
	deathSystem    *systems.DeathSystem
	lifetimeSystem *systems.LifetimeSystem

	report game.TickReport
}

// New 创建一局新的战斗，玩家位于世界原点
//
// 启动时校验刷怪表中的每个种族/强度等级都在属性表中存在，
// 内容配置错误在这里直接返回，而不是等到第一次刷怪。
func New(opts Options) (*Session, error) {
	if opts.Stats == nil || opts.Schedule == nil {
		return nil, fmt.Errorf("session: enemy stats and spawn schedule are required")
	}
	gameplay := opts.Gameplay
	if gameplay == nil {
		defaults := config.DefaultGameplayConfig()
		gameplay = &defaults
	}
	if err := gameplay.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err := config.ValidateScheduleAgainstStats(opts.Schedule, opts.Stats); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	em := ecs.NewEntityManager()
	state := game.NewSessionState(opts.Schedule.CycleLength)

	spawn, err := systems.NewWaveSpawnSystem(em, opts.Schedule, opts.Stats, state, gameplay, rng)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	playerID, err := entities.NewPlayerEntity(em, 0, 0, gameplay.PlayerHealth)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	damage := systems.NewDamageSystem(em, gameplay)
	s := &Session{
		entityManager:  em,
		state:          state,
		gameplay:       gameplay,
		listener:       opts.Listener,
		playerID:       playerID,
		playerSystem:   systems.NewPlayerSystem(em, gameplay),
		spawnSystem:    spawn,
		movementSystem: systems.NewEnemyMovementSystem(em, gameplay.EnemySpeed),
		wandSystem:     systems.NewWandSystem(em, damage, gameplay),
		damageSystem:   damage,
		contactSystem:  systems.NewContactSystem(em, state, gameplay.ContactRadius),
		deathSystem:    systems.NewDeathSystem(em),
		lifetimeSystem: systems.NewLifetimeSystem(em),
	}

	log.Printf("[Session] Created: %d directives, cycle length %.1fs, %d races",
		len(opts.Schedule.EnemySpawns), opts.Schedule.CycleLength, len(opts.Stats.Races))
	return s, nil
}

// Tick 推进一帧
//
// 顺序: 时钟 → 玩家 → 刷怪 → 敌人移动 → 法杖 → 伤害传播 → 接触伤害 → 死亡清扫 → 生命周期。
// 返回的报告在下一次 Tick 时被复用，调用方如需保留应自行拷贝。
// 本局结束后 Tick 不再推进，返回空报告。刷怪遇到内容配置错误时返回错误，本局应当终止。
func (s *Session) Tick(dt float64, in Input) (*game.TickReport, error) {
	s.report.Reset()
	if s.state.GameOver {
		return &s.report, nil
	}

	// 负数、NaN 与 +Inf 一律按 0 处理，与时钟的规则一致
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	s.state.Advance(dt)

	s.playerSystem.Update(dt, in.MoveX, in.MoveY)
	if err := s.spawnSystem.Update(&s.report); err != nil {
		return &s.report, fmt.Errorf("spawn evaluation at t=%.2f: %w", s.state.Elapsed, err)
	}
	s.movementSystem.Update(dt)
	s.wandSystem.Update(dt, systems.WandInput{Cursor: in.Cursor, FirePressed: in.FirePressed})
	s.damageSystem.Update(&s.report)
	s.contactSystem.Update(dt)
	s.deathSystem.Update(&s.report)
	s.lifetimeSystem.Update(dt)
	s.entityManager.RemoveMarkedEntities()

	s.dispatch()
	return &s.report, nil
}

// dispatch 把本 tick 的事件转发给监听者
func (s *Session) dispatch() {
	if s.listener == nil {
		return
	}
	for _, req := range s.report.Spawns {
		s.listener.OnSpawn(req)
	}
	for _, ev := range s.report.Damages {
		s.listener.OnDamage(ev)
	}
	for _, notice := range s.report.Deaths {
		s.listener.OnDeath(notice)
	}
}

// EntityManager 返回本局的实体管理器（表现层只读访问）
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// State 返回本局的调度状态
func (s *Session) State() *game.SessionState {
	return s.state
}

// Gameplay 返回本局使用的可调参数
func (s *Session) Gameplay() *config.GameplayConfig {
	return s.gameplay
}

// Elapsed 返回本局经过的时间（秒）
func (s *Session) Elapsed() float64 {
	return s.state.Elapsed
}

// GameOver 检查本局是否已结束
func (s *Session) GameOver() bool {
	return s.state.GameOver
}

// Player 返回玩家的状态与位置；玩家不存在时返回 false
func (s *Session) Player() (components.PlayerComponent, utils.Vec2, bool) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return components.PlayerComponent{}, utils.Vec2{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return components.PlayerComponent{}, utils.Vec2{}, false
	}
	return *player, pos.Vec(), true
}

// EnemyCount 返回当前存活的敌人数
func (s *Session) EnemyCount() int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager))
}
