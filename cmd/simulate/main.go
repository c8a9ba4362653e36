// simulate 无界面运行一局战斗，输出每轮的生成与击杀统计
//
// 玩家原地不动，自动朝最近的敌人射击，用于检查刷怪表和数值的节奏。
//
// 使用方法:
//
//	go run ./cmd/simulate [-data data] [-seed 1] [-duration 600] [-tps 60] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/game"
	"github.com/gonewx/gauntlet/pkg/session"
	"github.com/gonewx/gauntlet/pkg/utils"
)

var (
	dataDir  = flag.String("data", "data", "配置目录")
	seed     = flag.Int64("seed", 1, "随机种子")
	duration = flag.Float64("duration", 600, "模拟时长（秒）")
	tps      = flag.Int("tps", 60, "每秒 tick 数")
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
)

// cycleStats 一轮的统计
type cycleStats struct {
	spawns, hits, deaths int
	maxHealth            uint32
}

// statsListener 按轮次累计事件
type statsListener struct {
	cycles map[int]*cycleStats
	clock  func() int
}

func (l *statsListener) current() *cycleStats {
	c := l.clock()
	if l.cycles[c] == nil {
		l.cycles[c] = &cycleStats{}
	}
	return l.cycles[c]
}

func (l *statsListener) OnSpawn(req game.SpawnRequest) {
	st := l.current()
	st.spawns++
	if req.Stats.Health > st.maxHealth {
		st.maxHealth = req.Stats.Health
	}
}

func (l *statsListener) OnDamage(game.DamageEvent) { l.current().hits++ }

func (l *statsListener) OnDeath(game.DeathNotice) { l.current().deaths++ }

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	bundle, err := config.LoadBundle(*dataDir)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	// 原地不动时接触伤害会很快结束模拟，这里让玩家不会死亡
	gameplay := *bundle.Gameplay
	gameplay.PlayerHealth = math.MaxFloat64

	var s *session.Session
	listener := &statsListener{cycles: make(map[int]*cycleStats)}
	listener.clock = func() int { return int(s.Elapsed() / bundle.Schedule.CycleLength) }

	s, err = session.New(session.Options{
		Stats:    bundle.Stats,
		Schedule: bundle.Schedule,
		Gameplay: &gameplay,
		Rand:     rand.New(rand.NewSource(*seed)),
		Listener: listener,
	})
	if err != nil {
		fmt.Printf("❌ 创建战斗失败: %v\n", err)
		os.Exit(1)
	}

	dt := 1.0 / float64(*tps)
	for s.Elapsed() < *duration {
		in := session.Input{FirePressed: true}
		if target, ok := nearestEnemy(s); ok {
			in.Cursor = &target
		}
		if _, err := s.Tick(dt, in); err != nil {
			fmt.Printf("❌ t=%.1f: %v\n", s.Elapsed(), err)
			os.Exit(1)
		}
	}

	player, _, _ := s.Player()
	fmt.Printf("模拟 %.0f 秒，周期 %.0f 秒，种子 %d\n", *duration, bundle.Schedule.CycleLength, *seed)
	fmt.Printf("%-6s %8s %8s %8s %10s\n", "cycle", "spawned", "hits", "killed", "maxHealth")
	for c := 0; c <= int(*duration/bundle.Schedule.CycleLength); c++ {
		st := listener.cycles[c]
		if st == nil {
			continue
		}
		fmt.Printf("%-6d %8d %8d %8d %10d\n", c, st.spawns, st.hits, st.deaths, st.maxHealth)
	}
	fmt.Printf("结束时: 等级 %d，分数 %d，存活敌人 %d\n", player.Level, player.Score, s.EnemyCount())
}

// nearestEnemy 返回离玩家最近的敌人位置
func nearestEnemy(s *session.Session) (utils.Vec2, bool) {
	_, origin, ok := s.Player()
	if !ok {
		return utils.Vec2{}, false
	}
	em := s.EntityManager()
	best, bestDist, found := utils.Vec2{}, math.Inf(1), false
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := pos.Vec().Distance(origin); d > 1 && d < bestDist {
			best, bestDist, found = pos.Vec(), d, true
		}
	}
	return best, found
}
