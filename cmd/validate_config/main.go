// validate_config 检查数据目录中的配置文件
//
// 使用方法:
//
//	go run ./cmd/validate_config [-data data]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/types"
)

var dataDir = flag.String("data", "data", "配置目录")

func main() {
	flag.Parse()

	bundle, err := config.LoadBundle(*dataDir)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if err := bundle.Gameplay.Validate(); err != nil {
		fmt.Printf("❌ gameplay.yaml 参数非法: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 种族数量: %d\n", len(bundle.Stats.Races))
	for _, race := range bundle.Stats.RaceNames() {
		parsed := types.ParseEnemyRace(race)
		if parsed.String() != race {
			fmt.Printf("⚠️  种族 %s 没有对应的贴图，将显示为 %s\n", race, parsed)
		}
		for power := range bundle.Stats.Races[race] {
			if anim := parsed.AnimationFor(power); anim.First == 0 && anim.Last == 0 {
				fmt.Printf("⚠️  %s/%s 没有对应的动画帧\n", race, power)
			}
		}
	}

	fmt.Printf("✅ 刷怪指令数量: %d，周期长度 %.0f 秒\n", len(bundle.Schedule.EnemySpawns), bundle.Schedule.CycleLength)
	total := uint32(0)
	for _, d := range bundle.Schedule.EnemySpawns {
		if d.StartOffset == d.EndOffset {
			fmt.Printf("⚠️  指令 %s 的窗口宽度为 0，%d 个敌人将在 %s 同时出现\n", d.ID, d.Count, d.StartTime)
		}
		total += d.Count
	}
	fmt.Printf("✅ 每轮敌人总数: %d\n", total)
	fmt.Printf("✅ 所有种族/强度等级组合都能在属性表中找到\n")
}
