// Package types 定义共享的基础类型
package types

import "strings"

// EnemyRace 定义敌人的种族
type EnemyRace int

const (
	// RaceUndead 亡灵（未知种族名也归入此类）
	RaceUndead EnemyRace = iota
	// RaceOrc 兽人
	RaceOrc
	// RaceDemon 恶魔
	RaceDemon
)

// String 返回种族的配置键名（小写）
func (r EnemyRace) String() string {
	switch r {
	case RaceOrc:
		return "orc"
	case RaceDemon:
		return "demon"
	default:
		return "undead"
	}
}

// ParseEnemyRace 将配置中的种族名解析为 EnemyRace
// 大小写不敏感；无法识别的名称返回 RaceUndead
func ParseEnemyRace(name string) EnemyRace {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "orc":
		return RaceOrc
	case "demon":
		return RaceDemon
	default:
		return RaceUndead
	}
}

// AnimationIndices 精灵图集中一段循环动画的首尾帧索引（闭区间）
type AnimationIndices struct {
	First int
	Last  int
}

// animationTable 种族 -> 强度等级 -> 图集帧区间
// 图集布局由美术资源决定，等级顺序与帧顺序不一致
var animationTable = map[EnemyRace]map[string]AnimationIndices{
	RaceUndead: {
		"1": {First: 52, Last: 55},
		"2": {First: 56, Last: 59},
		"3": {First: 48, Last: 51},
		"4": {First: 44, Last: 47},
		"5": {First: 40, Last: 43},
	},
	RaceOrc: {
		"1": {First: 20, Last: 23},
		"2": {First: 36, Last: 39},
		"3": {First: 32, Last: 35},
		"4": {First: 24, Last: 27},
		"5": {First: 28, Last: 31},
	},
	RaceDemon: {
		"1": {First: 8, Last: 11},
		"2": {First: 16, Last: 19},
		"3": {First: 4, Last: 7},
		"4": {First: 12, Last: 15},
		"5": {First: 0, Last: 3},
	},
}

// AnimationFor 返回指定种族和强度等级的动画帧区间
// 未配置的等级返回 {0, 0}
func (r EnemyRace) AnimationFor(power string) AnimationIndices {
	if tiers, ok := animationTable[r]; ok {
		if indices, ok := tiers[power]; ok {
			return indices
		}
	}
	return AnimationIndices{}
}
