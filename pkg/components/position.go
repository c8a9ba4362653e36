// Package components 定义战斗核心使用的 ECS 组件
//
// 组件只保存数据，不包含逻辑；所有行为由 systems 包中的系统实现。
package components

import "github.com/gonewx/gauntlet/pkg/utils"

// PositionComponent 实体在世界坐标中的位置
// 由移动系统写入，由刷怪、索敌和接触伤害逻辑读取
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 以向量形式返回位置
func (p *PositionComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set 用向量更新位置
func (p *PositionComponent) Set(v utils.Vec2) {
	p.X = v.X
	p.Y = v.Y
}
