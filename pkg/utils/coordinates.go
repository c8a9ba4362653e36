// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：战斗核心使用的坐标，Y 轴向上，原点为玩家出生点
//   - **屏幕坐标**：相对于窗口左上角，Y 轴向下
//   - **摄像机**：始终以摄像机位置（通常为玩家位置）为屏幕中心
//
// # 核心转换公式
//
//	screenX = (worldX - cameraX) * scale + screenW / 2
//	screenY = screenH / 2 - (worldY - cameraY) * scale
package utils

// Camera 描述一个以 Center 为屏幕中心的正交摄像机
type Camera struct {
	Center  Vec2    // 摄像机中心的世界坐标
	ScreenW float64 // 屏幕宽度（像素或字符列）
	ScreenH float64 // 屏幕高度（像素或字符行）
	Scale   float64 // 世界单位到屏幕单位的缩放，<= 0 时按 1 处理
}

func (c Camera) scale() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (c Camera) WorldToScreen(world Vec2) (float64, float64) {
	s := c.scale()
	sx := (world.X-c.Center.X)*s + c.ScreenW/2
	sy := c.ScreenH/2 - (world.Y-c.Center.Y)*s
	return sx, sy
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (c Camera) ScreenToWorld(sx, sy float64) Vec2 {
	s := c.scale()
	return Vec2{
		X: (sx-c.ScreenW/2)/s + c.Center.X,
		Y: (c.ScreenH/2-sy)/s + c.Center.Y,
	}
}

// Visible 检查屏幕坐标是否在屏幕范围内
func (c Camera) Visible(sx, sy float64) bool {
	return sx >= 0 && sy >= 0 && sx < c.ScreenW && sy < c.ScreenH
}
