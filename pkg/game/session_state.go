// Package game 保存一局战斗的显式状态和对外输出的事件类型
//
// 所有状态由 tick 循环独占，通过引用传给各个系统，不使用全局变量。
package game

import "math"

// SessionState 一局战斗的调度状态
type SessionState struct {
	// Elapsed 本局累计经过的时间（秒），单调递增
	Elapsed float64
	// CycleLength 刷怪表周期长度（秒），加载后不变，保证 > 0
	CycleLength float64
	// Tracker 刷怪计数器
	Tracker *SpawnTracker
	// GameOver 玩家死亡后为 true，之后的 tick 不再推进
	GameOver bool
}

// NewSessionState 创建新的调度状态
func NewSessionState(cycleLength float64) *SessionState {
	return &SessionState{
		CycleLength: cycleLength,
		Tracker:     NewSpawnTracker(),
	}
}

// Advance 推进时钟
// 负的或非有限的 dt 被忽略，保证 Elapsed 单调不减
func (s *SessionState) Advance(dt float64) {
	if dt > 0 && !math.IsInf(dt, 1) {
		s.Elapsed += dt
	}
}
