package components

// PlayerComponent 玩家状态
type PlayerComponent struct {
	Health     float64 // 当前生命值，<= 0 时本局结束
	Experience float64 // 当前等级内累计的经验
	Level      uint32  // 当前等级，从 1 开始
	Score      uint32  // 击杀数
}

// WandComponent 玩家手中的法杖
type WandComponent struct {
	// SinceLastShot 距上次射击（或尝试射击）经过的时间（秒）
	SinceLastShot float64
}
