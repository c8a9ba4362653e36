package components

// ArcTrailComponent 一段闪电弧线的视觉描述
//
// 由伤害传播系统在每次命中时创建，表现层据此绘制从 From 到 To 的线段；
// 配合 LifetimeComponent 在数秒后自动清理。核心逻辑从不读取该组件。
type ArcTrailComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Primary      bool // true 表示法杖到主目标的第一段
}
