package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 本项目中用于经验曲线计算（升级所需经验随等级平滑增长）。
//
// 参考：https://easings.net/

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseInOutQuint 五次方缓入缓出
// 特点：两端极平缓，中段陡峭
// 公式：
//
//	t < 0.5: f(t) = 16t⁵
//	t >= 0.5: f(t) = 1 - (-2t + 2)⁵ / 2
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// ScaleValue 将 [0, 1] 区间的输入线性映射到 [1, max]
//
// 输入超出 [0, 1] 时先截断到边界；max <= 1 时直接返回 1。
// 调用方在 tick 循环中使用，因此不会 panic。
func ScaleValue(input, max float64) float64 {
	if max <= 1 {
		return 1
	}
	input = Clamp(input, 0, 1)
	return 1 + input*(max-1)
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
