package config

import (
	"math"
	"strconv"
	"strings"
)

// ParseTimeToSeconds 将 "MM:SS" 格式的时间字符串转换为秒数
//
// 解析策略为静默降级，永不返回错误：
//   - 分钟或秒部分无法解析时按 0 处理（如 "x:30" → 30，"2:yy" → 120）
//   - 缺少秒部分时秒按 0 处理（如 "3" → 180）
//   - 第三段及之后的内容被忽略
//   - 两部分均允许小数（如 "0:2.5" → 2.5）
//   - NaN / Inf 按 0 处理
//
// 配置作者的笔误因此只会让刷怪窗口提前或缩短，不会阻止游戏启动。
func ParseTimeToSeconds(timeStr string) float64 {
	parts := strings.Split(timeStr, ":")

	minutes := parseTimeComponent(parts[0])
	seconds := 0.0
	if len(parts) > 1 {
		seconds = parseTimeComponent(parts[1])
	}

	return minutes*60 + seconds
}

// parseTimeComponent 解析单个时间分量，失败返回 0
func parseTimeComponent(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
