// Package termview 在终端中绘制一局战斗并把按键/鼠标转换为战斗输入
//
// 终端没有按键抬起事件，移动键按下后在 holdDuration 内视为按住。
package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/session"
	"github.com/gonewx/gauntlet/pkg/types"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// 终端中的图元
const (
	playerGlyph = '@'
	arcGlyph    = '*'
	statusRows  = 1
)

var (
	playerStyle     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	arcStyle        = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	primaryArcStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	gameOverStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	raceGlyphs = map[types.EnemyRace]rune{
		types.RaceUndead: 'u',
		types.RaceOrc:    'o',
		types.RaceDemon:  'd',
	}
	raceStyles = map[types.EnemyRace]tcell.Style{
		types.RaceUndead: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		types.RaceOrc:    tcell.StyleDefault.Foreground(tcell.ColorOlive),
		types.RaceDemon:  tcell.StyleDefault.Foreground(tcell.ColorRed),
	}
)

// View 把战斗画面绘制到 tcell 屏幕
type View struct {
	screen tcell.Screen
	// unitsPerCell 一个字符格代表的世界单位
	unitsPerCell float64
}

// NewView 创建终端视图
func NewView(screen tcell.Screen, unitsPerCell float64) *View {
	if unitsPerCell <= 0 {
		unitsPerCell = 10
	}
	return &View{screen: screen, unitsPerCell: unitsPerCell}
}

// Camera 返回以玩家为中心、覆盖除状态栏外全部区域的摄像机
func (v *View) Camera(s *session.Session) utils.Camera {
	w, h := v.screen.Size()
	cam := utils.Camera{
		ScreenW: float64(w),
		ScreenH: float64(h - statusRows),
		Scale:   1 / v.unitsPerCell,
	}
	if _, pos, ok := s.Player(); ok {
		cam.Center = pos
	}
	return cam
}

// Draw 绘制一帧
func (v *View) Draw(s *session.Session) {
	v.screen.Clear()
	cam := v.Camera(s)
	em := s.EntityManager()

	for _, id := range ecs.GetEntitiesWith1[*components.ArcTrailComponent](em) {
		trail, _ := ecs.GetComponent[*components.ArcTrailComponent](em, id)
		style := arcStyle
		if trail.Primary {
			style = primaryArcStyle
		}
		v.drawLine(cam, utils.Vec2{X: trail.FromX, Y: trail.FromY}, utils.Vec2{X: trail.ToX, Y: trail.ToY}, style)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		race := types.RaceUndead
		if info, ok := ecs.GetComponent[*components.EnemyTypeComponent](em, id); ok {
			race = info.Race
		}
		v.plot(cam, pos.Vec(), raceGlyphs[race], raceStyles[race])
	}

	if _, pos, ok := s.Player(); ok {
		v.plot(cam, pos, playerGlyph, playerStyle)
	}

	v.drawStatus(s)
	v.screen.Show()
}

// plot 在世界坐标对应的格子上绘制一个字符，超出屏幕时忽略
func (v *View) plot(cam utils.Camera, world utils.Vec2, r rune, style tcell.Style) {
	sx, sy := cam.WorldToScreen(world)
	if !cam.Visible(sx, sy) {
		return
	}
	v.screen.SetContent(int(sx), int(sy)+statusRows, r, nil, style)
}

// drawLine 以格子为步长绘制线段
func (v *View) drawLine(cam utils.Camera, from, to utils.Vec2, style tcell.Style) {
	x0, y0 := cam.WorldToScreen(from)
	x1, y1 := cam.WorldToScreen(to)
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		sx := x0 + (x1-x0)*t
		sy := y0 + (y1-y0)*t
		if cam.Visible(sx, sy) {
			v.screen.SetContent(int(sx), int(sy)+statusRows, arcGlyph, nil, style)
		}
	}
}

// drawStatus 在第一行绘制状态栏
func (v *View) drawStatus(s *session.Session) {
	w, _ := v.screen.Size()
	player, _, _ := s.Player()
	line := fmt.Sprintf(" %s  HP %.0f  Lv %d  XP %.1f  Score %d  Enemies %d ",
		FormatClock(s.Elapsed()), player.Health, player.Level, player.Experience, player.Score, s.EnemyCount())
	style := statusStyle
	if s.GameOver() {
		line += " GAME OVER (r: restart, q: quit) "
		style = gameOverStyle
	}
	v.drawText(0, 0, w, line, style)
}

// drawText 从 (x, y) 开始绘制文字，超出 maxWidth 截断
func (v *View) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		v.screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}

// FormatClock 把秒数格式化为 "MM:SS"
func FormatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
