package app

import (
	"fmt"
	"image/color"

	"github.com/gonewx/gauntlet/pkg/components"
	"github.com/gonewx/gauntlet/pkg/ecs"
	"github.com/gonewx/gauntlet/pkg/types"
	"github.com/gonewx/gauntlet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 20, B: 32, A: 255}
	playerColor     = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	arcColor        = color.RGBA{R: 200, G: 230, B: 255, A: 255}
	primaryArcColor = color.RGBA{R: 255, G: 255, B: 160, A: 255}
	raceColors      = map[types.EnemyRace]color.RGBA{
		types.RaceUndead: {R: 150, G: 190, B: 140, A: 255},
		types.RaceOrc:    {R: 90, G: 160, B: 60, A: 255},
		types.RaceDemon:  {R: 220, G: 60, B: 60, A: 255},
	}
)

const (
	playerRadius = 10
	enemyRadius  = 8
)

// drawWorld 以摄像机为中心绘制弧线、敌人和玩家
func drawWorld(screen *ebiten.Image, em *ecs.EntityManager, camera utils.Camera) {
	screen.Fill(backgroundColor)

	for _, id := range ecs.GetEntitiesWith1[*components.ArcTrailComponent](em) {
		trail, _ := ecs.GetComponent[*components.ArcTrailComponent](em, id)
		x0, y0 := camera.WorldToScreen(utils.Vec2{X: trail.FromX, Y: trail.FromY})
		x1, y1 := camera.WorldToScreen(utils.Vec2{X: trail.ToX, Y: trail.ToY})
		clr, width := arcColor, float32(1.5)
		if trail.Primary {
			clr, width = primaryArcColor, 2.5
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := camera.WorldToScreen(pos.Vec())
		if !camera.Visible(sx, sy) {
			continue
		}
		clr := raceColors[types.RaceUndead]
		if info, ok := ecs.GetComponent[*components.EnemyTypeComponent](em, id); ok {
			clr = raceColors[info.Race]
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), enemyRadius, clr, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sx, sy := camera.WorldToScreen(pos.Vec())
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), playerRadius, playerColor, true)
	}
}

// drawHUD 绘制状态文字
func (a *App) drawHUD(screen *ebiten.Image) {
	player, _, _ := a.session.Player()
	state := a.session.State()
	cycle := 0
	if state.CycleLength > 0 {
		cycle = int(state.Elapsed / state.CycleLength)
	}

	msg := fmt.Sprintf("Time %s  Cycle %d  Enemies %d\nHP %.0f  Level %d  XP %.1f  Score %d\nSpawned %d  Hits %d  Kills %d  TPS %.0f",
		formatClock(state.Elapsed), cycle, a.session.EnemyCount(),
		player.Health, player.Level, player.Experience, player.Score,
		a.lastSpawns, a.lastHits, a.kills, ebiten.ActualTPS())
	if a.touchControls {
		msg += "\nLeft third: move  Elsewhere: aim & fire"
	} else {
		msg += "\nWASD: move  Mouse/Space: fire  P: pause  F11: fullscreen"
	}
	if a.paused {
		msg += "\n[PAUSED] P to resume"
	}
	if a.session.GameOver() {
		msg += "\nGAME OVER - press R to restart"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// formatClock 把秒数格式化为 "MM:SS"，与刷怪表的时间格式一致
func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
