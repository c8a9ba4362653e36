// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/session"
	"github.com/gonewx/gauntlet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 960
	ScreenHeight = 640
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataDir 配置目录，为空时使用 "data"（优先读取嵌入资源）
	DataDir string
	// Seed 随机种子，决定敌人出生位置
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	bundle  *config.Bundle
	seed    int64
	verbose bool

	session *session.Session
	camera  utils.Camera
	paused  bool

	touchControls bool
	touchIDs      []ebiten.TouchID

	// 最近一个 tick 的统计，用于 HUD
	lastSpawns, lastHits, kills int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，如需读取嵌入配置，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	bundle, err := config.LoadBundle(dataDir)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d races, %d spawn directives (cycle %.0fs)",
		len(bundle.Stats.Races), len(bundle.Schedule.EnemySpawns), bundle.Schedule.CycleLength)

	a := &App{
		bundle:  bundle,
		seed:    cfg.Seed,
		verbose: cfg.Verbose,
		camera:  utils.Camera{ScreenW: ScreenWidth, ScreenH: ScreenHeight, Scale: 1},

		touchControls: utils.IsMobile(),
	}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

// restart 开始新的一局
func (a *App) restart() error {
	s, err := session.New(session.Options{
		Stats:    a.bundle.Stats,
		Schedule: a.bundle.Schedule,
		Gameplay: a.bundle.Gameplay,
		Rand:     rand.New(rand.NewSource(a.seed)),
	})
	if err != nil {
		return fmt.Errorf("创建战斗失败: %w", err)
	}
	a.session = s
	a.paused = false
	a.kills = 0
	log.Printf("[App] New session started (seed=%d)", a.seed)
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	if a.session.GameOver() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return a.restart()
	}
	if a.paused {
		return nil
	}

	in := a.readInput()
	report, err := a.session.Tick(1.0/float64(ebiten.TPS()), in)
	if err != nil {
		// 内容配置错误，终止游戏
		return fmt.Errorf("战斗核心错误: %w", err)
	}
	a.lastSpawns = len(report.Spawns)
	a.lastHits = len(report.Damages)
	a.kills += len(report.Deaths)

	if _, pos, ok := a.session.Player(); ok {
		a.camera.Center = pos
	}
	return nil
}

// readInput 采集键盘与鼠标输入，光标转换为世界坐标
func (a *App) readInput() session.Input {
	var in session.Input
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY--
	}

	cx, cy := ebiten.CursorPosition()
	if a.camera.Visible(float64(cx), float64(cy)) {
		cursor := a.camera.ScreenToWorld(float64(cx), float64(cy))
		in.Cursor = &cursor
	}
	in.FirePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)

	if a.touchControls {
		a.readTouches(&in)
	}
	return in
}

// readTouches 触屏操作：左侧三分之一屏幕作为移动摇杆，其余区域的触点瞄准并射击
func (a *App) readTouches(in *session.Input) {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		if tx < ScreenWidth/3 {
			// 摇杆方向 = 触点相对屏幕中心的方向
			dir := a.camera.ScreenToWorld(float64(tx), float64(ty)).Sub(a.camera.Center)
			in.MoveX, in.MoveY = dir.X, dir.Y
			continue
		}
		cursor := a.camera.ScreenToWorld(float64(tx), float64(ty))
		in.Cursor = &cursor
		in.FirePressed = true
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	drawWorld(screen, a.session.EntityManager(), a.camera)
	a.drawHUD(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Session 返回当前这一局
func (a *App) Session() *session.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
