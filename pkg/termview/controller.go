package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/gauntlet/pkg/session"
	"github.com/gonewx/gauntlet/pkg/utils"
)

// holdDuration 移动键按下后视为按住的时间（秒）
const holdDuration = 0.15

// aimDistance 没有鼠标时，沿朝向前方多远处作为瞄准点
const aimDistance = 200

// Controller 把终端事件转换为 session.Input
type Controller struct {
	moveX, moveY float64
	moveTTL      float64
	facing       utils.Vec2

	mouseX, mouseY int
	hasMouse       bool
	mouseDown      bool
	autoFire       bool

	quit    bool
	restart bool
}

// NewController 创建输入控制器，初始朝向 +X
func NewController() *Controller {
	return &Controller{facing: utils.Vec2{X: 1}}
}

// HandleEvent 处理一个终端事件
//
// 按键：
//   - WASD / 方向键: 移动
//   - 空格: 切换自动射击（朝最近一次移动方向）
//   - r: 本局结束后重新开始
//   - q / Esc / Ctrl+C: 退出
//
// 鼠标左键按住时朝鼠标位置射击。
func (c *Controller) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			c.quit = true
		case tcell.KeyUp:
			c.move(0, 1)
		case tcell.KeyDown:
			c.move(0, -1)
		case tcell.KeyLeft:
			c.move(-1, 0)
		case tcell.KeyRight:
			c.move(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'W':
				c.move(0, 1)
			case 's', 'S':
				c.move(0, -1)
			case 'a', 'A':
				c.move(-1, 0)
			case 'd', 'D':
				c.move(1, 0)
			case ' ':
				c.autoFire = !c.autoFire
			case 'r', 'R':
				c.restart = true
			case 'q', 'Q':
				c.quit = true
			}
		}

	case *tcell.EventMouse:
		c.mouseX, c.mouseY = ev.Position()
		c.hasMouse = true
		c.mouseDown = ev.Buttons()&tcell.Button1 != 0
	}
}

// move 记录移动意图并更新朝向
func (c *Controller) move(x, y float64) {
	c.moveX, c.moveY = x, y
	c.moveTTL = holdDuration
	c.facing = utils.Vec2{X: x, Y: y}
}

// Input 生成本 tick 的战斗输入
//
// 参数:
//   - dt: 本 tick 时长，用于让移动意图过期
//   - cam: 当前摄像机，用于把鼠标格子坐标转换为世界坐标
//   - player: 玩家世界坐标
func (c *Controller) Input(dt float64, cam utils.Camera, player utils.Vec2) session.Input {
	var in session.Input
	if c.moveTTL > 0 {
		in.MoveX, in.MoveY = c.moveX, c.moveY
		c.moveTTL -= dt
	}

	switch {
	case c.hasMouse && c.mouseDown:
		cursor := cam.ScreenToWorld(float64(c.mouseX), float64(c.mouseY-statusRows))
		in.Cursor = &cursor
		in.FirePressed = true
	case c.autoFire:
		cursor := player.Add(c.facing.Scale(aimDistance))
		in.Cursor = &cursor
		in.FirePressed = true
	}
	return in
}

// Quit 检查是否请求退出
func (c *Controller) Quit() bool {
	return c.quit
}

// TakeRestart 返回并清除重新开始请求
func (c *Controller) TakeRestart() bool {
	r := c.restart
	c.restart = false
	return r
}
