package termview

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/entities"
	"github.com/gonewx/gauntlet/pkg/session"
	"github.com/gonewx/gauntlet/pkg/utils"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	stats, err := config.ParseEnemyStats([]byte(`
undead:
  "1": {health: 10, damage: 1}
`))
	if err != nil {
		t.Fatalf("Failed to parse stats: %v", err)
	}
	schedule, err := config.ParseSpawnSchedule([]byte(`
enemy_spawns:
  - {race: undead, power: "1", count: 1, start_time: "1:00", end_time: "1:10"}
`))
	if err != nil {
		t.Fatalf("Failed to parse schedule: %v", err)
	}
	s, err := session.New(session.Options{Stats: stats, Schedule: schedule, Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return s
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestView_Draw(t *testing.T) {
	s := newTestSession(t)
	if _, err := entities.NewEnemyEntity(s.EntityManager(), entities.EnemySpec{
		Race: "undead", Power: "1", Stats: config.EnemyStats{Health: 10}, X: 50, Y: 0,
	}); err != nil {
		t.Fatalf("Failed to place enemy: %v", err)
	}

	screen := newTestScreen(t, 40, 13)
	view := NewView(screen, 10)
	view.Draw(s)

	// 世界区域 40x12，中心 (20, 6)，加上状态栏偏移 1 行
	if r, _, _, _ := screen.GetContent(20, 7); r != playerGlyph {
		t.Errorf("Expected player glyph at (20,7), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(25, 7); r != 'u' {
		t.Errorf("Expected undead glyph at (25,7), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != '0' {
		t.Errorf("Status line should start with the clock, got %q", r)
	}
}

func TestView_CameraFollowsPlayer(t *testing.T) {
	s := newTestSession(t)
	screen := newTestScreen(t, 40, 13)
	view := NewView(screen, 10)

	for i := 0; i < 20; i++ {
		if _, err := s.Tick(0.05, session.Input{MoveX: 1}); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	_, pos, _ := s.Player()
	cam := view.Camera(s)
	if cam.Center != pos {
		t.Errorf("Camera should follow the player: %+v vs %+v", cam.Center, pos)
	}
	sx, sy := cam.WorldToScreen(pos)
	if sx != 20 || sy != 6 {
		t.Errorf("Player should be at screen center, got (%v,%v)", sx, sy)
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(125.7); got != "02:05" {
		t.Errorf("Expected 02:05, got %s", got)
	}
}

func TestController(t *testing.T) {
	cam := utils.Camera{ScreenW: 40, ScreenH: 12, Scale: 0.5}

	t.Run("移动键在保持时间内有效", func(t *testing.T) {
		c := NewController()
		c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
		in := c.Input(0.1, cam, utils.Vec2{})
		if in.MoveX != 0 || in.MoveY != 1 {
			t.Errorf("Expected move up, got (%v,%v)", in.MoveX, in.MoveY)
		}
		c.Input(0.1, cam, utils.Vec2{})
		if in := c.Input(0.1, cam, utils.Vec2{}); in.MoveY != 0 {
			t.Errorf("Move intent should expire, got %v", in.MoveY)
		}
	})

	t.Run("自动射击朝移动方向", func(t *testing.T) {
		c := NewController()
		c.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
		c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
		in := c.Input(0.01, cam, utils.Vec2{X: 10, Y: 10})
		if !in.FirePressed || in.Cursor == nil {
			t.Fatal("Expected auto fire with cursor")
		}
		if in.Cursor.X != 10-aimDistance || in.Cursor.Y != 10 {
			t.Errorf("Expected aim to the left, got %+v", *in.Cursor)
		}
	})

	t.Run("鼠标左键瞄准", func(t *testing.T) {
		c := NewController()
		c.HandleEvent(tcell.NewEventMouse(30, 7, tcell.Button1, tcell.ModNone))
		in := c.Input(0.01, cam, utils.Vec2{})
		if !in.FirePressed || in.Cursor == nil {
			t.Fatal("Expected fire while mouse button held")
		}
		// (30, 7-1) 相对中心 (20, 6) 偏右 10 格 = 20 世界单位
		if in.Cursor.X != 20 || in.Cursor.Y != 0 {
			t.Errorf("Expected cursor (20,0), got %+v", *in.Cursor)
		}

		c.HandleEvent(tcell.NewEventMouse(30, 7, tcell.ButtonNone, tcell.ModNone))
		if in := c.Input(0.01, cam, utils.Vec2{}); in.FirePressed {
			t.Error("Releasing the button should stop firing")
		}
	})

	t.Run("退出与重新开始", func(t *testing.T) {
		c := NewController()
		c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
		if !c.TakeRestart() || c.TakeRestart() {
			t.Error("Restart request should be consumed once")
		}
		c.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
		if !c.Quit() {
			t.Error("Expected quit on Escape")
		}
	})
}
