// gauntlet-term 在终端中运行一局战斗
//
// 使用方法:
//
//	go run ./cmd/gauntlet-term [-data data] [-seed 1] [-cell 20] [-log gauntlet.log]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/gauntlet/pkg/config"
	"github.com/gonewx/gauntlet/pkg/session"
	"github.com/gonewx/gauntlet/pkg/termview"
)

const tickInterval = 50 * time.Millisecond // 20 TPS

var (
	dataDir = flag.String("data", "data", "配置目录")
	seed    = flag.Int64("seed", 1, "随机种子")
	cell    = flag.Float64("cell", 20, "每个字符格代表的世界单位")
	logPath = flag.String("log", "", "日志文件（为空时丢弃日志，终端画面不能被日志打断）")
)

func main() {
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}

	bundle, err := config.LoadBundle(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	runErr := run(screen, bundle)
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Session aborted: %v\n", runErr)
		os.Exit(1)
	}
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func newSession(bundle *config.Bundle) (*session.Session, error) {
	return session.New(session.Options{
		Stats:    bundle.Stats,
		Schedule: bundle.Schedule,
		Gameplay: bundle.Gameplay,
		Rand:     rand.New(rand.NewSource(*seed)),
	})
}

// run 事件读取在独立 goroutine 中进行，战斗 tick 只在主循环中推进
func run(screen tcell.Screen, bundle *config.Bundle) error {
	s, err := newSession(bundle)
	if err != nil {
		return err
	}
	view := termview.NewView(screen, *cell)
	controller := termview.NewController()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := termview.PollEvents(screen, done, 100)

	dt := tickInterval.Seconds()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			controller.HandleEvent(ev)
			if controller.Quit() {
				return nil
			}

		case <-ticker.C:
			if controller.TakeRestart() && s.GameOver() {
				if s, err = newSession(bundle); err != nil {
					return err
				}
			}
			_, pos, _ := s.Player()
			in := controller.Input(dt, view.Camera(s), pos)
			if _, err := s.Tick(dt, in); err != nil {
				return err
			}
			view.Draw(s)
		}
	}
}
