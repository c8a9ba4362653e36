package main

import (
	"flag"
	"log"

	"github.com/gonewx/gauntlet/pkg/app"
	"github.com/gonewx/gauntlet/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	dataDir = flag.String("data", "data", "配置目录（data 时优先读取嵌入资源）")
	seed    = flag.Int64("seed", 1, "随机种子")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		DataDir: *dataDir,
		Seed:    *seed,
	})
	if err != nil {
		log.Fatalf("启动失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Eternal Gauntlet")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 游戏循环，直到窗口关闭或战斗核心返回错误
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
