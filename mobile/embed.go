//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 不能引用上级目录，构建前需要把配置复制到此目录：
//
//	cp -r data mobile/
//	ebitenmobile bind -target android -tags mobile -o build/android/gauntlet.aar ./mobile
package mobile

import "embed"

//go:embed data/enemies.yaml data/enemy_spawns.yaml data/gameplay.yaml
var dataFS embed.FS
