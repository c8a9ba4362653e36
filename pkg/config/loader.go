package config

import (
	"os"

	"github.com/gonewx/gauntlet/pkg/embedded"
)

// readConfigFile 读取配置文件
//
// embedded 包已初始化且文件存在于嵌入文件系统时读取嵌入版本，
// 否则回退到操作系统文件系统（开发期热修改配置、测试中使用临时目录）。
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// configFileExists 检查配置文件在嵌入资源或操作系统文件系统中是否存在
func configFileExists(path string) bool {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return true
	}
	_, err := os.Stat(path)
	return err == nil
}
