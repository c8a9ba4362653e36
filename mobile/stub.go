//go:build !mobile

// 桌面与终端构建下 mobile 包只剩这个文件，
// gomobile 绑定代码仅在 -tags mobile 时参与编译。
package mobile

// Dummy 让包在没有 mobile 标签时仍有导出符号
func Dummy() {}
