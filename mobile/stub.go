//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建时只编译本文件；绑定入口 mobile.go 与资源嵌入 embed.go
// 仅在 -tags mobile 时参与编译。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
