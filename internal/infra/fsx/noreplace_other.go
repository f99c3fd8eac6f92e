//go:build !linux

package fsx

// 非 Linux：只依赖 RenameNoReplace 里的 Lstat 检查。
var renameNoReplaceFunc = func(src, dst string) error { return renameFunc(src, dst) }
