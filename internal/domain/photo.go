package domain

import (
	"strings"

	"github.com/samber/lo"
)

// ExtensionClass 是一组固定的扩展名（不含前导 '.'，大小写敏感）。
//
// 扩展名集合是静态配置：运行时不可修改，也不暴露给 CLI。
type ExtensionClass struct {
	Name string
	Exts []string
}

var (
	// RawClass 是相机原始文件。
	RawClass = ExtensionClass{Name: "raw", Exts: []string{"raw", "raf", "nef"}}
	// JPGClass 是照片管理工具导出/改名后的 JPG。
	JPGClass = ExtensionClass{Name: "jpg", Exts: []string{"jpg", "jpeg"}}
)

// Match 判断文件名（不含目录）的扩展名是否属于该类。
func (c ExtensionClass) Match(name string) bool {
	_, ext, ok := SplitName(name)
	if !ok {
		return false
	}
	return lo.Contains(c.Exts, ext)
}

// SplitName 把文件名拆成 stem 与扩展名（扩展名不含 '.'）。
//
// 规则：
// - 在最后一个 '.' 处拆分；"a.b.raf" -> ("a.b", "raf")
// - 没有 '.'，或唯一的 '.' 是首字符（".raw" 这类隐藏文件）：没有扩展名，ok=false
// - "foo." 的扩展名是空串，ok=true
func SplitName(name string) (stem, ext string, ok bool) {
	if name == ".." {
		return name, "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

// Stem 返回文件名去掉扩展名后的部分。
func Stem(name string) string {
	stem, _, _ := SplitName(name)
	return stem
}
