package scan

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/John-Robertt/rawsync/internal/domain"
)

var errNotDir = errors.New("不是目录")

// 通过可替换的函数指针，让测试能稳定模拟“读目录中途失败”。
var readDirNames = func(f *os.File, n int) ([]string, error) { return f.Readdirnames(n) }

// Files 返回 dir 下（不递归）扩展名属于 class 的普通文件路径，按完整路径字典序升序。
//
// 规则（硬约束）：
// - dir 不存在/不是目录/无法打开：dir_unreadable
// - 读取目录列表中途失败：entry_unreadable（整个扫描失败，不静默丢弃条目）
// - 扩展名匹配的候选会做 Stat（跟随 symlink）；Stat 失败同样是 entry_unreadable
// - 目录、非普通文件、扩展名不匹配：排除，不报错
func Files(dir string, class domain.ExtensionClass) ([]string, error) {
	l, err := list(dir, class)
	if err != nil {
		return nil, err
	}
	return l[0], nil
}

// Siblings 一次读目录，同时得到 RAW 与 JPG 两个有序列表。
func Siblings(dir string) (raw, jpg []string, err error) {
	l, err := list(dir, domain.RawClass, domain.JPGClass)
	if err != nil {
		return nil, nil, err
	}
	return l[0], l[1], nil
}

func list(dir string, classes ...domain.ExtensionClass) ([][]string, error) {
	names, err := readNames(dir)
	if err != nil {
		return nil, err
	}

	out := make([][]string, len(classes))
	for i := range out {
		out[i] = make([]string, 0, len(names)/2)
	}

	for _, name := range names {
		idx := classIndex(name, classes)
		if idx < 0 {
			continue
		}

		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			return nil, &domain.Error{Code: domain.ErrCodeEntryUnreadable, Path: path, Err: err}
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		out[idx] = append(out[idx], path)
	}

	// 同一目录下 Join 得到的完整路径，排序结果与文件名排序一致；按完整路径排序是契约。
	for i := range out {
		sort.Strings(out[i])
	}
	return out, nil
}

func classIndex(name string, classes []domain.ExtensionClass) int {
	for i, c := range classes {
		if c.Match(name) {
			return i
		}
	}
	return -1
}

// readNames 读取目录项名字。打开阶段的失败归为 dir_unreadable，读取阶段的失败归为 entry_unreadable。
func readNames(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, &domain.Error{Code: domain.ErrCodeDirUnreadable, Path: dir, Err: err}
	}
	if !fi.IsDir() {
		return nil, &domain.Error{Code: domain.ErrCodeDirUnreadable, Path: dir, Err: errNotDir}
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, &domain.Error{Code: domain.ErrCodeDirUnreadable, Path: dir, Err: err}
	}
	defer f.Close()

	names, err := readDirNames(f, -1)
	if err != nil {
		return nil, &domain.Error{Code: domain.ErrCodeEntryUnreadable, Path: dir, Err: err}
	}
	return names, nil
}
