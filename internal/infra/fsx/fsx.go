package fsx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// 通过可替换的函数指针，让测试能稳定模拟 EXDEV 等错误。
var renameFunc = os.Rename

// TargetExistsError 表示目标路径已被占用（文件、目录或其他类型），拒绝覆盖。
// 上层可把它映射为 error_code=target_exists。
type TargetExistsError struct {
	Path string
	Kind string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("目标已存在：%q（%s），不覆盖", e.Path, e.Kind)
}

// Is 让 errors.Is(err, fs.ErrExist) 成立。
func (e *TargetExistsError) Is(target error) bool { return target == fs.ErrExist }

// IsTargetExists 判断 err 是否为 TargetExistsError。
func IsTargetExists(err error) bool {
	var e *TargetExistsError
	return errors.As(err, &e)
}

// CrossDeviceError 表示跨盘（EXDEV）导致的 rename 失败。
// 改名只发生在同一目录内，出现 EXDEV 说明环境异常；不做 copy+delete。
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("跨盘移动失败（EXDEV）：%q -> %q；本工具不会隐式 copy+delete：%v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice 判断 err 是否为跨盘（EXDEV）错误。
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

// Rename 封装 os.Rename，并把 EXDEV 显式标记为 CrossDeviceError。
// 目标存在时按平台语义覆盖；不允许覆盖的场景请用 RenameNoReplace。
func Rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// RenameNoReplace 把 src 改名为 dst；dst 上已有任何目录项时返回 TargetExistsError，src/dst 都不动。
//
// - 先 Lstat 检查（覆盖所有平台，给出目标类型）
// - Linux 上再用 renameat2(RENAME_NOREPLACE)，消除检查与改名之间的竞态
func RenameNoReplace(src, dst string) error {
	if err := checkFree(dst); err != nil {
		return err
	}
	if err := renameNoReplaceFunc(src, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &TargetExistsError{Path: dst, Kind: "file"}
		}
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

func checkFree(dst string) error {
	fi, err := os.Lstat(dst)
	if err == nil {
		kind := "file"
		switch {
		case fi.IsDir():
			kind = "dir"
		case !fi.Mode().IsRegular():
			kind = fi.Mode().Type().String()
		}
		return &TargetExistsError{Path: dst, Kind: kind}
	}
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// WriteFileAtomic 在 dir 下原子写入 name（临时文件 + rename），目标已存在则覆盖。
//
// - 临时文件必须与目标文件在同目录，以保证 rename 的原子性
// - 对临时文件做 Sync；目录 Sync 采用 best-effort
func WriteFileAtomic(dir, name string, data []byte) error {
	return writeFileAtomic(dir, name, data, 0o644)
}

func writeFileAtomic(dir, name string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	dst := filepath.Join(dir, name)

	// 前缀带 '.'，避免临时文件出现在照片工具的视图里。
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := writeAll(tmp, data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := Rename(tmpName, dst); err != nil {
		return err
	}

	_ = syncDirBestEffort(dir)
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

func syncDirBestEffort(dir string) error {
	// Windows 上目录 Sync 的语义与支持情况不稳定，这里直接跳过。
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
