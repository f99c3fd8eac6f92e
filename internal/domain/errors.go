package domain

import (
	"errors"
	"fmt"
)

const (
	ErrCodeDirUnreadable   = "dir_unreadable"
	ErrCodeEntryUnreadable = "entry_unreadable"
	ErrCodeCountMismatch   = "count_mismatch"
	ErrCodeTargetExists    = "target_exists"
	ErrCodeRenameFailed    = "rename_failed"
	ErrCodeConfigInvalid   = "config_invalid"
)

// Error 是配置、扫描与改名阶段共用的结构化错误（带 error_code）。
//
// 字段按 Code 取用：
// - config_invalid：Err（Path 可选）
// - dir_unreadable / entry_unreadable：Path
// - count_mismatch：RawCount / JPGCount
// - target_exists / rename_failed：Path（RAW 源）+ Dst
type Error struct {
	Code string
	Path string
	Dst  string

	RawCount int
	JPGCount int

	Err error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeDirUnreadable:
		return fmt.Sprintf("%s：无法读取目录 %q：%v", e.Code, e.Path, e.Err)
	case ErrCodeEntryUnreadable:
		return fmt.Sprintf("%s：无法读取目录项 %q：%v", e.Code, e.Path, e.Err)
	case ErrCodeCountMismatch:
		return fmt.Sprintf("%s：RAW 文件数与 JPG 文件数不一致：%d vs. %d", e.Code, e.RawCount, e.JPGCount)
	case ErrCodeTargetExists:
		return fmt.Sprintf("%s：%q 已存在，不覆盖（源 %q）", e.Code, e.Dst, e.Path)
	case ErrCodeRenameFailed:
		return fmt.Sprintf("%s：%q -> %q：%v", e.Code, e.Path, e.Dst, e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
