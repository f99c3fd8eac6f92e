package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/rawsync/internal/domain"
)

const (
	// ErrCodeInvalid 表示 CLI 参数不合法（例如目录参数为空）。
	ErrCodeInvalid = domain.ErrCodeConfigInvalid
	// ErrCodeDirUnreadable 表示目标目录不存在、不是目录或无法访问。
	ErrCodeDirUnreadable = domain.ErrCodeDirUnreadable
)

// ReportStdout 是 --report 的特殊值：把报告写到 stdout。
const ReportStdout = "-"

// CLIArgs 是 CLI 暴露的全部入口。本工具没有配置文件，也不读环境变量。
type CLIArgs struct {
	Dir string

	Strict     bool
	Verbose    bool
	Report     string
	NoProgress bool
}

// EffectiveConfig 是规范化后的最终配置（实现层直接消费，不再做二次判断）。
type EffectiveConfig struct {
	// Dir 是 clean + absolute 的目标目录，已确认存在且是目录。
	Dir string

	// Strict=true：目标已存在时中止整个运行；false：跳过该配对并告警。
	Strict bool

	Verbose bool

	// ReportPath 为空表示不输出报告；"-" 表示 stdout；否则是 clean + absolute 的文件路径。
	ReportPath string

	Progress bool
}

// LoadEffective 以 cwd 为基准解析 CLI 参数，并校验目标目录。
// 错误统一是 *domain.Error（config_invalid / dir_unreadable），用 domain.Code 取 error_code。
//
// 目录校验只做 Stat：读权限等问题留给扫描阶段（报 dir_unreadable / entry_unreadable）。
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	if strings.TrimSpace(cli.Dir) == "" {
		return EffectiveConfig{}, &domain.Error{Code: ErrCodeInvalid, Err: errors.New("目录参数不能为空")}
	}

	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &domain.Error{Code: ErrCodeInvalid, Path: cwd, Err: err}
	}

	dir := absCleanFrom(cwdAbs, cli.Dir)
	fi, err := os.Stat(dir)
	if err != nil {
		return EffectiveConfig{}, &domain.Error{Code: ErrCodeDirUnreadable, Path: dir, Err: err}
	}
	if !fi.IsDir() {
		return EffectiveConfig{}, &domain.Error{Code: ErrCodeDirUnreadable, Path: dir, Err: errors.New("不是目录")}
	}

	reportPath := strings.TrimSpace(cli.Report)
	if reportPath != "" && reportPath != ReportStdout {
		reportPath = absCleanFrom(cwdAbs, reportPath)
		if reportPath == dir {
			return EffectiveConfig{}, &domain.Error{Code: ErrCodeInvalid, Path: reportPath, Err: errors.New("--report 不能指向目标目录本身")}
		}
	}

	return EffectiveConfig{
		Dir:        dir,
		Strict:     cli.Strict,
		Verbose:    cli.Verbose,
		ReportPath: reportPath,
		Progress:   !cli.NoProgress,
	}, nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
// - p 若已是绝对路径：直接 Clean
// - p 若是相对路径：Join(base, p) 后 Clean
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
