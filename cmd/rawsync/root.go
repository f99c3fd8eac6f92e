package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/John-Robertt/rawsync/internal/app/run"
	"github.com/John-Robertt/rawsync/internal/config"
	"github.com/John-Robertt/rawsync/internal/domain"
	"github.com/John-Robertt/rawsync/internal/infra/fsx"
	"github.com/John-Robertt/rawsync/internal/logging"
)

// usageError 标记参数层面的错误（会额外提示 --help）。
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cli config.CLIArgs

	cmd := &cobra.Command{
		Use:   "rawsync <dir-name>",
		Short: "按 JPG 的新名字重命名同目录下的 RAW 文件",
		Long: `按 JPG 的新名字重命名同目录下的 RAW 文件。

照片管理工具筛选/评级时只改了 JPG 的名字，RAW 仍是相机原名。
rawsync 把目录中的 RAW（raw/raf/nef）与 JPG（jpg/jpeg）各自按文件名排序，
按位置一一配对，再把 RAW 改名为对应 JPG 的名字（保留 RAW 扩展名）。

注意：配对只依赖排序位置。两类文件数量不一致时直接失败、不做任何改名；
数量一致但顺序错位的情况无法被发现。
已存在的目标文件永远不会被覆盖：默认跳过该配对并告警，--strict 时中止。
有配对被跳过时，再次运行可能按新的排序继续改名，不保证是空操作。`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.Dir = args[0]
			return runSync(cli, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	f := cmd.Flags()
	f.BoolVar(&cli.Strict, "strict", false, "目标文件已存在时中止整个运行（默认：跳过该配对并告警）")
	f.StringVar(&cli.Report, "report", "", `把运行报告（JSON）写到文件；"-" 表示 stdout`)
	f.BoolVarP(&cli.Verbose, "verbose", "V", false, "输出调试日志")
	f.BoolVar(&cli.NoProgress, "no-progress", false, "不显示进度条")

	return cmd
}

func runSync(cli config.CLIArgs, stdout, stderr io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("读取当前目录失败：%w", err)
	}

	eff, err := config.LoadEffective(cwd, cli)
	if err != nil {
		if domain.Code(err) == domain.ErrCodeConfigInvalid {
			return &usageError{err: err}
		}
		return err
	}

	log := logging.NewWithWriter(stderr, eff.Verbose)
	defer func() { _ = log.Sync() }()

	var obs run.Observer
	var bar *progressBar
	if eff.Progress && isTerminal(stderr) {
		bar = newProgressBar(stderr)
		obs = bar
	}

	rr, runErr := run.Execute(eff, log, obs)
	if bar != nil {
		bar.Wait()
	}

	if eff.ReportPath != "" {
		if err := writeReport(eff.ReportPath, rr, stdout); err != nil {
			log.Error("write report failed", zap.String("path", eff.ReportPath), zap.Error(err))
			if runErr == nil {
				return fmt.Errorf("写入报告失败：%w", err)
			}
		}
	}

	fmt.Fprintln(stderr, formatSummary(rr))
	return runErr
}

func writeReport(path string, rr domain.RunReport, stdout io.Writer) error {
	b, err := json.MarshalIndent(rr, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if path == config.ReportStdout {
		_, err := stdout.Write(b)
		return err
	}
	return fsx.WriteFileAtomic(filepath.Dir(path), filepath.Base(path), b)
}

func formatSummary(rr domain.RunReport) string {
	s := fmt.Sprintf("完成：raw=%d jpg=%d renamed=%d unchanged=%d skipped=%d failed=%d",
		rr.RawCount, rr.JPGCount,
		rr.Summary.Renamed, rr.Summary.Unchanged, rr.Summary.Skipped, rr.Summary.Failed,
	)
	if rr.ErrorCode != "" {
		s += " error=" + rr.ErrorCode
	}
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logging.IsTerminal(f)
}
