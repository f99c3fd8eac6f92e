package main

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/John-Robertt/rawsync/internal/app/run"
	"github.com/John-Robertt/rawsync/internal/config"
	"github.com/John-Robertt/rawsync/internal/domain"
)

var _ run.Observer = (*progressBar)(nil)

// progressBar 在交互终端（stderr）上显示改名进度。
//
// mpb 容器在扫描完成、确认有配对要处理时才创建；数量不一致时不显示任何进度。
type progressBar struct {
	w io.Writer

	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w}
}

func (pb *progressBar) OnStart(eff config.EffectiveConfig) {}

func (pb *progressBar) OnScanDone(rawCount, jpgCount int, dur time.Duration) {
	if rawCount != jpgCount || rawCount == 0 {
		return
	}

	pb.p = mpb.New(
		mpb.WithOutput(pb.w),
		mpb.WithRefreshRate(120*time.Millisecond),
	)
	name := "pairs"
	pb.bar = pb.p.AddBar(int64(rawCount),
		mpb.PrependDecorators(
			decor.Name(name+" ", decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
		),
	)
}

func (pb *progressBar) OnPairDone(idx, total int, res domain.ItemResult) {
	if pb.bar == nil {
		return
	}
	pb.bar.Increment()
}

// Wait 等待进度条刷新完毕；中途失败时先中止进度条，避免 Wait 永久阻塞。
func (pb *progressBar) Wait() {
	if pb.p == nil {
		return
	}
	if pb.bar != nil && !pb.bar.Completed() {
		pb.bar.Abort(false)
	}
	pb.p.Wait()
}
