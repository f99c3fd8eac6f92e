package run

import (
	"time"

	"github.com/John-Robertt/rawsync/internal/config"
	"github.com/John-Robertt/rawsync/internal/domain"
)

// Observer 用于把“运行进度/条目结果”从核心执行流程中解耦出来。
//
// 约束：run 包只负责发事件，不做任何终端输出（输出由 CLI 决定）。
// 事件在调用 Execute 的 goroutine 上同步触发。
type Observer interface {
	// OnStart 在 Execute 开始时调用。
	OnStart(eff config.EffectiveConfig)
	// OnScanDone 在扫描完成且数量校验之前调用。
	OnScanDone(rawCount, jpgCount int, dur time.Duration)
	// OnPairDone 在每个配对处理完成时调用；idx 从 1 开始。
	OnPairDone(idx, total int, res domain.ItemResult)
}
