package run

import (
	"time"

	"go.uber.org/zap"

	"github.com/John-Robertt/rawsync/internal/app/planner"
	"github.com/John-Robertt/rawsync/internal/config"
	"github.com/John-Robertt/rawsync/internal/domain"
	"github.com/John-Robertt/rawsync/internal/infra/fsx"
	"github.com/John-Robertt/rawsync/internal/logging"
	"github.com/John-Robertt/rawsync/internal/scan"
)

// 通过可替换的函数指针，让测试能稳定模拟改名失败。
var renameNoReplace = fsx.RenameNoReplace

// Execute 对 eff.Dir 执行一次完整的配对与改名，返回 RunReport 与致命错误（若有）。
//
// 流程（单次线性遍历，无并发）：
// 1) 一次读目录得到 RAW/JPG 两个有序列表
// 2) 数量不一致：count_mismatch，不做任何改名
// 3) 按位置配对，stem 已一致的跳过（因此重复运行是幂等的）
// 4) 目标已存在：默认跳过并告警；Strict 时 target_exists 中止
// 5) 其他改名失败：rename_failed 中止；已完成的改名不回滚
//
// 出错时返回的 RunReport 仍包含中止前已处理的配对。
func Execute(eff config.EffectiveConfig, log *zap.Logger, obs Observer) (domain.RunReport, error) {
	log = logging.OrNop(log)

	rr := domain.RunReport{
		Dir:       eff.Dir,
		Strict:    eff.Strict,
		StartedAt: time.Now().UTC(),
		Items:     []domain.ItemResult{},
	}
	finish := func(err error) (domain.RunReport, error) {
		rr.FinishedAt = time.Now().UTC()
		rr.Fail(err)
		rr.Finalize()
		return rr, err
	}

	if obs != nil {
		obs.OnStart(eff)
	}

	scanStarted := time.Now()
	raw, jpg, err := scan.Siblings(eff.Dir)
	if err != nil {
		return finish(err)
	}
	rr.RawCount, rr.JPGCount = len(raw), len(jpg)
	log.Debug("scan done",
		zap.String("dir", eff.Dir),
		zap.Int("raw", len(raw)),
		zap.Int("jpg", len(jpg)),
		zap.Duration("took", time.Since(scanStarted)),
	)
	if obs != nil {
		obs.OnScanDone(len(raw), len(jpg), time.Since(scanStarted))
	}

	plans, err := planner.Plan(raw, jpg)
	if err != nil {
		return finish(err)
	}

	for i, p := range plans {
		res, err := execOne(p, eff.Strict, log)
		rr.Items = append(rr.Items, res)
		if obs != nil {
			obs.OnPairDone(i+1, len(plans), res)
		}
		if err != nil {
			return finish(err)
		}
	}

	return finish(nil)
}

func execOne(p domain.RenamePlan, strict bool, log *zap.Logger) (domain.ItemResult, error) {
	res := domain.ItemResult{Raw: p.Raw, JPG: p.JPG, Dst: p.Dst}

	switch p.Action {
	case domain.ActionUnchanged:
		res.Status = domain.StatusUnchanged
		return res, nil
	case domain.ActionNoExt:
		res.Status = domain.StatusSkipped
		res.ErrorMsg = "JPG 没有扩展名，跳过"
		log.Debug("jpg has no extension, skipped", zap.String("raw", p.Raw), zap.String("jpg", p.JPG))
		return res, nil
	}

	err := renameNoReplace(p.Raw, p.Dst)
	if err == nil {
		res.Status = domain.StatusRenamed
		log.Info("renamed", zap.String("raw", p.Raw), zap.String("dst", p.Dst))
		return res, nil
	}

	if fsx.IsTargetExists(err) {
		derr := &domain.Error{Code: domain.ErrCodeTargetExists, Path: p.Raw, Dst: p.Dst, Err: err}
		res.ErrorCode = derr.Code
		res.ErrorMsg = derr.Error()
		if strict {
			res.Status = domain.StatusFailed
			return res, derr
		}
		res.Status = domain.StatusSkipped
		log.Warn("target exists, not overwriting", zap.String("raw", p.Raw), zap.String("dst", p.Dst))
		return res, nil
	}

	derr := &domain.Error{Code: domain.ErrCodeRenameFailed, Path: p.Raw, Dst: p.Dst, Err: err}
	res.Status = domain.StatusFailed
	res.ErrorCode = derr.Code
	res.ErrorMsg = derr.Error()
	if fsx.IsCrossDevice(err) {
		log.Error("cross-device rename refused", zap.String("raw", p.Raw), zap.String("dst", p.Dst))
	}
	return res, derr
}
