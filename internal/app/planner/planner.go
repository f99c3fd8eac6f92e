package planner

import (
	"path/filepath"

	"github.com/samber/lo"

	"github.com/John-Robertt/rawsync/internal/domain"
)

// Plan 把两个已排序列表按位置配对（第 i 个 RAW ↔ 第 i 个 JPG），并为每一对生成决定（不做任何改名）。
//
// 数量不一致时返回 count_mismatch，不生成任何计划。
func Plan(raw, jpg []string) ([]domain.RenamePlan, error) {
	if len(raw) != len(jpg) {
		return nil, &domain.Error{Code: domain.ErrCodeCountMismatch, RawCount: len(raw), JPGCount: len(jpg)}
	}

	pairs := lo.Zip2(raw, jpg)
	plans := make([]domain.RenamePlan, 0, len(pairs))
	for i, p := range pairs {
		plans = append(plans, PlanPair(i, p.A, p.B))
	}
	return plans, nil
}

// PlanPair 决定单个配对：
// - stem 相同：unchanged
// - JPG 没有扩展名：no_ext（没有可采纳的名字）
// - 否则：rename，Dst = RAW 所在目录 + JPG stem + "." + RAW 原扩展名
func PlanPair(idx int, rawPath, jpgPath string) domain.RenamePlan {
	p := domain.RenamePlan{Index: idx, Raw: rawPath, JPG: jpgPath}

	rawStem, rawExt, _ := domain.SplitName(filepath.Base(rawPath))
	jpgStem, _, jpgHasExt := domain.SplitName(filepath.Base(jpgPath))

	switch {
	case rawStem == jpgStem:
		p.Action = domain.ActionUnchanged
	case !jpgHasExt:
		p.Action = domain.ActionNoExt
	default:
		p.Action = domain.ActionRename
		p.Dst = filepath.Join(filepath.Dir(rawPath), jpgStem+"."+rawExt)
	}
	return p
}
