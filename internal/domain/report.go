package domain

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
)

const (
	StatusRenamed   = "renamed"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// RunReport 是一次运行的结果（--report 输出的结构）。
//
// 致命错误时 Items 只包含中止前已处理的配对；已完成的改名不会回滚。
type RunReport struct {
	Dir    string `json:"dir"`
	Strict bool   `json:"strict"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	RawCount int `json:"raw_count"`
	JPGCount int `json:"jpg_count"`

	Summary ReportSummary `json:"summary"`
	Items   []ItemResult  `json:"items"`

	ErrorCode string `json:"error_code,omitempty"`
	ErrorMsg  string `json:"error_msg,omitempty"`
}

type ReportSummary struct {
	Renamed   int `json:"renamed"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type ItemResult struct {
	Raw string `json:"raw"`
	JPG string `json:"jpg"`
	Dst string `json:"dst,omitempty"`

	Status    string `json:"status"`
	ErrorCode string `json:"error_code,omitempty"`
	ErrorMsg  string `json:"error_msg,omitempty"`
}

// Finalize 做两件事：
// 1) 时间统一为 UTC（确保 JSON 为 RFC3339 且后缀 Z）
// 2) summary 由 items 计算得出
//
// items 保持配对顺序，不重新排序。
func (r *RunReport) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	byStatus := func(status string) int {
		return lo.CountBy(r.Items, func(it ItemResult) bool { return it.Status == status })
	}
	r.Summary = ReportSummary{
		Renamed:   byStatus(StatusRenamed),
		Unchanged: byStatus(StatusUnchanged),
		Skipped:   byStatus(StatusSkipped),
		Failed:    byStatus(StatusFailed),
	}
}

// Fail 把致命错误记录到报告（error_code 取自 *Error）。
func (r *RunReport) Fail(err error) {
	if err == nil {
		return
	}
	r.ErrorCode = Code(err)
	r.ErrorMsg = err.Error()
}

// MarshalJSON 保证 items 为 [] 而不是 null。
func (r RunReport) MarshalJSON() ([]byte, error) {
	type Alias RunReport
	a := Alias(r)
	if a.Items == nil {
		a.Items = []ItemResult{}
	}
	return json.Marshal(a)
}
