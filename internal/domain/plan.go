package domain

const (
	// ActionRename 表示 RAW 需要改名为 JPG 的 stem（保留 RAW 扩展名）。
	ActionRename = "rename"
	// ActionUnchanged 表示两者 stem 已一致，无需处理。
	ActionUnchanged = "unchanged"
	// ActionNoExt 表示 JPG 没有扩展名，无可采纳的名字，跳过。
	ActionNoExt = "no_ext"
)

// RenamePlan 描述一个按位置配对的 (RAW, JPG) 以及对它的决定。
//
// 配对只依赖排序后的位置：第 i 个 RAW 对应第 i 个 JPG。
// 这是一个未经校验的假设（相机计数器与改名后的 JPG 名字恰好同序），
// 数量校验只能发现缺失/多余文件，发现不了错位。
type RenamePlan struct {
	Index  int
	Raw    string
	JPG    string
	Dst    string // 仅 Action==ActionRename 时有值
	Action string
}
