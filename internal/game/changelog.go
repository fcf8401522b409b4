package game

type ChangelogEntry struct {
	Version string
	Date    string
	Notes   []string
}

// Changelog is shown on the home screen, newest first.
func Changelog() []ChangelogEntry {
	return []ChangelogEntry{
		{
			Version: "v1.1.1",
			Date:    "2026-02-01",
			Notes: []string{
				"修复负债状态在金钱恰好归零时不消失的问题",
				"竞赛结果弹窗关闭后正确恢复学期进程",
			},
		},
		{
			Version: "v1.1.0",
			Date:    "2026-01-20",
			Notes: []string{
				"新增周末行动点与社团活动",
				"新增 CSP/NOIP 竞赛线与 OI 能力体系",
				"难度数值调整",
			},
		},
		{
			Version: "v1.0.0",
			Date:    "2026-01-03",
			Notes: []string{
				"三月七好可爱",
				"珂朵莉好可爱",
				"风堇好可爱",
				"广告位招租",
			},
		},
	}
}
