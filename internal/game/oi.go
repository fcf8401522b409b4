package game

// OIProblem is one entry of the contest problem pool. Difficulty lists the
// per-category demand; a problem mostly tests the categories it weights.
type OIProblem struct {
	Name       string
	Level      int
	Difficulty OIStats
}

func OIProblems() []OIProblem {
	return []OIProblem{
		{Name: "book", Level: 1, Difficulty: OIStats{DS: 1, Misc: 1}},
		{Name: "sort", Level: 1, Difficulty: OIStats{DS: 1, Misc: 1}},
		{Name: "sequence", Level: 2, Difficulty: OIStats{DP: 1, DS: 2, Misc: 2}},
		{Name: "tree", Level: 2, Difficulty: OIStats{DS: 2, Graph: 2, Misc: 2}},
		{Name: "path", Level: 3, Difficulty: OIStats{DP: 2, DS: 2, Graph: 3, Misc: 1}},
		{Name: "game", Level: 4, Difficulty: OIStats{DP: 2, DS: 1, Math: 2, Graph: 1, Misc: 3}},
		{Name: "string", Level: 5, Difficulty: OIStats{String: 5, Misc: 2}},
		{Name: "network", Level: 6, Difficulty: OIStats{Graph: 6, Misc: 4}},
		{Name: "structure", Level: 7, Difficulty: OIStats{DS: 5, Misc: 5}},
		{Name: "dp_opt", Level: 8, Difficulty: OIStats{DP: 8, DS: 3, Math: 2, Misc: 4}},
		{Name: "poly", Level: 9, Difficulty: OIStats{Math: 9, Misc: 5}},
		{Name: "adhoc_hard", Level: 10, Difficulty: OIStats{Misc: 10}},
	}
}

// OIExamMax is the CSP/NOIP total: four problems, 100 points each.
const OIExamMax = 400

// GenerateOIExam draws four problems in rising level bands and scores each
// from the player's skill against the problem's demands, with a small
// luck-tinted wobble. The total caps at 400.
func GenerateOIExam(s *Session) ExamResult {
	problems := OIProblems()
	bands := [4][2]int{{1, 3}, {3, 5}, {5, 8}, {8, 10}}

	total := 0
	for _, band := range bands {
		eligible := make([]OIProblem, 0, len(problems))
		for _, p := range problems {
			if p.Level >= band[0] && p.Level <= band[1] {
				eligible = append(eligible, p)
			}
		}
		p := eligible[s.rng.IntN(len(eligible))]
		total += s.scoreOIProblem(p)
	}
	if total > OIExamMax {
		total = OIExamMax
	}
	return ExamResult{TotalScore: total}
}

// scoreOIProblem compares skill to demand per weighted category. Full marks
// need comfortable mastery of every demanded category; partial credit falls
// off with the gap.
func (s *Session) scoreOIProblem(p OIProblem) int {
	skill := map[string]float64{
		"dp": s.OI.DP, "ds": s.OI.DS, "math": s.OI.Math,
		"string": s.OI.String, "graph": s.OI.Graph, "misc": s.OI.Misc,
	}
	demand := map[string]float64{
		"dp": p.Difficulty.DP, "ds": p.Difficulty.DS, "math": p.Difficulty.Math,
		"string": p.Difficulty.String, "graph": p.Difficulty.Graph, "misc": p.Difficulty.Misc,
	}

	var weighted, weights float64
	for cat, need := range demand {
		if need <= 0 {
			continue
		}
		// Skill equal to 4x demand solves the category outright.
		ratio := skill[cat] / (need * 4)
		if ratio > 1 {
			ratio = 1
		}
		weighted += ratio * need
		weights += need
	}
	if weights == 0 {
		return 0
	}

	score := weighted / weights * 100
	score *= 0.85 + s.rng.Float64()*0.3 + (s.General.Luck-50)*0.001
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}

// weekendOITraining is the passive gain when contest practice eats a
// weekend action point.
func (s *Session) weekendOITraining() {
	gains := []func(){
		func() { s.OI.DP++ },
		func() { s.OI.DS++ },
		func() { s.OI.Math++ },
		func() { s.OI.String++ },
		func() { s.OI.Graph++ },
	}
	gains[s.rng.IntN(len(gains))]()
	s.OI.Misc++
	s.appendLog("竞赛集训占用了周末时间，你的OI能力有所提升。", LogInfo)
}
