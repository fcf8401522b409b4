package game

import (
	"fmt"
	"math"
)

// TotalStudents is the fixed grade size used for ranking.
const TotalStudents = 633

// computeRank maps a score ratio to a grade rank via a logistic CDF
// approximation centered at 68% with spread 15%. A perfect-or-better score
// is always rank 1.
func computeRank(score, maxScore int) int {
	if score >= maxScore {
		return 1
	}
	ratio := float64(score) / float64(maxScore)
	z := (ratio - 0.68) / 0.15
	percentile := 1 / (1 + math.Exp(-1.702*z))
	rank := int(float64(TotalStudents)*(1-percentile)) + 1
	if rank < 1 {
		rank = 1
	}
	if rank > TotalStudents {
		rank = TotalStudents
	}
	return rank
}

// examSubjects are the subjects a written exam covers: the core three plus
// the player's electives.
func (s *Session) examSubjects() []SubjectKey {
	subjects := append([]SubjectKey{}, CoreSubjects...)
	return append(subjects, s.SelectedSubjects...)
}

// GenerateWrittenExam produces per-subject scores from level, aptitude and
// efficiency with a luck-tinted roll, clamped to each subject's maximum.
func GenerateWrittenExam(s *Session) ExamResult {
	scores := make(map[SubjectKey]int)
	total := 0
	for _, k := range s.examSubjects() {
		sub := s.Subjects[k]
		if sub == nil {
			continue
		}
		maxScore := float64(k.MaxScore())

		// Level carries the score, aptitude sets the ceiling of comprehension,
		// efficiency converts study into results.
		base := sub.Level*2.2 + sub.Aptitude*0.35 + s.General.Efficiency*1.5
		roll := 0.85 + s.rng.Float64()*0.3 + (s.General.Luck-50)*0.002
		score := base / 150 * maxScore * roll

		if score < 0 {
			score = 0
		}
		if score > maxScore {
			score = maxScore
		}
		scores[k] = int(score)
		total += int(score)
	}
	return ExamResult{Scores: scores, TotalScore: total}
}

// ResolveExam converts a finished exam into rank, achievements and the
// phase outcome. Scores are accepted as reported; the rank formula
// saturates instead of validating.
func (s *Session) ResolveExam(result ExamResult) error {
	if !s.Phase.Exam() {
		return fmt.Errorf("no exam pending in phase %s", s.Phase)
	}

	if s.Phase == PhaseCSP || s.Phase == PhaseNOIP {
		s.resolveCompetitionExam(result)
		return nil
	}

	maxTotal := 0
	for _, k := range s.examSubjects() {
		maxTotal += k.MaxScore()
	}

	result.TotalStudents = TotalStudents
	result.Rank = computeRank(result.TotalScore, maxTotal)
	s.LastExam = &result

	s.checkExamAchievements(result)

	failed := false
	for k, score := range result.Scores {
		if float64(score)/float64(k.MaxScore()) <= 0.6 {
			failed = true
			break
		}
	}

	switch s.Phase {
	case PhasePlacement:
		s.assignClass(result.TotalScore)
		s.enterPhase(PhaseSemester1, 1, 21)
		s.appendLog(fmt.Sprintf("分班考试结束：总分%d，年级第%d名。", result.TotalScore, result.Rank), LogInfo)
	case PhaseMidterm:
		s.enterPhase(PhaseReselection, s.Week, s.TotalWeeksInPhase)
		s.appendLog(fmt.Sprintf("期中考试结束：总分%d，年级第%d名。现在可以重新确认选科。", result.TotalScore, result.Rank), LogInfo)
	case PhaseFinal:
		s.enterPhase(PhaseEnding, s.Week, s.TotalWeeksInPhase)
		s.appendLog(fmt.Sprintf("期末考试结束：总分%d，年级第%d名。你的第一学期落下帷幕。", result.TotalScore, result.Rank), LogInfo)
		s.IsPlaying = false
		return nil
	}

	if failed {
		talk := findEvent("exam_fail_talk")
		s.CurrentEvent = s.instantiate(talk)
		s.TriggeredEvents[talk.ID] = true
	}
	s.IsPlaying = s.CurrentEvent == nil
	if s.Phase == PhaseReselection {
		s.IsPlaying = false
	}
	if s.IsPlaying {
		s.maybeDequeue()
	}
	return nil
}

// resolveCompetitionExam surfaces an award popup; the phase moves back to
// the semester only when the popup is dismissed.
func (s *Session) resolveCompetitionExam(result ExamResult) {
	title := "CSP-S 复赛"
	award := ""
	switch {
	case s.Phase == PhaseCSP && result.TotalScore >= 155:
		award = "一等奖"
	case s.Phase == PhaseCSP && result.TotalScore >= 100:
		award = "二等奖"
	case s.Phase == PhaseCSP:
		award = "三等奖"
	case result.TotalScore >= 145:
		title = "NOIP"
		award = "省一等奖"
		s.unlockAchievement("oi_god")
	case result.TotalScore >= 115:
		title = "NOIP"
		award = "省二等奖"
	default:
		title = "NOIP"
		award = "省三等奖"
	}

	s.PopupCompetitionResult = &CompetitionResult{
		Title: title,
		Score: result.TotalScore,
		Award: award,
	}
	s.IsPlaying = false
}

// DismissCompetitionPopup acknowledges the award and resumes the semester.
func (s *Session) DismissCompetitionPopup() error {
	if s.PopupCompetitionResult == nil {
		return fmt.Errorf("no competition result pending")
	}
	s.CompetitionResults = append(s.CompetitionResults, *s.PopupCompetitionResult)
	s.PopupCompetitionResult = nil
	s.enterPhase(PhaseSemester1, s.Week, s.TotalWeeksInPhase)
	s.appendLog("竞赛征程暂时告一段落。", LogInfo)
	s.IsPlaying = true
	s.maybeDequeue()
	return nil
}

func (s *Session) assignClass(total int) {
	switch {
	case total > 540:
		s.ClassName = "一类实验班"
		s.General.Efficiency += 4
	case total > 480:
		s.ClassName = "二类实验班"
		s.General.Efficiency += 2
	default:
		s.ClassName = "普通班"
	}
	s.appendLog(fmt.Sprintf("你被分到了%s。", s.ClassName), LogSuccess)
}

func (s *Session) checkExamAchievements(result ExamResult) {
	if result.Rank == 1 {
		s.unlockAchievement("top_rank")
	}
	if float64(result.Rank) > float64(TotalStudents)*0.98 {
		s.unlockAchievement("bottom_rank")
	}
	for k, score := range result.Scores {
		if score >= k.MaxScore() {
			s.unlockAchievement("nerd")
			break
		}
	}
	if s.SleepCount >= 20 && result.Rank <= 50 {
		s.unlockAchievement("sleep_god")
	}
}

// ChooseSubjects locks in exactly three electives. At SELECTION it leads to
// the placement exam; at SUBJECT_RESELECTION it resumes the semester.
func (s *Session) ChooseSubjects(keys []SubjectKey) error {
	if s.Phase != PhaseSelection && s.Phase != PhaseReselection {
		return fmt.Errorf("subject choice not available in phase %s", s.Phase)
	}
	if len(keys) != 3 {
		return fmt.Errorf("exactly 3 subjects required, got %d", len(keys))
	}
	seen := make(map[SubjectKey]bool, 3)
	for _, k := range keys {
		elective := false
		for _, e := range ElectiveSubjects {
			if k == e {
				elective = true
				break
			}
		}
		if !elective {
			return fmt.Errorf("%s is not an elective", k)
		}
		if seen[k] {
			return fmt.Errorf("duplicate subject: %s", k)
		}
		seen[k] = true
	}

	s.SelectedSubjects = append([]SubjectKey(nil), keys...)
	names := ""
	for i, k := range keys {
		if i > 0 {
			names += "、"
		}
		names += k.Name()
	}
	s.appendLog("你确定了选科组合："+names, LogSuccess)

	if s.Phase == PhaseSelection {
		s.enterPhase(PhasePlacement, 0, 0)
		s.IsPlaying = false
		return nil
	}
	s.enterPhase(PhaseSemester1, s.Week, s.TotalWeeksInPhase)
	s.IsPlaying = true
	s.maybeDequeue()
	return nil
}
