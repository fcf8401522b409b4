package game

import "testing"

func fullMarks(s *Session) ExamResult {
	scores := make(map[SubjectKey]int)
	total := 0
	for _, k := range s.examSubjects() {
		scores[k] = k.MaxScore()
		total += k.MaxScore()
	}
	return ExamResult{Scores: scores, TotalScore: total}
}

func flatMarks(s *Session, score int) ExamResult {
	scores := make(map[SubjectKey]int)
	total := 0
	for _, k := range s.examSubjects() {
		scores[k] = score
		total += score
	}
	return ExamResult{Scores: scores, TotalScore: total}
}

func TestComputeRank(t *testing.T) {
	if got := computeRank(750, 750); got != 1 {
		t.Fatalf("perfect score must rank first, got %d", got)
	}
	if got := computeRank(800, 750); got != 1 {
		t.Fatalf("above-max score must rank first, got %d", got)
	}
	if got := computeRank(0, 750); got != TotalStudents {
		t.Fatalf("zero score should rank last, got %d", got)
	}
	mid := computeRank(510, 750) // exactly the 68% center
	if mid < TotalStudents/3 || mid > 2*TotalStudents/3 {
		t.Fatalf("a centered score should rank mid-grade, got %d", mid)
	}
	if computeRank(600, 750) >= computeRank(450, 750) {
		t.Fatal("rank must improve with score")
	}
}

func TestResolvePlacementTopScore(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.SelectedSubjects = []SubjectKey{SubjectPhysics, SubjectChemistry, SubjectBiology}
	s.enterPhase(PhasePlacement, 0, 0)
	eff := s.General.Efficiency

	if err := s.ResolveExam(fullMarks(s)); err != nil {
		t.Fatalf("ResolveExam: %v", err)
	}
	if s.LastExam == nil || s.LastExam.Rank != 1 {
		t.Fatalf("expected rank 1, got %+v", s.LastExam)
	}
	if s.ClassName != "一类实验班" {
		t.Fatalf("expected the top class, got %s", s.ClassName)
	}
	if s.General.Efficiency != eff+4 {
		t.Fatalf("top class should grant +4 efficiency, got %f (was %f)", s.General.Efficiency, eff)
	}
	if s.Phase != PhaseSemester1 || s.Week != 1 || s.TotalWeeksInPhase != 21 {
		t.Fatalf("expected SEMESTER_1 week 1/21, got %s %d/%d", s.Phase, s.Week, s.TotalWeeksInPhase)
	}
	if s.CurrentEvent != nil {
		t.Fatal("a clean exam should not trigger the teacher talk")
	}
	if !s.IsPlaying {
		t.Fatal("the semester should start running")
	}
}

func TestResolvePlacementLowScore(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.SelectedSubjects = []SubjectKey{SubjectHistory, SubjectGeography, SubjectPolitics}
	s.enterPhase(PhasePlacement, 0, 0)

	if err := s.ResolveExam(flatMarks(s, 60)); err != nil {
		t.Fatalf("ResolveExam: %v", err)
	}
	if s.ClassName != "普通班" {
		t.Fatalf("expected the regular class, got %s", s.ClassName)
	}
	if s.CurrentEvent == nil || s.CurrentEvent.ID != "exam_fail_talk" {
		t.Fatalf("a failed subject should trigger the teacher talk, got %+v", s.CurrentEvent)
	}
	if s.IsPlaying {
		t.Fatal("the teacher talk must pause the run")
	}
}

func TestResolveMidtermLeadsToReselection(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.SelectedSubjects = []SubjectKey{SubjectPhysics, SubjectChemistry, SubjectBiology}
	s.enterPhase(PhaseMidterm, 12, 21)

	if err := s.ResolveExam(fullMarks(s)); err != nil {
		t.Fatalf("ResolveExam: %v", err)
	}
	if s.Phase != PhaseReselection {
		t.Fatalf("expected SUBJECT_RESELECTION, got %s", s.Phase)
	}
	if s.IsPlaying {
		t.Fatal("reselection must wait for the player")
	}
}

func TestFailTalkConfirmKeepsReselectionPaused(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.SelectedSubjects = []SubjectKey{SubjectPhysics, SubjectChemistry, SubjectBiology}
	s.enterPhase(PhaseMidterm, 12, 21)

	if err := s.ResolveExam(flatMarks(s, 10)); err != nil {
		t.Fatalf("ResolveExam: %v", err)
	}
	if s.Phase != PhaseReselection {
		t.Fatalf("expected SUBJECT_RESELECTION, got %s", s.Phase)
	}
	if s.CurrentEvent == nil || s.CurrentEvent.ID != "exam_fail_talk" {
		t.Fatalf("a failed midterm should trigger the teacher talk, got %+v", s.CurrentEvent)
	}

	if err := s.ResolveChoice(0); err != nil {
		t.Fatalf("ResolveChoice: %v", err)
	}
	if err := s.ConfirmEvent(); err != nil {
		t.Fatalf("ConfirmEvent: %v", err)
	}
	if s.CurrentEvent != nil {
		t.Fatal("confirming should dismiss the teacher talk")
	}
	if s.Phase != PhaseReselection {
		t.Fatalf("expected SUBJECT_RESELECTION to hold, got %s", s.Phase)
	}
	if s.IsPlaying {
		t.Fatal("reselection must stay paused until subjects are confirmed")
	}
}

func TestResolveFinalEndsTheRun(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.SelectedSubjects = []SubjectKey{SubjectPhysics, SubjectChemistry, SubjectBiology}
	s.enterPhase(PhaseFinal, 0, 0)

	if err := s.ResolveExam(fullMarks(s)); err != nil {
		t.Fatalf("ResolveExam: %v", err)
	}
	if s.Phase != PhaseEnding {
		t.Fatalf("expected ENDING, got %s", s.Phase)
	}
	if s.IsPlaying {
		t.Fatal("the ending must stop the timer")
	}
}

func TestResolveExamOutsideExamPhase(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	if err := s.ResolveExam(ExamResult{}); err == nil {
		t.Fatal("expected an error outside exam phases")
	}
}

func TestCompetitionPopupAndDismiss(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.Competition = CompetitionOI
	s.enterPhase(PhaseCSP, 11, 21)

	if err := s.ResolveExam(ExamResult{TotalScore: 160}); err != nil {
		t.Fatalf("ResolveExam: %v", err)
	}
	popup := s.PopupCompetitionResult
	if popup == nil {
		t.Fatal("expected an award popup")
	}
	if popup.Award != "一等奖" {
		t.Fatalf("160 points should take first prize, got %s", popup.Award)
	}
	if s.Phase != PhaseCSP || s.IsPlaying {
		t.Fatal("the popup must hold the exam phase paused")
	}

	if err := s.DismissCompetitionPopup(); err != nil {
		t.Fatalf("DismissCompetitionPopup: %v", err)
	}
	if s.PopupCompetitionResult != nil {
		t.Fatal("dismiss should clear the popup")
	}
	if len(s.CompetitionResults) != 1 {
		t.Fatalf("expected the result recorded, got %d", len(s.CompetitionResults))
	}
	if s.Phase != PhaseSemester1 || s.Week != 11 {
		t.Fatalf("expected SEMESTER_1 week 11, got %s week %d", s.Phase, s.Week)
	}
	if !s.IsPlaying {
		t.Fatal("dismiss should resume the run")
	}
	if err := s.DismissCompetitionPopup(); err == nil {
		t.Fatal("expected an error with no popup pending")
	}
}

func TestNOIPProvincialFirstUnlocksAchievement(t *testing.T) {
	s := testSession(t, DifficultyReality)
	s.Competition = CompetitionOI
	s.enterPhase(PhaseNOIP, 19, 21)

	if err := s.ResolveExam(ExamResult{TotalScore: 150}); err != nil {
		t.Fatalf("ResolveExam: %v", err)
	}
	if s.PopupCompetitionResult == nil || s.PopupCompetitionResult.Award != "省一等奖" {
		t.Fatalf("150 points should take provincial first, got %+v", s.PopupCompetitionResult)
	}
	found := false
	for _, id := range s.Unlocked() {
		if id == "oi_god" {
			found = true
		}
	}
	if !found {
		t.Fatal("provincial first should unlock oi_god under REALITY")
	}
}

func TestGenerateWrittenExamBounds(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.SelectedSubjects = []SubjectKey{SubjectPhysics, SubjectChemistry, SubjectBiology}
	result := GenerateWrittenExam(s)
	if len(result.Scores) != 6 {
		t.Fatalf("expected 6 examined subjects, got %d", len(result.Scores))
	}
	total := 0
	for k, score := range result.Scores {
		if score < 0 || score > k.MaxScore() {
			t.Fatalf("%s score %d out of [0,%d]", k, score, k.MaxScore())
		}
		total += score
	}
	if total != result.TotalScore {
		t.Fatalf("total %d does not match per-subject sum %d", result.TotalScore, total)
	}
}

func TestGenerateOIExamBounds(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.OI = OIStats{DP: 20, DS: 20, Math: 20, String: 20, Graph: 20, Misc: 20}
	result := GenerateOIExam(s)
	if result.TotalScore < 0 || result.TotalScore > OIExamMax {
		t.Fatalf("OI total %d out of [0,%d]", result.TotalScore, OIExamMax)
	}
}

func TestChooseSubjects(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.enterPhase(PhaseSelection, 0, 0)

	if err := s.ChooseSubjects([]SubjectKey{SubjectPhysics}); err == nil {
		t.Fatal("expected an error for fewer than three subjects")
	}
	if err := s.ChooseSubjects([]SubjectKey{SubjectPhysics, SubjectPhysics, SubjectBiology}); err == nil {
		t.Fatal("expected an error for duplicate subjects")
	}
	if err := s.ChooseSubjects([]SubjectKey{SubjectMath, SubjectPhysics, SubjectBiology}); err == nil {
		t.Fatal("expected an error for a non-elective")
	}

	picks := []SubjectKey{SubjectPhysics, SubjectChemistry, SubjectBiology}
	if err := s.ChooseSubjects(picks); err != nil {
		t.Fatalf("ChooseSubjects: %v", err)
	}
	if s.Phase != PhasePlacement || s.Week != 0 {
		t.Fatalf("expected PLACEMENT_EXAM week 0, got %s week %d", s.Phase, s.Week)
	}
	if s.IsPlaying {
		t.Fatal("the placement exam must wait for the player")
	}
	if len(s.SelectedSubjects) != 3 {
		t.Fatalf("expected 3 locked subjects, got %d", len(s.SelectedSubjects))
	}
}

func TestReselectionResumesSemester(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.enterPhase(PhaseReselection, 12, 21)
	picks := []SubjectKey{SubjectHistory, SubjectGeography, SubjectPolitics}
	if err := s.ChooseSubjects(picks); err != nil {
		t.Fatalf("ChooseSubjects: %v", err)
	}
	if s.Phase != PhaseSemester1 || s.Week != 12 {
		t.Fatalf("expected SEMESTER_1 week 12, got %s week %d", s.Phase, s.Week)
	}
	if !s.IsPlaying {
		t.Fatal("reselection should resume the run")
	}
}
