package game

import "testing"

// testSession builds a deterministic session and clears the opening event so
// state machine tests start from a quiet board.
func testSession(t *testing.T, d Difficulty) *Session {
	t.Helper()
	s, err := NewSession(Config{Difficulty: d, Seed: 42})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.CurrentEvent = nil
	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(Config{Difficulty: DifficultyNormal, Seed: 7})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Phase != PhaseSummer || s.Week != 1 || s.TotalWeeksInPhase != 5 {
		t.Fatalf("unexpected opening phase: %s week %d/%d", s.Phase, s.Week, s.TotalWeeksInPhase)
	}
	if s.IsPlaying {
		t.Fatal("a new session should wait on the goal selection event")
	}
	if s.CurrentEvent == nil || s.CurrentEvent.ID != "sum_goal_selection" {
		t.Fatalf("expected goal selection as opening event, got %+v", s.CurrentEvent)
	}
	if len(s.Subjects) != len(AllSubjects) {
		t.Fatalf("expected %d subjects, got %d", len(AllSubjects), len(s.Subjects))
	}
	for k, sub := range s.Subjects {
		if sub.Aptitude < 60 || sub.Aptitude >= 100 {
			t.Fatalf("%s aptitude %f out of [60,100)", k, sub.Aptitude)
		}
		if sub.Level < 5 || sub.Level >= 15 {
			t.Fatalf("%s level %f out of [5,15)", k, sub.Level)
		}
	}
}

func TestNewSessionDeterministicWithSeed(t *testing.T) {
	a, err := NewSession(Config{Difficulty: DifficultyNormal, Seed: 99})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	b, err := NewSession(Config{Difficulty: DifficultyNormal, Seed: 99})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for _, k := range AllSubjects {
		if *a.Subjects[k] != *b.Subjects[k] {
			t.Fatalf("seeded sessions diverge on %s: %+v vs %+v", k, a.Subjects[k], b.Subjects[k])
		}
	}
}

func TestNewSessionRealityStartsEncumbered(t *testing.T) {
	s, err := NewSession(Config{Difficulty: DifficultyReality, Seed: 1})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if !s.hasStatus("anxious") || !s.hasStatus("debt") {
		t.Fatalf("REALITY should start anxious and in debt, got %+v", s.ActiveStatuses)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Difficulty: "EXTREME"}).Validate(); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	if err := (Config{Difficulty: DifficultyCustom}).Validate(); err == nil {
		t.Fatal("custom difficulty without stats should be rejected")
	}
	cfg := Config{Difficulty: DifficultyCustom, Custom: &GeneralStats{Mindset: 50}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid custom config rejected: %v", err)
	}
}

func TestCustomDifficultyUsesGivenStats(t *testing.T) {
	stats := GeneralStats{Mindset: 77, Health: 66, Money: 55, Efficiency: 44}
	s, err := NewSession(Config{Difficulty: DifficultyCustom, Custom: &stats, Seed: 3})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.General != stats {
		t.Fatalf("custom stats not applied: got %+v", s.General)
	}
}

func TestValidateTalents(t *testing.T) {
	if err := validateTalents([]string{"genius", "genius"}); err == nil {
		t.Fatal("duplicate talents should be rejected")
	}
	if err := validateTalents([]string{"no_such_talent"}); err == nil {
		t.Fatal("unknown talent should be rejected")
	}
	if err := validateTalents([]string{"genius", "rich_kid"}); err == nil {
		t.Fatal("over-budget talent picks should be rejected")
	}
	if err := validateTalents([]string{"genius"}); err != nil {
		t.Fatalf("single legendary within budget rejected: %v", err)
	}
}

func TestTalentEffectsApplyAtCreation(t *testing.T) {
	base, err := NewSession(Config{Difficulty: DifficultyNormal, Seed: 11})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	rich, err := NewSession(Config{Difficulty: DifficultyNormal, Seed: 11, Talents: []string{"rich_kid"}})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if rich.General.Money != base.General.Money+100 {
		t.Fatalf("rich_kid should add 100 money: base %f, got %f", base.General.Money, rich.General.Money)
	}
}

func TestProgressCapsAtHundred(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.Week = 9
	s.TotalWeeksInPhase = 5
	if got := s.Progress(); got != 100 {
		t.Fatalf("progress should cap at 100, got %d", got)
	}
	s.TotalWeeksInPhase = 0
	if got := s.Progress(); got != 0 {
		t.Fatalf("zero-length phase should report 0, got %d", got)
	}
}
