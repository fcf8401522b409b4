package game

import "testing"

func TestApplyEffectsClampsSubjects(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.applyEffects([]Effect{adjustSubjects(-1000, SubjectMath)})
	if got := s.Subjects[SubjectMath].Level; got != 0 {
		t.Fatalf("subject level must clamp at zero, got %f", got)
	}
}

func TestApplyEffectsClampsOI(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.OI = OIStats{DP: 3, Misc: 5}
	s.applyEffects([]Effect{adjustOI(OIStats{DP: -10, Misc: -2, Graph: -4})})
	if s.OI.DP != 0 || s.OI.Misc != 3 || s.OI.Graph != 0 {
		t.Fatalf("OI skills must clamp at zero, got %+v", s.OI)
	}
}

func TestApplyEffectsSubjectTargets(t *testing.T) {
	s := testSession(t, DifficultyNormal)

	// Without electives the selected-subjects target falls back to math
	// and physics.
	mathLevel := s.Subjects[SubjectMath].Level
	chemLevel := s.Subjects[SubjectChemistry].Level
	s.applyEffects([]Effect{{Kind: EffectAdjustSubjects, SelectedSubjects: true, SubjectDelta: 2}})
	if s.Subjects[SubjectMath].Level != mathLevel+2 {
		t.Fatalf("expected math +2, got %f (was %f)", s.Subjects[SubjectMath].Level, mathLevel)
	}
	if s.Subjects[SubjectChemistry].Level != chemLevel {
		t.Fatal("non-target subjects must not move")
	}

	s.SelectedSubjects = []SubjectKey{SubjectChemistry, SubjectBiology, SubjectHistory}
	s.applyEffects([]Effect{{Kind: EffectAdjustSubjects, SelectedSubjects: true, SubjectDelta: 3}})
	if s.Subjects[SubjectChemistry].Level != chemLevel+3 {
		t.Fatalf("expected chemistry +3 once selected, got %f", s.Subjects[SubjectChemistry].Level)
	}
}

func TestApplyEffectsEfficiencyScaling(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.General.Efficiency = 20
	level := s.Subjects[SubjectEnglish].Level
	s.applyEffects([]Effect{{
		Kind: EffectAdjustSubjects, Subjects: []SubjectKey{SubjectEnglish},
		SubjectDelta: 2, ScaleWithEfficiency: true,
	}})
	if s.Subjects[SubjectEnglish].Level != level+4 {
		t.Fatalf("expected +2 base +2 from efficiency, got %f (was %f)", s.Subjects[SubjectEnglish].Level, level)
	}
}

func TestApplyEffectsPartnerAndMoney(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.applyEffects([]Effect{{Kind: EffectSetPartner, Partner: "TA"}})
	if s.RomancePartner != "TA" {
		t.Fatalf("expected partner set, got %q", s.RomancePartner)
	}
	s.applyEffects([]Effect{{Kind: EffectClearPartner}})
	if s.RomancePartner != "" {
		t.Fatal("expected partner cleared")
	}

	s.applyEffects([]Effect{{Kind: EffectSetMoney, Money: -100}})
	if s.General.Money != -100 {
		t.Fatalf("SetMoney must overwrite, got %f", s.General.Money)
	}
}

func TestApplyEffectsStatuses(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.applyEffects([]Effect{addStatus("focused", 2)})
	if !s.hasStatus("focused") {
		t.Fatal("expected focused attached")
	}
	s.applyEffects([]Effect{{Kind: EffectRemoveStatus, StatusID: "focused"}})
	if s.hasStatus("focused") {
		t.Fatal("expected focused removed")
	}
}

func TestApplyEffectsChainAndDynamic(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.applyEffects([]Effect{chainTo("evt_red_packet")})
	if s.pendingChain != "evt_red_packet" {
		t.Fatalf("expected a pending chain, got %q", s.pendingChain)
	}
	s.pendingChain = ""

	exp := s.General.Experience
	s.applyEffects([]Effect{dynamicEffect(func(s *Session) []Effect {
		return []Effect{adjustGeneral(GeneralStats{Experience: 7})}
	})})
	if s.General.Experience != exp+7 {
		t.Fatalf("expected experience raised by 7, got %f (was %f)", s.General.Experience, exp)
	}
}

func TestBranchIsExclusive(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	mindset := s.General.Mindset
	s.applyEffects([]Effect{branch(1.0,
		[]Effect{adjustGeneral(GeneralStats{Mindset: 10})},
		[]Effect{adjustGeneral(GeneralStats{Mindset: -10})},
	)})
	if s.General.Mindset != mindset+10 {
		t.Fatalf("a certain branch must take the then arm, got %f (was %f)", s.General.Mindset, mindset)
	}

	mindset = s.General.Mindset
	s.applyEffects([]Effect{branch(0.0,
		[]Effect{adjustGeneral(GeneralStats{Mindset: 10})},
		[]Effect{adjustGeneral(GeneralStats{Mindset: -10})},
	)})
	if s.General.Mindset != mindset-10 {
		t.Fatalf("an impossible branch must take the else arm, got %f", s.General.Mindset)
	}
}

func TestConditionHolds(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.General.Romance = 30

	check := func(c Condition, want bool, desc string) {
		t.Helper()
		if c.holds(s) != want {
			t.Fatalf("condition %s: expected %v", desc, want)
		}
	}

	check(Condition{MinRomance: 25}, true, "min romance 25 at 30")
	check(Condition{MinRomance: 35}, false, "min romance 35 at 30")
	check(Condition{RequirePartner: true}, false, "partner required without one")

	s.RomancePartner = "TA"
	check(Condition{RequirePartner: true}, true, "partner required with one")
	check(Condition{RequireNoPartner: true}, false, "no partner required with one")

	s.Week = 9
	check(Condition{WeekBefore: 10}, true, "week 9 before 10")
	s.Week = 10
	check(Condition{WeekBefore: 10}, false, "week 10 before 10")

	s.Competition = CompetitionOI
	check(Condition{Competition: CompetitionOI}, true, "OI track")
	check(Condition{Any: []Condition{{MinRomance: 99}, {RequirePartner: true}}}, true, "Any with one passing branch")
	check(Condition{Any: []Condition{{MinRomance: 99}, {RequireNoPartner: true}}}, false, "Any with no passing branch")
}
