package game

import "testing"

func startWeekend(t *testing.T, d Difficulty) *Session {
	t.Helper()
	s := testSession(t, d)
	s.enterPhase(PhaseSemester1, 3, 21)
	s.AdvanceWeek()
	if !s.IsWeekend {
		t.Fatal("expected the weekend gate to open")
	}
	return s
}

func TestAvailableActivitiesFilter(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	for _, a := range s.AvailableActivities() {
		if a.Type == ActivityLove {
			t.Fatal("love activities need a partner")
		}
		if a.Type == ActivityOI {
			t.Fatal("OI activities need the competition track")
		}
	}

	s.RomancePartner = "TA"
	s.Competition = CompetitionOI
	love, oi := false, false
	for _, a := range s.AvailableActivities() {
		if a.Type == ActivityLove {
			love = true
		}
		if a.Type == ActivityOI {
			oi = true
		}
	}
	if !love || !oi {
		t.Fatal("partner and OI track should open their activity groups")
	}
}

func TestSelectActivityPreviewDoesNotCommit(t *testing.T) {
	s := startWeekend(t, DifficultyNormal)
	money := s.General.Money

	preview, err := s.SelectActivity("w_shop")
	if err != nil {
		t.Fatalf("SelectActivity: %v", err)
	}
	if s.General.Money != money {
		t.Fatalf("a preview must not commit: money moved from %f to %f", money, s.General.Money)
	}
	found := false
	for _, d := range preview.Diff {
		if d == "金钱 -30" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the money delta in the preview, got %v", preview.Diff)
	}
}

func TestConfirmActivitySpendsPoints(t *testing.T) {
	s := startWeekend(t, DifficultyNormal)

	if _, err := s.SelectActivity("w_sleep"); err != nil {
		t.Fatalf("SelectActivity: %v", err)
	}
	health := s.General.Health
	if err := s.ConfirmActivity(); err != nil {
		t.Fatalf("ConfirmActivity: %v", err)
	}
	if s.General.Health != health+8 {
		t.Fatalf("sleeping should restore 8 health, got %f (was %f)", s.General.Health, health)
	}
	if s.SleepCount != 1 {
		t.Fatalf("expected one counted sleep, got %d", s.SleepCount)
	}
	if s.WeekendActionPoints != 1 || !s.IsWeekend {
		t.Fatalf("expected one point left in the weekend, got %d", s.WeekendActionPoints)
	}

	if _, err := s.SelectActivity("w_read"); err != nil {
		t.Fatalf("SelectActivity: %v", err)
	}
	if err := s.ConfirmActivity(); err != nil {
		t.Fatalf("ConfirmActivity: %v", err)
	}
	if s.IsWeekend {
		t.Fatal("the weekend should close when points run out")
	}
	if !s.IsPlaying {
		t.Fatal("closing the weekend should resume the run")
	}

	week := s.Week
	s.AdvanceWeek()
	if s.Week != week+1 {
		t.Fatal("the gate must not re-open in the same week after the weekend")
	}
}

func TestSinglePointWeekendExitsAfterOneActivity(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	s.Competition = CompetitionOI
	s.enterPhase(PhaseSemester1, 3, 21)
	s.AdvanceWeek()
	if !s.IsWeekend || s.WeekendActionPoints != 1 {
		t.Fatalf("OI training should leave one free point, got %d", s.WeekendActionPoints)
	}

	if _, err := s.SelectActivity("w_sleep"); err != nil {
		t.Fatalf("SelectActivity: %v", err)
	}
	if err := s.ConfirmActivity(); err != nil {
		t.Fatalf("ConfirmActivity: %v", err)
	}
	if s.IsWeekend {
		t.Fatal("spending the only point should close the weekend")
	}
}

func TestSelectActivityErrors(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	if _, err := s.SelectActivity("w_sleep"); err == nil {
		t.Fatal("expected an error outside a weekend")
	}
	if err := s.ConfirmActivity(); err == nil {
		t.Fatal("expected an error with nothing selected")
	}

	s = startWeekend(t, DifficultyNormal)
	if _, err := s.SelectActivity("w_luogu"); err == nil {
		t.Fatal("OI activities must be rejected off the track")
	}
	if _, err := s.SelectActivity("no_such_activity"); err == nil {
		t.Fatal("expected an error for an unknown activity")
	}
}

func TestPartnerTextInterpolation(t *testing.T) {
	s := startWeekend(t, DifficultyNormal)
	s.RomancePartner = "小A"
	preview, err := s.SelectActivity("w_date_call")
	if err != nil {
		t.Fatalf("SelectActivity: %v", err)
	}
	if want := "你和小A聊了很久，感觉彼此的心更近了。"; preview.ResultText != want {
		t.Fatalf("expected %q, got %q", want, preview.ResultText)
	}
}
