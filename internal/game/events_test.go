package game

import "testing"

func TestRegistryChainsResolve(t *testing.T) {
	for id, e := range eventRegistry {
		for _, c := range e.Choices {
			if c.NextEventID == "" {
				continue
			}
			if findEvent(c.NextEventID) == nil {
				t.Fatalf("event %s chains to missing event %s", id, c.NextEventID)
			}
		}
	}
}

func TestEligibleEventsExcludesFixedAndTriggeredOnce(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	pool := summerEvents()

	for _, e := range s.eligibleEvents(pool) {
		if e.Trigger == TriggerFixed {
			t.Fatalf("fixed event %s must not be drawn from the pool", e.ID)
		}
	}

	s.TriggeredEvents["sum_summer_camp"] = true
	for _, e := range s.eligibleEvents(pool) {
		if e.ID == "sum_summer_camp" {
			t.Fatal("a triggered once-event must not fire again")
		}
	}
}

func TestEligibleEventsHonorConditions(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	for _, e := range s.eligibleEvents(summerEvents()) {
		if e.ID == "sum_oi_basics" {
			t.Fatal("the OI basics event needs the OI track")
		}
	}
	s.Competition = CompetitionOI
	found := false
	for _, e := range s.eligibleEvents(summerEvents()) {
		if e.ID == "sum_oi_basics" {
			found = true
		}
	}
	if !found {
		t.Fatal("the OI basics event should be eligible on the OI track")
	}
}

func TestGeneratedEventsHaveUniqueIDs(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	a := s.generateStudyEvent()
	b := s.generateStudyEvent()
	if a.ID == b.ID {
		t.Fatalf("generated events must carry unique instance ids, both got %s", a.ID)
	}
	if len(a.Choices) == 0 {
		t.Fatal("a study event must offer choices")
	}
	f := s.generateFlavorEvent()
	if f.ID == "" || len(f.Choices) == 0 {
		t.Fatalf("malformed flavor event: %+v", f)
	}
}

func TestInstantiateResolvesDescription(t *testing.T) {
	s := testSession(t, DifficultyNormal)
	src := findEvent("evt_fight")
	if src == nil {
		t.Fatal("evt_fight missing from the registry")
	}
	solo := s.instantiate(src)

	s.RomancePartner = "小B"
	paired := s.instantiate(src)
	if solo.Description == paired.Description {
		t.Fatal("the fight description should change once a partner exists")
	}
}
