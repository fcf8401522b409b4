package game

import "fmt"

// subjectDecayRate is the natural weekly forgetting applied to levels.
const subjectDecayRate = 0.01

func (s *Session) enterPhase(p Phase, week, totalWeeks int) {
	s.Phase = p
	s.Week = week
	s.TotalWeeksInPhase = totalWeeks
}

// AdvanceWeek runs one weekly tick: critical failure first, then threshold
// achievements on pre-mutation stats, the phase transition table, the
// weekend gate, and finally the ordinary weekly mutation. A transition into
// an exam or selection phase pauses the run and skips the rest of the tick.
func (s *Session) AdvanceWeek() {
	if s.Phase.Terminal() {
		return
	}

	if s.General.Health <= 0 || s.General.Mindset <= 0 {
		s.withdraw()
		return
	}

	if s.General.Money >= 200 {
		s.unlockAchievement("rich")
	}
	if s.General.Money <= -250 {
		s.unlockAchievement("in_debt")
	}
	if s.General.Health < 10 && s.Phase == PhaseSemester1 {
		s.unlockAchievement("survival")
	}
	if s.General.Romance >= 95 {
		s.unlockAchievement("romance_master")
	}

	if s.transitionPhase() {
		return
	}

	if s.Phase == PhaseSemester1 && !s.weekendProcessed && !s.IsWeekend {
		if s.weekendGate() {
			return
		}
	}

	s.weeklyMutation()
}

func (s *Session) withdraw() {
	s.enterPhase(PhaseWithdrawal, s.Week, s.TotalWeeksInPhase)
	s.EventQueue = nil
	s.CurrentEvent = nil
	s.EventResult = nil
	s.IsWeekend = false
	s.IsPlaying = false
	s.appendLog("你的身心状态已达极限，被迫休学...", LogError)
}

// transitionPhase applies the transition table. It reports true when a
// transition (or the club-selection pause) consumed the tick.
func (s *Session) transitionPhase() bool {
	switch {
	case s.Phase == PhaseSummer && s.Week >= 5:
		s.enterPhase(PhaseMilitary, 1, 2)
		s.appendLog("暑假结束，军训开始了。", LogInfo)
		if start := findEvent("mil_start"); start != nil && !s.TriggeredEvents[start.ID] {
			s.EventQueue = append(s.EventQueue, s.instantiate(start))
			s.TriggeredEvents[start.ID] = true
		}
		s.maybeDequeue()
		return true

	case s.Phase == PhaseMilitary && s.Week >= 2:
		s.enterPhase(PhaseSelection, 0, 0)
		s.IsPlaying = false
		s.appendLog("军训结束。接下来是决定未来三年的选科。", LogInfo)
		return true

	case s.Phase == PhaseSemester1 && s.Week == 2 && s.Club == "":
		s.AwaitingClub = true
		s.IsPlaying = false
		s.appendLog("百团大战！操场上挤满了招新的社团。", LogInfo)
		return true

	case s.Phase == PhaseSemester1 && s.Competition == CompetitionOI && s.Week == 10:
		s.enterPhase(PhaseCSP, s.Week+1, s.TotalWeeksInPhase)
		s.IsPlaying = false
		s.appendLog("CSP-S 复赛的日子到了。", LogInfo)
		return true

	case s.Phase == PhaseSemester1 && s.Week == 11:
		s.enterPhase(PhaseMidterm, s.Week+1, s.TotalWeeksInPhase)
		s.IsPlaying = false
		s.appendLog("期中考试周。", LogInfo)
		return true

	case s.Phase == PhaseSemester1 && s.Competition == CompetitionOI && s.Week == 18:
		s.enterPhase(PhaseNOIP, s.Week+1, s.TotalWeeksInPhase)
		s.IsPlaying = false
		s.appendLog("NOIP 开赛在即。", LogInfo)
		return true

	case s.Phase == PhaseSemester1 && s.Week >= 21:
		s.enterPhase(PhaseFinal, 0, 0)
		s.IsPlaying = false
		s.appendLog("期末考试周。", LogInfo)
		return true
	}
	return false
}

// weekendGate computes this week's free action points. It reports true when
// the session entered interactive weekend mode.
func (s *Session) weekendGate() bool {
	points := 2
	if s.Competition == CompetitionOI {
		points--
		s.weekendOITraining()
	}
	if s.Club != "" && s.Week%4 == 0 {
		points--
		if c, ok := clubByID(s.Club); ok {
			s.applyEffects(c.Effects)
			s.appendLog(fmt.Sprintf("本周的【%s】社团活动占用了部分周末。", c.Name), LogInfo)
		}
	}
	if points > 0 {
		s.IsWeekend = true
		s.WeekendActionPoints = points
		s.IsPlaying = false
		return true
	}
	s.weekendProcessed = true
	s.appendLog("这周末被安排得满满当当，没有自由活动时间。", LogWarning)
	return false
}

// weeklyMutation is the ordinary per-week update, applied when no
// transition or weekend pause consumed the tick.
func (s *Session) weeklyMutation() {
	// The random pool draw is rolled against pre-mutation state.
	randomEvent := s.rollPhaseEvent()

	s.tickStatuses()

	s.General.Health -= 0.8
	if s.General.Health < 0 {
		s.General.Health = 0
	}
	s.General.Money += 2

	for _, sub := range s.Subjects {
		sub.Level *= 1 - subjectDecayRate
	}

	if s.General.Money < 0 {
		if !s.hasStatus("debt") {
			s.ActiveStatuses = append(s.ActiveStatuses, newStatus("debt", 1))
		} else {
			s.refreshStatus("debt", 1)
		}
		if s.rng.Float64() < 0.3 {
			s.EventQueue = append(s.EventQueue, s.instantiate(findEvent("debt_collection")))
		}
	} else {
		s.removeStatus("debt")
	}

	if s.RomancePartner == "" {
		if s.General.Romance >= 25 && !s.hasStatus("crush_pending") && !s.hasStatus("crush") &&
			s.rng.Float64() < 0.2 {
			s.ActiveStatuses = append(s.ActiveStatuses, newStatus("crush_pending", 3))
		}
		if s.General.Romance >= 35 && !s.hasStatus("crush") && s.rng.Float64() < 0.15 {
			s.ActiveStatuses = append(s.ActiveStatuses, newStatus("crush", 4))
			s.appendLog("你发现自己总是不自觉地看向某个身影...", LogInfo)
		}
	}

	if s.General.Health < 30 && !s.hasStatus("exhausted") && s.rng.Float64() < 0.4 {
		s.ActiveStatuses = append(s.ActiveStatuses, newStatus("exhausted", 3))
	}
	if s.General.Efficiency > 15 && s.General.Mindset > 70 && !s.hasStatus("focused") &&
		s.rng.Float64() < 0.15 {
		s.ActiveStatuses = append(s.ActiveStatuses, newStatus("focused", 2))
	}

	s.applyStatusDeltas()

	if s.Phase == PhaseSemester1 {
		s.EventQueue = append(s.EventQueue, s.generateStudyEvent(), s.generateFlavorEvent())
		switch s.Week + 1 {
		case 15:
			s.EventQueue = append(s.EventQueue, s.instantiate(findEvent("evt_sci_fest")))
		case 19:
			s.EventQueue = append(s.EventQueue, s.galaEvent())
		}
	}

	if randomEvent != nil {
		s.EventQueue = append(s.EventQueue, randomEvent)
		s.TriggeredEvents[randomEvent.ID] = true
	}

	s.Week++
	s.weekendProcessed = false
	s.appendLog(fmt.Sprintf("第 %d 周", s.Week), LogInfo)

	s.maybeDequeue()
}

// rollPhaseEvent draws at most one eligible event from the current phase
// pool at the phase's event probability.
func (s *Session) rollPhaseEvent() *Event {
	pool := phasePool(s.Phase)
	if len(pool) == 0 {
		return nil
	}
	if s.rng.Float64() >= s.Phase.eventProbability() {
		return nil
	}
	eligible := s.eligibleEvents(pool)
	if len(eligible) == 0 {
		return nil
	}
	return s.instantiate(eligible[s.rng.IntN(len(eligible))])
}

// galaEvent is the new-year gala with a partner-only choice prepended.
func (s *Session) galaEvent() *Event {
	gala := s.instantiate(findEvent("evt_new_year"))
	if s.RomancePartner != "" {
		partnerChoice := Choice{
			Text: fmt.Sprintf("和%s溜出去逛街", s.RomancePartner),
			Effects: []Effect{
				adjustGeneral(GeneralStats{Romance: 30, Mindset: 20, Money: -50}),
				addStatus("in_love", 5),
			},
		}
		gala.Choices = append([]Choice{partnerChoice}, gala.Choices...)
	}
	return gala
}

func (s *Session) refreshStatus(id string, duration int) {
	for i := range s.ActiveStatuses {
		if s.ActiveStatuses[i].ID == id {
			s.ActiveStatuses[i].Duration = duration
			return
		}
	}
}
