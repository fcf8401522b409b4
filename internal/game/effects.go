package game

import "math/rand/v2"

// EffectKind tags one entry of the effect sum type. Content tables are built
// from these descriptors and a single applier interprets them, so events
// stay plain data.
type EffectKind int

const (
	EffectAdjustGeneral EffectKind = iota
	EffectAdjustSubjects
	EffectAdjustOI
	EffectAddStatus
	EffectRemoveStatus
	EffectSetPartner
	EffectClearPartner
	EffectSetMoney
	EffectSetCompetition
	EffectAddSleep
	EffectLog
	EffectChain
	EffectBranch
	EffectDynamic
)

// Effect is one tagged state mutation. Only the fields for its Kind are
// meaningful.
type Effect struct {
	Kind EffectKind

	// EffectAdjustGeneral
	General GeneralStats

	// EffectAdjustSubjects: Subjects, or SelectedSubjects/AllSubjects as the
	// target set. ScaleWithEfficiency adds efficiency*0.1 to the delta.
	Subjects            []SubjectKey
	SelectedSubjects    bool
	AllSubjects         bool
	SubjectDelta        float64
	ScaleWithEfficiency bool

	// EffectAdjustOI
	OI OIStats

	// EffectAddStatus / EffectRemoveStatus
	StatusID string
	Duration int

	// EffectSetPartner
	Partner string

	// EffectSetMoney
	Money float64

	// EffectSetCompetition
	Competition Competition

	// EffectAddSleep
	Sleep int

	// EffectLog
	Message string
	LogKind LogKind

	// EffectChain
	EventID string

	// EffectBranch: roll rng < Chance, apply Then or Else.
	Chance float64
	Then   []Effect
	Else   []Effect

	// EffectDynamic computes effects from live state. Used only where a
	// delta depends on current stats (red packet tiers, confession odds).
	Dynamic func(s *Session, rng *rand.Rand) []Effect
}

func adjustGeneral(g GeneralStats) Effect {
	return Effect{Kind: EffectAdjustGeneral, General: g}
}

func adjustSubjects(delta float64, keys ...SubjectKey) Effect {
	return Effect{Kind: EffectAdjustSubjects, SubjectDelta: delta, Subjects: keys}
}

func adjustOI(o OIStats) Effect {
	return Effect{Kind: EffectAdjustOI, OI: o}
}

func addStatus(id string, duration int) Effect {
	return Effect{Kind: EffectAddStatus, StatusID: id, Duration: duration}
}

func logLine(message string, kind LogKind) Effect {
	return Effect{Kind: EffectLog, Message: message, LogKind: kind}
}

func chainTo(eventID string) Effect {
	return Effect{Kind: EffectChain, EventID: eventID}
}

func branch(chance float64, then, els []Effect) Effect {
	return Effect{Kind: EffectBranch, Chance: chance, Then: then, Else: els}
}

func addSleep() Effect {
	return Effect{Kind: EffectAddSleep, Sleep: 1}
}

func dynamicEffect(fn func(s *Session) []Effect) Effect {
	return Effect{Kind: EffectDynamic, Dynamic: func(s *Session, _ *rand.Rand) []Effect {
		return fn(s)
	}}
}

// applyEffects interprets a descriptor list against the session. Subject
// levels and OI skills are clamped at zero here, so no content entry can
// violate the non-negative invariants.
func (s *Session) applyEffects(effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectAdjustGeneral:
			s.General.Mindset += e.General.Mindset
			s.General.Experience += e.General.Experience
			s.General.Luck += e.General.Luck
			s.General.Romance += e.General.Romance
			s.General.Health += e.General.Health
			s.General.Money += e.General.Money
			s.General.Efficiency += e.General.Efficiency

		case EffectAdjustSubjects:
			delta := e.SubjectDelta
			if e.ScaleWithEfficiency {
				delta += s.General.Efficiency * 0.1
			}
			for _, k := range s.effectSubjectTargets(e) {
				sub := s.Subjects[k]
				if sub == nil {
					continue
				}
				sub.Level += delta
				if sub.Level < 0 {
					sub.Level = 0
				}
			}

		case EffectAdjustOI:
			s.OI.DP = maxFloat(0, s.OI.DP+e.OI.DP)
			s.OI.DS = maxFloat(0, s.OI.DS+e.OI.DS)
			s.OI.Math = maxFloat(0, s.OI.Math+e.OI.Math)
			s.OI.String = maxFloat(0, s.OI.String+e.OI.String)
			s.OI.Graph = maxFloat(0, s.OI.Graph+e.OI.Graph)
			s.OI.Misc = maxFloat(0, s.OI.Misc+e.OI.Misc)

		case EffectAddStatus:
			s.ActiveStatuses = append(s.ActiveStatuses, newStatus(e.StatusID, e.Duration))

		case EffectRemoveStatus:
			s.removeStatus(e.StatusID)

		case EffectSetPartner:
			s.RomancePartner = e.Partner

		case EffectClearPartner:
			s.RomancePartner = ""

		case EffectSetMoney:
			s.General.Money = e.Money

		case EffectSetCompetition:
			s.Competition = e.Competition

		case EffectAddSleep:
			s.SleepCount += e.Sleep

		case EffectLog:
			s.appendLog(e.Message, e.LogKind)

		case EffectChain:
			s.pendingChain = e.EventID

		case EffectBranch:
			if s.rng.Float64() < e.Chance {
				s.applyEffects(e.Then)
			} else {
				s.applyEffects(e.Else)
			}

		case EffectDynamic:
			if e.Dynamic != nil {
				s.applyEffects(e.Dynamic(s, s.rng))
			}
		}
	}
}

func (s *Session) effectSubjectTargets(e Effect) []SubjectKey {
	switch {
	case e.AllSubjects:
		return AllSubjects
	case e.SelectedSubjects:
		if len(s.SelectedSubjects) > 0 {
			return s.SelectedSubjects
		}
		return []SubjectKey{SubjectMath, SubjectPhysics}
	default:
		return e.Subjects
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
