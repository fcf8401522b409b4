package game

// Phase is a coarse stage of the simulated school year. Each phase owns its
// own week counter and transition rules.
type Phase string

const (
	PhaseInit        Phase = "INIT"
	PhaseSummer      Phase = "SUMMER"
	PhaseMilitary    Phase = "MILITARY"
	PhaseSelection   Phase = "SELECTION"
	PhasePlacement   Phase = "PLACEMENT_EXAM"
	PhaseSemester1   Phase = "SEMESTER_1"
	PhaseReselection Phase = "SUBJECT_RESELECTION"
	PhaseMidterm     Phase = "MIDTERM_EXAM"
	PhaseCSP         Phase = "CSP_EXAM"
	PhaseNOIP        Phase = "NOIP_EXAM"
	PhaseFinal       Phase = "FINAL_EXAM"
	PhaseEnding      Phase = "ENDING"
	PhaseWithdrawal  Phase = "WITHDRAWAL"
)

var phaseNames = map[Phase]string{
	PhaseInit:        "准备",
	PhaseSummer:      "暑假",
	PhaseMilitary:    "军训",
	PhaseSelection:   "选科",
	PhasePlacement:   "分班考试",
	PhaseSemester1:   "第一学期",
	PhaseReselection: "重新选科",
	PhaseMidterm:     "期中考试",
	PhaseCSP:         "CSP复赛",
	PhaseNOIP:        "NOIP",
	PhaseFinal:       "期末考试",
	PhaseEnding:      "学期结束",
	PhaseWithdrawal:  "休学",
}

func (p Phase) Name() string {
	if n, ok := phaseNames[p]; ok {
		return n
	}
	return string(p)
}

// Terminal phases accept no further week advancement.
func (p Phase) Terminal() bool {
	return p == PhaseEnding || p == PhaseWithdrawal
}

// tickable reports whether the week timer may run in the phase. Selection,
// reselection, exams and terminal phases all wait on the player instead.
func (p Phase) tickable() bool {
	switch p {
	case PhaseSummer, PhaseMilitary, PhaseSemester1:
		return true
	}
	return false
}

// Exam reports whether the phase waits on an exam result.
func (p Phase) Exam() bool {
	switch p {
	case PhasePlacement, PhaseMidterm, PhaseCSP, PhaseNOIP, PhaseFinal:
		return true
	}
	return false
}

// eventProbability is the per-week chance of drawing one random event from
// the phase pool.
func (p Phase) eventProbability() float64 {
	switch p {
	case PhaseSummer:
		return 0.8
	case PhaseMilitary:
		return 1.0
	default:
		return 0.4
	}
}
