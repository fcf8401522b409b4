package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GeneralStats are the seven global player stats. Money may go negative,
// health is floored at zero by the weekly drift, everything else is
// unclamped upward.
type GeneralStats struct {
	Mindset    float64
	Experience float64
	Luck       float64
	Romance    float64
	Health     float64
	Money      float64
	Efficiency float64
}

// OIStats are the competition-track skill categories. Each stays >= 0.
type OIStats struct {
	DP     float64
	DS     float64
	Math   float64
	String float64
	Graph  float64
	Misc   float64
}

func (o OIStats) Total() float64 {
	return o.DP + o.DS + o.Math + o.String + o.Graph + o.Misc
}

type Competition string

const (
	CompetitionNone Competition = "None"
	CompetitionOI   Competition = "OI"
)

type LogKind string

const (
	LogInfo    LogKind = "info"
	LogSuccess LogKind = "success"
	LogWarning LogKind = "warning"
	LogError   LogKind = "error"
)

type LogEntry struct {
	Message string
	Kind    LogKind
	Week    int
	Phase   Phase
}

// HistoryEntry records one resolved choice for player review, newest first.
type HistoryEntry struct {
	Phase   Phase
	Week    int
	Event   string
	Choice  string
	Summary string
}

// ExamResult is what the exam collaborator reports back. Scores are taken
// as-is; the rank formula saturates rather than rejecting out-of-range input.
type ExamResult struct {
	Scores        map[SubjectKey]int
	TotalScore    int
	Rank          int
	TotalStudents int
}

// CompetitionResult is a finished CSP/NOIP outcome awaiting or past
// acknowledgment.
type CompetitionResult struct {
	Title string
	Score int
	Award string
}

// Session is the single mutable root of one playthrough. It is mutated only
// through the state machine and the resolution methods; readers get a
// consistent view between calls (single goroutine model).
type Session struct {
	Difficulty Difficulty

	Phase             Phase
	Week              int
	TotalWeeksInPhase int

	Subjects map[SubjectKey]*SubjectStats
	General  GeneralStats
	OI       OIStats

	ActiveStatuses []Status

	EventQueue   []*Event
	CurrentEvent *Event
	EventResult  *ChoiceResult

	TriggeredEvents map[string]bool
	History         []HistoryEntry
	Log             []LogEntry

	CompetitionResults     []CompetitionResult
	PopupCompetitionResult *CompetitionResult
	LastExam               *ExamResult

	SelectedSubjects []SubjectKey
	Competition      Competition
	Club             string
	RomancePartner   string
	ClassName        string

	IsPlaying    bool
	AwaitingClub bool

	IsWeekend           bool
	WeekendActionPoints int
	weekendProcessed    bool
	SleepCount          int

	pendingWeekend *WeekendPreview
	pendingChain   string

	achievements *achievementSet
	rng          *rand.Rand
}

// Config configures a new session. Seed 0 derives the seed from the clock.
type Config struct {
	Difficulty Difficulty
	Custom     *GeneralStats
	Talents    []string
	Seed       int64

	// Achievements is optional; a nil store keeps unlocks in memory only.
	Achievements AchievementStore
}

func (c Config) Validate() error {
	switch c.Difficulty {
	case DifficultyNormal, DifficultyHard, DifficultyReality:
	case DifficultyCustom:
		if c.Custom == nil {
			return fmt.Errorf("custom difficulty requires explicit stats")
		}
	default:
		return fmt.Errorf("invalid difficulty: %s", c.Difficulty)
	}
	if err := validateTalents(c.Talents); err != nil {
		return err
	}
	return nil
}

// NewSession rolls a fresh playthrough: subject aptitudes, difficulty
// preset stats, talents, and the opening goal-selection event.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := seededRNG(seed)

	s := &Session{
		Difficulty:        cfg.Difficulty,
		Phase:             PhaseSummer,
		Week:              1,
		TotalWeeksInPhase: 5,
		Subjects:          make(map[SubjectKey]*SubjectStats, len(AllSubjects)),
		TriggeredEvents:   make(map[string]bool),
		Competition:       CompetitionNone,
		rng:               rng,
	}
	s.achievements = newAchievementSet(cfg.Achievements)

	for _, k := range AllSubjects {
		s.Subjects[k] = &SubjectStats{
			Aptitude: float64(int(rng.Float64()*40) + 60),
			Level:    float64(int(rng.Float64()*10) + 5),
		}
	}

	if cfg.Difficulty == DifficultyCustom {
		s.General = *cfg.Custom
	} else {
		preset, _ := presetFor(cfg.Difficulty)
		s.General = preset.Stats
	}

	if cfg.Difficulty == DifficultyReality {
		s.ActiveStatuses = append(s.ActiveStatuses,
			newStatus("anxious", 4),
			newStatus("debt", 2),
		)
	}

	for _, id := range cfg.Talents {
		t, ok := talentByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown talent: %s", id)
		}
		s.applyEffects(t.Effects)
	}

	s.appendLog("欢迎来到八中。你的高一生活即将开始。", LogInfo)
	s.unlockAchievement("first_blood")

	opening := findEvent("sum_goal_selection")
	s.CurrentEvent = opening
	s.TriggeredEvents[opening.ID] = true
	s.IsPlaying = false

	return s, nil
}

// Progress is phase completion in percent, capped at 100.
func (s *Session) Progress() int {
	if s.TotalWeeksInPhase <= 0 {
		return 0
	}
	p := s.Week * 100 / s.TotalWeeksInPhase
	if p > 100 {
		return 100
	}
	return p
}

func (s *Session) appendLog(message string, kind LogKind) {
	s.Log = append(s.Log, LogEntry{
		Message: message,
		Kind:    kind,
		Week:    s.Week,
		Phase:   s.Phase,
	})
}

func (s *Session) hasStatus(id string) bool {
	for _, st := range s.ActiveStatuses {
		if st.ID == id {
			return true
		}
	}
	return false
}

func (s *Session) removeStatus(id string) {
	kept := s.ActiveStatuses[:0]
	for _, st := range s.ActiveStatuses {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	s.ActiveStatuses = kept
}

// Unlocked exposes the achievement set for display.
func (s *Session) Unlocked() []string {
	return s.achievements.ids()
}

// TakeUnlockFeed drains pending unlock notifications for the toast UI.
func (s *Session) TakeUnlockFeed() []Achievement {
	return s.achievements.takeFeed()
}
