package game

type EventTone string

const (
	TonePositive EventTone = "positive"
	ToneNegative EventTone = "negative"
	ToneNeutral  EventTone = "neutral"
)

type TriggerType string

const (
	TriggerRandom      TriggerType = "RANDOM"
	TriggerFixed       TriggerType = "FIXED"
	TriggerConditional TriggerType = "CONDITIONAL"
)

// Event is one narrative unit offering the player choices. Static events
// live in the registry keyed by ID; generated events (study, flavor) carry
// unique instance IDs and never enter the registry.
type Event struct {
	ID          string
	Title       string
	Description string
	Tone        EventTone
	Trigger     TriggerType
	Once        bool
	Condition   *Condition
	Choices     []Choice

	// DescribeFn overrides Description with state-dependent text (partner
	// name interpolation). Evaluated when the event is enqueued.
	DescribeFn func(s *Session) string
}

// instantiate copies a registry event, resolving state-dependent text.
func (s *Session) instantiate(e *Event) *Event {
	inst := *e
	if e.DescribeFn != nil {
		inst.Description = e.DescribeFn(s)
	}
	return &inst
}

// Choice is one selectable outcome. NextEventID chains to a registry event
// on confirm; effects may also chain dynamically via EffectChain.
type Choice struct {
	Text        string
	NextEventID string
	Effects     []Effect
}

// Condition gates event eligibility against pre-mutation state. Zero-valued
// fields are unset. All set fields must hold; if Any is non-empty at least
// one of its entries must hold as well.
type Condition struct {
	Competition      Competition
	RequirePartner   bool
	RequireNoPartner bool
	MinRomance       float64
	RomanceBelow     float64
	MindsetBelow     float64
	WeekBefore       int
	Chance           float64

	Any []Condition
}

func (c *Condition) holds(s *Session) bool {
	if c == nil {
		return true
	}
	if c.Competition != "" && s.Competition != c.Competition {
		return false
	}
	if c.RequirePartner && s.RomancePartner == "" {
		return false
	}
	if c.RequireNoPartner && s.RomancePartner != "" {
		return false
	}
	if c.MinRomance > 0 && s.General.Romance < c.MinRomance {
		return false
	}
	if c.RomanceBelow > 0 && s.General.Romance >= c.RomanceBelow {
		return false
	}
	if c.MindsetBelow > 0 && s.General.Mindset >= c.MindsetBelow {
		return false
	}
	if c.WeekBefore > 0 && s.Week >= c.WeekBefore {
		return false
	}
	if c.Chance > 0 && s.rng.Float64() >= c.Chance {
		return false
	}
	if len(c.Any) > 0 {
		ok := false
		for i := range c.Any {
			if c.Any[i].holds(s) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

var eventRegistry map[string]*Event

func init() {
	eventRegistry = make(map[string]*Event)
	register := func(events []*Event) {
		for _, e := range events {
			eventRegistry[e.ID] = e
		}
	}
	register(summerEvents())
	register(militaryEvents())
	register(semesterEvents())
	register(baseEvents())
	register(chainedEvents())
	register(fixedEvents())
}

// findEvent returns a registry event by ID, nil if absent.
func findEvent(id string) *Event {
	return eventRegistry[id]
}

// phasePool lists the random-trigger pool for a phase. Only SUMMER,
// MILITARY and SEMESTER_1 have pools.
func phasePool(p Phase) []*Event {
	switch p {
	case PhaseSummer:
		return summerEvents()
	case PhaseMilitary:
		return militaryEvents()
	case PhaseSemester1:
		return semesterEvents()
	default:
		return nil
	}
}

// eligibleEvents filters a pool to events that may fire this week: fixed
// events never fire from the pool, once-events only before their first
// trigger, and conditions are evaluated against pre-mutation state.
func (s *Session) eligibleEvents(pool []*Event) []*Event {
	out := make([]*Event, 0, len(pool))
	for _, e := range pool {
		if e.Trigger == TriggerFixed {
			continue
		}
		if e.Once && s.TriggeredEvents[e.ID] {
			continue
		}
		if !e.Condition.holds(s) {
			continue
		}
		out = append(out, e)
	}
	return out
}
