package game

type StatusKind string

const (
	StatusBuff    StatusKind = "BUFF"
	StatusDebuff  StatusKind = "DEBUFF"
	StatusNeutral StatusKind = "NEUTRAL"
)

// Status is a timed modifier instance. Duration is weeks remaining; it is
// decremented every ordinary tick and the instance drops at zero.
type Status struct {
	ID          string
	Name        string
	Description string
	EffectText  string
	Kind        StatusKind
	Duration    int
}

type statusDef struct {
	Name        string
	Description string
	EffectText  string
	Kind        StatusKind
}

var statusDefs = map[string]statusDef{
	"focused": {
		Name: "心流", Description: "你进入了极度专注的状态。",
		EffectText: "每周效率 +2", Kind: StatusBuff,
	},
	"anxious": {
		Name: "焦虑", Description: "对未来的担忧让你无法平静。",
		EffectText: "每周心态 -2", Kind: StatusDebuff,
	},
	"crush": {
		Name: "暗恋", Description: "那个人的身影总是在脑海挥之不去。",
		EffectText: "每周效率 -2，魅力 +2", Kind: StatusNeutral,
	},
	"in_love": {
		Name: "恋爱", Description: "甜，太甜了。",
		EffectText: "每周心态 +5", Kind: StatusBuff,
	},
	"exhausted": {
		Name: "透支", Description: "你需要休息。",
		EffectText: "每周健康 -2", Kind: StatusDebuff,
	},
	"debt": {
		Name: "负债", Description: "身无分文甚至欠了外债，这让你非常焦虑。",
		EffectText: "每周心态 -5，魅力 -3", Kind: StatusDebuff,
	},
	"crush_pending": {
		Name: "恋人未满", Description: "虽然还没捅破窗户纸，但这种暧昧的感觉真好。",
		EffectText: "每周运气 +2，经验 +2", Kind: StatusBuff,
	},
}

func newStatus(id string, duration int) Status {
	def := statusDefs[id]
	return Status{
		ID:          id,
		Name:        def.Name,
		Description: def.Description,
		EffectText:  def.EffectText,
		Kind:        def.Kind,
		Duration:    duration,
	}
}

// tickStatuses decrements durations and drops expired instances.
func (s *Session) tickStatuses() {
	active := make([]Status, 0, len(s.ActiveStatuses))
	for _, st := range s.ActiveStatuses {
		st.Duration--
		if st.Duration > 0 {
			active = append(active, st)
		}
	}
	s.ActiveStatuses = active
}

// applyStatusDeltas applies the fixed per-week stat deltas of every active
// status instance. Instances stack.
func (s *Session) applyStatusDeltas() {
	for _, st := range s.ActiveStatuses {
		switch st.ID {
		case "anxious":
			s.General.Mindset -= 2
		case "exhausted":
			s.General.Health -= 2
		case "focused":
			s.General.Efficiency += 2
		case "in_love":
			s.General.Mindset += 5
		case "debt":
			s.General.Mindset -= 5
			s.General.Romance -= 3
		case "crush_pending":
			s.General.Luck += 2
			s.General.Experience += 2
		case "crush":
			s.General.Efficiency -= 2
			s.General.Romance += 2
		}
	}
}
