package game

type SubjectKey string

const (
	SubjectChinese   SubjectKey = "chinese"
	SubjectMath      SubjectKey = "math"
	SubjectEnglish   SubjectKey = "english"
	SubjectPhysics   SubjectKey = "physics"
	SubjectChemistry SubjectKey = "chemistry"
	SubjectBiology   SubjectKey = "biology"
	SubjectHistory   SubjectKey = "history"
	SubjectGeography SubjectKey = "geography"
	SubjectPolitics  SubjectKey = "politics"
)

// AllSubjects lists the nine subjects in display order.
var AllSubjects = []SubjectKey{
	SubjectChinese, SubjectMath, SubjectEnglish,
	SubjectPhysics, SubjectChemistry, SubjectBiology,
	SubjectHistory, SubjectGeography, SubjectPolitics,
}

// ElectiveSubjects are the six the player picks three of at selection.
var ElectiveSubjects = []SubjectKey{
	SubjectPhysics, SubjectChemistry, SubjectBiology,
	SubjectHistory, SubjectGeography, SubjectPolitics,
}

// CoreSubjects are always examined.
var CoreSubjects = []SubjectKey{SubjectChinese, SubjectMath, SubjectEnglish}

var subjectNames = map[SubjectKey]string{
	SubjectChinese:   "语文",
	SubjectMath:      "数学",
	SubjectEnglish:   "英语",
	SubjectPhysics:   "物理",
	SubjectChemistry: "化学",
	SubjectBiology:   "生物",
	SubjectHistory:   "历史",
	SubjectGeography: "地理",
	SubjectPolitics:  "政治",
}

func (k SubjectKey) Name() string {
	if n, ok := subjectNames[k]; ok {
		return n
	}
	return string(k)
}

// MaxScore is the written-exam ceiling for the subject.
func (k SubjectKey) MaxScore() int {
	switch k {
	case SubjectChinese, SubjectMath, SubjectEnglish:
		return 150
	default:
		return 100
	}
}

// SubjectStats holds one subject's fixed aptitude and its growing level.
// Level never goes below zero.
type SubjectStats struct {
	Aptitude float64
	Level    float64
}
