package game

import "fmt"

// Club is joined once at week 2 of the semester and applies its effect
// every fourth week as club activity.
type Club struct {
	ID          string
	Name        string
	Description string
	EffectText  string
	Effects     []Effect
}

func Clubs() []Club {
	return []Club{
		{
			ID: "rap", Name: "说唱社", Description: "Real Talk, Real Life.", EffectText: "魅力++, 英语+, 经验+",
			Effects: []Effect{adjustGeneral(GeneralStats{Romance: 3, Experience: 2}), adjustSubjects(1, SubjectEnglish)},
		},
		{
			ID: "dance", Name: "街舞社", Description: "挥洒汗水，舞动青春。", EffectText: "健康++, 魅力++, 心态+",
			Effects: []Effect{adjustGeneral(GeneralStats{Health: 3, Romance: 3, Mindset: 2})},
		},
		{
			ID: "social_science", Name: "社会科学研学社", Description: "研究社会问题，关注人类命运。", EffectText: "政治++, 历史++, 经验+",
			Effects: []Effect{adjustSubjects(2, SubjectPolitics, SubjectHistory), adjustGeneral(GeneralStats{Experience: 2})},
		},
		{
			ID: "mun", Name: "模拟联合国", Description: "西装革履，纵横捭阖。", EffectText: "英语++, 政治+, 魅力+",
			Effects: []Effect{adjustSubjects(2, SubjectEnglish, SubjectPolitics), adjustGeneral(GeneralStats{Romance: 2})},
		},
		{
			ID: "touhou", Name: "东方Project社", Description: "此生无悔入东方，来世愿生幻想乡。", EffectText: "心态++, 运气+, 认识同好",
			Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 4, Luck: 1})},
		},
		{
			ID: "astronomy", Name: "南斗天文社", Description: "仰望星空，脚踏实地。", EffectText: "物理++, 地理+, 心态+",
			Effects: []Effect{adjustSubjects(2, SubjectPhysics, SubjectGeography), adjustGeneral(GeneralStats{Mindset: 2})},
		},
		{
			ID: "math_research", Name: "大数研究社", Description: "探索数学的奥秘。", EffectText: "数学+++, 逻辑+",
			Effects: []Effect{adjustSubjects(4, SubjectMath)},
		},
		{
			ID: "ttrpg", Name: "跑团社", Description: "在龙与地下城的世界里冒险。", EffectText: "运气++, 心态++, 经验+",
			Effects: []Effect{adjustGeneral(GeneralStats{Luck: 3, Mindset: 3, Experience: 1})},
		},
		{
			ID: "literature", Name: "文学社", Description: "以文会友，激扬文字。", EffectText: "语文++, 历史+, 心态+",
			Effects: []Effect{adjustSubjects(2, SubjectChinese, SubjectHistory), adjustGeneral(GeneralStats{Mindset: 2})},
		},
		{
			ID: "otaku", Name: "御宅社", Description: "二次元的避风港。", EffectText: "心态+++, 宅属性+",
			Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 5, Health: -1})},
		},
		{
			ID: "anime", Name: "动漫社", Description: "一起补番，一起吐槽。", EffectText: "心态++, 魅力+",
			Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 4, Romance: 1})},
		},
	}
}

func clubByID(id string) (Club, bool) {
	for _, c := range Clubs() {
		if c.ID == id {
			return c, true
		}
	}
	return Club{}, false
}

// ChooseClub resolves the club-selection pause at week 2.
func (s *Session) ChooseClub(id string) error {
	if !s.AwaitingClub {
		return fmt.Errorf("not awaiting a club choice")
	}
	c, ok := clubByID(id)
	if !ok {
		return fmt.Errorf("unknown club: %s", id)
	}
	s.Club = c.ID
	s.AwaitingClub = false
	s.IsPlaying = true
	s.appendLog(fmt.Sprintf("你加入了【%s】。", c.Name), LogSuccess)
	return nil
}
