package game

type Achievement struct {
	ID          string
	Title       string
	Description string
	Rarity      TalentRarity
}

func AchievementDefs() map[string]Achievement {
	return map[string]Achievement{
		"first_blood":    {ID: "first_blood", Title: "初入八中", Description: "成功开始你的高中生活。", Rarity: RarityCommon},
		"nerd":           {ID: "nerd", Title: "卷王", Description: "单科成绩达到满分。", Rarity: RarityRare},
		"romance_master": {ID: "romance_master", Title: "海王", Description: "魅力值达到95以上。", Rarity: RarityLegendary},
		"oi_god":         {ID: "oi_god", Title: "???", Description: "获得五大竞赛省一。", Rarity: RarityLegendary},
		"survival":       {ID: "survival", Title: "极限生存", Description: "在健康低于10的情况下完成一个学期。", Rarity: RarityRare},
		"rich":           {ID: "rich", Title: "小金库", Description: "持有金钱超过200。", Rarity: RarityCommon},
		"in_debt":        {ID: "in_debt", Title: "负债累累", Description: "负债超过250。", Rarity: RarityCommon},
		"top_rank":       {ID: "top_rank", Title: "一览众山小", Description: "在大型考试中获得年级第一。", Rarity: RarityLegendary},
		"bottom_rank":    {ID: "bottom_rank", Title: "旷世奇才", Description: "在大型考试中获得年级倒数第一。", Rarity: RarityRare},
		"sleep_god":      {ID: "sleep_god", Title: "睡神", Description: "累计选择20次以上睡觉事件且获得年级前50。", Rarity: RarityLegendary},
	}
}

// AchievementStore persists the unlocked set across sessions. Implemented
// by the sqlite store; a nil store keeps unlocks in memory only.
type AchievementStore interface {
	Load() ([]string, error)
	Save(ids []string) error
}

type achievementSet struct {
	unlocked map[string]bool
	order    []string
	feed     []Achievement
	store    AchievementStore
}

func newAchievementSet(store AchievementStore) *achievementSet {
	set := &achievementSet{unlocked: make(map[string]bool), store: store}
	if store != nil {
		ids, err := store.Load()
		if err == nil {
			for _, id := range ids {
				if !set.unlocked[id] {
					set.unlocked[id] = true
					set.order = append(set.order, id)
				}
			}
		}
	}
	return set
}

func (a *achievementSet) ids() []string {
	return append([]string(nil), a.order...)
}

func (a *achievementSet) takeFeed() []Achievement {
	feed := a.feed
	a.feed = nil
	return feed
}

// unlockAchievement is idempotent and only active under REALITY.
func (s *Session) unlockAchievement(id string) {
	if s.Difficulty != DifficultyReality {
		return
	}
	def, ok := AchievementDefs()[id]
	if !ok {
		return
	}
	set := s.achievements
	if set.unlocked[id] {
		return
	}
	set.unlocked[id] = true
	set.order = append(set.order, id)
	set.feed = append(set.feed, def)
	s.appendLog("解锁成就：【"+def.Title+"】", LogSuccess)
	if set.store != nil {
		// Persistence failures never interrupt the run.
		_ = set.store.Save(set.ids())
	}
}
