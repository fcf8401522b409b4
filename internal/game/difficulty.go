package game

type Difficulty string

const (
	DifficultyNormal  Difficulty = "NORMAL"
	DifficultyHard    Difficulty = "HARD"
	DifficultyReality Difficulty = "REALITY"
	DifficultyCustom  Difficulty = "CUSTOM"
)

type DifficultyPreset struct {
	Difficulty  Difficulty
	Label       string
	Description string
	Stats       GeneralStats
}

// Only REALITY persists achievement unlocks.
func DifficultyPresets() []DifficultyPreset {
	return []DifficultyPreset{
		{
			Difficulty:  DifficultyNormal,
			Label:       "普通",
			Description: "体验相对轻松的高中生活。(属性大幅提升，更易获得高分)",
			Stats: GeneralStats{
				Mindset: 40, Experience: 15, Luck: 45, Romance: 40,
				Health: 80, Money: 80, Efficiency: 14,
			},
		},
		{
			Difficulty:  DifficultyHard,
			Label:       "困难",
			Description: "资源紧张，压力较大。",
			Stats: GeneralStats{
				Mindset: 35, Experience: 10, Luck: 40, Romance: 10,
				Health: 70, Money: 50, Efficiency: 10,
			},
		},
		{
			Difficulty:  DifficultyReality,
			Label:       "现实",
			Description: "这就是真实的人生。只有在此模式下可解锁成就。",
			Stats: GeneralStats{
				Mindset: 30, Experience: 5, Luck: 30, Romance: 5,
				Health: 60, Money: 20, Efficiency: 8,
			},
		},
	}
}

func presetFor(d Difficulty) (DifficultyPreset, bool) {
	for _, p := range DifficultyPresets() {
		if p.Difficulty == d {
			return p, true
		}
	}
	return DifficultyPreset{}, false
}
