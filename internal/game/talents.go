package game

import "fmt"

// TalentBudget is the point pool for talent selection. Cursed talents have
// negative cost and refund points.
const TalentBudget = 4

type TalentRarity string

const (
	RarityCommon    TalentRarity = "common"
	RarityRare      TalentRarity = "rare"
	RarityLegendary TalentRarity = "legendary"
	RarityCursed    TalentRarity = "cursed"
)

type Talent struct {
	ID          string
	Name        string
	Description string
	Rarity      TalentRarity
	Cost        int
	Effects     []Effect
}

func Talents() []Talent {
	return []Talent{
		{
			ID: "genius", Name: "天生我才", Description: "全学科天赋+10，效率+5。",
			Rarity: RarityLegendary, Cost: 4,
			Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
				for _, sub := range s.Subjects {
					sub.Aptitude += 10
				}
				return []Effect{adjustGeneral(GeneralStats{Efficiency: 5})}
			})},
		},
		{
			ID: "rich_kid", Name: "家里有矿", Description: "初始金钱+100。",
			Rarity: RarityLegendary, Cost: 4,
			Effects: []Effect{adjustGeneral(GeneralStats{Money: 100})},
		},
		{
			ID: "attractive", Name: "万人迷", Description: "初始魅力+20。",
			Rarity: RarityRare, Cost: 2,
			Effects: []Effect{adjustGeneral(GeneralStats{Romance: 20})},
		},
		{
			ID: "oi_nerd", Name: "机房幽灵", Description: "OI各项能力初始+10，但魅力-10。",
			Rarity: RarityRare, Cost: 3,
			Effects: []Effect{
				adjustOI(OIStats{DP: 10, DS: 10, Math: 10, String: 10, Graph: 10, Misc: 10}),
				dynamicEffect(func(s *Session) []Effect {
					drop := -10.0
					if s.General.Romance < 10 {
						drop = -s.General.Romance
					}
					return []Effect{adjustGeneral(GeneralStats{Romance: drop})}
				}),
			},
		},
		{
			ID: "lucky_dog", Name: "锦鲤附体", Description: "初始运气+30。",
			Rarity: RarityRare, Cost: 2,
			Effects: []Effect{adjustGeneral(GeneralStats{Luck: 30})},
		},
		{
			ID: "healthy", Name: "体育特长", Description: "初始健康+20。",
			Rarity: RarityCommon, Cost: 1,
			Effects: []Effect{adjustGeneral(GeneralStats{Health: 20})},
		},
		{
			ID: "optimist", Name: "乐天派", Description: "初始心态+20。",
			Rarity: RarityCommon, Cost: 1,
			Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 20})},
		},
		{
			ID: "poor_student", Name: "寒门学子", Description: "初始金钱-50，但意志坚定（心态+10，效率+2）。",
			Rarity: RarityCommon, Cost: 1,
			Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
				drop := -50.0
				if s.General.Money < 50 {
					drop = -s.General.Money
				}
				return []Effect{adjustGeneral(GeneralStats{Money: drop, Mindset: 10, Efficiency: 2})}
			})},
		},
		{
			ID: "poverty", Name: "家徒四壁", Description: "初始金钱归零，且背负100元债务。",
			Rarity: RarityCursed, Cost: -2,
			Effects: []Effect{{Kind: EffectSetMoney, Money: -100}},
		},
		{
			ID: "frail", Name: "体弱多病", Description: "初始健康降低，稍不注意就会生病。",
			Rarity: RarityCursed, Cost: -2,
			Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
				return []Effect{adjustGeneral(GeneralStats{Health: 20 - s.General.Health})}
			})},
		},
		{
			ID: "loner", Name: "孤僻", Description: "初始魅力归零，很难建立人际关系。",
			Rarity: RarityCursed, Cost: -1,
			Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
				return []Effect{adjustGeneral(GeneralStats{Romance: -s.General.Romance})}
			})},
		},
		{
			ID: "dumb", Name: "笨鸟先飞", Description: "效率-7，学习非常吃力。",
			Rarity: RarityCursed, Cost: -3,
			Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
				drop := -7.0
				if s.General.Efficiency-7 < 1 {
					drop = 1 - s.General.Efficiency
				}
				return []Effect{adjustGeneral(GeneralStats{Efficiency: drop})}
			})},
		},
		{
			ID: "bad_luck", Name: "非酋", Description: "运气-20，喝凉水都塞牙。",
			Rarity: RarityCursed, Cost: -1,
			Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
				drop := -20.0
				if s.General.Luck < 20 {
					drop = -s.General.Luck
				}
				return []Effect{adjustGeneral(GeneralStats{Luck: drop})}
			})},
		},
	}
}

func talentByID(id string) (Talent, bool) {
	for _, t := range Talents() {
		if t.ID == id {
			return t, true
		}
	}
	return Talent{}, false
}

func validateTalents(ids []string) error {
	cost := 0
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("duplicate talent: %s", id)
		}
		seen[id] = true
		t, ok := talentByID(id)
		if !ok {
			return fmt.Errorf("unknown talent: %s", id)
		}
		cost += t.Cost
	}
	if cost > TalentBudget {
		return fmt.Errorf("talent cost %d exceeds budget %d", cost, TalentBudget)
	}
	return nil
}
