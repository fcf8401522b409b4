package game

import "fmt"

// Item is a shop entry. The price is baked into its effects; money may go
// negative, debt is the deterrent.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Effects     []Effect
}

func ShopItems() []Item {
	return []Item{
		{
			ID: "red_bull", Name: "红牛", Description: "精力充沛！效率+2，健康-1。", Price: 15,
			Effects: []Effect{adjustGeneral(GeneralStats{Efficiency: 2, Health: -1, Money: -15})},
		},
		{
			ID: "coffee", Name: "瑞幸冰美式", Description: "提神醒脑。心态+3，效率+1。", Price: 20,
			Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 3, Efficiency: 1, Money: -20})},
		},
		{
			ID: "five_three", Name: "五年高考三年模拟", Description: "刷题神器。全科水平+2，心态-3。", Price: 45,
			Effects: []Effect{
				adjustSubjects(2, SubjectChinese, SubjectMath, SubjectEnglish, SubjectPhysics, SubjectChemistry, SubjectBiology),
				adjustGeneral(GeneralStats{Mindset: -3, Money: -45}),
			},
		},
		{
			ID: "game_skin", Name: "游戏皮肤", Description: "虽然不能变强，但心情变好了。心态+8。", Price: 68,
			Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 8, Money: -68})},
		},
		{
			ID: "flowers", Name: "鲜花", Description: "送给心仪的人。魅力+5，若有对象则大幅提升关系。", Price: 50,
			Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
				mood := 0.0
				if s.RomancePartner != "" {
					mood = 5
				}
				return []Effect{adjustGeneral(GeneralStats{Romance: 5, Money: -50, Mindset: mood})}
			})},
		},
		{
			ID: "algo_book", Name: "算法导论", Description: "厚得可以当枕头。OI能力全面+2。", Price: 80,
			Effects: []Effect{
				adjustOI(OIStats{DP: 2, DS: 2, Math: 2, Graph: 2, String: 2, Misc: 2}),
				adjustGeneral(GeneralStats{Money: -80}),
			},
		},
		{
			ID: "gym_card", Name: "健身卡", Description: "强身健体。健康+15。", Price: 100,
			Effects: []Effect{adjustGeneral(GeneralStats{Health: 15, Money: -100})},
		},
	}
}

// BuyItem applies an item's effects. It is rejected while an event, exam or
// weekend interaction is blocking.
func (s *Session) BuyItem(id string) error {
	if s.Phase.Terminal() {
		return fmt.Errorf("the run is over")
	}
	if s.CurrentEvent != nil || s.IsWeekend || s.PopupCompetitionResult != nil {
		return fmt.Errorf("cannot shop right now")
	}
	for _, item := range ShopItems() {
		if item.ID == id {
			s.applyEffects(item.Effects)
			s.appendLog(fmt.Sprintf("你购买了【%s】。", item.Name), LogInfo)
			return nil
		}
	}
	return fmt.Errorf("unknown item: %s", id)
}
