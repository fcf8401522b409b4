package game

import (
	"fmt"

	"github.com/google/uuid"
)

// generateStudyEvent builds the weekly in-class event around a random
// subject from the core three plus the player's electives.
func (s *Session) generateStudyEvent() *Event {
	pool := append([]SubjectKey{}, CoreSubjects...)
	pool = append(pool, s.SelectedSubjects...)
	subject := pool[s.rng.IntN(len(pool))]

	return &Event{
		ID:          "study_weekly_" + uuid.NewString(),
		Title:       fmt.Sprintf("%s课的抉择", subject.Name()),
		Description: fmt.Sprintf("这节是%s课，老师讲的内容似乎有点催眠，或者...有点太难了？", subject.Name()),
		Tone:        ToneNeutral,
		Choices: []Choice{
			{
				Text: "认真听讲",
				Effects: []Effect{
					{Kind: EffectAdjustSubjects, Subjects: []SubjectKey{subject}, SubjectDelta: 2, ScaleWithEfficiency: true},
					adjustGeneral(GeneralStats{Mindset: -1}),
				},
			},
			{
				Text: "偷偷刷题",
				Effects: []Effect{
					{Kind: EffectAdjustSubjects, Subjects: []SubjectKey{subject}, SubjectDelta: 4, ScaleWithEfficiency: true},
					adjustGeneral(GeneralStats{Health: -2}),
				},
			},
			{
				Text: "补觉",
				Effects: []Effect{
					adjustGeneral(GeneralStats{Health: 5, Mindset: 2, Efficiency: 1}),
					adjustSubjects(-1, subject),
					addSleep(),
				},
			},
		},
	}
}

var dateLocations = []string{"西单", "北海公园", "电影院", "国家图书馆", "什刹海"}

// generateFlavorEvent draws one slice-of-life event. A partner pulls a date
// event a quarter of the time; rare money events cut in ahead of the pool.
func (s *Session) generateFlavorEvent() *Event {
	if s.RomancePartner != "" && s.rng.Float64() < 0.25 {
		loc := dateLocations[s.rng.IntN(len(dateLocations))]
		return &Event{
			ID:          "evt_date_" + uuid.NewString(),
			Title:       "甜蜜约会",
			Description: fmt.Sprintf("周末到了，%s约你去%s逛逛。", s.RomancePartner, loc),
			Tone:        TonePositive,
			Choices: []Choice{
				{
					Text: "欣然前往",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Money: -30, Romance: 5, Mindset: 10}),
						addStatus("in_love", 2),
					},
				},
				{Text: "我要学习", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -5, Romance: -5})}},
			},
		}
	}

	if s.rng.Float64() < 0.05 {
		return &Event{
			ID:          "evt_lost_card_" + uuid.NewString(),
			Title:       "饭卡去哪了",
			Description: "中午去食堂打饭时，你摸遍了口袋也没找到饭卡。",
			Tone:        ToneNegative,
			Choices: []Choice{
				{Text: "借同学的刷", Effects: []Effect{adjustGeneral(GeneralStats{Romance: 2, Money: -15})}},
				{Text: "补办一张", Effects: []Effect{adjustGeneral(GeneralStats{Money: -50, Mindset: -5})}},
			},
		}
	}

	if s.General.Luck > 60 && s.rng.Float64() < 0.05 {
		return &Event{
			ID:          "evt_pickup_money_" + uuid.NewString(),
			Title:       "意外之财",
			Description: "你在操场的草坪上发现了一张50元纸币，周围没有人。",
			Tone:        TonePositive,
			Choices: []Choice{
				{
					Text: "捡起来 (+50金钱)",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Money: 50, Luck: -5}),
						logLine("运气消耗了一点，但钱包鼓了。", LogSuccess),
					},
				},
			},
		}
	}

	builders := []func() *Event{
		s.flavorRain,
		s.flavorHomework,
		s.flavorSnow,
		s.flavorBreakTime,
		s.flavorDinner,
		s.flavorHomeworkService,
		s.flavorHelpCard,
	}
	e := builders[s.rng.IntN(len(builders))]()
	e.ID = "flavor_" + uuid.NewString()
	return e
}

func (s *Session) flavorRain() *Event {
	e := &Event{
		Title:       "突如其来的雨",
		Description: "放学时，天空突然下起了倾盆大雨。",
		Tone:        ToneNeutral,
	}
	if s.RomancePartner != "" {
		e.Choices = append(e.Choices, Choice{
			Text: fmt.Sprintf("和%s共撑一把伞", s.RomancePartner),
			Effects: []Effect{
				adjustGeneral(GeneralStats{Romance: 5, Mindset: 10}),
				addStatus("in_love", 2),
			},
		})
	}
	e.Choices = append(e.Choices,
		Choice{Text: "冒雨跑回去", Effects: []Effect{adjustGeneral(GeneralStats{Health: -10, Mindset: -5})}},
		Choice{Text: "在便利店买把伞", Effects: []Effect{adjustGeneral(GeneralStats{Money: -20})}},
	)
	return e
}

func (s *Session) flavorHomework() *Event {
	return &Event{
		Title:       "作业如山",
		Description: "今天的作业量异常的大，各科老师仿佛商量好了一样。",
		Tone:        ToneNegative,
		Choices: []Choice{
			{
				Text: "熬夜写完",
				Effects: []Effect{
					adjustGeneral(GeneralStats{Health: -15, Efficiency: -2}),
					adjustSubjects(3, SubjectMath, SubjectEnglish),
				},
			},
			{Text: "抄作业", Effects: []Effect{adjustGeneral(GeneralStats{Experience: 5, Luck: -5})}},
		},
	}
}

func (s *Session) flavorSnow() *Event {
	e := &Event{
		Title:       "瑞雪兆丰年",
		Description: "北京下雪了，操场上一片白茫茫。",
		Tone:        TonePositive,
	}
	if s.RomancePartner != "" {
		e.Choices = append(e.Choices, Choice{
			Text: fmt.Sprintf("和%s在雪中漫步", s.RomancePartner),
			Effects: []Effect{
				adjustGeneral(GeneralStats{Romance: 10, Mindset: 15}),
				addStatus("in_love", 3),
			},
		})
	}
	e.Choices = append(e.Choices,
		Choice{Text: "打雪仗！", Effects: []Effect{adjustGeneral(GeneralStats{Health: 5, Mindset: 10})}},
		Choice{Text: "太冷了，回班", Effects: []Effect{adjustGeneral(GeneralStats{Health: -2})}},
	)
	return e
}

func (s *Session) flavorBreakTime() *Event {
	return &Event{
		Title:       "难得的休息",
		Description: "有一节自习课，老师还没来。你打算怎么打发时间？",
		Tone:        ToneNeutral,
		Choices: []Choice{
			{Text: "刷B站", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 5, Efficiency: -1})}},
			{Text: "趴着休息", Effects: []Effect{adjustGeneral(GeneralStats{Health: 3}), addSleep()}},
			{Text: "和周围同学聊天", Effects: []Effect{adjustGeneral(GeneralStats{Romance: 3, Experience: 2})}},
		},
	}
}

func (s *Session) flavorDinner() *Event {
	return &Event{
		Title:       "周末聚餐",
		Description: "几个要好的同学提议周末去西单大悦城聚餐。",
		Tone:        TonePositive,
		Choices: []Choice{
			{Text: "AA制走起 (-30金钱)", Effects: []Effect{adjustGeneral(GeneralStats{Money: -30, Mindset: 10, Romance: 5})}},
			{Text: "囊中羞涩，不去了", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -2})}},
		},
	}
}

func (s *Session) flavorHomeworkService() *Event {
	return &Event{
		Title:       "代写作业",
		Description: "隔壁班的同学想花钱找人代写数学作业。",
		Tone:        ToneNeutral,
		Choices: []Choice{
			{
				Text: "接单 (+20金钱)",
				Effects: []Effect{branch(0.4,
					[]Effect{
						adjustGeneral(GeneralStats{Mindset: -10, Efficiency: -2}),
						logLine("惨！被老师发现了，钱没挣到还挨了顿骂。", LogError),
					},
					[]Effect{adjustGeneral(GeneralStats{Money: 20, Efficiency: -1})},
				)},
			},
			{Text: "严词拒绝", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 2})}},
		},
	}
}

func (s *Session) flavorHelpCard() *Event {
	return &Event{
		Title:       "忘带饭卡",
		Description: "排队打饭时，前面的同学发现忘带饭卡了，正尴尬地四处张望。",
		Tone:        ToneNeutral,
		Choices: []Choice{
			{
				Text: "帮TA刷一下",
				Effects: []Effect{
					adjustGeneral(GeneralStats{Money: 10, Romance: 1}),
					logLine("同学非常感激，转了你红包还多给了点。", LogSuccess),
				},
			},
			{Text: "假装没看见", Effects: []Effect{adjustGeneral(GeneralStats{Experience: 1})}},
		},
	}
}
