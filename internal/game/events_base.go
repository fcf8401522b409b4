package game

import "fmt"

// baseEvents are reusable events enqueued by the state machine itself
// rather than drawn from a phase pool.
func baseEvents() []*Event {
	return []*Event{
		{
			ID:          "debt_collection",
			Title:       "债主上门",
			Description: "因为你的负债过高，几个高大的学生拦住了你的去路...",
			Tone:        ToneNegative,
			Choices: []Choice{
				{
					Text: "还钱 (金钱归零)",
					Effects: []Effect{
						{Kind: EffectSetMoney, Money: 0},
						adjustGeneral(GeneralStats{Mindset: -20}),
						logLine("你被迫还清了所有债务（虽然本来就是负的）。", LogWarning),
					},
				},
				{
					Text: "逃跑",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Health: -20, Mindset: -10}),
						logLine("你没跑掉，被揍了一顿。", LogError),
					},
				},
			},
		},
		{
			ID:          "exam_fail_talk",
			Title:       "考后谈话",
			Description: "因为考试成绩太差，班主任找你谈话。",
			Tone:        ToneNegative,
			Choices: []Choice{
				{Text: "虚心接受", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 5})}},
				{Text: "左耳进右耳出", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -2})}},
			},
		},
	}
}

// chainedEvents only ever appear as follow-ups of another event's choice.
func chainedEvents() []*Event {
	return []*Event{
		{
			ID:          "sum_confess_success",
			Title:       "表白成功",
			Description: "对方竟然答应了！你们约定在高中互相鼓励，共同进步。",
			Tone:        TonePositive,
			Choices: []Choice{
				{
					Text: "太棒了",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Mindset: 20, Romance: 20}),
						{Kind: EffectSetPartner, Partner: "TA"},
						addStatus("in_love", 10),
					},
				},
			},
		},
		{
			ID:          "sum_confess_fail",
			Title:       "被发好人卡",
			Description: "“你是个好人，但我现在只想好好学习。”",
			Tone:        ToneNegative,
			Choices: []Choice{
				{Text: "心碎满地", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -20})}},
			},
		},
		{
			ID:          "mil_star_performance",
			Title:       "军训标兵",
			Description: "教官在全连队面前表扬了你。",
			Tone:        TonePositive,
			Choices: []Choice{
				{Text: "倍感光荣", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 10, Experience: 5})}},
			},
		},
		{
			ID:          "evt_red_packet",
			Title:       "新年红包",
			Description: "过年了，亲戚们最关心的果然还是期中考试的成绩...",
			Tone:        TonePositive,
			Choices: []Choice{
				{
					Text: "收下红包",
					Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
						amount := 20.0
						msg := "成绩平平，长辈勉励了几句。"
						switch {
						case s.General.Efficiency >= 25 || s.General.Experience >= 60:
							amount = 80
							msg = "因为表现优异，在这个寒冬你收获颇丰！"
						case s.General.Efficiency >= 15:
							amount = 50
							msg = "表现尚可，拿到了标准的压岁钱。"
						}
						return []Effect{
							adjustGeneral(GeneralStats{Money: amount, Mindset: 5}),
							logLine(fmt.Sprintf("【新年】%s 金钱+%.0f", msg, amount), LogSuccess),
						}
					})},
				},
			},
		},
	}
}

// fixedEvents fire on their scheduled semester week.
func fixedEvents() []*Event {
	return []*Event{
		{
			ID:          "evt_sci_fest",
			Title:       "科技节",
			Description: "一年一度的科技节开始了，全校停课一天。操场上摆满了各个社团和班级的展台。",
			Tone:        TonePositive,
			Trigger:     TriggerFixed,
			Choices: []Choice{
				{
					Text: "参观展览",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Experience: 10, Mindset: 5}),
						logLine("你参观了科技节展览，大开眼界。", LogSuccess),
					},
				},
				{
					Text:    "在教室自习",
					Effects: []Effect{adjustSubjects(3, SubjectMath, SubjectPhysics), adjustGeneral(GeneralStats{Mindset: -5})},
				},
			},
		},
		{
			ID:          "evt_new_year",
			Title:       "元旦联欢会",
			Description: "新年的钟声即将敲响，班级里正如火如荼地举办元旦联欢会。",
			Tone:        TonePositive,
			Trigger:     TriggerFixed,
			Choices: []Choice{
				{
					Text:        "欣赏节目",
					NextEventID: "evt_red_packet",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Mindset: 15, Romance: 2}),
						logLine("你度过了一个愉快的下午。", LogSuccess),
					},
				},
				{
					Text:        "趁乱刷题",
					NextEventID: "evt_red_packet",
					Effects: []Effect{
						adjustSubjects(3, SubjectEnglish, SubjectChinese),
						adjustGeneral(GeneralStats{Mindset: -5, Romance: -5}),
					},
				},
			},
		},
	}
}
