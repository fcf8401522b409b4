package game

import "fmt"

// semesterEvents is the SEMESTER_1 random pool. Confession odds scale with
// charm and luck; betrayal only threatens fading relationships.
func semesterEvents() []*Event {
	return []*Event{
		{
			ID:          "evt_confession_generic",
			Title:       "心动的信号",
			Description: "在校园的走廊里，你又遇到了那个让你心动的人。今天的阳光正好，氛围也不错。",
			Tone:        TonePositive,
			Trigger:     TriggerConditional,
			Condition:   &Condition{RequireNoPartner: true, MinRomance: 20},
			Choices: []Choice{
				{
					Text: "勇敢表白！",
					Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
						chance := 0.3 + (s.General.Romance-20)*0.02 + (s.General.Luck-50)*0.01
						return []Effect{branch(chance,
							[]Effect{chainTo("sum_confess_success")},
							[]Effect{chainTo("sum_confess_fail")},
						)}
					})},
				},
				{Text: "再等等...", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -2})}},
			},
		},
		{
			ID:          "evt_first_date",
			Title:       "初次约会",
			Description: "你们决定这周末去西单逛逛。这是你们确立关系后的第一次正式约会。",
			Tone:        TonePositive,
			Trigger:     TriggerConditional,
			Once:        true,
			Condition:   &Condition{RequirePartner: true, MinRomance: 31},
			Choices: []Choice{
				{
					Text: "精心准备",
					Effects: []Effect{branch(0.7,
						[]Effect{
							adjustGeneral(GeneralStats{Mindset: 25, Romance: 15, Money: -40}),
							addStatus("in_love", 8),
							logLine("约会非常完美！你们的关系更进一步。", LogSuccess),
						},
						[]Effect{
							adjustGeneral(GeneralStats{Mindset: -10, Money: -40}),
							logLine("约会中出了一些小尴尬，不过没关系。", LogInfo),
						},
					)},
				},
			},
		},
		{
			ID:    "evt_fight",
			Title: "争吵",
			Tone:  ToneNegative,
			DescribeFn: func(s *Session) string {
				other := s.RomancePartner
				if other == "" {
					other = "父母"
				}
				return fmt.Sprintf("你和%s发生了一些不愉快，气氛降到了冰点。", other)
			},
			Condition: &Condition{Any: []Condition{
				{RequirePartner: true},
				{Chance: 0.5},
			}},
			Choices: []Choice{
				{
					Text: "主动道歉",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Mindset: -5, Romance: 2}),
						logLine("退一步海阔天空。", LogInfo),
					},
				},
				{
					Text: "冷战",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Mindset: -10, Romance: -5}),
						addStatus("anxious", 2),
					},
				},
			},
		},
		{
			ID:          "evt_betrayal",
			Title:       "背叛",
			Description: "你发现TA最近总是躲着你回消息，直到你看到了不该看到的一幕。",
			Tone:        ToneNegative,
			Once:        true,
			Condition:   &Condition{RequirePartner: true, RomanceBelow: 35},
			Choices: []Choice{
				{
					Text: "分手！",
					Effects: []Effect{
						{Kind: EffectClearPartner},
						adjustGeneral(GeneralStats{Mindset: -40, Health: -10}),
						{Kind: EffectRemoveStatus, StatusID: "in_love"},
						logLine("这段感情画上了句号。", LogError),
					},
				},
			},
		},
		{
			ID:          "evt_oi_steal_learn",
			Title:       "卷王时刻",
			Description: "在其他人摸鱼摆烂的时候，你却在偷偷学习。这样的学习方式也许会带来一些效果？",
			Tone:        ToneNeutral,
			Condition:   &Condition{Competition: CompetitionOI},
			Choices: []Choice{
				{Text: "偷学动态规划", Effects: []Effect{adjustOI(OIStats{DP: 1}), adjustGeneral(GeneralStats{Experience: 1})}},
				{Text: "偷学被嘲讽", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -1})}},
				{Text: "不卷了，休息", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 1}), addSleep()}},
			},
		},
		{
			ID:          "evt_oi_gaming",
			Title:       "机房隔膜",
			Description: "竞赛生的快乐来源之一，当然是打隔膜(Generals/Majsoul)。你和你的朋友们一起在机房打隔膜。",
			Tone:        ToneNeutral,
			Condition:   &Condition{Competition: CompetitionOI},
			Choices: []Choice{
				{Text: "大杀四方", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 2, Experience: -1})}},
				{Text: "被虐了", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -1})}},
				{Text: "被教练抓包", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -5}), logLine("教练宣布机房一周内禁止娱乐。", LogWarning)}},
			},
		},
		{
			ID:          "evt_oi_anxiety",
			Title:       "精神内耗",
			Description: "长期的高压生活，你总会陷入焦虑。一次次的挫折后，你开始怀疑自己是否真的适合 OI。",
			Tone:        ToneNegative,
			Condition:   &Condition{Competition: CompetitionOI, MindsetBelow: 40},
			Choices: []Choice{
				{Text: "思考人生意义", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -1})}},
				{
					Text: "选择遗忘",
					Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
						drop := -2.0
						if s.General.Experience < 2 {
							drop = -s.General.Experience
						}
						return []Effect{
							adjustGeneral(GeneralStats{Experience: drop}),
							logLine("你选择性遗忘了一些痛苦的算法...", LogInfo),
						}
					})},
				},
			},
		},
		{
			ID:          "oi_after_school",
			Title:       "课后加练",
			Description: "你咋又去机房了？？？",
			Tone:        ToneNeutral,
			Trigger:     TriggerConditional,
			Condition:   &Condition{Competition: CompetitionOI},
			Choices: []Choice{
				{
					Text: "切一道难题",
					Effects: []Effect{
						adjustOI(OIStats{DS: 1, Math: 1}),
						adjustGeneral(GeneralStats{Health: -8, Experience: 5}),
						branch(0.3, []Effect{addStatus("focused", 2)}, nil),
					},
				},
				{
					Text: "整理学习笔记",
					Effects: []Effect{
						adjustGeneral(GeneralStats{Mindset: 5, Experience: 10}),
						adjustOI(OIStats{Misc: 1}),
					},
				},
			},
		},
		{
			ID:          "oi_bug_hell",
			Title:       "调不出的Bug",
			Description: "你的代码在本地跑得飞起，提交上去全是红色。你已经盯着屏幕两个小时了。",
			Tone:        ToneNegative,
			Condition:   &Condition{Competition: CompetitionOI},
			Choices: []Choice{
				{Text: "再改一遍", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -15, Experience: 5, Health: -5}), adjustOI(OIStats{Misc: 1})}},
				{Text: "求助学长", Effects: []Effect{adjustGeneral(GeneralStats{Romance: 5, Experience: 8}), adjustOI(OIStats{Misc: 1})}},
			},
		},
		{
			ID:          "oi_mock_win",
			Title:       "模拟赛AK",
			Description: "今天的校内模拟赛，你居然全场第一个AK（全部通过）。",
			Tone:        TonePositive,
			Condition:   &Condition{Competition: CompetitionOI},
			Choices: []Choice{
				{Text: "信心爆棚", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 30, Luck: 10})}},
			},
		},
		{
			ID:          "oi_temple_visit",
			Title:       "赛前迷信",
			Description: "CSP考试前，你打算换一个绿色的壁纸，甚至想去孔庙拜拜。",
			Tone:        ToneNeutral,
			Once:        true,
			Condition:   &Condition{Competition: CompetitionOI, WeekBefore: 10},
			Choices: []Choice{
				{Text: "求个好运", Effects: []Effect{adjustGeneral(GeneralStats{Luck: 15, Money: -5})}},
			},
		},
		{
			ID:          "s1_library",
			Title:       "图书馆的宁静",
			Description: "八中图书馆是寻找灵感的好地方。",
			Tone:        TonePositive,
			Choices: []Choice{
				{Text: "高效自修", Effects: []Effect{adjustSubjects(3, SubjectChinese, SubjectEnglish), adjustGeneral(GeneralStats{Efficiency: 1})}},
			},
		},
		{
			ID:          "s1_teacher_talk",
			Title:       "班主任的谈话",
			Description: "班主任把你叫到办公室，询问最近的学习状态。",
			Tone:        ToneNeutral,
			Choices: []Choice{
				{Text: "虚心请教", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 5, Efficiency: 2})}},
				{Text: "沉默不语", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: -5})}},
			},
		},
	}
}
