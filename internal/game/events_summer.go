package game

// summerEvents is the SUMMER pool. sum_goal_selection is fixed to the very
// first week and never drawn randomly.
func summerEvents() []*Event {
	return []*Event{
		{
			ID:          "sum_goal_selection",
			Title:       "暑假的抉择",
			Description: "在正式开始高中生活前，你需要决定这五周的主攻方向。",
			Tone:        ToneNeutral,
			Trigger:     TriggerFixed,
			Once:        true,
			Choices: []Choice{
				{
					Text: "信息竞赛(OI)",
					Effects: []Effect{
						{Kind: EffectSetCompetition, Competition: CompetitionOI},
						logLine("你选择了信息竞赛(OI)。注意：这条线会丧失很多普通事件，且周末自由时间减少", LogWarning),
						adjustGeneral(GeneralStats{Experience: 10}),
						adjustOI(OIStats{Misc: 5}),
					},
				},
				{
					Text: "专注课内综合",
					Effects: []Effect{
						{Kind: EffectSetCompetition, Competition: CompetitionNone},
						adjustGeneral(GeneralStats{Efficiency: 2}),
					},
				},
			},
		},
		{
			ID:          "sum_city_walk",
			Title:       "漫步京城",
			Description: "去学校周边转转，顺便买件衣服发个朋友圈。",
			Tone:        TonePositive,
			Choices: []Choice{
				{
					Text:    "拍照打卡 (-2金钱)",
					Effects: []Effect{adjustGeneral(GeneralStats{Money: -2, Experience: 2, Romance: 1})},
				},
				{
					Text: "Citywalk",
					Effects: []Effect{branch(0.2,
						[]Effect{adjustGeneral(GeneralStats{Romance: 1, Experience: 2, Mindset: 1})},
						[]Effect{adjustGeneral(GeneralStats{Mindset: 2, Experience: 1})},
					)},
				},
			},
		},
		{
			ID:          "sum_water_group",
			Title:       "新生群潜水",
			Description: "你加入了2028届八中新生群。群里消息99+，有人在爆照，有人在装弱，似乎还有学长学姐。",
			Tone:        ToneNeutral,
			Choices: []Choice{
				{Text: "膜拜大佬", Effects: []Effect{adjustGeneral(GeneralStats{Romance: 0.5, Experience: 2, Mindset: -2})}},
				{Text: "龙王喷水", Effects: []Effect{adjustGeneral(GeneralStats{Romance: 2, Mindset: 3, Experience: -1})}},
				{Text: "潜水观察", Effects: []Effect{adjustGeneral(GeneralStats{Experience: 1})}},
			},
		},
		{
			ID:          "sum_preview",
			Title:       "预习衔接课程",
			Description: "你翻开了崭新的高中教材。看着厚厚的《必修一》，你决定...",
			Tone:        ToneNeutral,
			Choices: []Choice{
				{
					Text: "报名衔接班 (-5金钱)",
					Effects: []Effect{
						adjustSubjects(2, SubjectMath, SubjectPhysics, SubjectChemistry, SubjectEnglish),
						adjustGeneral(GeneralStats{Money: -5, Experience: 4, Mindset: -1}),
					},
				},
				{
					Text: "在家自学",
					Effects: []Effect{dynamicEffect(func(s *Session) []Effect {
						if s.General.Efficiency > 11 {
							return []Effect{
								adjustSubjects(2, SubjectMath, SubjectPhysics),
								adjustGeneral(GeneralStats{Experience: 3, Mindset: 2}),
							}
						}
						return []Effect{
							adjustGeneral(GeneralStats{Efficiency: -1, Mindset: -2, Experience: 1}),
							logLine("效率太低，看着书睡着了...", LogWarning),
							addSleep(),
						}
					})},
				},
				{
					Text: "看B站网课",
					Effects: []Effect{branch(0.7,
						[]Effect{{Kind: EffectAdjustSubjects, AllSubjects: true, SubjectDelta: 0.5}, adjustGeneral(GeneralStats{Experience: 1})},
						[]Effect{adjustGeneral(GeneralStats{Efficiency: -2, Mindset: 1}), logLine("看着看着点开了游戏视频...", LogWarning)},
					)},
				},
			},
		},
		{
			ID:          "sum_math_bridge",
			Title:       "暑期数学衔接班",
			Description: "老师正在讲授高一函数的预备知识，这对于高中数学至关重要。",
			Tone:        ToneNeutral,
			Choices: []Choice{
				{Text: "全神贯注", Effects: []Effect{adjustSubjects(8, SubjectMath), adjustGeneral(GeneralStats{Mindset: -3})}},
				{Text: "随便听听", Effects: []Effect{adjustSubjects(2, SubjectMath), adjustGeneral(GeneralStats{Mindset: 2})}},
			},
		},
		{
			ID:          "sum_english_camp",
			Title:       "英语集训",
			Description: "为了适应高中的词汇量，你参加了为期一周的英语集训。",
			Tone:        ToneNeutral,
			Choices: []Choice{
				{Text: "狂背单词", Effects: []Effect{adjustSubjects(8, SubjectEnglish), adjustGeneral(GeneralStats{Health: -2})}},
				{Text: "看美剧练习", Effects: []Effect{adjustSubjects(4, SubjectEnglish), adjustGeneral(GeneralStats{Mindset: 5})}},
			},
		},
		{
			ID:          "sum_physics_intro",
			Title:       "物理前沿讲座",
			Description: "你被拉去听一场科普讲座。",
			Tone:        TonePositive,
			Choices: []Choice{
				{Text: "这也太酷了", Effects: []Effect{adjustSubjects(6, SubjectPhysics), adjustGeneral(GeneralStats{Experience: 5})}},
				{Text: "听睡着了", Effects: []Effect{adjustGeneral(GeneralStats{Health: 3}), addSleep()}},
			},
		},
		{
			ID:          "sum_oi_basics",
			Title:       "机房的初见",
			Description: "你第一次踏进八中的机房，这里的设备，呃，能用。",
			Tone:        TonePositive,
			Trigger:     TriggerConditional,
			Once:        true,
			Condition:   &Condition{Competition: CompetitionOI},
			Choices: []Choice{
				{Text: "开始配置环境", Effects: []Effect{adjustGeneral(GeneralStats{Experience: 5}), adjustSubjects(2, SubjectMath)}},
			},
		},
		{
			ID:          "sum_summer_camp",
			Title:       "夏令营的邀请",
			Description: "你收到了一封夏令营的邮件。",
			Tone:        TonePositive,
			Once:        true,
			Choices: []Choice{
				{Text: "报名参加 (-10金钱)", Effects: []Effect{adjustGeneral(GeneralStats{Experience: 15, Money: -10})}},
				{Text: "太贵了", Effects: []Effect{adjustGeneral(GeneralStats{Money: 5})}},
			},
		},
		{
			ID:          "sum_reunion",
			Title:       "初中聚会",
			Description: "曾经的同学们聚在一起，有人欢喜有人愁。你看到了那个熟悉的身影。",
			Tone:        ToneNeutral,
			Once:        true,
			Choices: []Choice{
				{
					Text: "趁机表白！",
					Effects: []Effect{branch(0.4,
						[]Effect{chainTo("sum_confess_success")},
						[]Effect{chainTo("sum_confess_fail")},
					)},
				},
				{Text: "畅谈理想", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 10})}},
				{Text: "默默干饭", Effects: []Effect{adjustGeneral(GeneralStats{Health: 5})}},
			},
		},
		{
			ID:          "sum_family_trip",
			Title:       "家庭出游",
			Description: "父母计划去郊区玩两天，放松一下中考后的神经。",
			Tone:        TonePositive,
			Choices: []Choice{
				{Text: "欣然前往", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 15, Romance: 5})}},
				{Text: "在家宅着", Effects: []Effect{adjustSubjects(3, SubjectEnglish), adjustGeneral(GeneralStats{Efficiency: 1})}},
				{Text: "带书去读", Effects: []Effect{adjustSubjects(4, SubjectChinese, SubjectHistory), adjustGeneral(GeneralStats{Mindset: -5})}},
			},
		},
	}
}
