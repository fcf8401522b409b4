package game

func militaryEvents() []*Event {
	return []*Event{
		{
			ID:          "mil_start",
			Title:       "军训开始",
			Description: "烈日当空，为期一周的军训开始了。教官看起来很严厉。",
			Tone:        ToneNeutral,
			Trigger:     TriggerFixed,
			Once:        true,
			Choices: []Choice{
				{Text: "坚持就是胜利", Effects: []Effect{adjustGeneral(GeneralStats{Health: 5, Mindset: -5})}},
			},
		},
		{
			ID:          "mil_blanket",
			Title:       "叠军被",
			Description: "教官要求把被子叠成“豆腐块”。你看着软趴趴的被子发愁。",
			Tone:        ToneNeutral,
			Choices: []Choice{
				{
					Text: "精益求精",
					Effects: []Effect{branch(0.5,
						[]Effect{chainTo("mil_star_performance")},
						[]Effect{adjustGeneral(GeneralStats{Efficiency: 3, Mindset: -5})},
					)},
				},
				{Text: "差不多得了", Effects: []Effect{adjustGeneral(GeneralStats{Efficiency: -1, Mindset: 5})}},
				{Text: "请教室友", Effects: []Effect{adjustGeneral(GeneralStats{Romance: 3, Experience: 2})}},
			},
		},
		{
			ID:          "mil_night_talk",
			Title:       "深夜卧谈",
			Description: "熄灯了，但是大家都睡不着，开始聊起了天。",
			Tone:        TonePositive,
			Choices: []Choice{
				{Text: "聊理想", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 5, Experience: 5})}},
				{Text: "聊八卦", Effects: []Effect{adjustGeneral(GeneralStats{Romance: 5})}},
				{Text: "赶紧睡觉", Effects: []Effect{adjustGeneral(GeneralStats{Health: 5}), addSleep()}},
			},
		},
		{
			ID:          "mil_sing",
			Title:       "拉歌环节",
			Description: "晚上休息时，各个班级开始拉歌。",
			Tone:        TonePositive,
			Choices: []Choice{
				{Text: "大声吼出来", Effects: []Effect{adjustGeneral(GeneralStats{Mindset: 5, Romance: 2})}},
				{Text: "默默鼓掌", Effects: []Effect{adjustGeneral(GeneralStats{Health: 1})}},
			},
		},
	}
}
