package game

import "fmt"

type ActivityType string

const (
	ActivityStudy  ActivityType = "STUDY"
	ActivityRest   ActivityType = "REST"
	ActivitySocial ActivityType = "SOCIAL"
	ActivityLove   ActivityType = "LOVE"
	ActivityOI     ActivityType = "OI"
)

// WeekendActivity is one free-time option. LOVE entries need a partner,
// OI entries need the competition track.
type WeekendActivity struct {
	ID          string
	Name        string
	Type        ActivityType
	Description string
	ResultText  string
	// PartnerText formats ResultText with the partner's name.
	PartnerText bool
	Effects     []Effect
}

func WeekendActivities() []WeekendActivity {
	return []WeekendActivity{
		{
			ID: "w_shop", Name: "约朋友逛街", Type: ActivitySocial,
			Description: "消费30元，大幅提升心情和魅力。",
			ResultText:  "你和朋友在西单逛了一下午，虽然钱包瘪了，但心情好多了。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Mindset: 5, Romance: 3, Money: -30})},
		},
		{
			ID: "w_library", Name: "上图书馆", Type: ActivityStudy,
			Description: "提升学习效率，巩固语数外基础。",
			ResultText:  "八中图书馆的氛围很好，你感觉学习效率提升了。",
			Effects: []Effect{
				adjustGeneral(GeneralStats{Efficiency: 2}),
				adjustSubjects(1, SubjectChinese, SubjectEnglish, SubjectMath),
			},
		},
		{
			ID: "w_read", Name: "看课外书", Type: ActivityRest,
			Description: "阅读是心灵的避风港。提升心态和经验。",
			ResultText:  "你沉浸在书中的世界，暂时忘却了烦恼。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Mindset: 3, Experience: 2})},
		},
		{
			ID: "w_review", Name: "复习功课", Type: ActivityStudy,
			Description: "针对选科进行复习，但会消耗心态。",
			ResultText:  "你复习了一下午功课，感觉掌握得更扎实了，就是有点累。",
			Effects: []Effect{
				{Kind: EffectAdjustSubjects, SelectedSubjects: true, SubjectDelta: 2},
				adjustGeneral(GeneralStats{Mindset: -2}),
			},
		},
		{
			ID: "w_sleep", Name: "补觉", Type: ActivityRest,
			Description: "恢复大量健康和少量心态。累计次数可解锁成就。",
			ResultText:  "这一觉睡得天昏地暗，醒来时已经是黄昏了。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Health: 8, Mindset: 2}), addSleep()},
		},
		{
			ID: "w_game_late", Name: "熬夜打游戏", Type: ActivityRest,
			Description: "大幅提升心态，但损害健康和效率。",
			ResultText:  "赢了一晚上，爽！但是第二天早上头痛欲裂。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Mindset: 8, Health: -5, Efficiency: -2})},
		},
		{
			ID: "w_game", Name: "打游戏", Type: ActivityRest,
			Description: "适度游戏益脑。提升心态，微降效率。",
			ResultText:  "玩了几把游戏，放松了一下紧绷的神经。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Mindset: 5, Efficiency: -1})},
		},
		{
			ID: "w_video", Name: "刷视频", Type: ActivityRest,
			Description: "杀时间利器。提升少量心态，大幅降低效率。",
			ResultText:  "刷视频停不下来，回过神来已经过去两个小时了。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Mindset: 3, Efficiency: -3})},
		},
		{
			ID: "w_chat", Name: "和朋友聊天", Type: ActivitySocial,
			Description: "提升心态和魅力。",
			ResultText:  "和朋友聊了很多八卦，心情变好了。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Mindset: 4, Romance: 2})},
		},
		{
			ID: "w_zhihu", Name: "刷知乎", Type: ActivityRest,
			Description: "谢邀，人在美国，刚下飞机。提升经验。",
			ResultText:  "你在知乎上学到了很多奇怪的知识。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Experience: 3, Mindset: 1})},
		},
		{
			ID: "w_park", Name: "去公园/爬山", Type: ActivityRest,
			Description: "拥抱大自然。平衡提升健康和心态。",
			ResultText:  "呼吸着新鲜空气，你感觉身心舒畅。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Health: 5, Mindset: 5})},
		},
		{
			ID: "w_date_call", Name: "煲电话粥", Type: ActivityLove,
			Description: "听听TA的声音。提升魅力和心态。",
			ResultText:  "你和%s聊了很久，感觉彼此的心更近了。", PartnerText: true,
			Effects: []Effect{adjustGeneral(GeneralStats{Romance: 4, Mindset: 5})},
		},
		{
			ID: "w_date_game", Name: "一起打游戏", Type: ActivityLove,
			Description: "带TA上分（或者掉分）。提升魅力和经验。",
			ResultText:  "虽然配合有些失误，但你和%s玩得很开心。", PartnerText: true,
			Effects: []Effect{adjustGeneral(GeneralStats{Romance: 3, Experience: 3})},
		},
		{
			ID: "w_date_flex", Name: "发朋友圈", Type: ActivityLove,
			Description: "秀恩爱。大幅提升魅力，可能招来嫉妒。",
			ResultText:  "你的朋友圈收获了大量的点赞和柠檬。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Romance: 6, Luck: -1})},
		},
		{
			ID: "w_luogu", Name: "刷洛谷", Type: ActivityOI,
			Description: "提升OI综合能力和经验。",
			ResultText:  "AC了几道绿题，感觉自己变强了。",
			Effects:     []Effect{adjustOI(OIStats{DP: 1, DS: 1, Misc: 1}), adjustGeneral(GeneralStats{Experience: 2})},
		},
		{
			ID: "w_cf", Name: "打 Codeforces", Type: ActivityOI,
			Description: "提升思维和图论能力，但可能会掉Rating影响心态。",
			ResultText:  "打了一场 Div.2，思维得到了锻炼。",
			Effects:     []Effect{adjustOI(OIStats{Math: 2, Misc: 2, Graph: 1}), adjustGeneral(GeneralStats{Mindset: -2})},
		},
		{
			ID: "w_atc", Name: "打 AtCoder", Type: ActivityOI,
			Description: "提升数学和思维能力。",
			ResultText:  "AtCoder 的题目总是那么有趣且富有挑战性。",
			Effects:     []Effect{adjustOI(OIStats{Math: 3, Misc: 1}), adjustGeneral(GeneralStats{Mindset: -1})},
		},
		{
			ID: "w_oi_wiki", Name: "看 OI-Wiki", Type: ActivityOI,
			Description: "全面提升OI基础知识。",
			ResultText:  "你学习了几个新的算法模板。",
			Effects: []Effect{
				adjustOI(OIStats{String: 1, Graph: 1, Math: 1, DP: 1, DS: 1}),
				adjustGeneral(GeneralStats{Experience: 3}),
			},
		},
		{
			ID: "w_water_oi", Name: "水OI群", Type: ActivityOI,
			Description: "恢复心态，了解OI圈八卦。",
			ResultText:  "群友个个都是人才，说话又好听。",
			Effects:     []Effect{adjustGeneral(GeneralStats{Mindset: 3, Experience: 1})},
		},
	}
}

// AvailableActivities filters the pool against the session.
func (s *Session) AvailableActivities() []WeekendActivity {
	out := make([]WeekendActivity, 0)
	for _, a := range WeekendActivities() {
		if a.Type == ActivityLove && s.RomancePartner == "" {
			continue
		}
		if a.Type == ActivityOI && s.Competition != CompetitionOI {
			continue
		}
		out = append(out, a)
	}
	return out
}

// WeekendPreview is a computed-but-uncommitted activity outcome.
type WeekendPreview struct {
	Activity   WeekendActivity
	ResultText string
	Diff       []string
}

// SelectActivity computes the activity's outcome against a copy of the
// state without committing it, so the player can read the result first.
func (s *Session) SelectActivity(id string) (*WeekendPreview, error) {
	if !s.IsWeekend {
		return nil, fmt.Errorf("not in a weekend")
	}
	var activity *WeekendActivity
	for _, a := range s.AvailableActivities() {
		if a.ID == id {
			activity = &a
			break
		}
	}
	if activity == nil {
		return nil, fmt.Errorf("unknown or unavailable activity: %s", id)
	}

	clone := s.previewClone()
	clone.applyEffects(activity.Effects)

	text := activity.ResultText
	if activity.PartnerText {
		text = fmt.Sprintf(text, s.RomancePartner)
	}

	preview := &WeekendPreview{
		Activity:   *activity,
		ResultText: text,
		Diff:       diffStats(s, clone),
	}
	s.pendingWeekend = preview
	return preview, nil
}

// ConfirmActivity commits the selected activity, spends one action point
// and exits weekend mode when the points run out.
func (s *Session) ConfirmActivity() error {
	if s.pendingWeekend == nil {
		return fmt.Errorf("no activity selected")
	}
	preview := s.pendingWeekend
	s.pendingWeekend = nil

	s.applyEffects(preview.Activity.Effects)
	s.appendLog(preview.ResultText, LogInfo)

	s.WeekendActionPoints--
	if s.WeekendActionPoints <= 0 {
		s.IsWeekend = false
		s.weekendProcessed = true
		s.IsPlaying = true
		s.maybeDequeue()
	}
	return nil
}

// previewClone copies the parts of the session an activity effect can
// touch. The clone shares nothing mutable with the original.
func (s *Session) previewClone() *Session {
	clone := *s
	clone.Subjects = make(map[SubjectKey]*SubjectStats, len(s.Subjects))
	for k, v := range s.Subjects {
		sub := *v
		clone.Subjects[k] = &sub
	}
	clone.ActiveStatuses = append([]Status(nil), s.ActiveStatuses...)
	clone.Log = append([]LogEntry(nil), s.Log...)
	clone.EventQueue = append([]*Event(nil), s.EventQueue...)
	clone.SelectedSubjects = append([]SubjectKey(nil), s.SelectedSubjects...)
	return &clone
}
