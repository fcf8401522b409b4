package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lg37/bazhong-sim/internal/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2)
	choiceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	toastStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")).
			Foreground(lipgloss.Color("220")).
			Padding(0, 1)
)

func logStyleFor(kind game.LogKind) lipgloss.Style {
	switch kind {
	case game.LogSuccess:
		return successStyle
	case game.LogWarning:
		return warnStyle
	case game.LogError:
		return errorStyle
	default:
		return dimStyle
	}
}

func (m Model) View() string {
	switch m.screen {
	case screenHome:
		return m.viewHome()
	case screenTalents:
		return m.viewTalents()
	}
	return m.viewGame()
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("八中重开模拟器") + "\n\n")
	b.WriteString("选择难度开始新的一局：\n\n")
	for i, p := range game.DifficultyPresets() {
		b.WriteString(fmt.Sprintf("  [%d] %s — %s\n", i+1, p.Label, p.Description))
	}
	b.WriteString("\n" + dimStyle.Render("q 退出") + "\n\n")

	for _, entry := range game.Changelog() {
		b.WriteString(headerStyle.Render(entry.Version+" · "+entry.Date) + "\n")
		for _, note := range entry.Notes {
			b.WriteString(dimStyle.Render("  · "+note) + "\n")
		}
	}
	if m.status != "" {
		b.WriteString("\n" + errorStyle.Render(m.status))
	}
	return b.String()
}

func (m Model) viewTalents() string {
	picked := make(map[string]bool, len(m.talentPicks))
	for _, id := range m.talentPicks {
		picked[id] = true
	}

	spent := 0
	var b strings.Builder
	var rows strings.Builder
	for i, tl := range game.Talents() {
		mark := " "
		if picked[tl.ID] {
			mark = "✓"
			spent += tl.Cost
		}
		rows.WriteString(choiceStyle.Render(fmt.Sprintf("[%2d] %s %s（%d点）", i+1, mark, tl.Name, tl.Cost)) +
			dimStyle.Render("  "+tl.Description) + "\n")
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("天赋抽选（剩余点数：%d）", game.TalentBudget-spent)) + "\n\n")
	b.WriteString(rows.String())
	b.WriteString("\n" + dimStyle.Render("输入编号切换，直接回车开始，esc 返回") + "\n" + m.input.View())
	if m.status != "" {
		b.WriteString("\n" + errorStyle.Render(m.status))
	}
	return b.String()
}

func (m Model) viewGame() string {
	s := m.session
	header := titleStyle.Render("八中重开模拟器") + "  " +
		headerStyle.Render(fmt.Sprintf("%s · 第%d周 · 进度%d%%", s.Phase.Name(), s.Week, s.Progress()))
	if s.ClassName != "" {
		header += headerStyle.Render(" · " + s.ClassName)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.statsPanel()),
		panelStyle.Render(m.log.View()),
	)

	var modal string
	switch {
	case s.Phase.Terminal():
		modal = modalStyle.Render(m.endingView())
	case s.PopupCompetitionResult != nil:
		r := s.PopupCompetitionResult
		modal = modalStyle.Render(fmt.Sprintf("%s\n\n得分：%d\n奖项:%s\n\n%s",
			titleStyle.Render(r.Title), r.Score, r.Award, dimStyle.Render("回车继续")))
	case s.CurrentEvent != nil:
		modal = modalStyle.Render(m.eventView())
	case s.AwaitingClub:
		modal = modalStyle.Render(m.clubView())
	case s.Phase == game.PhaseSelection || s.Phase == game.PhaseReselection:
		modal = modalStyle.Render(m.subjectView())
	case s.Phase.Exam():
		modal = modalStyle.Render(titleStyle.Render(s.Phase.Name()) + "\n\n" + dimStyle.Render("回车开始考试"))
	case s.IsWeekend:
		modal = modalStyle.Render(m.weekendView())
	case m.shopping:
		modal = modalStyle.Render(m.shopView())
	}

	parts := []string{header, body}
	if modal != "" {
		parts = append(parts, modal)
	}
	for _, a := range m.toasts {
		parts = append(parts, toastStyle.Render("🏆 "+a.Title+"："+a.Description))
	}
	if m.status != "" {
		parts = append(parts, errorStyle.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) statsPanel() string {
	s := m.session
	g := s.General
	var b strings.Builder
	b.WriteString(fmt.Sprintf("心态 %5.1f  健康 %5.1f\n", g.Mindset, g.Health))
	b.WriteString(fmt.Sprintf("金钱 %5.1f  魅力 %5.1f\n", g.Money, g.Romance))
	b.WriteString(fmt.Sprintf("效率 %5.1f  运气 %5.1f\n", g.Efficiency, g.Luck))
	b.WriteString(fmt.Sprintf("经验 %5.1f\n", g.Experience))

	b.WriteString("\n学科\n")
	for _, k := range game.AllSubjects {
		sub := s.Subjects[k]
		b.WriteString(fmt.Sprintf("  %s %5.1f (天赋%.0f)\n", k.Name(), sub.Level, sub.Aptitude))
	}

	if s.Competition == game.CompetitionOI {
		b.WriteString(fmt.Sprintf("\nOI合计 %.0f\n", s.OI.Total()))
	}

	if len(s.ActiveStatuses) > 0 {
		b.WriteString("\n状态\n")
		for _, st := range s.ActiveStatuses {
			b.WriteString(fmt.Sprintf("  %s(%d周) %s\n", st.Name, st.Duration, dimStyle.Render(st.EffectText)))
		}
	}
	if s.RomancePartner != "" {
		b.WriteString("\n恋人：" + s.RomancePartner + "\n")
	}
	return b.String()
}

func (m Model) eventView() string {
	s := m.session
	e := s.CurrentEvent
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Title) + "\n\n")
	b.WriteString(e.Description + "\n\n")

	if s.EventResult != nil {
		b.WriteString(successStyle.Render(strings.Join(s.EventResult.Diff, " | ")) + "\n\n")
		b.WriteString(dimStyle.Render("回车继续"))
		return b.String()
	}

	for i, c := range e.Choices {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("[%d] %s", i+1, c.Text)) + "\n")
	}
	b.WriteString("\n" + m.input.View())
	return b.String()
}

func (m Model) clubView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("百团大战") + "\n\n选择一个社团加入：\n\n")
	for i, c := range game.Clubs() {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("[%2d] %s", i+1, c.Name)) +
			dimStyle.Render("  "+c.EffectText) + "\n")
	}
	b.WriteString("\n" + m.input.View())
	return b.String()
}

func (m Model) subjectView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("选科") + "\n\n从六科中选择三科：\n\n")
	for i, k := range game.ElectiveSubjects {
		mark := " "
		for _, p := range m.picked {
			if p == k {
				mark = "✓"
			}
		}
		b.WriteString(choiceStyle.Render(fmt.Sprintf("[%d] %s %s", i+1, mark, k.Name())) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("数字切换，回车确认"))
	return b.String()
}

func (m Model) weekendView() string {
	s := m.session
	var b strings.Builder

	if m.preview != nil {
		b.WriteString(titleStyle.Render(m.preview.Activity.Name) + "\n\n")
		b.WriteString(m.preview.ResultText + "\n\n")
		b.WriteString(successStyle.Render(strings.Join(m.preview.Diff, " | ")) + "\n\n")
		b.WriteString(dimStyle.Render("回车确认，esc 重选"))
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("周末时光（剩余行动点：%d）", s.WeekendActionPoints)) + "\n\n")
	for i, a := range s.AvailableActivities() {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("[%2d] %s", i+1, a.Name)) +
			dimStyle.Render("  "+a.Description) + "\n")
	}
	b.WriteString("\n" + m.input.View())
	return b.String()
}

func (m Model) shopView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("小卖部（余额：%.0f）", m.session.General.Money)) + "\n\n")
	for i, it := range game.ShopItems() {
		b.WriteString(choiceStyle.Render(fmt.Sprintf("[%d] %s ¥%.0f", i+1, it.Name, it.Price)) +
			dimStyle.Render("  "+it.Description) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("esc 离开") + "\n" + m.input.View())
	return b.String()
}

func (m Model) endingView() string {
	s := m.session
	var b strings.Builder
	if s.Phase == game.PhaseWithdrawal {
		b.WriteString(errorStyle.Render("休学") + "\n\n你的身心状态已达极限，这段旅程提前结束了。\n")
	} else {
		b.WriteString(titleStyle.Render("学期结束") + "\n\n")
		if s.LastExam != nil {
			b.WriteString(fmt.Sprintf("期末总分 %d，年级第 %d 名。\n", s.LastExam.TotalScore, s.LastExam.Rank))
		}
		for _, r := range s.CompetitionResults {
			b.WriteString(fmt.Sprintf("%s：%s（%d分）\n", r.Title, r.Award, r.Score))
		}
	}
	if unlocked := s.Unlocked(); len(unlocked) > 0 {
		b.WriteString("\n成就：\n")
		defs := game.AchievementDefs()
		for _, id := range unlocked {
			if a, ok := defs[id]; ok {
				b.WriteString("  🏆 " + a.Title + "\n")
			}
		}
	}
	b.WriteString("\n" + dimStyle.Render("r 返回主菜单"))
	return b.String()
}
