// Package tui is the terminal presentation layer. It owns the week timer
// and renders the stats panel, the event modal, the weekend menu and the
// exam views; all game rules live in internal/game.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lg37/bazhong-sim/internal/game"
	"github.com/lg37/bazhong-sim/internal/parser"
)

type screen int

const (
	screenHome screen = iota
	screenTalents
	screenGame
)

type tickMsg time.Time

type Model struct {
	tickInterval time.Duration
	seed         int64
	achievements game.AchievementStore

	screen  screen
	session *game.Session

	log     viewport.Model
	input   textinput.Model
	preview *game.WeekendPreview
	picked  []game.SubjectKey
	toasts  []game.Achievement

	pendingDifficulty game.Difficulty
	talentPicks       []string

	shopping bool

	width  int
	height int
	status string
}

func New(tickInterval time.Duration, seed int64, achievements game.AchievementStore) Model {
	input := textinput.New()
	input.Placeholder = "输入编号或内容..."
	input.CharLimit = 64
	input.Focus()

	return Model{
		tickInterval: tickInterval,
		seed:         seed,
		achievements: achievements,
		log:          viewport.New(60, 12),
		input:        input,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Width = max(40, msg.Width-44)
		m.log.Height = max(8, msg.Height-14)
		return m, nil

	case tickMsg:
		m.toasts = nil
		if m.session != nil && m.session.IsPlaying {
			m.session.AdvanceWeek()
			m.session.DequeueEvent()
			m.refreshLog()
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
		switch m.screen {
		case screenHome:
			return m.updateHome(msg)
		case screenTalents:
			return m.updateTalents(msg)
		}
		return m.updateGame(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1", "2", "3":
		presets := game.DifficultyPresets()
		idx := int(msg.String()[0] - '1')
		m.pendingDifficulty = presets[idx].Difficulty
		m.talentPicks = nil
		m.screen = screenTalents
		m.status = ""
		m.input.Reset()
	}
	return m, nil
}

// updateTalents toggles talent picks by typed number or name; an empty
// confirm starts the run with whatever is picked.
func (m Model) updateTalents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenHome
		m.talentPicks = nil
		m.status = ""
		m.input.Reset()
		return m, nil

	case tea.KeyEnter:
		if strings.TrimSpace(m.input.Value()) == "" {
			return m.startSession()
		}
		talents := game.Talents()
		options := make([]string, len(talents))
		for i, tl := range talents {
			options[i] = tl.Name
		}
		idx, ok := parser.Match(m.input.Value(), options)
		m.input.Reset()
		if !ok {
			m.status = "没有这个天赋。"
			return m, nil
		}
		m.status = ""
		id := talents[idx].ID
		for i, p := range m.talentPicks {
			if p == id {
				m.talentPicks = append(m.talentPicks[:i], m.talentPicks[i+1:]...)
				return m, nil
			}
		}
		m.talentPicks = append(m.talentPicks, id)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startSession() (tea.Model, tea.Cmd) {
	session, err := game.NewSession(game.Config{
		Difficulty:   m.pendingDifficulty,
		Talents:      m.talentPicks,
		Seed:         m.seed,
		Achievements: m.achievements,
	})
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.session = session
	m.screen = screenGame
	m.status = ""
	m.picked = nil
	m.preview = nil
	m.talentPicks = nil
	m.shopping = false
	m.refreshLog()
	return m, m.tick()
}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	if s.Phase.Terminal() {
		if msg.String() == "r" {
			m.screen = screenHome
			m.session = nil
			m.status = ""
		}
		return m, nil
	}

	if s.PopupCompetitionResult != nil {
		if msg.Type == tea.KeyEnter {
			if err := s.DismissCompetitionPopup(); err != nil {
				m.status = err.Error()
			}
			m.refreshLog()
		}
		return m, nil
	}

	if s.CurrentEvent != nil {
		return m.updateEvent(msg)
	}

	if s.AwaitingClub {
		return m.updateClubChoice(msg)
	}

	if s.Phase == game.PhaseSelection || s.Phase == game.PhaseReselection {
		return m.updateSubjectChoice(msg)
	}

	if s.Phase.Exam() {
		if msg.Type == tea.KeyEnter {
			var result game.ExamResult
			if s.Phase == game.PhaseCSP || s.Phase == game.PhaseNOIP {
				result = game.GenerateOIExam(s)
			} else {
				result = game.GenerateWrittenExam(s)
			}
			if err := s.ResolveExam(result); err != nil {
				m.status = err.Error()
			}
			m.refreshLog()
		}
		return m, nil
	}

	if s.IsWeekend {
		return m.updateWeekend(msg)
	}

	if m.shopping {
		return m.updateShop(msg)
	}

	switch msg.String() {
	case " ":
		s.IsPlaying = !s.IsPlaying
	case "s":
		m.shopping = true
		s.IsPlaying = false
		m.input.Reset()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.shopping = false
		m.status = ""
		m.session.IsPlaying = true
		return m, nil
	}
	if msg.Type == tea.KeyEnter {
		items := game.ShopItems()
		options := make([]string, len(items))
		for i, it := range items {
			options[i] = it.Name
		}
		idx, ok := parser.Match(m.input.Value(), options)
		m.input.Reset()
		if !ok {
			m.status = "货架上没有这个。"
			return m, nil
		}
		m.status = ""
		if err := m.session.BuyItem(items[idx].ID); err != nil {
			m.status = err.Error()
		}
		m.refreshLog()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEvent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	if s.EventResult != nil {
		if msg.Type == tea.KeyEnter {
			if err := s.ConfirmEvent(); err != nil {
				m.status = err.Error()
			}
			m.refreshLog()
		}
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		options := make([]string, len(s.CurrentEvent.Choices))
		for i, c := range s.CurrentEvent.Choices {
			options[i] = c.Text
		}
		idx, ok := parser.Match(m.input.Value(), options)
		m.input.Reset()
		if !ok {
			m.status = "没听懂，试试选项编号？"
			return m, nil
		}
		m.status = ""
		if err := s.ResolveChoice(idx); err != nil {
			m.status = err.Error()
		}
		m.refreshLog()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateClubChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	clubs := game.Clubs()
	if msg.Type == tea.KeyEnter {
		options := make([]string, len(clubs))
		for i, c := range clubs {
			options[i] = c.Name
		}
		idx, ok := parser.Match(m.input.Value(), options)
		m.input.Reset()
		if !ok {
			m.status = "没有这个社团。"
			return m, nil
		}
		m.status = ""
		if err := m.session.ChooseClub(clubs[idx].ID); err != nil {
			m.status = err.Error()
		}
		m.refreshLog()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateSubjectChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	electives := game.ElectiveSubjects

	switch msg.String() {
	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		key := electives[idx]
		for i, p := range m.picked {
			if p == key {
				m.picked = append(m.picked[:i], m.picked[i+1:]...)
				return m, nil
			}
		}
		if len(m.picked) < 3 {
			m.picked = append(m.picked, key)
		}
		return m, nil

	case "enter":
		if len(m.picked) != 3 {
			m.status = "需要恰好选择三科。"
			return m, nil
		}
		if err := m.session.ChooseSubjects(m.picked); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.picked = nil
		m.refreshLog()
		return m, nil
	}
	return m, nil
}

func (m Model) updateWeekend(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	if m.preview != nil {
		switch msg.String() {
		case "enter":
			if err := s.ConfirmActivity(); err != nil {
				m.status = err.Error()
			}
			m.preview = nil
			m.refreshLog()
		case "esc":
			m.preview = nil
		}
		return m, nil
	}

	activities := s.AvailableActivities()
	if msg.Type == tea.KeyEnter {
		options := make([]string, len(activities))
		for i, a := range activities {
			options[i] = a.Name
		}
		idx, ok := parser.Match(m.input.Value(), options)
		m.input.Reset()
		if !ok {
			m.status = "周末想做点什么？输入编号试试。"
			return m, nil
		}
		m.status = ""
		preview, err := s.SelectActivity(activities[idx].ID)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.preview = preview
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refreshLog() {
	if m.session == nil {
		return
	}
	lines := make([]string, 0, len(m.session.Log))
	for _, e := range m.session.Log {
		lines = append(lines, logStyleFor(e.Kind).Render(e.Message))
	}
	m.log.SetContent(strings.Join(lines, "\n"))
	m.log.GotoBottom()
	m.toasts = append(m.toasts, m.session.TakeUnlockFeed()...)
}
