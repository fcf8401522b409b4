package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func pressKey(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// startGame walks the home flow: difficulty pick, then an empty confirm on
// the talent screen.
func startGame(t *testing.T, m Model) Model {
	t.Helper()
	m = pressKey(t, m, "1")
	return pressKey(t, m, "enter")
}

func TestHomeStartsSession(t *testing.T) {
	m := New(time.Second, 42, nil)
	if m.screen != screenHome {
		t.Fatal("a fresh model should open on the home screen")
	}

	m = pressKey(t, m, "1")
	if m.screen != screenTalents {
		t.Fatal("picking a difficulty should open the talent screen")
	}

	m = pressKey(t, m, "enter")
	if m.screen != screenGame {
		t.Fatal("an empty confirm should enter the game screen")
	}
	if m.session == nil {
		t.Fatal("expected a session after the home flow")
	}
	if m.session.CurrentEvent == nil {
		t.Fatal("expected the opening event to show")
	}
}

func TestTalentPickAppliesAtStart(t *testing.T) {
	m := New(time.Second, 42, nil)
	m = pressKey(t, m, "1")

	m.input.SetValue("家里有矿")
	m = pressKey(t, m, "enter")
	if len(m.talentPicks) != 1 || m.talentPicks[0] != "rich_kid" {
		t.Fatalf("expected the typed name to toggle the talent, got %v", m.talentPicks)
	}

	m = pressKey(t, m, "enter")
	if m.screen != screenGame {
		t.Fatal("confirming should start the run")
	}
	if m.session.General.Money != 180 {
		t.Fatalf("expected the talent's +100 money on top of the preset 80, got %f", m.session.General.Money)
	}
}

func TestOverBudgetTalentsRejectedAtStart(t *testing.T) {
	m := New(time.Second, 42, nil)
	m = pressKey(t, m, "1")

	for _, name := range []string{"天生我才", "家里有矿"} {
		m.input.SetValue(name)
		m = pressKey(t, m, "enter")
	}
	m = pressKey(t, m, "enter")
	if m.screen != screenTalents {
		t.Fatal("an over-budget pick must stay on the talent screen")
	}
	if m.status == "" {
		t.Fatal("expected the validation error to show")
	}

	m.input.SetValue("天生我才")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	if m.screen != screenGame {
		t.Fatal("dropping back under budget should let the run start")
	}
}

func TestTickAdvancesOnlyWhilePlaying(t *testing.T) {
	m := New(time.Second, 42, nil)
	m = startGame(t, m)
	week := m.session.Week

	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.session.Week != week {
		t.Fatal("a paused session must not advance on tick")
	}

	m.session.CurrentEvent = nil
	m.session.IsPlaying = true
	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.session.Week != week+1 {
		t.Fatalf("expected the week to advance, got %d (was %d)", m.session.Week, week)
	}
}

func TestEventChoiceByTypedNumber(t *testing.T) {
	m := New(time.Second, 42, nil)
	m = startGame(t, m)

	m.input.SetValue("2")
	m = pressKey(t, m, "enter")
	if m.session.EventResult == nil {
		t.Fatal("expected the typed number to resolve a choice")
	}

	m = pressKey(t, m, "enter")
	if m.session.CurrentEvent != nil {
		t.Fatal("confirming should dismiss the event")
	}
}

func TestGarbageInputKeepsEvent(t *testing.T) {
	m := New(time.Second, 42, nil)
	m = startGame(t, m)

	m.input.SetValue("xyzzy")
	m = pressKey(t, m, "enter")
	if m.session.EventResult != nil {
		t.Fatal("unmatched input must not resolve a choice")
	}
	if m.status == "" {
		t.Fatal("expected a hint for unmatched input")
	}
}

func TestViewRendersWithoutSession(t *testing.T) {
	m := New(time.Second, 42, nil)
	if m.View() == "" {
		t.Fatal("the home view should render content")
	}
	m = pressKey(t, m, "1")
	if m.View() == "" {
		t.Fatal("the talent view should render content")
	}
	m = pressKey(t, m, "enter")
	if m.View() == "" {
		t.Fatal("the game view should render content")
	}
}
