package game

import (
	"fmt"
	"math"
	"strings"
)

// ChoiceResult is the outcome of the last resolved choice, shown to the
// player until confirmed.
type ChoiceResult struct {
	Choice Choice
	Diff   []string
}

// maybeDequeue moves the queue head into currentEvent when nothing else is
// blocking. Showing an event always pauses the timer.
func (s *Session) maybeDequeue() {
	if s.CurrentEvent != nil || len(s.EventQueue) == 0 {
		return
	}
	if s.IsWeekend || s.AwaitingClub || s.PopupCompetitionResult != nil || !s.Phase.tickable() {
		return
	}
	s.CurrentEvent = s.EventQueue[0]
	s.EventQueue = s.EventQueue[1:]
	s.IsPlaying = false
}

// DequeueEvent exposes queue draining to the presentation layer.
func (s *Session) DequeueEvent() {
	s.maybeDequeue()
}

// ResolveChoice applies the given choice of the current event, records the
// diff and the history entry, and stores the result for confirmation.
func (s *Session) ResolveChoice(idx int) error {
	if s.CurrentEvent == nil {
		return fmt.Errorf("no event to resolve")
	}
	if s.EventResult != nil {
		return fmt.Errorf("choice already resolved, awaiting confirm")
	}
	if idx < 0 || idx >= len(s.CurrentEvent.Choices) {
		return fmt.Errorf("choice index %d out of range", idx)
	}
	choice := s.CurrentEvent.Choices[idx]

	before := s.previewClone()
	s.applyEffects(choice.Effects)
	diff := diffStats(before, s)

	s.EventResult = &ChoiceResult{Choice: choice, Diff: diff}
	s.History = append([]HistoryEntry{{
		Phase:   s.Phase,
		Week:    s.Week,
		Event:   s.CurrentEvent.Title,
		Choice:  choice.Text,
		Summary: strings.Join(diff, " | "),
	}}, s.History...)
	return nil
}

// ConfirmEvent dismisses the resolved event. A chained follow-up (explicit
// NextEventID or one set by an effect) preempts the queue; otherwise the
// next queued event, if any, is shown and the timer resumes only in phases
// that tick. A fail talk confirmed during reselection leaves the run paused.
func (s *Session) ConfirmEvent() error {
	if s.EventResult == nil {
		return fmt.Errorf("no resolved choice to confirm")
	}

	nextID := s.EventResult.Choice.NextEventID
	if s.pendingChain != "" {
		nextID = s.pendingChain
		s.pendingChain = ""
	}
	if nextID != "" {
		if next := findEvent(nextID); next != nil {
			s.CurrentEvent = s.instantiate(next)
			s.TriggeredEvents[next.ID] = true
			s.EventResult = nil
			return nil
		}
	}

	s.CurrentEvent = nil
	s.EventResult = nil
	s.IsPlaying = s.Phase.tickable()
	s.maybeDequeue()
	return nil
}

// diffStats builds the human-readable delta between two session states:
// integer movements of the four displayed stats plus coarse flags for
// subject and status changes.
func diffStats(before, after *Session) []string {
	diff := make([]string, 0, 6)
	push := func(label string, oldV, newV float64) {
		if math.Floor(newV) == math.Floor(oldV) {
			return
		}
		delta := math.Floor(newV - oldV)
		if newV-oldV > 0 {
			diff = append(diff, fmt.Sprintf("%s +%.0f", label, delta))
		} else {
			diff = append(diff, fmt.Sprintf("%s %.0f", label, delta))
		}
	}
	push("心态", before.General.Mindset, after.General.Mindset)
	push("健康", before.General.Health, after.General.Health)
	push("金钱", before.General.Money, after.General.Money)
	push("魅力", before.General.Romance, after.General.Romance)

	if subjectsChanged(before, after) {
		diff = append(diff, "学科能力变动")
	}
	if statusesChanged(before, after) {
		diff = append(diff, "状态更新")
	}
	if len(diff) == 0 {
		diff = append(diff, "无明显变化")
	}
	return diff
}

func subjectsChanged(before, after *Session) bool {
	for k, sub := range after.Subjects {
		old := before.Subjects[k]
		if old == nil || old.Level != sub.Level || old.Aptitude != sub.Aptitude {
			return true
		}
	}
	return false
}

func statusesChanged(before, after *Session) bool {
	if len(before.ActiveStatuses) != len(after.ActiveStatuses) {
		return true
	}
	for i := range after.ActiveStatuses {
		if before.ActiveStatuses[i].ID != after.ActiveStatuses[i].ID ||
			before.ActiveStatuses[i].Duration != after.ActiveStatuses[i].Duration {
			return true
		}
	}
	return false
}
