package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/mentor"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
)

func testModel() AppModel {
	subjects := subject.NewStore()
	subjects.AddSubject("Cálculo I", []string{"Limites"})

	svc := mentor.NewService(llm.NewMockProvider(), nil)
	ctrl := session.NewController(subjects, svc, nil, nil)
	return newAppModel(Options{Controller: ctrl, Durations: timer.DefaultDurations()})
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, bool) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return out, cmd != nil
}

func TestTimerToggleStartsCountdown(t *testing.T) {
	m := testModel()

	m, scheduled := update(t, m, screen.TimerToggleMsg{})
	if !m.timer.Running {
		t.Fatal("timer should be running after toggle")
	}
	if !scheduled {
		t.Fatal("toggle on should schedule a tick")
	}

	before := m.timer.Remaining
	m, _ = update(t, m, timerTickMsg{gen: m.tickGen})
	if m.timer.Remaining != before-1 {
		t.Errorf("Remaining = %d, want %d", m.timer.Remaining, before-1)
	}
}

func TestPauseResumeKeepsOneTickLoop(t *testing.T) {
	m := testModel()

	m, _ = update(t, m, screen.TimerToggleMsg{})
	firstGen := m.tickGen

	// Pause and resume before the first tick lands.
	m, _ = update(t, m, screen.TimerToggleMsg{})
	m, _ = update(t, m, screen.TimerToggleMsg{})
	if m.tickGen == firstGen {
		t.Fatal("resume should open a new tick generation")
	}

	before := m.timer.Remaining

	// The tick from the pre-pause loop arrives late. It must neither
	// advance the clock nor reschedule itself.
	m, rescheduled := update(t, m, timerTickMsg{gen: firstGen})
	if rescheduled {
		t.Error("stale tick must not reschedule")
	}
	if m.timer.Remaining != before {
		t.Errorf("stale tick advanced clock: Remaining = %d, want %d", m.timer.Remaining, before)
	}

	// The live loop still counts, one second per tick.
	m, rescheduled = update(t, m, timerTickMsg{gen: m.tickGen})
	if !rescheduled {
		t.Error("live tick should reschedule")
	}
	if m.timer.Remaining != before-1 {
		t.Errorf("Remaining = %d, want %d", m.timer.Remaining, before-1)
	}
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	m := testModel()

	m, _ = update(t, m, screen.TimerToggleMsg{})
	gen := m.tickGen
	m, _ = update(t, m, screen.TimerToggleMsg{})

	before := m.timer.Remaining
	m, rescheduled := update(t, m, timerTickMsg{gen: gen})
	if rescheduled || m.timer.Remaining != before {
		t.Error("tick delivered while paused must be a no-op")
	}
}

func TestResetInvalidatesPendingTick(t *testing.T) {
	m := testModel()

	m, _ = update(t, m, screen.TimerToggleMsg{})
	gen := m.tickGen
	m, _ = update(t, m, screen.TimerResetMsg{})

	full := int(m.timer.Durations.For(m.timer.Mode).Seconds())
	if m.timer.Remaining != full {
		t.Fatalf("Remaining = %d after reset, want %d", m.timer.Remaining, full)
	}

	m, rescheduled := update(t, m, timerTickMsg{gen: gen})
	if rescheduled || m.timer.Remaining != full {
		t.Error("tick scheduled before reset must be a no-op")
	}
}
