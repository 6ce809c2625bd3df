package timer

import (
	"testing"
	"time"
)

func testDurations() Durations {
	return Durations{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

func TestNew_InitialState(t *testing.T) {
	s := New(testDurations())
	if s.Mode != ModeFocus {
		t.Errorf("initial mode = %s, want focus", s.Mode)
	}
	if s.Running {
		t.Error("timer should start stopped")
	}
	if s.Remaining != 25*60 {
		t.Errorf("remaining = %d, want %d", s.Remaining, 25*60)
	}
}

func TestStartPause(t *testing.T) {
	s := Start(New(testDurations()))
	if !s.Running {
		t.Fatal("expected running after Start")
	}

	s = Pause(s)
	if s.Running {
		t.Fatal("expected stopped after Pause")
	}

	// Pause is idempotent.
	s = Pause(s)
	if s.Running {
		t.Fatal("double Pause changed state")
	}
}

func TestStart_ExpiredIsNoOp(t *testing.T) {
	s := New(testDurations())
	s.Remaining = 0
	s = Start(s)
	if s.Running {
		t.Error("Start on an expired countdown must be a no-op")
	}
}

func TestTick_CountsDownOnlyWhileRunning(t *testing.T) {
	s := New(testDurations())

	s, done := Tick(s)
	if done != nil || s.Remaining != 25*60 {
		t.Fatal("tick while stopped must not decrement")
	}

	s = Start(s)
	s, done = Tick(s)
	if done != nil {
		t.Fatal("unexpected completion")
	}
	if s.Remaining != 25*60-1 {
		t.Errorf("remaining = %d, want %d", s.Remaining, 25*60-1)
	}
}

func TestTick_FocusCompletionTransitionsToShortBreak(t *testing.T) {
	s := Start(New(testDurations()))

	var done *Completion
	completions := 0
	for i := 0; i < 25*60; i++ {
		s, done = Tick(s)
		if done != nil {
			completions++
			if done.Mode != ModeFocus {
				t.Errorf("completion mode = %s, want focus", done.Mode)
			}
		}
	}

	if completions != 1 {
		t.Fatalf("completions = %d, want exactly 1", completions)
	}
	if s.Mode != ModeShortBreak {
		t.Errorf("mode after focus = %s, want short_break", s.Mode)
	}
	if s.Remaining != 5*60 {
		t.Errorf("remaining = %d, want %d", s.Remaining, 5*60)
	}
	if s.Running {
		t.Error("auto-transition must leave the timer stopped")
	}
}

func TestTick_BreakCompletionReturnsToFocus(t *testing.T) {
	for _, mode := range []Mode{ModeShortBreak, ModeLongBreak} {
		s := ChangeMode(New(testDurations()), mode)
		s = Start(s)
		s.Remaining = 1

		s, done := Tick(s)
		if done == nil || done.Mode != mode {
			t.Fatalf("%s: expected completion for the break mode", mode)
		}
		if s.Mode != ModeFocus {
			t.Errorf("%s: next mode = %s, want focus", mode, s.Mode)
		}
		if s.Running {
			t.Errorf("%s: timer restarted itself", mode)
		}
	}
}

func TestTick_NeverEscalatesToLongBreak(t *testing.T) {
	// Run several full focus cycles; the machine must always hand off to a
	// short break, never a long one.
	s := New(testDurations())
	for cycle := 0; cycle < 5; cycle++ {
		s = Start(s)
		for s.Mode == ModeFocus {
			s, _ = Tick(s)
		}
		if s.Mode != ModeShortBreak {
			t.Fatalf("cycle %d: focus handed off to %s", cycle, s.Mode)
		}
		s = Start(s)
		for s.Mode == ModeShortBreak {
			s, _ = Tick(s)
		}
	}
}

func TestReset(t *testing.T) {
	s := Start(New(testDurations()))
	for i := 0; i < 100; i++ {
		s, _ = Tick(s)
	}

	s = Reset(s)
	if s.Running {
		t.Error("Reset must stop the timer")
	}
	if s.Remaining != 25*60 {
		t.Errorf("remaining = %d, want full focus duration", s.Remaining)
	}
}

func TestChangeMode_DiscardsCountdown(t *testing.T) {
	s := Start(New(testDurations()))
	for i := 0; i < 60; i++ {
		s, _ = Tick(s)
	}

	s = ChangeMode(s, ModeLongBreak)
	if s.Running {
		t.Error("ChangeMode must stop the timer")
	}
	if s.Remaining != 15*60 {
		t.Errorf("remaining = %d, want %d", s.Remaining, 15*60)
	}

	// Switching back does not remember the superseded countdown.
	s = ChangeMode(s, ModeFocus)
	if s.Remaining != 25*60 {
		t.Errorf("remaining = %d, want full focus duration", s.Remaining)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		want      float64
	}{
		{"full", 25 * 60, 0},
		{"half", 25 * 60 / 2, 50},
		{"done", 0, 100},
	}

	for _, tt := range tests {
		s := New(testDurations())
		s.Remaining = tt.remaining
		if got := Progress(s); got != tt.want {
			t.Errorf("%s: Progress = %.1f, want %.1f", tt.name, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	s := New(testDurations())
	if got := FormatClock(s); got != "25:00" {
		t.Errorf("FormatClock = %q, want 25:00", got)
	}
	s.Remaining = 65
	if got := FormatClock(s); got != "01:05" {
		t.Errorf("FormatClock = %q, want 01:05", got)
	}
}
