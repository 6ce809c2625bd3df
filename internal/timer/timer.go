// Package timer implements the Pomodoro countdown state machine.
//
// Exactly one State exists for the whole process; it is owned by the root
// application model and advanced by a 1-second tick. All transitions are
// pure functions over a State value so they can be tested without real time.
package timer

import (
	"fmt"
	"time"
)

// Mode is a timer phase.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// DisplayName returns the pt-BR label shown in the mode switcher.
func (m Mode) DisplayName() string {
	switch m {
	case ModeFocus:
		return "Foco"
	case ModeShortBreak:
		return "Pausa Curta"
	case ModeLongBreak:
		return "Pausa Longa"
	default:
		return string(m)
	}
}

// Durations holds the configured length of each mode.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations mirrors the classic 25/5/15 Pomodoro split.
func DefaultDurations() Durations {
	return Durations{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// For returns the configured duration of the given mode.
func (d Durations) For(mode Mode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return d.ShortBreak
	case ModeLongBreak:
		return d.LongBreak
	default:
		return d.Focus
	}
}

// State is the full countdown state. Zero value is not valid; use New.
type State struct {
	Mode      Mode
	Remaining int // seconds
	Running   bool
	Durations Durations
}

// Completion is emitted exactly once when a countdown reaches zero.
type Completion struct {
	// Mode is the phase that just elapsed, before any auto-transition.
	Mode Mode
}

// New returns the initial state: Focus, stopped, full duration on the clock.
func New(d Durations) State {
	return State{
		Mode:      ModeFocus,
		Remaining: int(d.Focus.Seconds()),
		Running:   false,
		Durations: d,
	}
}

// Start sets the timer running. Starting an expired countdown is a no-op;
// it must be reset or switched to another mode first.
func Start(s State) State {
	if s.Remaining == 0 {
		return s
	}
	s.Running = true
	return s
}

// Pause stops the countdown without touching the remaining time. Idempotent.
func Pause(s State) State {
	s.Running = false
	return s
}

// Reset stops the countdown and restores the current mode's full duration.
func Reset(s State) State {
	s.Running = false
	s.Remaining = int(s.Durations.For(s.Mode).Seconds())
	return s
}

// ChangeMode switches to the given mode, stopped, with its full duration.
// The superseded countdown is discarded.
func ChangeMode(s State, mode Mode) State {
	s.Mode = mode
	s.Running = false
	s.Remaining = int(s.Durations.For(mode).Seconds())
	return s
}

// Tick advances the countdown by one second. When the countdown reaches
// zero it stops the timer, fires a single Completion for the elapsed mode,
// and auto-transitions: Focus → ShortBreak, any break → Focus. The next
// mode starts stopped with its full duration. A tick while stopped or
// already expired does nothing.
func Tick(s State) (State, *Completion) {
	if !s.Running || s.Remaining == 0 {
		return s, nil
	}

	s.Remaining--
	if s.Remaining > 0 {
		return s, nil
	}

	done := &Completion{Mode: s.Mode}

	// Every finished focus block hands off to a short break; long breaks
	// are only ever entered by hand. Breaks always return to focus.
	next := ModeFocus
	if s.Mode == ModeFocus {
		next = ModeShortBreak
	}
	return ChangeMode(s, next), done
}

// Progress returns how far the current countdown has advanced, in percent,
// clamped to [0,100].
func Progress(s State) float64 {
	total := s.Durations.For(s.Mode).Seconds()
	if total <= 0 {
		return 0
	}
	pct := (total - float64(s.Remaining)) / total * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// FormatClock renders the remaining time as MM:SS.
func FormatClock(s State) string {
	return fmt.Sprintf("%02d:%02d", s.Remaining/60, s.Remaining%60)
}
