package screen

import "github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"

// TimerStateMsg is broadcast by the root model to the active screen
// whenever the global countdown changes.
type TimerStateMsg struct {
	State timer.State
}

// TimerToggleMsg asks the root model to start or pause the countdown.
type TimerToggleMsg struct{}

// TimerResetMsg asks the root model to reset the current mode.
type TimerResetMsg struct{}

// TimerSetModeMsg asks the root model to switch the countdown mode.
type TimerSetModeMsg struct {
	Mode timer.Mode
}
