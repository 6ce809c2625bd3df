package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/theme"
)

// TimerPanel renders the Pomodoro card: mode tabs, the countdown clock,
// and an elapsed progress bar.
type TimerPanel struct {
	State timer.State
	Width int
}

var allModes = []timer.Mode{timer.ModeFocus, timer.ModeShortBreak, timer.ModeLongBreak}

// View renders the panel.
func (p TimerPanel) View() string {
	modeColor := theme.ModeColor(string(p.State.Mode))

	tabs := make([]string, 0, len(allModes))
	for _, m := range allModes {
		style := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)
		if m == p.State.Mode {
			style = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(modeColor).
				Bold(true).
				Padding(0, 1)
		}
		tabs = append(tabs, style.Render(m.DisplayName()))
	}
	tabRow := strings.Join(tabs, " ")

	clockStyle := lipgloss.NewStyle().
		Foreground(modeColor).
		Bold(true)
	clock := clockStyle.Render("  " + timer.FormatClock(p.State) + "  ")

	status := theme.Hint.Render("pausado")
	if p.State.Running {
		status = lipgloss.NewStyle().Foreground(modeColor).Render("em andamento")
	}

	barWidth := p.Width - 8
	if barWidth < 20 {
		barWidth = 20
	}
	bar := ProgressBar{
		Percent:   timer.Progress(p.State) / 100,
		Width:     barWidth,
		FillColor: modeColor,
	}

	inner := lipgloss.JoinVertical(lipgloss.Center,
		tabRow,
		"",
		clock,
		status,
		"",
		bar.View(),
	)

	return theme.Card.Width(p.Width - 2).Align(lipgloss.Center).Render(inner)
}
