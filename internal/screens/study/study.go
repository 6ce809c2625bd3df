// Package study implements the per-subject screen: the Pomodoro panel,
// the roadmap topic list, and entry points into lessons and the mentor
// chat.
package study

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/progression"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/router"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screens/chat"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screens/lesson"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/speech"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/components"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/layout"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StudyScreen shows the selected subject's roadmap next to the timer.
type StudyScreen struct {
	ctrl    *session.Controller
	speaker speech.Speaker

	timerState   timer.State
	cursor       int
	extending    bool
	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates the study screen for the currently selected subject.
func New(ctrl *session.Controller, speaker speech.Speaker) *StudyScreen {
	return &StudyScreen{ctrl: ctrl, speaker: speaker}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	if sub := s.ctrl.Selected(); sub != nil {
		return sub.Name
	}
	return "Estudo"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Iniciar/Pausar"},
		{Key: "1/2/3", Description: "Modo"},
		{Key: "Enter", Description: "Abrir tópico"},
		{Key: "C", Description: "Chat"},
		{Key: "E", Description: "Mais tópicos"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.TimerStateMsg:
		s.timerState = msg.State
		return s, nil

	case spinnerTickMsg:
		if !s.extending {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case extendDoneMsg:
		s.extending = false
		if msg.Err != nil {
			s.errMsg = "Não foi possível gerar novos tópicos."
		} else if len(msg.Topics) == 0 {
			s.errMsg = "O mentor não sugeriu tópicos novos desta vez."
		} else {
			s.errMsg = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sub := s.ctrl.Selected()
	if sub == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case " ", "space":
		return s, func() tea.Msg { return screen.TimerToggleMsg{} }
	case "r", "R":
		return s, func() tea.Msg { return screen.TimerResetMsg{} }
	case "1":
		return s, setMode(timer.ModeFocus)
	case "2":
		return s, setMode(timer.ModeShortBreak)
	case "3":
		return s, setMode(timer.ModeLongBreak)

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(sub.Roadmap)-1 {
			s.cursor++
		}

	case "enter":
		if s.cursor >= 0 && s.cursor < len(sub.Roadmap) {
			topic := sub.Roadmap[s.cursor]
			s.ctrl.OpenTopic(topic)
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lesson.New(s.ctrl, s.speaker, sub.ID, topic),
				}
			}
		}

	case "c", "C":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: chat.New(s.ctrl, sub.ID)}
		}

	case "e", "E":
		if s.extending {
			return s, nil
		}
		s.extending = true
		s.errMsg = ""
		return s, tea.Batch(s.extendRoadmap(sub.ID), spinnerTick())
	}

	return s, nil
}

func setMode(mode timer.Mode) tea.Cmd {
	return func() tea.Msg { return screen.TimerSetModeMsg{Mode: mode} }
}

func (s *StudyScreen) extendRoadmap(id string) tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		topics, err := ctrl.ExtendRoadmap(context.Background(), id)
		return extendDoneMsg{Topics: topics, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *StudyScreen) View(width, height int) string {
	sub := s.ctrl.Selected()
	if sub == nil {
		return theme.Hint.Render("Nenhuma matéria selecionada.")
	}

	panelWidth := width / 2
	if panelWidth < 40 {
		panelWidth = 40
	}

	panel := components.TimerPanel{State: s.timerState, Width: panelWidth}.View()

	xpBar := components.ProgressBar{
		Label:       fmt.Sprintf("Nv %d · %s", sub.Level, progression.TitleFor(sub.Level)),
		Percent:     progression.LevelProgress(sub.XP, sub.Level) / 100,
		ShowPercent: true,
		Width:       panelWidth - 4,
		FillColor:   theme.Accent,
	}.View()

	left := lipgloss.JoinVertical(lipgloss.Left, panel, "", xpBar)

	right := s.renderRoadmap(width-panelWidth-4, height)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(body)
}

func (s *StudyScreen) renderRoadmap(width, height int) string {
	selected := s.ctrl.Selected()

	lines := []string{theme.Title.Render("Roadmap"), ""}
	if len(selected.Roadmap) == 0 {
		lines = append(lines, theme.Hint.Render("Roadmap vazio. Pressione E para gerar tópicos."))
	}

	// Keep the cursor visible on small terminals.
	maxRows := height - 6
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if s.cursor >= maxRows {
		start = s.cursor - maxRows + 1
	}

	for i := start; i < len(selected.Roadmap) && i < start+maxRows; i++ {
		topic := selected.Roadmap[i]
		mark := theme.Pending.Render("○")
		if selected.IsCompleted(topic) {
			mark = theme.Done.Render("✓")
		}
		line := fmt.Sprintf("%s %s", mark, topic)
		if i == s.cursor {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = "  " + theme.Unselected.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	done := selected.CompletedCount()
	lines = append(lines, theme.Hint.Render(
		fmt.Sprintf("%d/%d concluídos (%.0f%%)", done, len(selected.Roadmap), selected.RoadmapProgress())))

	if s.extending {
		lines = append(lines, theme.Body.Render(
			fmt.Sprintf("%s Gerando novos tópicos...", spinnerFrames[s.spinnerFrame])))
	}
	if s.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return lipgloss.NewStyle().Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}
