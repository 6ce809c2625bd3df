// Package lesson implements the topic lesson screen: generated study
// content rendered as Markdown, with completion and read-aloud.
package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/router"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/speech"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/components"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/layout"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// LessonScreen shows one roadmap topic's generated lesson.
type LessonScreen struct {
	ctrl      *session.Controller
	speaker   speech.Speaker
	subjectID string
	topic     string

	loading      bool
	spinnerFrame int
	content      string
	lines        []string
	linesWidth   int
	offset       int
	errMsg       string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.Closer = (*LessonScreen)(nil)

// New creates the lesson screen. Content loads on Init.
func New(ctrl *session.Controller, speaker speech.Speaker, subjectID, topic string) *LessonScreen {
	return &LessonScreen{
		ctrl:      ctrl,
		speaker:   speaker,
		subjectID: subjectID,
		topic:     topic,
		loading:   true,
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return tea.Batch(l.fetchLesson(), spinnerTick())
}

func (l *LessonScreen) Title() string {
	return l.topic
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Voltar"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Rolar"},
		{Key: "C", Description: "Concluir"},
		{Key: "V", Description: "Ouvir"},
		{Key: "X", Description: "Parar áudio"},
		{Key: "Esc", Description: "Voltar"},
	}
}

// Close stops any running narration and clears the active topic.
func (l *LessonScreen) Close() {
	l.speaker.Stop()
	l.ctrl.CloseTopic()
}

func (l *LessonScreen) fetchLesson() tea.Cmd {
	ctrl, id, topic := l.ctrl, l.subjectID, l.topic
	return func() tea.Msg {
		content, err := ctrl.FetchLesson(context.Background(), id, topic)
		return lessonReadyMsg{Content: content, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !l.loading {
			return l, nil
		}
		l.spinnerFrame = (l.spinnerFrame + 1) % len(spinnerFrames)
		return l, spinnerTick()

	case lessonReadyMsg:
		l.loading = false
		if msg.Err != nil {
			l.errMsg = "Erro ao carregar a aula."
			return l, nil
		}
		l.content = msg.Content
		l.lines = nil // re-rendered on next View with the real width
		return l, nil

	case completeDoneMsg:
		// Completion returns to the roadmap.
		l.Close()
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if l.offset > 0 {
			l.offset--
		}
	case "down", "j":
		l.offset++
	case "pgup":
		l.offset -= 10
		if l.offset < 0 {
			l.offset = 0
		}
	case "pgdown":
		l.offset += 10

	case "c", "C":
		if l.loading {
			return l, nil
		}
		ctrl, id, topic := l.ctrl, l.subjectID, l.topic
		return l, func() tea.Msg {
			return completeDoneMsg{Changed: ctrl.CompleteTopic(context.Background(), id, topic)}
		}

	case "v", "V":
		if !l.loading && l.content != "" {
			l.speaker.Speak(l.content)
		}
	case "x", "X":
		l.speaker.Stop()
	}

	return l, nil
}

func (l *LessonScreen) View(width, height int) string {
	if l.loading {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(fmt.Sprintf("%s O mentor está escrevendo a aula sobre %q...",
				spinnerFrames[l.spinnerFrame], l.topic))
	}

	if l.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render(l.errMsg)
	}

	contentWidth := width - 4
	if l.lines == nil || l.linesWidth != contentWidth {
		rendered := components.RenderMarkdown(l.content, contentWidth)
		l.lines = strings.Split(strings.TrimRight(rendered, "\n"), "\n")
		l.linesWidth = contentWidth
		l.offset = 0
	}

	statusLine := l.statusLine()
	viewRows := height - 2
	if viewRows < 1 {
		viewRows = 1
	}

	maxOffset := len(l.lines) - viewRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}

	end := l.offset + viewRows
	if end > len(l.lines) {
		end = len(l.lines)
	}
	body := strings.Join(l.lines[l.offset:end], "\n")

	return lipgloss.NewStyle().Padding(0, 2).Render(body) + "\n" + statusLine
}

func (l *LessonScreen) statusLine() string {
	sub := l.ctrl.Subjects().Get(l.subjectID)
	if sub == nil {
		return ""
	}
	status := theme.Pending.Render("○ pendente")
	if sub.IsCompleted(l.topic) {
		status = theme.Done.Render("✓ concluído (+XP)")
	}
	return "  " + status
}
