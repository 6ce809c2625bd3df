// Package chat implements the per-subject mentor conversation screen.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/components"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/layout"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ChatScreen is the conversation with the mentor about one subject.
type ChatScreen struct {
	ctrl      *session.Controller
	subjectID string

	input        components.TextInput
	waiting      bool
	spinnerFrame int
	offset       int
	stick        bool // keep view glued to the newest message
	errMsg       string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen for a subject.
func New(ctrl *session.Controller, subjectID string) *ChatScreen {
	return &ChatScreen{
		ctrl:      ctrl,
		subjectID: subjectID,
		input:     components.NewTextInput("Pergunte algo ao mentor...", 400),
		stick:     true,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	if sub := c.ctrl.Subjects().Get(c.subjectID); sub != nil {
		return "Mentor · " + sub.Name
	}
	return "Mentor"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Enviar"},
		{Key: "↑↓", Description: "Rolar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.spinnerFrame = (c.spinnerFrame + 1) % len(spinnerFrames)
		return c, spinnerTick()

	case replyMsg:
		c.waiting = false
		c.stick = true
		if msg.Err != nil {
			c.errMsg = "Falha ao enviar. Tente novamente."
		} else {
			c.errMsg = ""
		}
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(c.input.Value())
			if text == "" || c.waiting {
				return c, nil
			}
			c.input.Clear()
			c.waiting = true
			c.stick = true
			c.errMsg = ""
			return c, tea.Batch(c.send(text), spinnerTick())
		case "up":
			if c.offset > 0 {
				c.offset--
				c.stick = false
			}
			return c, nil
		case "down":
			c.offset++
			return c, nil
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	return c, nil
}

func (c *ChatScreen) send(text string) tea.Cmd {
	ctrl, id := c.ctrl, c.subjectID
	return func() tea.Msg {
		reply, err := ctrl.SendChat(context.Background(), id, text)
		return replyMsg{Reply: reply, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (c *ChatScreen) View(width, height int) string {
	sub := c.ctrl.Subjects().Get(c.subjectID)
	if sub == nil {
		return theme.Hint.Render("Matéria não encontrada.")
	}

	bubbleWidth := width - 10
	if bubbleWidth < 24 {
		bubbleWidth = 24
	}

	var lines []string
	if len(sub.ChatHistory) == 0 {
		lines = append(lines, theme.Hint.Render(
			"Comece a conversa. O mentor conhece o seu roadmap de "+sub.Name+"."))
	}
	for _, m := range sub.ChatHistory {
		lines = append(lines, renderBubble(m, bubbleWidth, width)...)
		lines = append(lines, "")
	}
	if c.waiting {
		lines = append(lines, theme.Hint.Render(
			fmt.Sprintf("%s Mentor está digitando...", spinnerFrames[c.spinnerFrame])))
	}
	if c.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
	}

	inputView := "  " + c.input.View()
	viewRows := height - 3
	if viewRows < 1 {
		viewRows = 1
	}

	maxOffset := len(lines) - viewRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.stick || c.offset > maxOffset {
		c.offset = maxOffset
	}

	end := c.offset + viewRows
	if end > len(lines) {
		end = len(lines)
	}
	history := strings.Join(lines[c.offset:end], "\n")

	return lipgloss.NewStyle().Padding(0, 1).Render(history) +
		"\n\n" + inputView
}

// renderBubble renders one chat turn, learner right-aligned, mentor
// left-aligned.
func renderBubble(m subject.ChatMessage, bubbleWidth, totalWidth int) []string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MaxWidth(bubbleWidth)

	if m.Role == subject.RoleUser {
		style = style.BorderForeground(theme.Primary).Foreground(theme.Text)
	} else {
		style = style.BorderForeground(theme.Secondary).Foreground(theme.Text)
	}

	rendered := style.Render(m.Text)
	if m.Role == subject.RoleUser {
		rendered = lipgloss.NewStyle().
			Width(totalWidth - 4).
			Align(lipgloss.Right).
			Render(rendered)
	}
	return strings.Split(rendered, "\n")
}
