// Package subjects implements the home screen: the subject list, new
// subject creation, and deletion.
package subjects

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/progression"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/router"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screens/study"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/speech"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/components"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/layout"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type uiMode int

const (
	modeList uiMode = iota
	modeAdd
	modeGenerating
	modeConfirmDelete
)

// SubjectsScreen lists study subjects and handles their lifecycle.
type SubjectsScreen struct {
	ctrl    *session.Controller
	speaker speech.Speaker

	menu         components.Menu
	mode         uiMode
	input        components.TextInput
	pendingName  string
	deleteTarget string
	spinnerFrame int
	errMsg       string
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)

// New creates the subjects screen.
func New(ctrl *session.Controller, speaker speech.Speaker) *SubjectsScreen {
	s := &SubjectsScreen{
		ctrl:    ctrl,
		speaker: speaker,
		input:   components.NewTextInput("Ex: Cálculo I, História do Brasil...", 60),
	}
	s.rebuildMenu()
	return s
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Title() string {
	return "Matérias"
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeAdd:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Criar"},
			{Key: "Esc", Description: "Cancelar"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "Y", Description: "Apagar"},
			{Key: "N", Description: "Manter"},
		}
	case modeGenerating:
		return nil
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Estudar"},
			{Key: "A", Description: "Nova matéria"},
			{Key: "D", Description: "Apagar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
}

func (s *SubjectsScreen) rebuildMenu() {
	subs := s.ctrl.Subjects().List()
	items := make([]components.MenuItem, 0, len(subs))
	for _, sub := range subs {
		sub := sub
		items = append(items, components.MenuItem{
			Label: sub.Name,
			Detail: fmt.Sprintf("Nv %d · %d/%d tópicos · %d sessões",
				sub.Level, sub.CompletedCount(), len(sub.Roadmap), sub.TotalSessions),
			Action: func() tea.Cmd {
				s.ctrl.Select(sub.ID)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: study.New(s.ctrl, s.speaker)}
				}
			},
		})
	}
	selected := s.menu.Selected
	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if s.mode != modeGenerating {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case subjectAddedMsg:
		s.mode = modeList
		s.pendingName = ""
		if msg.Err != nil {
			s.errMsg = "Não foi possível criar a matéria. Tente novamente."
			return s, nil
		}
		s.rebuildMenu()
		// Jump straight into the new subject.
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: study.New(s.ctrl, s.speaker)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SubjectsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeAdd:
		switch msg.String() {
		case "esc":
			s.mode = modeList
			s.input.Clear()
			return s, nil
		case "enter":
			name := strings.TrimSpace(s.input.Value())
			if name == "" {
				return s, nil
			}
			s.mode = modeGenerating
			s.pendingName = name
			s.errMsg = ""
			s.input.Clear()
			return s, tea.Batch(s.addSubject(name), spinnerTick())
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

	case modeConfirmDelete:
		switch msg.String() {
		case "y", "Y":
			s.ctrl.DeleteSubject(s.deleteTarget)
			s.deleteTarget = ""
			s.mode = modeList
			s.rebuildMenu()
		case "n", "N", "esc":
			s.deleteTarget = ""
			s.mode = modeList
		}
		return s, nil

	case modeGenerating:
		// Roadmap generation is not cancellable from here.
		return s, nil
	}

	switch msg.String() {
	case "a", "A":
		s.mode = modeAdd
		s.errMsg = ""
		return s, s.input.Init()
	case "d", "D":
		if sub := s.selectedSubject(); sub != nil {
			s.deleteTarget = sub.ID
			s.mode = modeConfirmDelete
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SubjectsScreen) selectedSubject() *subject.Subject {
	subs := s.ctrl.Subjects().List()
	if s.menu.Selected < 0 || s.menu.Selected >= len(subs) {
		return nil
	}
	return subs[s.menu.Selected]
}

func (s *SubjectsScreen) addSubject(name string) tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		sub, err := ctrl.AddSubject(context.Background(), name)
		return subjectAddedMsg{Subject: sub, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *SubjectsScreen) View(width, height int) string {
	var body string

	switch s.mode {
	case modeAdd:
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render("Nova matéria"),
			"",
			theme.Body.Render("O que você quer estudar?"),
			"",
			s.input.View(),
		)

	case modeGenerating:
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render("Nova matéria"),
			"",
			theme.Body.Render(fmt.Sprintf("%s Gerando roadmap para %q...",
				spinnerFrames[s.spinnerFrame], s.pendingName)),
			"",
			theme.Hint.Render("O mentor está montando seu plano de estudos."),
		)

	case modeConfirmDelete:
		name := ""
		if sub := s.ctrl.Subjects().Get(s.deleteTarget); sub != nil {
			name = sub.Name
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render("Apagar matéria"),
			"",
			theme.Body.Render(fmt.Sprintf("Apagar %q e todo o progresso? (y/n)", name)),
		)

	default:
		sections := []string{theme.Title.Render("Suas matérias"), ""}
		if s.ctrl.Subjects().Len() == 0 {
			sections = append(sections,
				theme.Hint.Render("Nenhuma matéria ainda. Pressione A para criar a primeira."))
		} else {
			sections = append(sections, s.menu.View())
		}
		if s.errMsg != "" {
			sections = append(sections, "",
				lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		}
		sections = append(sections, "", s.totalsLine())
		body = lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *SubjectsScreen) totalsLine() string {
	totalXP := 0
	for _, sub := range s.ctrl.Subjects().List() {
		totalXP += sub.XP
	}
	level := progression.LevelFor(totalXP)
	return theme.Hint.Render(fmt.Sprintf("Total: %d XP · %s", totalXP, progression.TitleFor(level)))
}
