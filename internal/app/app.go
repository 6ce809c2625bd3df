// Package app holds the root Bubble Tea model. It owns the single
// global Pomodoro countdown and the screen stack.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/router"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screens/subjects"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/speech"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/ui/layout"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Controller *session.Controller
	Durations  timer.Durations
	Speaker    speech.Speaker
	Logger     *zap.Logger
}

// timerTickMsg advances the countdown once per second. The generation
// tag ties each tick to the loop that scheduled it, so a pause/start
// cycle inside one second cannot leave two loops alive.
type timerTickMsg struct {
	gen int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ctrl   *session.Controller
	spk    speech.Speaker
	log    *zap.Logger

	timer   timer.State
	tickGen int
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	spk := opts.Speaker
	if spk == nil {
		spk = speech.Disabled()
	}
	home := subjects.New(opts.Controller, spk)
	return AppModel{
		router: router.New(home),
		ctrl:   opts.Controller,
		spk:    spk,
		log:    log,
		timer:  timer.New(opts.Durations),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerTickMsg:
		if msg.gen != m.tickGen || !m.timer.Running {
			return m, nil
		}
		var done *timer.Completion
		m.timer, done = timer.Tick(m.timer)
		cmds := []tea.Cmd{m.broadcastTimer()}
		if done != nil {
			m.handleCompletion(*done)
		}
		if m.timer.Running {
			cmds = append(cmds, tickCmd(m.tickGen))
		}
		return m, tea.Batch(cmds...)

	case screen.TimerToggleMsg:
		wasRunning := m.timer.Running
		if wasRunning {
			m.timer = timer.Pause(m.timer)
		} else {
			m.timer = timer.Start(m.timer)
		}
		m.tickGen++
		cmds := []tea.Cmd{m.broadcastTimer()}
		if !wasRunning && m.timer.Running {
			cmds = append(cmds, tickCmd(m.tickGen))
		}
		return m, tea.Batch(cmds...)

	case screen.TimerResetMsg:
		m.timer = timer.Reset(m.timer)
		m.tickGen++
		return m, m.broadcastTimer()

	case screen.TimerSetModeMsg:
		m.timer = timer.ChangeMode(m.timer, msg.Mode)
		m.tickGen++
		return m, m.broadcastTimer()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.spk.Stop()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				if closer, ok := m.router.Active().(screen.Closer); ok {
					closer.Close()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleCompletion credits the elapsed session and announces the next
// phase out loud.
func (m *AppModel) handleCompletion(done timer.Completion) {
	m.ctrl.NotifyCompletion(context.Background(), done, m.timer.Durations)

	if done.Mode == timer.ModeFocus {
		m.spk.Speak("Sessão de foco concluída. Hora da pausa!")
	} else {
		m.spk.Speak("Pausa encerrada. De volta ao foco!")
	}
}

// broadcastTimer pushes the countdown state to the active screen.
func (m AppModel) broadcastTimer() tea.Cmd {
	state := m.timer
	return func() tea.Msg { return screen.TimerStateMsg{State: state} }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.TimerInfo{
		ModeLabel: m.timer.Mode.DisplayName(),
		ModeKey:   string(m.timer.Mode),
		Clock:     timer.FormatClock(m.timer),
		Running:   m.timer.Running,
	}, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Selecionar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
