package study

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/mentor"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/router"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/speech"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testController() *session.Controller {
	subjects := subject.NewStore()
	sub := subjects.AddSubject("Cálculo I", []string{"Limites", "Derivadas", "Integrais"})

	svc := mentor.NewService(llm.NewMockProvider(), nil)
	ctrl := session.NewController(subjects, svc, nil, nil)
	ctrl.Select(sub.ID)
	return ctrl
}

func TestStudyScreen_Title(t *testing.T) {
	s := New(testController(), speech.Disabled())
	if s.Title() != "Cálculo I" {
		t.Errorf("Title = %q, want %q", s.Title(), "Cálculo I")
	}
}

func TestStudyScreen_View(t *testing.T) {
	s := New(testController(), speech.Disabled())
	s.timerState = timer.New(timer.DefaultDurations())
	if s.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
}

func TestStudyScreen_TimerKeys(t *testing.T) {
	s := New(testController(), speech.Disabled())

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command for space")
	}
	if _, ok := cmd().(screen.TimerToggleMsg); !ok {
		t.Error("expected TimerToggleMsg for space")
	}

	_, cmd = scr.Update(keyPress('r'))
	if _, ok := cmd().(screen.TimerResetMsg); !ok {
		t.Error("expected TimerResetMsg for R")
	}

	_, cmd = scr.Update(keyPress('2'))
	msg, ok := cmd().(screen.TimerSetModeMsg)
	if !ok {
		t.Fatal("expected TimerSetModeMsg for 2")
	}
	if msg.Mode != timer.ModeShortBreak {
		t.Errorf("mode = %v, want %v", msg.Mode, timer.ModeShortBreak)
	}
}

func TestStudyScreen_CursorMoves(t *testing.T) {
	s := New(testController(), speech.Disabled())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	ss := scr.(*StudyScreen)
	if ss.cursor != 1 {
		t.Errorf("cursor = %d, want 1", ss.cursor)
	}

	// Cursor stops at the last topic.
	scr, _ = ss.Update(specialKey(tea.KeyDown))
	scr, _ = scr.(*StudyScreen).Update(specialKey(tea.KeyDown))
	ss = scr.(*StudyScreen)
	if ss.cursor != 2 {
		t.Errorf("cursor = %d, want 2", ss.cursor)
	}
}

func TestStudyScreen_EnterOpensLesson(t *testing.T) {
	ctrl := testController()
	s := New(ctrl, speech.Disabled())

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg on enter")
	}
	if ctrl.ActiveTopic() != "Limites" {
		t.Errorf("active topic = %q, want %q", ctrl.ActiveTopic(), "Limites")
	}
}

func TestStudyScreen_ChatKey(t *testing.T) {
	s := New(testController(), speech.Disabled())

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('c'))
	if cmd == nil {
		t.Fatal("expected a command for C")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg for chat")
	}
}

func TestStudyScreen_ExtendDone(t *testing.T) {
	s := New(testController(), speech.Disabled())
	s.extending = true

	var scr screen.Screen = s
	scr, _ = scr.Update(extendDoneMsg{Topics: []string{"Séries"}})
	ss := scr.(*StudyScreen)
	if ss.extending {
		t.Error("expected extending to be cleared")
	}
	if ss.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", ss.errMsg)
	}

	ss.extending = true
	scr, _ = ss.Update(extendDoneMsg{Topics: nil})
	ss = scr.(*StudyScreen)
	if ss.errMsg == "" {
		t.Error("expected a message when no topics came back")
	}
}

func TestStudyScreen_NoSubjectPops(t *testing.T) {
	subjects := subject.NewStore()
	svc := mentor.NewService(llm.NewMockProvider(), nil)
	ctrl := session.NewController(subjects, svc, nil, nil)

	s := New(ctrl, speech.Disabled())
	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command with no subject")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg with no subject selected")
	}
}

func TestStudyScreen_TimerStateMsg(t *testing.T) {
	s := New(testController(), speech.Disabled())

	st := timer.New(timer.DefaultDurations())
	st = timer.Start(st)

	var scr screen.Screen = s
	scr, _ = scr.Update(screen.TimerStateMsg{State: st})
	ss := scr.(*StudyScreen)
	if !ss.timerState.Running {
		t.Error("expected timer state to be adopted")
	}
}
