package lesson

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
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen() (*LessonScreen, *session.Controller, string) {
	subjects := subject.NewStore()
	sub := subjects.AddSubject("Cálculo I", []string{"Limites"})

	svc := mentor.NewService(llm.NewMockProvider(), nil)
	ctrl := session.NewController(subjects, svc, nil, nil)
	ctrl.Select(sub.ID)
	ctrl.OpenTopic("Limites")

	return New(ctrl, speech.Disabled(), sub.ID, "Limites"), ctrl, sub.ID
}

func TestLessonScreen_Title(t *testing.T) {
	l, _, _ := testScreen()
	if l.Title() != "Limites" {
		t.Errorf("Title = %q, want %q", l.Title(), "Limites")
	}
}

func TestLessonScreen_View_Loading(t *testing.T) {
	l, _, _ := testScreen()
	if l.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestLessonScreen_ContentLoads(t *testing.T) {
	l, _, _ := testScreen()

	var scr screen.Screen = l
	scr, _ = scr.Update(lessonReadyMsg{Content: "# Limites\n\nUma aula."})
	ls := scr.(*LessonScreen)
	if ls.loading {
		t.Error("expected loading to be cleared")
	}
	if ls.View(80, 24) == "" {
		t.Error("expected non-empty content view")
	}
}

func TestLessonScreen_CompleteAwardsXPAndPops(t *testing.T) {
	l, ctrl, id := testScreen()
	l.loading = false
	l.content = "conteúdo"

	var scr screen.Screen = l
	_, cmd := scr.Update(keyPress('c'))
	if cmd == nil {
		t.Fatal("expected a command for C")
	}
	done, ok := cmd().(completeDoneMsg)
	if !ok {
		t.Fatal("expected completeDoneMsg")
	}
	if !done.Changed {
		t.Error("expected first completion to change state")
	}

	sub := ctrl.Subjects().Get(id)
	if sub.XP != 100 {
		t.Errorf("XP = %d, want 100", sub.XP)
	}
	if !sub.IsCompleted("Limites") {
		t.Error("expected topic to be completed")
	}

	// The completion result returns to the roadmap and clears the topic.
	_, cmd = scr.Update(done)
	if cmd == nil {
		t.Fatal("expected a pop command after completion")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after completion")
	}
	if ctrl.ActiveTopic() != "" {
		t.Errorf("active topic = %q, want empty", ctrl.ActiveTopic())
	}

	// Completing again is a no-op on XP.
	_, cmd = scr.Update(keyPress('c'))
	done = cmd().(completeDoneMsg)
	if done.Changed {
		t.Error("expected second completion to be a no-op")
	}
	if got := ctrl.Subjects().Get(id).XP; got != 100 {
		t.Errorf("XP after repeat = %d, want 100", got)
	}
}

func TestLessonScreen_Close(t *testing.T) {
	l, ctrl, _ := testScreen()
	l.Close()
	if ctrl.ActiveTopic() != "" {
		t.Errorf("active topic = %q, want empty after close", ctrl.ActiveTopic())
	}
}
