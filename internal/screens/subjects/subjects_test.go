package subjects

import (
	"context"
	"errors"
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

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testController() *session.Controller {
	subjects := subject.NewStore()
	subjects.AddSubject("Cálculo I", []string{"Limites", "Derivadas"})
	subjects.AddSubject("História", []string{"Brasil Colônia"})

	svc := mentor.NewService(llm.NewMockProvider(), nil)
	return session.NewController(subjects, svc, nil, nil)
}

func TestSubjectsScreen_Title(t *testing.T) {
	s := New(testController(), speech.Disabled())
	if s.Title() != "Matérias" {
		t.Errorf("Title = %q, want %q", s.Title(), "Matérias")
	}
}

func TestSubjectsScreen_View_List(t *testing.T) {
	s := New(testController(), speech.Disabled())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for subject list")
	}
}

func TestSubjectsScreen_View_Empty(t *testing.T) {
	subjects := subject.NewStore()
	svc := mentor.NewService(llm.NewMockProvider(), nil)
	ctrl := session.NewController(subjects, svc, nil, nil)

	s := New(ctrl, speech.Disabled())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for empty list")
	}
}

func TestSubjectsScreen_EnterOpensStudy(t *testing.T) {
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
	if ctrl.SelectedID() == "" {
		t.Error("expected enter to select a subject")
	}
}

func TestSubjectsScreen_AddFlow(t *testing.T) {
	s := New(testController(), speech.Disabled())

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	ss := scr.(*SubjectsScreen)
	if ss.mode != modeAdd {
		t.Fatal("expected add mode after pressing A")
	}

	// Empty name does not start generation.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SubjectsScreen)
	if ss.mode != modeAdd {
		t.Error("expected empty name to stay in add mode")
	}

	// Esc cancels back to the list.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*SubjectsScreen)
	if ss.mode != modeList {
		t.Error("expected esc to return to list mode")
	}
}

func TestSubjectsScreen_SubjectAdded(t *testing.T) {
	ctrl := testController()
	s := New(ctrl, speech.Disabled())
	s.mode = modeGenerating

	sub, err := ctrl.AddSubject(context.Background(), "Física")
	if err != nil {
		t.Fatalf("AddSubject: %v", err)
	}

	var scr screen.Screen = s
	scr, cmd := scr.Update(subjectAddedMsg{Subject: sub})
	ss := scr.(*SubjectsScreen)
	if ss.mode != modeList {
		t.Error("expected list mode after subject added")
	}
	if cmd == nil {
		t.Fatal("expected a push command after subject added")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg after subject added")
	}
}

func TestSubjectsScreen_SubjectAddFailed(t *testing.T) {
	s := New(testController(), speech.Disabled())
	s.mode = modeGenerating

	var scr screen.Screen = s
	scr, _ = scr.Update(subjectAddedMsg{Err: errors.New("boom")})
	ss := scr.(*SubjectsScreen)
	if ss.mode != modeList {
		t.Error("expected list mode after failed add")
	}
	if ss.errMsg == "" {
		t.Error("expected an error message after failed add")
	}
}

func TestSubjectsScreen_DeleteConfirm(t *testing.T) {
	ctrl := testController()
	s := New(ctrl, speech.Disabled())
	before := ctrl.Subjects().Len()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('d'))
	ss := scr.(*SubjectsScreen)
	if ss.mode != modeConfirmDelete {
		t.Fatal("expected delete confirmation after pressing D")
	}

	// N keeps the subject.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SubjectsScreen)
	if ss.mode != modeList {
		t.Error("expected list mode after declining delete")
	}
	if got := ctrl.Subjects().Len(); got != before {
		t.Errorf("subjects = %d, want %d", got, before)
	}

	// Y deletes it.
	scr, _ = ss.Update(keyPress('d'))
	ss = scr.(*SubjectsScreen)
	scr, _ = ss.Update(keyPress('y'))
	ss = scr.(*SubjectsScreen)
	if got := ctrl.Subjects().Len(); got != before-1 {
		t.Errorf("subjects = %d, want %d", got, before-1)
	}
}

func TestSubjectsScreen_KeyHints(t *testing.T) {
	s := New(testController(), speech.Disabled())
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints in list mode")
	}
	s.mode = modeGenerating
	if s.KeyHints() != nil {
		t.Error("expected no key hints while generating")
	}
}
