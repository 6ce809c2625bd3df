package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/screen"
)

// fakeScreen records lifecycle calls for stack assertions.
type fakeScreen struct {
	name    string
	initRan bool
	lastMsg tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPushGrowsStackAndInits(t *testing.T) {
	r := New(&fakeScreen{name: "matérias"})

	study := &fakeScreen{name: "estudo"}
	r.Push(study)

	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", r.Depth())
	}
	if got := r.Active().Title(); got != "estudo" {
		t.Errorf("Active = %q, want %q", got, "estudo")
	}
	if !study.initRan {
		t.Error("expected Init to run on the pushed screen")
	}
}

func TestPopRevealsPrevious(t *testing.T) {
	home := &fakeScreen{name: "matérias"}
	r := New(home)
	r.Push(&fakeScreen{name: "estudo"})

	r.Pop()

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}
	if got := r.Active().Title(); got != "matérias" {
		t.Errorf("Active = %q, want %q", got, "matérias")
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "matérias"})

	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 after popping at the bottom", r.Depth())
	}
}

func TestUpdateRoutesToActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "matérias"}
	study := &fakeScreen{name: "estudo"}
	r := New(home)
	r.Push(study)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if study.lastMsg == nil {
		t.Error("expected the active screen to receive the message")
	}
	if home.lastMsg != nil {
		t.Error("expected the covered screen to stay untouched")
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "matérias"})

	lesson := &fakeScreen{name: "aula"}
	r.Update(PushScreenMsg{Screen: lesson})
	if r.Depth() != 2 || !lesson.initRan {
		t.Fatalf("Depth = %d, initRan = %v after PushScreenMsg", r.Depth(), lesson.initRan)
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1 after PopScreenMsg", r.Depth())
	}
}

func TestReplaceSwapsWithoutGrowing(t *testing.T) {
	r := New(&fakeScreen{name: "matérias"})
	r.Push(&fakeScreen{name: "estudo"})

	chat := &fakeScreen{name: "mentor"}
	r.Replace(chat)

	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2 after Replace", r.Depth())
	}
	if got := r.Active().Title(); got != "mentor" {
		t.Errorf("Active = %q, want %q", got, "mentor")
	}
	if !chat.initRan {
		t.Error("expected Init to run on the replacement screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&fakeScreen{name: "matérias"})

	study := &fakeScreen{name: "estudo"}
	r.Update(ReplaceScreenMsg{Screen: study})

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}
	if got := r.Active().Title(); got != "estudo" {
		t.Errorf("Active = %q, want %q", got, "estudo")
	}
	if !study.initRan {
		t.Error("expected Init to run via ReplaceScreenMsg")
	}
}
