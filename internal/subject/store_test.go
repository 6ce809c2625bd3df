package subject

import (
	"testing"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/progression"
)

func newTestStore(t *testing.T) (*Store, *Subject) {
	t.Helper()
	st := NewStore()
	s := st.AddSubject("Inglês", []string{"Verbo To Be", "Present Simple", "Listening"})
	if s == nil {
		t.Fatal("AddSubject returned nil for a valid name")
	}
	return st, s
}

func TestAddSubject_RejectsBlankNames(t *testing.T) {
	st := NewStore()
	for _, name := range []string{"", "   ", "\t\n"} {
		if s := st.AddSubject(name, nil); s != nil {
			t.Errorf("AddSubject(%q) = %v, want nil", name, s)
		}
	}
	if st.Len() != 0 {
		t.Errorf("store should stay empty, has %d", st.Len())
	}
}

func TestAddSubject_EmptyRoadmapIsValid(t *testing.T) {
	st := NewStore()
	s := st.AddSubject("Física", nil)
	if s == nil {
		t.Fatal("empty roadmap must not block creation")
	}
	if len(s.Roadmap) != 0 {
		t.Errorf("roadmap = %v, want empty", s.Roadmap)
	}
	if s.XP != 0 || s.Level != 1 {
		t.Errorf("fresh subject xp/level = %d/%d, want 0/1", s.XP, s.Level)
	}
}

func TestAddSubject_FreshState(t *testing.T) {
	_, s := newTestStore(t)
	if s.ID == "" {
		t.Error("expected a generated id")
	}
	if s.Color == "" {
		t.Error("expected an assigned color")
	}
	if len(s.CompletedTopics) != 0 || len(s.TopicContent) != 0 || len(s.ChatHistory) != 0 {
		t.Error("new subject must have empty progress state")
	}
}

func TestCompleteTopic_AwardsXPOnce(t *testing.T) {
	st, s := newTestStore(t)

	if !st.CompleteTopic(s.ID, "Verbo To Be") {
		t.Fatal("first completion should change state")
	}
	got := st.Get(s.ID)
	if got.XP != progression.TopicXP {
		t.Errorf("xp = %d, want %d", got.XP, progression.TopicXP)
	}
	if !got.IsCompleted("Verbo To Be") {
		t.Error("topic not marked completed")
	}

	// Second completion is a no-op: identical state, no double XP.
	if st.CompleteTopic(s.ID, "Verbo To Be") {
		t.Error("double completion should report no change")
	}
	again := st.Get(s.ID)
	if again.XP != got.XP || again.Level != got.Level || again.CompletedCount() != got.CompletedCount() {
		t.Errorf("state changed on double completion: %+v vs %+v", again, got)
	}
}

func TestCompleteTopic_OnlyRoadmapTopics(t *testing.T) {
	st, s := newTestStore(t)
	if st.CompleteTopic(s.ID, "Tópico Inventado") {
		t.Error("completing a topic outside the roadmap must be a no-op")
	}
	if got := st.Get(s.ID); got.XP != 0 {
		t.Errorf("xp = %d, want 0", got.XP)
	}
}

func TestCompletedSubsetOfRoadmap_Invariant(t *testing.T) {
	st, s := newTestStore(t)

	// A messy sequence of operations.
	st.CompleteTopic(s.ID, "Verbo To Be")
	st.ExtendRoadmap(s.ID, []string{"Conversação"})
	st.CompleteTopic(s.ID, "Conversação")
	st.CompleteTopic(s.ID, "Não Existe")
	st.ExtendRoadmap(s.ID, nil)
	st.CompleteTopic(s.ID, "Listening")

	got := st.Get(s.ID)
	inRoadmap := make(map[string]bool, len(got.Roadmap))
	for _, topic := range got.Roadmap {
		inRoadmap[topic] = true
	}
	for topic := range got.CompletedTopics {
		if !inRoadmap[topic] {
			t.Errorf("completed topic %q is not in the roadmap", topic)
		}
	}
	if want := 3 * progression.TopicXP; got.XP != want {
		t.Errorf("xp = %d, want %d", got.XP, want)
	}
	if got.Level != progression.LevelFor(got.XP) {
		t.Errorf("level = %d, out of sync with xp %d", got.Level, got.XP)
	}
}

func TestExtendRoadmap(t *testing.T) {
	st, s := newTestStore(t)
	before := len(st.Get(s.ID).Roadmap)

	st.ExtendRoadmap(s.ID, []string{"Phrasal Verbs", "Conditionals"})
	got := st.Get(s.ID).Roadmap
	if len(got) != before+2 {
		t.Fatalf("roadmap length = %d, want %d", len(got), before+2)
	}
	if got[len(got)-1] != "Conditionals" {
		t.Errorf("topics must append in order, got %v", got)
	}

	// Empty extension leaves length unchanged.
	st.ExtendRoadmap(s.ID, []string{})
	if n := len(st.Get(s.ID).Roadmap); n != before+2 {
		t.Errorf("empty extension changed roadmap length to %d", n)
	}
}

func TestCacheTopicContent_AtMostOnce(t *testing.T) {
	st, s := newTestStore(t)

	first := st.CacheTopicContent(s.ID, "Listening", "# Aula 1")
	if first != "# Aula 1" {
		t.Fatalf("first cache = %q", first)
	}

	// A second write must not replace the cached lesson.
	second := st.CacheTopicContent(s.ID, "Listening", "# Aula substituta")
	if second != "# Aula 1" {
		t.Errorf("second cache returned %q, want the original", second)
	}
	if content, _ := st.TopicContent(s.ID, "Listening"); content != "# Aula 1" {
		t.Errorf("stored content = %q, want the original", content)
	}
}

func TestDeleteSubject(t *testing.T) {
	st, s := newTestStore(t)
	other := st.AddSubject("História", []string{"Idade Média"})

	st.DeleteSubject(s.ID)
	if st.Get(s.ID) != nil {
		t.Error("deleted subject still readable")
	}
	if st.First() != other.ID {
		t.Errorf("First() = %q, want %q", st.First(), other.ID)
	}

	// Mutations against the deleted id are safe no-ops.
	st.ExtendRoadmap(s.ID, []string{"x"})
	st.CompleteTopic(s.ID, "x")
	st.AppendChatMessage(s.ID, NewChatMessage(RoleUser, "oi"))
	st.RecordFocusSession(s.ID)
	if st.Get(s.ID) != nil {
		t.Error("no-op mutation resurrected a deleted subject")
	}

	st.DeleteSubject(other.ID)
	if st.First() != "" || st.Len() != 0 {
		t.Error("store should be empty")
	}
}

func TestAppendChatMessage_Ordered(t *testing.T) {
	st, s := newTestStore(t)

	st.AppendChatMessage(s.ID, NewChatMessage(RoleUser, "Como estudo listening?"))
	st.AppendChatMessage(s.ID, NewChatMessage(RoleMentor, "Comece com áudios curtos."))

	h := st.Get(s.ID).ChatHistory
	if len(h) != 2 {
		t.Fatalf("history length = %d, want 2", len(h))
	}
	if h[0].Role != RoleUser || h[1].Role != RoleMentor {
		t.Errorf("history out of order: %v then %v", h[0].Role, h[1].Role)
	}
}

func TestGet_ReturnsIsolatedCopy(t *testing.T) {
	st, s := newTestStore(t)

	copy1 := st.Get(s.ID)
	copy1.Roadmap[0] = "alterado"
	copy1.TopicContent["Listening"] = "injetado"
	copy1.XP = 9999

	fresh := st.Get(s.ID)
	if fresh.Roadmap[0] == "alterado" || fresh.XP == 9999 {
		t.Error("mutating a returned copy leaked into the store")
	}
	if _, ok := fresh.TopicContent["Listening"]; ok {
		t.Error("map mutation on a copy leaked into the store")
	}
}

func TestRecordFocusSession(t *testing.T) {
	st, s := newTestStore(t)
	st.RecordFocusSession(s.ID)
	st.RecordFocusSession(s.ID)
	if n := st.Get(s.ID).TotalSessions; n != 2 {
		t.Errorf("TotalSessions = %d, want 2", n)
	}
}

func TestSeed_LevelDerivedFromXP(t *testing.T) {
	st := NewStore()
	st.Seed(SampleSubjects())

	subjects := st.List()
	if len(subjects) != 3 {
		t.Fatalf("seeded %d subjects, want 3", len(subjects))
	}
	for _, s := range subjects {
		if s.Level != progression.LevelFor(s.XP) {
			t.Errorf("%s: level %d inconsistent with xp %d", s.Name, s.Level, s.XP)
		}
	}
	// 450 XP lands in level 2.
	if subjects[0].Level != 2 {
		t.Errorf("Inglês level = %d, want 2", subjects[0].Level)
	}
}
