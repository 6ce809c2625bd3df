package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/mentor"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/store"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
)

func TestMain(m *testing.M) {
	// The genai client starts an opencensus stats worker at init that
	// never exits.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
	)
}

// mockEventRepo records appended events in memory.
type mockEventRepo struct {
	mu     sync.Mutex
	focus  []store.FocusSessionEventData
	topics []store.TopicCompletionEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) AppendFocusSession(_ context.Context, data store.FocusSessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.focus = append(m.focus, data)
	return nil
}

func (m *mockEventRepo) AppendTopicCompletion(_ context.Context, data store.TopicCompletionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = append(m.topics, data)
	return nil
}

func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (m *mockEventRepo) FocusStatsBySubject(_ context.Context) ([]store.SubjectFocusStats, error) {
	return nil, nil
}

// blockingProvider parks every Generate call until release is closed,
// for exercising in-flight gating.
type blockingProvider struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	content json.RawMessage
}

func (p *blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	select {
	case <-p.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &llm.Response{Content: p.content, Model: "block"}, nil
}

func (p *blockingProvider) ModelID() string { return "block" }

func (p *blockingProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newTestController(provider llm.Provider, events store.EventRepo) *Controller {
	return NewController(
		subject.NewStore(),
		mentor.NewService(provider, nil),
		events,
		nil,
	)
}

func TestAddSubjectGeneratesRoadmapAndSelects(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["Verbos","Vocabulário"]}`),
	})
	c := newTestController(mock, nil)

	sub, err := c.AddSubject(context.Background(), "Inglês")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(sub.Roadmap) != 2 || sub.Roadmap[0] != "Verbos" {
		t.Fatalf("unexpected roadmap: %v", sub.Roadmap)
	}
	if c.SelectedID() != sub.ID {
		t.Fatalf("expected new subject selected, got %q", c.SelectedID())
	}
}

func TestAddSubjectBlankNameRejected(t *testing.T) {
	mock := llm.NewMockProvider()
	c := newTestController(mock, nil)

	if _, err := c.AddSubject(context.Background(), "   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if c.Subjects().Len() != 0 {
		t.Fatal("blank subject must not be added")
	}
	if mock.CallCount() != 0 {
		t.Fatal("blank name must not reach the provider")
	}
}

func TestAddSubjectSingleFlight(t *testing.T) {
	provider := &blockingProvider{
		release: make(chan struct{}),
		content: json.RawMessage(`{"topics":["a"]}`),
	}
	c := newTestController(provider, nil)

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		c.AddSubject(context.Background(), "Inglês")
		close(done)
	}()
	<-started

	// Wait for the first add to reach the provider.
	for i := 0; provider.callCount() == 0 && i < 100; i++ {
		time.Sleep(time.Millisecond)
	}

	if _, err := c.AddSubject(context.Background(), "Física"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(provider.release)
	<-done

	// Gate released after the first add finished.
	if c.AddInFlight() {
		t.Fatal("add gate still held")
	}
}

func TestDeleteSelectedFallsBackToFirst(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"topics":["a"]}`)},
		llm.MockResponse{Content: json.RawMessage(`{"topics":["b"]}`)},
	)
	c := newTestController(mock, nil)

	first, _ := c.AddSubject(context.Background(), "Inglês")
	second, _ := c.AddSubject(context.Background(), "Física")

	c.Select(second.ID)
	c.OpenTopic("b")
	c.DeleteSubject(second.ID)

	if c.SelectedID() != first.ID {
		t.Fatalf("expected fallback to %q, got %q", first.ID, c.SelectedID())
	}
	if c.ActiveTopic() != "" {
		t.Fatal("active topic must be cleared on delete")
	}

	c.DeleteSubject(first.ID)
	if c.SelectedID() != "" {
		t.Fatal("expected no selection after deleting last subject")
	}
}

func TestFetchLessonCachesContent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"topics":["Verbos"]}`)},
		llm.MockResponse{Content: json.RawMessage(`"# Verbos\n\nAula."`)},
	)
	c := newTestController(mock, nil)

	sub, _ := c.AddSubject(context.Background(), "Inglês")

	content, err := c.FetchLesson(context.Background(), sub.ID, "Verbos")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if content == "" {
		t.Fatal("expected lesson content")
	}

	// Second fetch must not hit the provider again.
	again, err := c.FetchLesson(context.Background(), sub.ID, "Verbos")
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if again != content {
		t.Fatal("cached content changed between fetches")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 provider calls total, got %d", mock.CallCount())
	}
}

func TestFetchLessonConcurrentSingleFlight(t *testing.T) {
	roadmap := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["Verbos"]}`),
	})
	c := newTestController(roadmap, nil)
	sub, _ := c.AddSubject(context.Background(), "Inglês")

	// Swap in a blocking provider for the lesson itself.
	provider := &blockingProvider{
		release: make(chan struct{}),
		content: json.RawMessage(`"Aula."`),
	}
	c.mentor = mentor.NewService(provider, nil)

	const n = 5
	results := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content, err := c.FetchLesson(context.Background(), sub.ID, "Verbos")
			if err != nil {
				t.Errorf("fetch %d: %v", i, err)
			}
			results[i] = content
		}(i)
	}

	for i := 0; provider.callCount() == 0 && i < 100; i++ {
		time.Sleep(time.Millisecond)
	}
	close(provider.release)
	wg.Wait()

	if provider.callCount() != 1 {
		t.Fatalf("expected 1 generation, got %d", provider.callCount())
	}
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("divergent results: %q vs %q", results[i], results[0])
		}
	}
}

func TestFetchLessonUnknownSubject(t *testing.T) {
	c := newTestController(llm.NewMockProvider(), nil)
	if _, err := c.FetchLesson(context.Background(), "ghost", "x"); !errors.Is(err, ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestSendChatAppendsBothTurns(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"topics":["a"]}`)},
		llm.MockResponse{Content: json.RawMessage(`"Boa pergunta!"`)},
	)
	c := newTestController(mock, nil)
	sub, _ := c.AddSubject(context.Background(), "Inglês")

	reply, err := c.SendChat(context.Background(), sub.ID, "Como estudo?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply.Role != subject.RoleMentor || reply.Text != "Boa pergunta!" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	got := c.Subjects().Get(sub.ID)
	if len(got.ChatHistory) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.ChatHistory))
	}
	if got.ChatHistory[0].Role != subject.RoleUser || got.ChatHistory[1].Role != subject.RoleMentor {
		t.Fatalf("unexpected roles: %+v", got.ChatHistory)
	}
}

func TestSendChatGatesPerSubject(t *testing.T) {
	roadmap := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["a"]}`),
	})
	c := newTestController(roadmap, nil)
	sub, _ := c.AddSubject(context.Background(), "Inglês")

	provider := &blockingProvider{
		release: make(chan struct{}),
		content: json.RawMessage(`"oi"`),
	}
	c.mentor = mentor.NewService(provider, nil)

	done := make(chan struct{})
	go func() {
		c.SendChat(context.Background(), sub.ID, "primeira")
		close(done)
	}()

	for i := 0; !c.ChatInFlight(sub.ID) && i < 100; i++ {
		time.Sleep(time.Millisecond)
	}

	if _, err := c.SendChat(context.Background(), sub.ID, "segunda"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(provider.release)
	<-done
}

func TestCompleteTopicRecordsEventOnce(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["Verbos"]}`),
	})
	events := &mockEventRepo{}
	c := newTestController(mock, events)
	sub, _ := c.AddSubject(context.Background(), "Inglês")

	if !c.CompleteTopic(context.Background(), sub.ID, "Verbos") {
		t.Fatal("expected first completion to change state")
	}
	if c.CompleteTopic(context.Background(), sub.ID, "Verbos") {
		t.Fatal("expected repeat completion to be a no-op")
	}

	if len(events.topics) != 1 {
		t.Fatalf("expected 1 topic event, got %d", len(events.topics))
	}
	ev := events.topics[0]
	if ev.XPAwarded != 100 || ev.XPAfter != 100 || ev.LevelAfter != 1 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestNotifyCompletionFocusCreditsSelected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["a"]}`),
	})
	events := &mockEventRepo{}
	c := newTestController(mock, events)
	sub, _ := c.AddSubject(context.Background(), "Inglês")

	durations := timer.DefaultDurations()
	c.NotifyCompletion(context.Background(), timer.Completion{Mode: timer.ModeFocus}, durations)

	if got := c.Subjects().Get(sub.ID); got.TotalSessions != 1 {
		t.Fatalf("expected 1 session, got %d", got.TotalSessions)
	}
	if len(events.focus) != 1 {
		t.Fatalf("expected 1 focus event, got %d", len(events.focus))
	}
	ev := events.focus[0]
	if ev.SubjectID != sub.ID || ev.Mode != "focus" || ev.DurationSecs != 1500 {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// Breaks record an event without a subject.
	c.NotifyCompletion(context.Background(), timer.Completion{Mode: timer.ModeShortBreak}, durations)
	if len(events.focus) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events.focus))
	}
	if events.focus[1].SubjectID != "" {
		t.Fatalf("break event should carry no subject: %+v", events.focus[1])
	}
	if got := c.Subjects().Get(sub.ID); got.TotalSessions != 1 {
		t.Fatal("break must not credit a session")
	}
}
