package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "roadmap", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson", InputTokens: 200, OutputTokens: 300, LatencyMs: 900, Success: true, RequestBody: "[user]\nEnsine verbos", ResponseBody: "## Verbos"},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "chat", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	// Newest first.
	if got[0].Purpose != "chat" || got[2].Purpose != "roadmap" {
		t.Fatalf("unexpected order: %q, %q, %q", got[0].Purpose, got[1].Purpose, got[2].Purpose)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event, got %d", len(limited))
	}

	full, err := repo.GetLLMEvent(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if full == nil || full.ResponseBody != "## Verbos" {
		t.Fatalf("unexpected record: %+v", full)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson", InputTokens: 100, OutputTokens: 200, LatencyMs: 500, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "lesson", InputTokens: 300, OutputTokens: 400, LatencyMs: 1500, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "chat", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
	}
	for _, e := range data {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	stats := map[string]LLMUsageStats{}
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	lesson := stats["lesson"]
	if lesson.Calls != 2 || lesson.InputTokens != 400 || lesson.OutputTokens != 600 {
		t.Fatalf("unexpected lesson stats: %+v", lesson)
	}
	if lesson.AvgLatencyMs != 1000 {
		t.Fatalf("expected avg latency 1000, got %d", lesson.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
}

func TestFocusStatsBySubject(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	cycles := []FocusSessionEventData{
		{SubjectID: "s1", SubjectName: "Inglês", Mode: "focus", DurationSecs: 1500},
		{SubjectID: "s1", SubjectName: "Inglês", Mode: "focus", DurationSecs: 1500},
		{SubjectID: "s2", SubjectName: "UX/UI Design", Mode: "focus", DurationSecs: 1500},
		{Mode: "short_break", DurationSecs: 300},
	}
	for _, c := range cycles {
		if err := repo.AppendFocusSession(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.FocusStatsBySubject(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(stats))
	}
	bySubject := map[string]SubjectFocusStats{}
	for _, st := range stats {
		bySubject[st.SubjectID] = st
	}
	if bySubject["s1"].Sessions != 2 || bySubject["s1"].FocusSecs != 3000 {
		t.Fatalf("unexpected s1 stats: %+v", bySubject["s1"])
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "roadmap", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendFocusSession(ctx, FocusSessionEventData{SubjectID: "s1", Mode: "focus", DurationSecs: 1500}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendTopicCompletion(ctx, TopicCompletionEventData{SubjectID: "s1", Topic: "Verbos", XPAwarded: 100, XPAfter: 100, LevelAfter: 1}); err != nil {
		t.Fatalf("append topic: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 llm event, got %d", len(events))
	}
	// Cross-type appends consumed sequences 1..3; the llm event got 1.
	if events[0].Sequence != 1 {
		t.Fatalf("expected sequence 1, got %d", events[0].Sequence)
	}

	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if seq != 4 {
		t.Fatalf("expected next sequence 4, got %d", seq)
	}
}
