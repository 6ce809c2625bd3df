package mentor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
)

func TestGenerateRoadmapParsesTopics(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["Verbos","Vocabulário","Conversação"]}`),
	})
	svc := NewService(mock, nil)

	topics := svc.GenerateRoadmap(context.Background(), "Inglês")
	if len(topics) != 3 || topics[0] != "Verbos" {
		t.Fatalf("unexpected topics: %v", topics)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "study-roadmap" {
		t.Fatalf("expected roadmap schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, `"Inglês"`) {
		t.Fatalf("prompt missing subject name: %q", req.Messages[0].Content)
	}
}

func TestGenerateRoadmapFallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, nil)

	topics := svc.GenerateRoadmap(context.Background(), "Química")
	want := []string{"Introdução", "Conceitos Básicos", "Prática Avançada"}
	if len(topics) != len(want) {
		t.Fatalf("unexpected fallback: %v", topics)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Fatalf("unexpected fallback: %v", topics)
		}
	}
}

func TestGenerateRoadmapFallsBackOnEmptyTopics(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["", "  "]}`),
	})
	svc := NewService(mock, nil)

	topics := svc.GenerateRoadmap(context.Background(), "Física")
	if len(topics) != 3 || topics[0] != "Introdução" {
		t.Fatalf("expected stock roadmap, got %v", topics)
	}
}

func TestGenerateMoreTopicsDropsDuplicates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"topics":["Verbos","Phrasal Verbs","verbos","Idioms"]}`),
	})
	svc := NewService(mock, nil)

	existing := []string{"Verbos", "Vocabulário"}
	topics := svc.GenerateMoreTopics(context.Background(), "Inglês", existing)
	if len(topics) != 2 || topics[0] != "Phrasal Verbs" || topics[1] != "Idioms" {
		t.Fatalf("unexpected topics: %v", topics)
	}
}

func TestGenerateMoreTopicsEmptyOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429")},
	})
	svc := NewService(mock, nil)

	if topics := svc.GenerateMoreTopics(context.Background(), "Inglês", nil); len(topics) != 0 {
		t.Fatalf("expected no topics, got %v", topics)
	}
}

func TestGenerateTopicContentStripsFences(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```markdown\n# Verbos\n\nAula completa.\n```"),
	})
	svc := NewService(mock, nil)

	content := svc.GenerateTopicContent(context.Background(), "Inglês", "Verbos")
	if strings.Contains(content, "```") {
		t.Fatalf("fences not stripped: %q", content)
	}
	if !strings.HasPrefix(content, "# Verbos") {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestGenerateTopicContentErrorMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, nil)

	content := svc.GenerateTopicContent(context.Background(), "Inglês", "Verbos")
	if content != "Erro ao gerar conteúdo. Por favor, tente novamente." {
		t.Fatalf("unexpected message: %q", content)
	}
}

func TestSendMessageWindowsHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Ótima pergunta!"`),
	})
	svc := NewService(mock, nil)

	var history []subject.ChatMessage
	for i := 0; i < 10; i++ {
		role := subject.RoleUser
		if i%2 == 1 {
			role = subject.RoleMentor
		}
		history = append(history, subject.NewChatMessage(role, fmt.Sprintf("m%d", i)))
	}

	reply := svc.SendMessage(context.Background(), "Inglês", history, "Como estudo verbos?")
	if reply != "Ótima pergunta!" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	prompt := mock.Calls[0].Messages[0].Content
	// Only the last 6 turns make it into the context.
	if strings.Contains(prompt, "m3") {
		t.Fatalf("history window too wide:\n%s", prompt)
	}
	if !strings.Contains(prompt, "m4") || !strings.Contains(prompt, "m9") {
		t.Fatalf("history window missing recent turns:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Aluno: Como estudo verbos?") {
		t.Fatalf("prompt missing new message:\n%s", prompt)
	}
	if mock.Calls[0].System == "" {
		t.Fatal("expected a system prompt")
	}
}

func TestSendMessageFallbacks(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
		})
		svc := NewService(mock, nil)
		reply := svc.SendMessage(context.Background(), "Inglês", nil, "oi")
		if reply != "Tive um problema de conexão com a biblioteca mágica. Tente novamente." {
			t.Fatalf("unexpected reply: %q", reply)
		}
	})

	t.Run("empty reply", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`""`),
		})
		svc := NewService(mock, nil)
		reply := svc.SendMessage(context.Background(), "Inglês", nil, "oi")
		if reply != "Estou reorganizando meus livros... pode repetir?" {
			t.Fatalf("unexpected reply: %q", reply)
		}
	})
}
