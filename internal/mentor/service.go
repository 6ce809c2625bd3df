// Package mentor turns LLM calls into the study features the app offers:
// roadmap generation, dynamic lessons and the mentor chat. Every method
// fails closed with a Portuguese fallback so a provider outage degrades
// the experience instead of breaking it.
package mentor

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
)

// chatWindow is how many history turns accompany a chat message.
const chatWindow = 6

// Stock responses used when generation fails or comes back empty.
var (
	fallbackRoadmap = []string{"Introdução", "Conceitos Básicos", "Prática Avançada"}

	fallbackLesson     = "Não foi possível gerar o conteúdo."
	lessonErrorMessage = "Erro ao gerar conteúdo. Por favor, tente novamente."

	chatEmptyReply = "Estou reorganizando meus livros... pode repetir?"
	chatErrorReply = "Tive um problema de conexão com a biblioteca mágica. Tente novamente."
)

// Service generates study content through an LLM provider.
type Service struct {
	provider llm.Provider
	log      *zap.Logger
}

// NewService creates a mentor Service. A nil logger is replaced with a
// no-op logger.
func NewService(provider llm.Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, log: log}
}

// GenerateRoadmap produces the initial study roadmap for a subject. On
// any failure it returns the stock three-topic roadmap, never an empty
// list.
func (s *Service) GenerateRoadmap(ctx context.Context, subjectName string) []string {
	ctx = llm.WithPurpose(ctx, "roadmap")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: roadmapPrompt(subjectName)},
		},
		Schema:      roadmapSchema(),
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		s.log.Warn("roadmap generation failed", zap.String("subject", subjectName), zap.Error(err))
		return fallbackRoadmap
	}

	topics := parseTopics(resp.Content, nil)
	if len(topics) == 0 {
		return fallbackRoadmap
	}
	return topics
}

// GenerateMoreTopics produces new roadmap topics that extend the
// existing ones. Duplicates of existing topics are dropped. On failure
// it returns an empty list; callers treat that as "nothing to add".
func (s *Service) GenerateMoreTopics(ctx context.Context, subjectName string, existing []string) []string {
	ctx = llm.WithPurpose(ctx, "roadmap-extend")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: moreTopicsPrompt(subjectName, existing)},
		},
		Schema:      roadmapSchema(),
		MaxTokens:   1024,
		Temperature: 0.8,
	})
	if err != nil {
		s.log.Warn("roadmap extension failed", zap.String("subject", subjectName), zap.Error(err))
		return nil
	}

	return parseTopics(resp.Content, existing)
}

// GenerateTopicContent produces the Markdown lesson for a roadmap topic.
func (s *Service) GenerateTopicContent(ctx context.Context, subjectName, topic string) string {
	ctx = llm.WithPurpose(ctx, "lesson")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: lessonPrompt(subjectName, topic)},
		},
		MaxTokens:   4096,
		Temperature: 0.75,
	})
	if err != nil {
		s.log.Warn("lesson generation failed",
			zap.String("subject", subjectName),
			zap.String("topic", topic),
			zap.Error(err))
		return lessonErrorMessage
	}

	text := stripFences(resp.Text())
	if strings.TrimSpace(text) == "" {
		return fallbackLesson
	}
	return text
}

// SendMessage sends a student message to the mentor with the last turns
// of history as context and returns the mentor's reply.
func (s *Service) SendMessage(ctx context.Context, subjectName string, history []subject.ChatMessage, message string) string {
	ctx = llm.WithPurpose(ctx, "chat")

	var content strings.Builder
	if hc := chatContext(history, chatWindow); hc != "" {
		content.WriteString("Histórico da conversa:\n")
		content.WriteString(hc)
		content.WriteString("\n\n")
	}
	content.WriteString("Aluno: ")
	content.WriteString(message)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: chatSystemPrompt(subjectName),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: content.String()},
		},
		MaxTokens: 1024,
	})
	if err != nil {
		s.log.Warn("mentor chat failed", zap.String("subject", subjectName), zap.Error(err))
		return chatErrorReply
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return chatEmptyReply
	}
	return reply
}

// parseTopics extracts the topics array from a schema-validated roadmap
// response, dropping blanks and anything already present in existing.
func parseTopics(raw json.RawMessage, existing []string) []string {
	var parsed struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}

	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[strings.ToLower(strings.TrimSpace(t))] = true
	}

	var out []string
	for _, t := range parsed.Topics {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// stripFences removes a wrapping Markdown code fence when the model adds
// one around the whole lesson.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	trimmed = strings.TrimPrefix(trimmed, "```markdown")
	trimmed = strings.TrimPrefix(trimmed, "```md")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
