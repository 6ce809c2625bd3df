// Package subject owns the study-subject collection: roadmaps, cached
// lesson content, completion state, XP, and per-subject mentor chat history.
package subject

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies a chat message author.
type Role string

const (
	RoleUser   Role = "user"
	RoleMentor Role = "mentor"
)

// ChatMessage is a single mentor-chat turn. Immutable once created.
type ChatMessage struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time
}

// NewChatMessage creates a message stamped with the current time.
func NewChatMessage(role Role, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Subject is one study discipline with its AI-generated roadmap and all
// per-subject progress.
//
// Invariants maintained by the Store:
//   - CompletedTopics ⊆ Roadmap (as sets)
//   - Level == progression.LevelFor(XP)
//   - Roadmap only ever grows by appending
type Subject struct {
	ID    string
	Name  string
	Color string

	// Roadmap is the ordered study plan. An empty roadmap is a valid,
	// displayable state (generation may have failed at creation time).
	Roadmap []string

	// TopicContent caches generated lesson markup per topic, filled
	// lazily on first visit and never overwritten.
	TopicContent map[string]string

	// CompletedTopics are roadmap entries the learner marked done.
	CompletedTopics map[string]bool

	// TotalSessions counts completed focus sessions while this subject
	// was selected.
	TotalSessions int

	XP    int
	Level int

	// ChatHistory is the chronological mentor conversation. Append-only,
	// unbounded; see the mentor service for how context is windowed.
	ChatHistory []ChatMessage

	createdAt time.Time
}

// IsCompleted reports whether the topic was marked done.
func (s *Subject) IsCompleted(topic string) bool {
	return s.CompletedTopics[topic]
}

// CompletedCount returns how many roadmap topics are done.
func (s *Subject) CompletedCount() int {
	n := 0
	for _, topic := range s.Roadmap {
		if s.CompletedTopics[topic] {
			n++
		}
	}
	return n
}

// RoadmapProgress returns the completed share of the roadmap in percent.
func (s *Subject) RoadmapProgress() float64 {
	if len(s.Roadmap) == 0 {
		return 0
	}
	return float64(s.CompletedCount()) / float64(len(s.Roadmap)) * 100
}

// clone returns a deep copy so callers can never mutate stored state.
func (s *Subject) clone() *Subject {
	c := *s

	c.Roadmap = make([]string, len(s.Roadmap))
	copy(c.Roadmap, s.Roadmap)

	c.TopicContent = make(map[string]string, len(s.TopicContent))
	for k, v := range s.TopicContent {
		c.TopicContent[k] = v
	}

	c.CompletedTopics = make(map[string]bool, len(s.CompletedTopics))
	for k, v := range s.CompletedTopics {
		c.CompletedTopics[k] = v
	}

	c.ChatHistory = make([]ChatMessage, len(s.ChatHistory))
	copy(c.ChatHistory, s.ChatHistory)

	return &c
}
