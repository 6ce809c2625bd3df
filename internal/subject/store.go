package subject

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/progression"
)

// palette provides stable subject colors, assigned round-robin at creation.
var palette = []string{
	"#10B981", // emerald
	"#F43F5E", // rose
	"#3B82F6", // blue
	"#F97316", // orange
	"#8B5CF6", // purple
	"#14B8A6", // teal
	"#EAB308", // amber
}

// Store is the single owner of all Subject records. Mutation is
// copy-on-write: the affected subject is cloned, changed, and swapped back
// in under the lock, so readers holding an earlier copy are never surprised
// and unrelated subjects never interfere.
type Store struct {
	mu       sync.RWMutex
	subjects map[string]*Subject
	order    []string // creation order, for stable listing
	colorIdx int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{subjects: make(map[string]*Subject)}
}

// AddSubject creates a subject with a fresh id, zero progress, and the
// given roadmap. Blank names are rejected with a nil result; an empty
// roadmap is accepted; generation failure must never block creation.
// Returns a copy of the new subject.
func (st *Store) AddSubject(name string, roadmap []string) *Subject {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	s := &Subject{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(name),
		Color:           palette[st.colorIdx%len(palette)],
		Roadmap:         append([]string(nil), roadmap...),
		TopicContent:    make(map[string]string),
		CompletedTopics: make(map[string]bool),
		XP:              0,
		Level:           1,
		createdAt:       time.Now(),
	}
	st.colorIdx++
	st.subjects[s.ID] = s
	st.order = append(st.order, s.ID)

	return s.clone()
}

// DeleteSubject removes the subject. Unknown ids are a no-op. Removal is
// immediate and unconditional; selection fallback is the controller's job.
func (st *Store) DeleteSubject(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.subjects[id]; !ok {
		return
	}
	delete(st.subjects, id)
	for i, oid := range st.order {
		if oid == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
}

// Get returns a copy of the subject, or nil if it does not exist.
func (st *Store) Get(id string) *Subject {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.subjects[id]
	if !ok {
		return nil
	}
	return s.clone()
}

// List returns copies of all subjects in creation order.
func (st *Store) List() []*Subject {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]*Subject, 0, len(st.order))
	for _, id := range st.order {
		if s, ok := st.subjects[id]; ok {
			out = append(out, s.clone())
		}
	}
	return out
}

// Len returns the number of subjects.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.subjects)
}

// First returns the id of the oldest remaining subject, or "" when empty.
func (st *Store) First() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if len(st.order) == 0 {
		return ""
	}
	return st.order[0]
}

// ExtendRoadmap appends newTopics to the subject's roadmap. Empty input or
// an unknown id is a no-op. Deduplication against the existing roadmap is
// the generator's contract, not enforced here.
func (st *Store) ExtendRoadmap(id string, newTopics []string) {
	if len(newTopics) == 0 {
		return
	}
	st.mutate(id, func(s *Subject) {
		s.Roadmap = append(s.Roadmap, newTopics...)
	})
}

// CacheTopicContent fills the content cache for a topic, at most once.
// If content is already present the call is a no-op, so a late or duplicate
// generation result can never overwrite what the user has already seen.
// Returns the content now in the cache, or "" for an unknown subject.
func (st *Store) CacheTopicContent(id, topic, content string) string {
	var cached string
	st.mutate(id, func(s *Subject) {
		if existing, ok := s.TopicContent[topic]; ok {
			cached = existing
			return
		}
		s.TopicContent[topic] = content
		cached = content
	})
	return cached
}

// TopicContent returns the cached content for a topic, if any.
func (st *Store) TopicContent(id, topic string) (string, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.subjects[id]
	if !ok {
		return "", false
	}
	content, ok := s.TopicContent[topic]
	return content, ok
}

// CompleteTopic marks a roadmap topic done and awards XP. Completing an
// already-completed topic, a topic outside the roadmap, or an unknown
// subject changes nothing; the guard keeps XP from double-counting.
// Reports whether state changed.
func (st *Store) CompleteTopic(id, topic string) bool {
	changed := false
	st.mutate(id, func(s *Subject) {
		if s.CompletedTopics[topic] {
			return
		}
		inRoadmap := false
		for _, t := range s.Roadmap {
			if t == topic {
				inRoadmap = true
				break
			}
		}
		if !inRoadmap {
			return
		}
		s.CompletedTopics[topic] = true
		s.XP = progression.AwardXP(s.XP)
		s.Level = progression.LevelFor(s.XP)
		changed = true
	})
	return changed
}

// AppendChatMessage appends to the subject's chat history. Unknown ids are
// a no-op (the subject may have been deleted while a reply was in flight).
func (st *Store) AppendChatMessage(id string, msg ChatMessage) {
	st.mutate(id, func(s *Subject) {
		s.ChatHistory = append(s.ChatHistory, msg)
	})
}

// RecordFocusSession increments the subject's completed-session counter.
func (st *Store) RecordFocusSession(id string) {
	st.mutate(id, func(s *Subject) {
		s.TotalSessions++
	})
}

// Seed installs pre-built subjects, keeping Level consistent with XP.
// Used once at startup when the store is empty.
func (st *Store) Seed(samples []Subject) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i := range samples {
		s := samples[i].clone()
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		if s.TopicContent == nil {
			s.TopicContent = make(map[string]string)
		}
		if s.CompletedTopics == nil {
			s.CompletedTopics = make(map[string]bool)
		}
		s.Level = progression.LevelFor(s.XP)
		s.createdAt = time.Now()
		st.subjects[s.ID] = s
		st.order = append(st.order, s.ID)
		st.colorIdx++
	}

	sort.SliceStable(st.order, func(i, j int) bool {
		return st.subjects[st.order[i]].createdAt.Before(st.subjects[st.order[j]].createdAt)
	})
}

// mutate applies fn to a clone of the subject and swaps the clone in.
func (st *Store) mutate(id string, fn func(*Subject)) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.subjects[id]
	if !ok {
		return
	}
	c := s.clone()
	fn(c)
	st.subjects[id] = c
}
