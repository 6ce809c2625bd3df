// Package session coordinates the app's mutable state: which subject is
// selected, which topic is open, and which mentor requests are in
// flight. All generation goes through here so the UI never races two
// requests for the same thing.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/mentor"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/progression"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/store"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
)

// Gating errors. The UI treats ErrBusy as "keep waiting", not a failure.
var (
	ErrBusy           = errors.New("request already in flight")
	ErrUnknownSubject = errors.New("unknown subject")
	ErrEmptyName      = errors.New("subject name is empty")
)

type lessonKey struct {
	subjectID string
	topic     string
}

// lessonCall tracks one in-flight lesson generation so concurrent
// requests for the same topic share a single result.
type lessonCall struct {
	done    chan struct{}
	content string
}

// Controller owns selection state and serializes mentor requests.
type Controller struct {
	subjects *subject.Store
	mentor   *mentor.Service
	events   store.EventRepo
	log      *zap.Logger

	mu          sync.Mutex
	selectedID  string
	activeTopic string

	addInFlight bool
	extends     map[string]bool
	chats       map[string]bool
	lessons     map[lessonKey]*lessonCall
}

// NewController wires the controller's collaborators. events may be nil
// when telemetry is disabled; log nil means no logging.
func NewController(subjects *subject.Store, m *mentor.Service, events store.EventRepo, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		subjects: subjects,
		mentor:   m,
		events:   events,
		log:      log,
		extends:  make(map[string]bool),
		chats:    make(map[string]bool),
		lessons:  make(map[lessonKey]*lessonCall),
	}
}

// Subjects exposes the underlying subject store for read access.
func (c *Controller) Subjects() *subject.Store {
	return c.subjects
}

// Select makes the subject current. Selecting an unknown ID is a no-op.
func (c *Controller) Select(id string) {
	if c.subjects.Get(id) == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID != id {
		c.selectedID = id
		c.activeTopic = ""
	}
}

// Selected returns the current subject, or nil when none is selected.
func (c *Controller) Selected() *subject.Subject {
	c.mu.Lock()
	id := c.selectedID
	c.mu.Unlock()
	if id == "" {
		return nil
	}
	return c.subjects.Get(id)
}

// SelectedID returns the current subject ID, empty when none.
func (c *Controller) SelectedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

// OpenTopic marks a roadmap topic as the one being studied.
func (c *Controller) OpenTopic(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTopic = topic
}

// CloseTopic clears the active topic.
func (c *Controller) CloseTopic() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTopic = ""
}

// ActiveTopic returns the topic currently open, empty when none.
func (c *Controller) ActiveTopic() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTopic
}

// AddSubject generates a roadmap for the named subject and adds it to
// the store. Only one add runs at a time; a second call while the first
// is generating returns ErrBusy. The new subject becomes selected.
func (c *Controller) AddSubject(ctx context.Context, name string) (*subject.Subject, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	c.mu.Lock()
	if c.addInFlight {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.addInFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.addInFlight = false
		c.mu.Unlock()
	}()

	roadmap := c.mentor.GenerateRoadmap(ctx, name)

	sub := c.subjects.AddSubject(name, roadmap)
	if sub == nil {
		return nil, ErrEmptyName
	}

	c.mu.Lock()
	c.selectedID = sub.ID
	c.activeTopic = ""
	c.mu.Unlock()

	return sub, nil
}

// AddInFlight reports whether a subject add is currently generating.
func (c *Controller) AddInFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addInFlight
}

// DeleteSubject removes a subject. When the deleted subject was
// selected, selection falls back to the first remaining subject.
func (c *Controller) DeleteSubject(id string) {
	c.subjects.DeleteSubject(id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedID == id {
		c.selectedID = c.subjects.First()
		c.activeTopic = ""
	}
}

// ExtendRoadmap asks the mentor for more advanced topics and appends
// them to the subject's roadmap. One extension per subject at a time.
func (c *Controller) ExtendRoadmap(ctx context.Context, id string) ([]string, error) {
	sub := c.subjects.Get(id)
	if sub == nil {
		return nil, ErrUnknownSubject
	}

	c.mu.Lock()
	if c.extends[id] {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.extends[id] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.extends, id)
		c.mu.Unlock()
	}()

	topics := c.mentor.GenerateMoreTopics(ctx, sub.Name, sub.Roadmap)
	if len(topics) > 0 {
		c.subjects.ExtendRoadmap(id, topics)
	}
	return topics, nil
}

// FetchLesson returns the lesson content for a roadmap topic,
// generating it on first access. Concurrent calls for the same topic
// share one generation; content is cached for the life of the subject.
func (c *Controller) FetchLesson(ctx context.Context, id, topic string) (string, error) {
	sub := c.subjects.Get(id)
	if sub == nil {
		return "", ErrUnknownSubject
	}

	if content, ok := c.subjects.TopicContent(id, topic); ok {
		return content, nil
	}

	key := lessonKey{subjectID: id, topic: topic}

	c.mu.Lock()
	if call, ok := c.lessons[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.content, nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	call := &lessonCall{done: make(chan struct{})}
	c.lessons[key] = call
	c.mu.Unlock()

	generated := c.mentor.GenerateTopicContent(ctx, sub.Name, topic)

	// The cache write is first-wins; the canonical content comes back.
	call.content = c.subjects.CacheTopicContent(id, topic, generated)

	c.mu.Lock()
	delete(c.lessons, key)
	c.mu.Unlock()
	close(call.done)

	return call.content, nil
}

// SendChat appends the student's message to the subject's history, asks
// the mentor for a reply and appends that too. One outstanding chat per
// subject; a second send while one is in flight returns ErrBusy.
func (c *Controller) SendChat(ctx context.Context, id, text string) (subject.ChatMessage, error) {
	sub := c.subjects.Get(id)
	if sub == nil {
		return subject.ChatMessage{}, ErrUnknownSubject
	}

	c.mu.Lock()
	if c.chats[id] {
		c.mu.Unlock()
		return subject.ChatMessage{}, ErrBusy
	}
	c.chats[id] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.chats, id)
		c.mu.Unlock()
	}()

	// History before the new message is the mentor's context.
	history := sub.ChatHistory

	c.subjects.AppendChatMessage(id, subject.NewChatMessage(subject.RoleUser, text))

	reply := c.mentor.SendMessage(ctx, sub.Name, history, text)

	msg := subject.NewChatMessage(subject.RoleMentor, reply)
	c.subjects.AppendChatMessage(id, msg)

	return msg, nil
}

// ChatInFlight reports whether a chat request is outstanding for the
// subject.
func (c *Controller) ChatInFlight(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chats[id]
}

// CompleteTopic marks a roadmap topic complete, awarding XP once. The
// completion is recorded in the telemetry log when it changed state.
func (c *Controller) CompleteTopic(ctx context.Context, id, topic string) bool {
	changed := c.subjects.CompleteTopic(id, topic)
	if !changed || c.events == nil {
		return changed
	}

	sub := c.subjects.Get(id)
	if sub == nil {
		return changed
	}
	err := c.events.AppendTopicCompletion(ctx, store.TopicCompletionEventData{
		SubjectID:   id,
		SubjectName: sub.Name,
		Topic:       topic,
		XPAwarded:   progression.TopicXP,
		XPAfter:     sub.XP,
		LevelAfter:  sub.Level,
	})
	if err != nil {
		c.log.Warn("failed to record topic completion", zap.Error(err))
	}
	return changed
}

// NotifyCompletion records a finished timer cycle. Focus completions
// also bump the selected subject's session count.
func (c *Controller) NotifyCompletion(ctx context.Context, comp timer.Completion, durations timer.Durations) {
	var subjectID, subjectName string

	if comp.Mode == timer.ModeFocus {
		if sub := c.Selected(); sub != nil {
			c.subjects.RecordFocusSession(sub.ID)
			subjectID = sub.ID
			subjectName = sub.Name
		}
	}

	if c.events == nil {
		return
	}
	err := c.events.AppendFocusSession(ctx, store.FocusSessionEventData{
		SubjectID:    subjectID,
		SubjectName:  subjectName,
		Mode:         string(comp.Mode),
		DurationSecs: int(durations.For(comp.Mode).Seconds()),
	})
	if err != nil {
		c.log.Warn("failed to record timer cycle", zap.Error(err))
	}
}
