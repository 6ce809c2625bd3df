package chat

import (
	"time"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
)

// replyMsg is sent when the mentor answers (or the round fails).
type replyMsg struct {
	Reply subject.ChatMessage
	Err   error
}

// spinnerTickMsg animates the "mentor is typing" indicator.
type spinnerTickMsg time.Time
