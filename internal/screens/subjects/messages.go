package subjects

import (
	"time"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
)

// subjectAddedMsg is sent when roadmap generation for a new subject
// finishes, successfully or not.
type subjectAddedMsg struct {
	Subject *subject.Subject
	Err     error
}

// spinnerTickMsg animates the "generating roadmap" indicator.
type spinnerTickMsg time.Time
