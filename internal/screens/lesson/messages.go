package lesson

import "time"

// lessonReadyMsg is sent when lesson generation (or a cache hit)
// resolves.
type lessonReadyMsg struct {
	Content string
	Err     error
}

// completeDoneMsg is sent after the completion toggle persists.
type completeDoneMsg struct {
	Changed bool
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
