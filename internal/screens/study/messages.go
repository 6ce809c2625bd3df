package study

import "time"

// extendDoneMsg is sent when roadmap extension finishes.
type extendDoneMsg struct {
	Topics []string
	Err    error
}

// spinnerTickMsg animates the "extending roadmap" indicator.
type spinnerTickMsg time.Time
