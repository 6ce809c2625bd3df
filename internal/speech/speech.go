// Package speech reads lesson text aloud through the system TTS
// command, "say" on macOS and "espeak" on Linux.
package speech

import (
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Speaker reads text aloud. Implementations are safe for concurrent
// use; starting a new utterance cancels the previous one.
type Speaker interface {
	Speak(text string)
	Stop()
}

// Disabled returns a Speaker that stays silent. Used when the user
// turned speech off in the config.
func Disabled() Speaker {
	return noopSpeaker{}
}

// New returns the platform Speaker, or a silent one when no TTS
// command exists on this system.
func New(log *zap.Logger) Speaker {
	if log == nil {
		log = zap.NewNop()
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"say"}
	case "linux":
		candidates = []string{"espeak-ng", "espeak"}
	}

	for _, cmd := range candidates {
		if path, err := exec.LookPath(cmd); err == nil {
			return &execSpeaker{binary: path, log: log}
		}
	}

	log.Info("no TTS command found, speech disabled")
	return noopSpeaker{}
}

// execSpeaker shells out to a TTS binary. Only one utterance runs at a
// time; Speak cancels whatever is playing.
type execSpeaker struct {
	binary string
	log    *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

func (s *execSpeaker) Speak(text string) {
	text = flatten(text)
	if text == "" {
		return
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		cmd := exec.CommandContext(ctx, s.binary, text)
		if err := cmd.Run(); err != nil && ctx.Err() == nil {
			s.log.Warn("tts command failed", zap.String("binary", s.binary), zap.Error(err))
		}
	}()
}

func (s *execSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

type noopSpeaker struct{}

func (noopSpeaker) Speak(string) {}
func (noopSpeaker) Stop()        {}

var markdownNoise = regexp.MustCompile("[#*`>_\\[\\]|]")

// flatten strips Markdown punctuation so the TTS engine does not read
// formatting characters out loud.
func flatten(text string) string {
	text = markdownNoise.ReplaceAllString(text, "")
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(". ")
		}
		b.WriteString(line)
	}
	return b.String()
}
