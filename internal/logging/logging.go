// Package logging builds the application logger. Logs go to a file
// under the XDG state directory so they never touch the terminal the
// TUI is drawing on.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogPath returns FOCUSFLOW_LOG if set, otherwise
// $XDG_STATE_HOME/focusflow/focusflow.log.
func DefaultLogPath() (string, error) {
	if p := os.Getenv("FOCUSFLOW_LOG"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "focusflow", "focusflow.log"), nil
}

// New opens a JSON file logger at path. Debug enables debug-level
// output. The caller owns Sync on shutdown.
func New(path string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(f)),
		level,
	)
	return zap.New(core), nil
}

// NewOrNop returns a file logger, falling back to a no-op logger when
// the log file cannot be opened. The TUI must start either way.
func NewOrNop(debug bool) *zap.Logger {
	path, err := DefaultLogPath()
	if err != nil {
		return zap.NewNop()
	}
	log, err := New(path, debug)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
