// Package config loads the focusflow configuration file. Settings live
// in TOML at $XDG_CONFIG_HOME/focusflow/config.toml with built-in
// defaults and FOCUSFLOW_* environment overrides applied on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/timer"
)

// Config is the complete focusflow configuration.
type Config struct {
	Timer TimerConfig `toml:"timer"`
	LLM   LLMConfig   `toml:"llm"`
	UI    UIConfig    `toml:"ui"`
}

// TimerConfig holds the Pomodoro cycle lengths in minutes.
type TimerConfig struct {
	FocusMinutes      int `toml:"focus_minutes"`
	ShortBreakMinutes int `toml:"short_break_minutes"`
	LongBreakMinutes  int `toml:"long_break_minutes"`
}

// LLMConfig selects and configures the mentor's provider. API keys are
// not stored here; they come from the environment.
type LLMConfig struct {
	Provider       string `toml:"provider"`
	AnthropicModel string `toml:"anthropic_model"`
	OpenAIModel    string `toml:"openai_model"`
	OpenAIBaseURL  string `toml:"openai_base_url"`
	GeminiModel    string `toml:"gemini_model"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// SpeechEnabled turns the lesson read-aloud feature on.
	SpeechEnabled bool `toml:"speech_enabled"`
	// SeedSamples populates the three sample subjects on first run.
	SeedSamples bool `toml:"seed_samples"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timer: TimerConfig{
			FocusMinutes:      25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
		},
		LLM: LLMConfig{
			Provider: "",
		},
		UI: UIConfig{
			SpeechEnabled: true,
			SeedSamples:   true,
		},
	}
}

// Path returns the config file location: FOCUSFLOW_CONFIG if set,
// otherwise $XDG_CONFIG_HOME/focusflow/config.toml.
func Path() (string, error) {
	if p := os.Getenv("FOCUSFLOW_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "focusflow", "config.toml"), nil
}

// Load reads the config file, fills gaps with defaults and applies env
// overrides. A missing file is not an error; defaults are used.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config as TOML, creating the parent directory.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "# focusflow configuration")
	fmt.Fprintln(f, "")

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Durations converts the timer settings to the timer package's form.
func (c Config) Durations() timer.Durations {
	return timer.Durations{
		Focus:      time.Duration(c.Timer.FocusMinutes) * time.Minute,
		ShortBreak: time.Duration(c.Timer.ShortBreakMinutes) * time.Minute,
		LongBreak:  time.Duration(c.Timer.LongBreakMinutes) * time.Minute,
	}
}

// Validate checks the settings a typo could break.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		val  int
	}{
		{"timer.focus_minutes", c.Timer.FocusMinutes},
		{"timer.short_break_minutes", c.Timer.ShortBreakMinutes},
		{"timer.long_break_minutes", c.Timer.LongBreakMinutes},
	} {
		if f.val <= 0 {
			return fmt.Errorf("%s must be positive, got %d", f.name, f.val)
		}
	}
	return nil
}

// applyEnvOverrides applies FOCUSFLOW_* environment variables on top of
// the file settings. Provider and model overrides are handled by the
// llm package; only timer and UI settings live here.
func (c *Config) applyEnvOverrides() {
	if v := envMinutes("FOCUSFLOW_FOCUS_MINUTES"); v > 0 {
		c.Timer.FocusMinutes = v
	}
	if v := envMinutes("FOCUSFLOW_SHORT_BREAK_MINUTES"); v > 0 {
		c.Timer.ShortBreakMinutes = v
	}
	if v := envMinutes("FOCUSFLOW_LONG_BREAK_MINUTES"); v > 0 {
		c.Timer.LongBreakMinutes = v
	}
	if v := os.Getenv("FOCUSFLOW_SPEECH"); v != "" {
		c.UI.SpeechEnabled = v == "1" || v == "true"
	}
	if v := os.Getenv("FOCUSFLOW_SEED_SAMPLES"); v != "" {
		c.UI.SeedSamples = v == "1" || v == "true"
	}
}

// setDefaults fills zero values left by a sparse config file.
func (c *Config) setDefaults() {
	def := Default()
	if c.Timer.FocusMinutes == 0 {
		c.Timer.FocusMinutes = def.Timer.FocusMinutes
	}
	if c.Timer.ShortBreakMinutes == 0 {
		c.Timer.ShortBreakMinutes = def.Timer.ShortBreakMinutes
	}
	if c.Timer.LongBreakMinutes == 0 {
		c.Timer.LongBreakMinutes = def.Timer.LongBreakMinutes
	}
}

func envMinutes(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
