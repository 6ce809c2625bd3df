package llm

import "testing"

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
		"FOCUSFLOW_LLM_PROVIDER", "FOCUSFLOW_GEMINI_API_KEY",
		"FOCUSFLOW_OPENAI_API_KEY", "FOCUSFLOW_ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("GEMINI_API_KEY", "gk")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "gk" {
		t.Fatalf("unexpected key: %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("FOCUSFLOW_LLM_PROVIDER", "openai")
	t.Setenv("FOCUSFLOW_OPENAI_API_KEY", "ok")
	t.Setenv("FOCUSFLOW_OPENAI_BASE_URL", "https://openrouter.ai/api/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("unexpected provider: %q", cfg.Provider)
	}
	if cfg.OpenAI.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("unexpected base url: %q", cfg.OpenAI.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}
}

func TestValidateRejectsMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
