package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/app"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/config"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/llm"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/logging"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/mentor"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/session"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/speech"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/store"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/internal/subject"
)

// runApp loads config, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log := logging.NewOrNop(debug)
	defer func() { _ = log.Sync() }()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	eventRepo := st.EventRepo()

	provider, err := buildProvider(cmd, cfg, eventRepo, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "O mentor vai responder com conteúdo padrão até uma chave de API ser configurada.")
		// Every call fails, so the mentor serves its built-in fallbacks.
		provider = llm.NewMockProvider()
	}

	subjects := subject.NewStore()
	if cfg.UI.SeedSamples {
		subjects.Seed(subject.SampleSubjects())
	}

	mentorSvc := mentor.NewService(provider, log)
	ctrl := session.NewController(subjects, mentorSvc, eventRepo, log)

	speaker := speech.Disabled()
	if cfg.UI.SpeechEnabled {
		speaker = speech.New(log)
	}

	log.Info("starting focusflow",
		zap.String("db", dbPath),
		zap.String("model", provider.ModelID()),
	)

	return app.Run(app.Options{
		Controller: ctrl,
		Durations:  cfg.Durations(),
		Speaker:    speaker,
		Logger:     log,
	})
}

// buildProvider resolves LLM settings: FOCUSFLOW_* env vars layered
// over the config file, falling back to probing the standard provider
// key variables.
func buildProvider(cmd *cobra.Command, fileCfg config.Config, eventRepo store.EventRepo, log *zap.Logger) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()

	if fileCfg.LLM.Provider != "" && os.Getenv("FOCUSFLOW_LLM_PROVIDER") == "" {
		cfg.Provider = fileCfg.LLM.Provider
	}
	if m := fileCfg.LLM.AnthropicModel; m != "" {
		cfg.Anthropic.Model = m
	}
	if m := fileCfg.LLM.OpenAIModel; m != "" {
		cfg.OpenAI.Model = m
	}
	if u := fileCfg.LLM.OpenAIBaseURL; u != "" && cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = u
	}
	if m := fileCfg.LLM.GeminiModel; m != "" {
		cfg.Gemini.Model = m
	}

	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}

	return llm.NewProvider(cmd.Context(), cfg, eventRepo, log)
}
