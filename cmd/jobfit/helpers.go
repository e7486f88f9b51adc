package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/jobfit/internal/config"
	"github.com/jonathan/jobfit/internal/engine"
	"github.com/jonathan/jobfit/internal/store"
)

// loadFileConfig loads the --config file when given, otherwise returns an
// empty config so flag and env defaults apply.
func loadFileConfig() (config.Config, error) {
	if configPath == "" {
		return config.Config{}, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// resolveEngineMode picks the engine mode: the --llm flag wins, then the
// config file, then the JOBFIT_ENGINE environment variable.
func resolveEngineMode(llmFlag bool, cfg config.Config) (engine.Mode, error) {
	if llmFlag {
		return engine.ModeLLM, nil
	}
	raw := cfg.Engine
	if raw == "" {
		raw = os.Getenv("JOBFIT_ENGINE")
	}
	return engine.ParseMode(raw)
}

// buildEngine constructs the engine for the resolved mode. The LLM engine
// needs a Gemini API key from the config file or GEMINI_API_KEY.
func buildEngine(ctx context.Context, llmFlag bool, cfg config.Config) (engine.Engine, error) {
	mode, err := resolveEngineMode(llmFlag, cfg)
	if err != nil {
		return nil, err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if mode == engine.ModeLLM && apiKey == "" {
		return nil, fmt.Errorf("LLM engine requires an API key (set GEMINI_API_KEY or 'api_key' in the config file)")
	}

	return engine.New(ctx, mode, apiKey)
}

// closeEngine releases the LLM client connection if the engine holds one.
func closeEngine(eng engine.Engine) {
	if closer, ok := eng.(io.Closer); ok {
		_ = closer.Close()
	}
}

// openStore connects to Postgres using the config file or DATABASE_URL and
// ensures the schema exists.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or 'database_url' in the config file)")
	}

	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := st.InitSchema(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return st, nil
}

// splitSkills parses a comma-separated skills flag into a trimmed list,
// dropping empty entries.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
