package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit/internal/engine"
	"github.com/jonathan/jobfit/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing analysis, scoring, tailoring, ranking, and profile endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or PORT env)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	engineMode := cfg.Engine
	if engineMode == "" {
		engineMode = os.Getenv("JOBFIT_ENGINE")
	}
	mode, err := engine.ParseMode(engineMode)
	if err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if mode == engine.ModeLLM && apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required for the LLM engine")
	}

	port := servePort
	if port == 0 {
		port = cfg.Port
	}
	if port == 0 {
		if raw := os.Getenv("PORT"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid PORT value %q: %w", raw, err)
			}
			port = parsed
		}
	}
	if port == 0 {
		port = 8080
	}

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: databaseURL,
		APIKey:      apiKey,
		EngineMode:  string(mode),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
