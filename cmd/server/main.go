// Package main implements the entry point for the AnkiGen API server,
// which turns a subject and a few preferences into an Anki-importable
// flashcard deck via LLM generation.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/platform/logger"
)

// main wires configuration, logging, and the application together, then
// runs the HTTP server until an interrupt arrives.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.serve(); err != nil {
		app.logger.Error("server terminated with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	// Never log the key itself, only whether a server-side default exists.
	slog.Debug("LLM configuration", "server_key_present", cfg.LLM.GeminiAPIKey != "")

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
