package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/generation"
	"github.com/phrazzld/ankigen/internal/platform/gemini"
	"github.com/phrazzld/ankigen/internal/service"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator   generation.Generator
	deckService service.DeckService
}

// newApplication builds the dependency graph: the Gemini generator and the
// deck service the handlers use.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGeminiGenerator(logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	deckService, err := service.NewDeckService(generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      logger,
		generator:   generator,
		deckService: deckService,
	}, nil
}
