// Package service contains the application services that orchestrate the
// card generation pipeline on behalf of the presentation layer.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/export"
	"github.com/phrazzld/ankigen/internal/generation"
	"github.com/phrazzld/ankigen/internal/redact"
)

// DeckService provides deck generation and export operations.
type DeckService interface {
	// GenerateDeck validates the request and produces a freshly generated
	// deck. The returned deck is owned by the caller: the service keeps no
	// state between calls, so the caller holds the one mutable slot between
	// generate and export.
	GenerateDeck(ctx context.Context, req domain.GenerationRequest) (*domain.Deck, error)

	// ExportDeck serializes the cards to w in the fixed CSV layout.
	ExportDeck(ctx context.Context, w io.Writer, cards []domain.CardRecord) error
}

// deckService is the default DeckService implementation.
type deckService struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewDeckService creates a DeckService backed by the given generator.
func NewDeckService(generator generation.Generator, logger *slog.Logger) (DeckService, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &deckService{
		generator: generator,
		logger:    logger,
	}, nil
}

func (s *deckService) GenerateDeck(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.Deck, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	deck, err := s.generator.GenerateDeck(ctx, req)
	if err != nil {
		// The error may carry endpoint detail; redact before logging and
		// hand the typed error back untouched for the caller to map.
		s.logger.ErrorContext(ctx, "deck generation failed",
			"error", redact.Error(err),
			"elapsed", time.Since(start).String())
		return nil, err
	}

	s.logger.InfoContext(ctx, "deck generation succeeded",
		"deck_id", deck.ID.String(),
		"card_count", len(deck.Cards),
		"elapsed", time.Since(start).String())

	return deck, nil
}

func (s *deckService) ExportDeck(
	ctx context.Context,
	w io.Writer,
	cards []domain.CardRecord,
) error {
	if err := export.Write(w, cards); err != nil {
		s.logger.ErrorContext(ctx, "deck export failed", "error", redact.Error(err))
		return err
	}

	s.logger.InfoContext(ctx, "deck exported", "card_count", len(cards))
	return nil
}
