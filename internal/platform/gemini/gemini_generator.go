package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/generation"
)

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to generate flashcard decks from a request.
type GeminiGenerator struct {
	logger *slog.Logger
	config config.LLMConfig

	// newClient is swapped out by tests to avoid touching the real backend.
	newClient func(ctx context.Context, apiKey string) (generateCaller, error)
}

// generateCaller is the slice of the genai client this package uses.
type generateCaller interface {
	generate(ctx context.Context, model string, prompt string) (*genai.GenerateContentResponse, error)
}

// genaiCaller adapts *genai.Client to generateCaller.
type genaiCaller struct {
	client *genai.Client
}

func (c *genaiCaller) generate(
	ctx context.Context,
	model string,
	prompt string,
) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
}

// NewGeminiGenerator creates a new GeminiGenerator with the provided
// dependencies. The LLM config supplies the model name, the per-call
// timeout, and an optional server-side default credential; requests may
// carry their own credential instead.
func NewGeminiGenerator(logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("%w: timeout cannot be negative", generation.ErrInvalidConfig)
	}

	return &GeminiGenerator{
		logger: logger,
		config: cfg,
		newClient: func(ctx context.Context, apiKey string) (generateCaller, error) {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				return nil, err
			}
			return &genaiCaller{client: client}, nil
		},
	}, nil
}

// GenerateDeck builds the prompt for the request, makes one synchronous call
// to the Gemini API with the resolved credential, parses the response text,
// and returns the deck. No retry is performed; every failure is surfaced as
// a typed error for a fresh caller-initiated attempt. The credential is used
// for this call only and never logged.
func (g *GeminiGenerator) GenerateDeck(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.Deck, error) {
	prompt, err := generation.BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = g.config.GeminiAPIKey
	}
	if apiKey == "" {
		// Checked before any network attempt.
		return nil, fmt.Errorf("%w: no credential supplied", generation.ErrAuthentication)
	}

	if g.config.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(g.config.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	client, err := g.newClient(ctx, apiKey)
	if err != nil {
		return nil, classifyError(err)
	}

	g.logger.InfoContext(ctx, "calling Gemini API",
		"model", g.config.ModelName,
		"topic_count", req.TopicCount,
		"cards_per_topic", req.CardsPerTopic,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := client.generate(ctx, g.config.ModelName, prompt)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.config.ModelName,
			"elapsed", time.Since(start).String())
		return nil, classifyError(err)
	}

	raw, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	cards, err := generation.ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	deck, err := domain.NewDeck(req.Subject, cards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "deck generated",
		"deck_id", deck.ID.String(),
		"card_count", len(deck.Cards),
		"elapsed", time.Since(start).String())

	return deck, nil
}

// extractText pulls the full response text out of a generate call, mapping
// structural holes (no candidates, safety block) onto typed errors.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrTransport)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: generation stopped by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrTransport)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	return text, nil
}

// classifyError maps endpoint failures onto the generation error taxonomy:
// 401/403 mean the credential was rejected, 429 means throttling, and
// anything else that kept the call from completing is a transport failure.
func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", generation.ErrAuthentication, apiErr.Status)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", generation.ErrRateLimited, apiErr.Status)
		default:
			return fmt.Errorf("%w: status %d %s", generation.ErrTransport, apiErr.Code, apiErr.Status)
		}
	}

	return fmt.Errorf("%w: %v", generation.ErrTransport, err)
}
