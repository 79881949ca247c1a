package generation

import (
	"context"

	"github.com/phrazzld/ankigen/internal/domain"
)

// Generator defines the interface for generating a flashcard deck from a
// generation request. It is the boundary between the application core and
// the external LLM service: implementations perform exactly one synchronous
// call per request and surface failures as the typed errors in this package,
// with no retry of their own.
type Generator interface {
	// GenerateDeck builds the prompt for the request, sends it to the model
	// endpoint with the request's credential, parses the response, and
	// returns the resulting deck. The credential is used for the single
	// call and never retained or logged.
	GenerateDeck(ctx context.Context, req domain.GenerationRequest) (*domain.Deck, error)
}
