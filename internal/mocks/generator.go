// Package mocks provides hand-written test doubles for the application's
// service boundaries.
package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateDeckFn overrides the default behavior when set.
	GenerateDeckFn func(ctx context.Context, req domain.GenerationRequest) (*domain.Deck, error)

	// Default response values
	Deck *domain.Deck
	Err  error

	// Call tracking for verification
	mu       sync.Mutex
	Count    int
	Requests []domain.GenerationRequest
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateDeck implements the generation.Generator interface.
func (m *MockGenerator) GenerateDeck(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.Deck, error) {
	m.mu.Lock()
	m.Count++
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.GenerateDeckFn != nil {
		return m.GenerateDeckFn(ctx, req)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	return m.Deck, nil
}

// LastRequest returns the most recent request passed to GenerateDeck, or the
// zero value when it was never called.
func (m *MockGenerator) LastRequest() domain.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return domain.GenerationRequest{}
	}
	return m.Requests[len(m.Requests)-1]
}
