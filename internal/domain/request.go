package domain

import (
	"fmt"
	"strings"
)

// Common validation errors for GenerationRequest. All wrap ErrInvalidInput
// so callers can match the whole class with a single errors.Is check.
var (
	ErrEmptySubject         = fmt.Errorf("%w: subject cannot be empty", ErrInvalidInput)
	ErrInvalidTopicCount    = fmt.Errorf("%w: topic count must be at least 1", ErrInvalidInput)
	ErrInvalidCardsPerTopic = fmt.Errorf("%w: cards per topic must be at least 1", ErrInvalidInput)
)

// GenerationRequest carries the parameters for one card generation call.
// The APIKey authorizes the call to the remote model endpoint; it is passed
// through to the generation client at call time and must never be persisted
// or written to logs.
type GenerationRequest struct {
	Subject          string `json:"subject"`
	TopicCount       int    `json:"topic_count"`
	CardsPerTopic    int    `json:"cards_per_topic"`
	PreferencePrompt string `json:"preference_prompt,omitempty"`
	APIKey           string `json:"-"`
}

// Validate checks if the GenerationRequest has valid parameters.
// It does not check the APIKey: credential validation belongs to the
// generation client, which rejects an empty key before any network attempt.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return ErrEmptySubject
	}

	if r.TopicCount < 1 {
		return ErrInvalidTopicCount
	}

	if r.CardsPerTopic < 1 {
		return ErrInvalidCardsPerTopic
	}

	return nil
}
