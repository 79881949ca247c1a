package domain

import "fmt"

// Card-specific validation errors. Both wrap ErrValidation so callers can
// match the whole category with errors.Is.
var (
	// ErrCardIndexInvalid is returned when a card's index is not a positive integer.
	ErrCardIndexInvalid = fmt.Errorf("%w: card index must be a positive integer", ErrValidation)

	// ErrCardTopicEmpty is returned when a card's topic is empty.
	ErrCardTopicEmpty = fmt.Errorf("%w: card topic cannot be empty", ErrValidation)
)

// CardRecord is one generated flashcard: a question/answer pair with its
// topic, an explanation, and a worked example. Records are created in bulk
// by the response parser and never mutated afterwards; the Index is assigned
// at parse time, 1-based and contiguous across the whole deck.
//
// Any text field other than Topic may be empty when the model omitted it;
// the parser records missing fields as empty strings rather than dropping
// the card.
type CardRecord struct {
	Index       int    `json:"index"`
	Topic       string `json:"topic"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// Validate checks if the CardRecord has valid data.
// Returns an error if any field fails validation.
func (c CardRecord) Validate() error {
	if c.Index < 1 {
		return ErrCardIndexInvalid
	}

	if c.Topic == "" {
		return ErrCardTopicEmpty
	}

	return nil
}
