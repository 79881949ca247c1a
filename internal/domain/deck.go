package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors, wrapping ErrValidation like the card ones.
var (
	ErrEmptyDeckID      = fmt.Errorf("%w: deck ID cannot be empty", ErrValidation)
	ErrEmptyDeckSubject = fmt.Errorf("%w: deck subject cannot be empty", ErrValidation)
)

// Deck is the ordered result of one generation call. The caller owns it:
// the pipeline never holds a deck between calls, so issuing a new request
// simply replaces whichever deck the presentation layer was keeping.
type Deck struct {
	ID        uuid.UUID    `json:"id"`
	Subject   string       `json:"subject"`
	Cards     []CardRecord `json:"cards"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewDeck creates a Deck for the given subject and cards. It generates a
// new UUID for the deck ID and stamps the creation time. An empty card
// slice is valid; the export writer produces a header-only file for it.
func NewDeck(subject string, cards []CardRecord) (*Deck, error) {
	deck := &Deck{
		ID:        uuid.New(),
		Subject:   subject,
		Cards:     cards,
		CreatedAt: time.Now().UTC(),
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrEmptyDeckID
	}

	if d.Subject == "" {
		return ErrEmptyDeckSubject
	}

	for _, card := range d.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}

	return nil
}
