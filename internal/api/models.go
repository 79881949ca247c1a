package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/ankigen/internal/domain"
)

// Common request/response structures

// GenerateDeckRequest defines the payload for the deck generation endpoint.
// The credential is not part of the body: it travels in the X-Api-Key
// header so it never lands in request logs or client-side history.
type GenerateDeckRequest struct {
	Subject          string `json:"subject"           validate:"required,min=1"`
	TopicCount       int    `json:"topic_count"       validate:"required,gte=1,lte=20"`
	CardsPerTopic    int    `json:"cards_per_topic"   validate:"required,gte=1,lte=30"`
	PreferencePrompt string `json:"preference_prompt" validate:"omitempty,max=2000"`
}

// CardResponse is the JSON shape of one generated card.
type CardResponse struct {
	Index       int    `json:"index"`
	Topic       string `json:"topic"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// DeckResponse defines the successful response of the generation endpoint.
type DeckResponse struct {
	ID        uuid.UUID      `json:"id"`
	Subject   string         `json:"subject"`
	Cards     []CardResponse `json:"cards"`
	CreatedAt time.Time      `json:"created_at"`
}

// ExportDeckRequest defines the payload for the CSV export endpoint. The
// client sends back the cards it holds; an empty list is valid and yields a
// header-only file.
type ExportDeckRequest struct {
	Cards []CardResponse `json:"cards" validate:"dive"`
}

// toDeckResponse converts a domain.Deck to its response DTO.
func toDeckResponse(deck *domain.Deck) DeckResponse {
	cards := make([]CardResponse, 0, len(deck.Cards))
	for _, c := range deck.Cards {
		cards = append(cards, CardResponse(c))
	}

	return DeckResponse{
		ID:        deck.ID,
		Subject:   deck.Subject,
		Cards:     cards,
		CreatedAt: deck.CreatedAt,
	}
}

// toCardRecords converts request DTOs back to domain records, preserving the
// order the client sent.
func toCardRecords(cards []CardResponse) []domain.CardRecord {
	records := make([]domain.CardRecord, 0, len(cards))
	for _, c := range cards {
		records = append(records, domain.CardRecord(c))
	}
	return records
}
