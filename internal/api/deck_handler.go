package api

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ankigen/internal/api/shared"
	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/platform/logger"
	"github.com/phrazzld/ankigen/internal/service"
)

// APIKeyHeader is the header carrying the caller's generation credential.
const APIKeyHeader = "X-Api-Key"

// exportFilename is the name suggested to the browser for the CSV download.
const exportFilename = "anki_deck.csv"

// DeckHandler handles deck generation and export HTTP requests.
type DeckHandler struct {
	deckService service.DeckService
	logger      *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(deckService service.DeckService, log *slog.Logger) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
		logger:      log,
	}
}

// GenerateDeck handles POST /api/decks requests. The generation credential
// comes from the X-Api-Key header; when absent, the server-side default key
// is used, and the generator rejects the call before any network attempt if
// neither is present.
func (h *DeckHandler) GenerateDeck(w http.ResponseWriter, r *http.Request) {
	var req GenerateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	genReq := domain.GenerationRequest{
		Subject:          req.Subject,
		TopicCount:       req.TopicCount,
		CardsPerTopic:    req.CardsPerTopic,
		PreferencePrompt: req.PreferencePrompt,
		APIKey:           r.Header.Get(APIKeyHeader),
	}

	deck, err := h.deckService.GenerateDeck(r.Context(), genReq)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toDeckResponse(deck))
}

// ExportDeck handles POST /api/decks/export requests. The CSV is fully
// buffered before the first byte is sent, so a failed serialization becomes
// an error response instead of a truncated download that looks complete.
func (h *DeckHandler) ExportDeck(w http.ResponseWriter, r *http.Request) {
	var req ExportDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.deckService.ExportDeck(r.Context(), &buf, toCardRecords(req.Cards)); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			ErrorContext(r.Context(), "failed to write CSV response", "error", err)
	}
}
