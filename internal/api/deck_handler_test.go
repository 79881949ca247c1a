package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/generation"
	"github.com/phrazzld/ankigen/internal/mocks"
	"github.com/phrazzld/ankigen/internal/service"
)

func newTestHandler(t *testing.T, gen *mocks.MockGenerator) *DeckHandler {
	t.Helper()
	svc, err := service.NewDeckService(gen, slog.Default())
	require.NoError(t, err)
	return NewDeckHandler(svc, slog.Default())
}

func testDeck(t *testing.T) *domain.Deck {
	t.Helper()
	deck, err := domain.NewDeck("Go basics", []domain.CardRecord{
		{Index: 1, Topic: "Slices", Question: "q1", Answer: "a1", Explanation: "e1", Example: "x1"},
		{Index: 2, Topic: "Maps", Question: "q2", Answer: "a2"},
	})
	require.NoError(t, err)
	return deck
}

func TestGenerateDeckHandler(t *testing.T) {
	t.Parallel()

	gen := &mocks.MockGenerator{Deck: testDeck(t)}
	handler := newTestHandler(t, gen)

	body := `{"subject":"Go basics","topic_count":2,"cards_per_topic":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/decks", strings.NewReader(body))
	req.Header.Set(APIKeyHeader, "caller-key")
	rr := httptest.NewRecorder()

	handler.GenerateDeck(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp DeckResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Go basics", resp.Subject)
	require.Len(t, resp.Cards, 2)
	assert.Equal(t, 1, resp.Cards[0].Index)
	assert.Equal(t, "Slices", resp.Cards[0].Topic)

	// The header credential reaches the generator, nothing else does.
	assert.Equal(t, "caller-key", gen.LastRequest().APIKey)
}

func TestGenerateDeckHandlerBadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"subject":`},
		{"missing subject", `{"topic_count":2,"cards_per_topic":1}`},
		{"zero topic count", `{"subject":"x","topic_count":0,"cards_per_topic":1}`},
		{"excessive topic count", `{"subject":"x","topic_count":100,"cards_per_topic":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gen := &mocks.MockGenerator{Deck: testDeck(t)}
			handler := newTestHandler(t, gen)

			req := httptest.NewRequest(http.MethodPost, "/api/decks", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			handler.GenerateDeck(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, 0, gen.Count, "bad requests must never reach the generator")
		})
	}
}

func TestGenerateDeckHandlerErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"authentication", generation.ErrAuthentication, http.StatusUnauthorized},
		{"rate limited", generation.ErrRateLimited, http.StatusTooManyRequests},
		{"transport", generation.ErrTransport, http.StatusBadGateway},
		{"malformed response", generation.ErrMalformedResponse, http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler := newTestHandler(t, &mocks.MockGenerator{Err: tc.err})

			body := `{"subject":"Go basics","topic_count":1,"cards_per_topic":1}`
			req := httptest.NewRequest(http.MethodPost, "/api/decks", strings.NewReader(body))
			rr := httptest.NewRecorder()

			handler.GenerateDeck(rr, req)

			assert.Equal(t, tc.want, rr.Code)

			// The response body carries only the sanitized message.
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, GetSafeErrorMessage(tc.err), resp["error"])
		})
	}
}

func TestExportDeckHandler(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &mocks.MockGenerator{})

	body := `{"cards":[
		{"index":1,"topic":"Slices","question":"What, exactly?","answer":"a \"quoted\" answer","explanation":"line one\nline two","example":"x"},
		{"index":2,"topic":"Maps","question":"q2","answer":"a2","explanation":"","example":""}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/decks/export", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ExportDeck(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), exportFilename)

	records, err := csv.NewReader(bytes.NewReader(rr.Body.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "What, exactly?", records[1][2])
	assert.Equal(t, `a "quoted" answer`, records[1][3])
	assert.Equal(t, "line one\nline two", records[1][4])
}

func TestExportDeckHandlerEmpty(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &mocks.MockGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/decks/export", strings.NewReader(`{"cards":[]}`))
	rr := httptest.NewRecorder()

	handler.ExportDeck(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Index,Topic,Question,Answer,Explanation,Example\n", rr.Body.String())
}

func TestExportDeckHandlerMalformedJSON(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, &mocks.MockGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/decks/export", strings.NewReader(`{`))
	rr := httptest.NewRecorder()

	handler.ExportDeck(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
