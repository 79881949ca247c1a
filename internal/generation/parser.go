package generation

import (
	"fmt"
	"strings"

	"github.com/phrazzld/ankigen/internal/domain"
)

// The parser consumes the marker grammar requested by BuildPrompt:
//
//	TOPIC: <topic name>
//	Q: <question>
//	A: <answer>
//	EXPLANATION: <explanation>
//	EXAMPLE: <example>
//
// A TOPIC line opens a topic segment; each Q line opens a card group within
// it; A, EXPLANATION, and EXAMPLE label the remaining fields. A field's
// value continues on following lines until the next marker. Markers are
// matched case-insensitively after stripping markdown fences, list bullets,
// heading hashes, and bold decoration, since models sometimes dress up text
// they were told to keep plain.

// fieldKind identifies which marker a line carries.
type fieldKind int

const (
	fieldNone fieldKind = iota
	fieldTopic
	fieldQuestion
	fieldAnswer
	fieldExplanation
	fieldExample
)

// markers are checked in order; longer prefixes first so "ANSWER:" is not
// consumed by "A:".
var markers = []struct {
	prefix string
	kind   fieldKind
}{
	{"EXPLANATION:", fieldExplanation},
	{"EXAMPLE:", fieldExample},
	{"QUESTION:", fieldQuestion},
	{"ANSWER:", fieldAnswer},
	{"TOPIC:", fieldTopic},
	{"Q:", fieldQuestion},
	{"A:", fieldAnswer},
}

// cardDraft accumulates one card's field lines during the scan.
type cardDraft struct {
	fields map[fieldKind][]string
	last   fieldKind
}

func newCardDraft() *cardDraft {
	return &cardDraft{fields: make(map[fieldKind][]string)}
}

func (d *cardDraft) set(kind fieldKind, value string) {
	d.fields[kind] = append(d.fields[kind], value)
	d.last = kind
}

func (d *cardDraft) continueLast(value string) {
	if d.last == fieldNone {
		return
	}
	d.fields[d.last] = append(d.fields[d.last], value)
}

func (d *cardDraft) field(kind fieldKind) string {
	return strings.TrimSpace(strings.Join(d.fields[kind], "\n"))
}

// ParseResponse converts the model's raw text into an ordered sequence of
// CardRecord values. Index values are assigned sequentially starting at 1
// across the entire sequence, in the order topics and cards appear in the
// input. Parsing is deterministic and has no side effects.
//
// Tolerances follow the single-call contract: a topic carrying fewer cards
// than requested yields only the cards present; a card group missing a
// field records that field as the empty string. Input with no recognizable
// structure at all, including the empty string, fails with
// ErrMalformedResponse and produces zero records.
func ParseResponse(raw string) ([]domain.CardRecord, error) {
	var (
		cards []domain.CardRecord
		topic string
		draft *cardDraft
	)

	flush := func() {
		if draft == nil {
			return
		}
		cards = append(cards, domain.CardRecord{
			Index:       len(cards) + 1,
			Topic:       topic,
			Question:    draft.field(fieldQuestion),
			Answer:      draft.field(fieldAnswer),
			Explanation: draft.field(fieldExplanation),
			Example:     draft.field(fieldExample),
		})
		draft = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		cleaned, skip := normalizeLine(line)
		if skip {
			continue
		}

		kind, value := matchMarker(cleaned)
		switch kind {
		case fieldTopic:
			flush()
			topic = value

		case fieldQuestion:
			if topic == "" {
				return nil, fmt.Errorf("%w: card group before any topic marker", ErrMalformedResponse)
			}
			flush()
			draft = newCardDraft()
			draft.set(fieldQuestion, value)

		case fieldAnswer, fieldExplanation, fieldExample:
			// Stray field markers outside a card group are noise, not structure.
			if draft != nil {
				draft.set(kind, value)
			}

		default:
			if cleaned == "" {
				continue
			}
			// Continuation of the previous field; prose outside any card
			// group (model preamble) is ignored.
			if draft != nil {
				draft.continueLast(cleaned)
			}
		}
	}
	flush()

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no card structure found in response", ErrMalformedResponse)
	}

	return cards, nil
}

// normalizeLine trims whitespace and markdown decoration from a line.
// Returns skip=true for lines that carry no content, such as code fences.
func normalizeLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "```") {
		return "", true
	}

	// Bullets and heading hashes in front of a marker.
	trimmed = strings.TrimLeft(trimmed, "#*->• \t")

	// Bold-wrapped markers like **TOPIC:** survive TrimLeft on the left
	// side; drop the trailing pair too.
	trimmed = strings.TrimSuffix(trimmed, "**")

	return strings.TrimSpace(trimmed), false
}

// matchMarker reports which marker, if any, starts the line, and returns
// the remainder of the line as the field's first value.
func matchMarker(line string) (fieldKind, string) {
	upper := strings.ToUpper(line)
	for _, m := range markers {
		if strings.HasPrefix(upper, m.prefix) {
			value := strings.TrimSpace(line[len(m.prefix):])
			// Bold-wrapped markers leave the closing pair on the value side.
			value = strings.TrimSpace(strings.TrimPrefix(value, "**"))
			return m.kind, value
		}
	}
	return fieldNone, ""
}
