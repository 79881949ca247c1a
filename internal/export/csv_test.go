package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/ankigen/internal/domain"
)

func TestWriteEmptyDeck(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	assert.Equal(t, "Index,Topic,Question,Answer,Explanation,Example\n", buf.String(),
		"empty input must produce exactly the header line")
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	cards := []domain.CardRecord{
		{
			Index:       1,
			Topic:       "SQL, the basics",
			Question:    `What does "JOIN" do?`,
			Answer:      "Combines rows\nfrom two tables",
			Explanation: "Rows match on the join predicate.",
			Example:     `SELECT * FROM a JOIN b ON a.id = b.id`,
		},
		{
			Index:       2,
			Topic:       "SQL, the basics",
			Question:    "Quote a literal 'single' and \"double\"",
			Answer:      "",
			Explanation: "",
			Example:     "a,b,c",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cards))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per card")

	assert.Equal(t, Header, records[0])

	for i, card := range cards {
		row := records[i+1]
		assert.Equal(t, strconv.Itoa(card.Index), row[0])
		assert.Equal(t, card.Topic, row[1])
		assert.Equal(t, card.Question, row[2])
		assert.Equal(t, card.Answer, row[3])
		assert.Equal(t, card.Explanation, row[4])
		assert.Equal(t, card.Example, row[5])
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "anki_deck.csv")

	cards := []domain.CardRecord{
		{Index: 1, Topic: "Maps", Question: "Ordered?", Answer: "No"},
	}

	require.NoError(t, WriteFile(path, cards))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Maps", records[1][1])

	// No leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "anki_deck.csv")

	err := WriteFile(path, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "a failed export must not leave a file behind")
}
