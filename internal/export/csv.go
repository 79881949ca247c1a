// Package export serializes card records into the Anki-importable CSV file.
// The column contract is fixed: a header row of
// Index,Topic,Question,Answer,Explanation,Example followed by one RFC
// 4180-quoted row per card in sequence order.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/phrazzld/ankigen/internal/domain"
)

// ErrWriteFailed is returned when the destination cannot be opened or the
// write cannot be completed.
var ErrWriteFailed = errors.New("failed to write export")

// Header is the fixed column header of every export.
var Header = []string{"Index", "Topic", "Question", "Answer", "Explanation", "Example"}

// Write serializes the cards to w: the header row, then one row per card in
// the slice's existing order. An empty or nil slice produces a header-only
// export. Fields containing the delimiter, quotes, or line breaks are quoted
// per the CSV standard so they round-trip on re-read.
func Write(w io.Writer, cards []domain.CardRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	for _, card := range cards {
		row := []string{
			strconv.Itoa(card.Index),
			card.Topic,
			card.Question,
			card.Answer,
			card.Explanation,
			card.Example,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return nil
}

// WriteFile writes the export to path atomically: the rows go to a temporary
// file in the destination directory which is synced and renamed into place
// only after every row was written. A failed write never leaves a file at
// path that silently appears complete.
func WriteFile(path string, cards []domain.CardRecord) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, cards); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return nil
}
