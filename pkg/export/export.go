package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jagdpruefer/quizetl/pkg/models"
)

// Columns of the flat output, in order.
var Columns = []string{"question", "subject", "use", "possible_answers", "correct_answers"}

// WriteCSV writes records as CSV with a header row and no index column.
// List columns are rendered as list literals, e.g. ['Paris', 'Lyon'].
func WriteCSV(w io.Writer, records []models.QuizRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Question,
			rec.Subject,
			rec.Use,
			ListLiteral(rec.PossibleAnswers),
			ListLiteral(rec.CorrectAnswers),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteJSON writes records as an indented JSON array. Non-ASCII text and
// HTML characters are written as-is.
func WriteJSON(w io.Writer, records []models.QuizRecord) error {
	if records == nil {
		records = []models.QuizRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteFiles renders both outputs in memory, then writes them, overwriting
// existing files.
func WriteFiles(csvPath, jsonPath string, records []models.QuizRecord) error {
	var csvBuf, jsonBuf bytes.Buffer
	if err := WriteCSV(&csvBuf, records); err != nil {
		return err
	}
	if err := WriteJSON(&jsonBuf, records); err != nil {
		return err
	}

	for _, out := range []struct {
		path string
		data []byte
	}{
		{csvPath, csvBuf.Bytes()},
		{jsonPath, jsonBuf.Bytes()},
	} {
		if dir := filepath.Dir(out.path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(out.path, out.data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out.path, err)
		}
	}
	return nil
}
