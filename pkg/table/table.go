package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a CSV file held in memory: a header and rows padded to its width
type Table struct {
	Header []string
	Rows   [][]string
	Lines  []int // Source line of each row
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Load reads a CSV file with a header row
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	tbl, err := Read(bytes.NewReader(data))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return tbl, nil
}

// Read parses CSV from r. Short rows are padded with empty cells; long rows
// and a missing header are reported as *ParseError. A quote inside an
// unquoted field is kept as text.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: errors.New("no columns to parse from file")}
	}
	if err != nil {
		return nil, csvParseError(err)
	}

	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, dup := seen[name]; dup {
			return nil, &ParseError{Line: 1, Err: fmt.Errorf("duplicate column %q", name)}
		}
		seen[name] = struct{}{}
	}

	tbl := &Table{Header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvParseError(err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) > len(header) {
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(header), len(record)),
			}
		}
		row := make([]string, len(header))
		copy(row, record)
		tbl.Rows = append(tbl.Rows, row)
		tbl.Lines = append(tbl.Lines, line)
	}
	return tbl, nil
}

func csvParseError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
