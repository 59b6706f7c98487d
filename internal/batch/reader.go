// Package batch runs the extraction pipeline over many transcripts and
// reports the results as CSV.
package batch

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// Input formats accepted by ReadTranscripts.
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Input is one transcript to extract.
type Input struct {
	ID         string `csv:"id"`
	Transcript string `csv:"transcript"`
}

// ReadTranscripts reads transcripts from r.
//
// In text format every non-blank line is a transcript and lines starting
// with '#' are comments. In CSV format the header must contain a
// "transcript" column and may contain an "id" column. Inputs without an id
// get a random UUID.
func ReadTranscripts(r io.Reader, format string, delimiter rune) ([]Input, error) {
	var inputs []Input
	var err error

	switch format {
	case FormatText:
		inputs, err = readText(r)
	case FormatCSV:
		inputs, err = readCSV(r, delimiter)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	for i := range inputs {
		if strings.TrimSpace(inputs[i].ID) == "" {
			inputs[i].ID = uuid.NewString()
		}
	}
	return inputs, nil
}

func readText(r io.Reader) ([]Input, error) {
	var inputs []Input
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, Input{Transcript: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transcripts: %w", err)
	}
	return inputs, nil
}

func readCSV(r io.Reader, delimiter rune) ([]Input, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	if !hasColumn(header, "transcript") {
		return nil, fmt.Errorf("CSV input has no transcript column")
	}

	// hand the header back to gocsv together with the rest of the rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV rows: %w", err)
	}
	all := append([][]string{header}, rows...)

	var inputs []Input
	if err := gocsv.UnmarshalCSV(&rowsReader{rows: all}, &inputs); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return inputs, nil
}

func hasColumn(header []string, name string) bool {
	for _, h := range header {
		if strings.TrimSpace(h) == name {
			return true
		}
	}
	return false
}

// rowsReader replays already read records as a gocsv.CSVReader.
type rowsReader struct {
	rows [][]string
	pos  int
}

func (r *rowsReader) Read() ([]string, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}

func (r *rowsReader) ReadAll() ([][]string, error) {
	rest := r.rows[r.pos:]
	r.pos = len(r.rows)
	return rest, nil
}
