package ingest_service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/init-pkg/wrapped-reports/domain/app"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var delimiters = []rune{',', ';', '\t', '|'}

var utf8BOM = []byte("\xef\xbb\xbf")

// decode converts input to UTF-8. Input that is not valid UTF-8 is read as
// UTF-16 when it carries a BOM and as Latin-1 otherwise.
func decode(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(charmap.ISO8859_1.NewDecoder()), data)
	return out, err
}

// sniffDelimiter picks the candidate that occurs most often in the header line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := strings.Count(string(line), string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func readCSV(data []byte) (*app.IngestResult, error) {
	decoded, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = sniffDelimiter(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty csv")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var (
		columns = normalizeHeader(header)
		rows    = make([]app.RawRow, 0)
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if blankRecord(record) {
			continue
		}

		// short rows leave trailing columns absent; extra fields are dropped
		row := make(app.RawRow, len(columns))
		for i, col := range columns {
			if i >= len(record) {
				break
			}
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return &app.IngestResult{Columns: columns, Rows: rows}, nil
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
