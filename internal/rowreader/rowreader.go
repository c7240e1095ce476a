// Package rowreader turns delimited-text byte streams into ordered sequences
// of header-keyed rows, tolerating malformed records.
package rowreader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"pesalens/mpesa-csv/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Read consumes a delimited-text stream with a header row and returns the
// ordered header list, the ordered row sequence, and any non-fatal warnings.
//
// Isolated bad rows (quoting errors, wrong field counts) are skipped and
// recorded as warnings; fully empty rows are skipped silently. Read itself
// never fails: a stream that cannot even yield a header row produces empty
// headers, zero rows, and a single warning.
func Read(r io.Reader, delimiter rune) (headers []string, rows []models.RawRow, warnings []string) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	record, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("failed to read header row: %v", err))
		return nil, nil, warnings
	}

	headers = make([]string, len(record))
	for i, h := range record {
		headers[i] = strings.TrimSpace(h)
	}

	rowNum := 1
	for {
		rowNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithError(err).WithField("row", rowNum).Debug("Skipping malformed row")
			warnings = append(warnings, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		if isEmptyRecord(record) {
			continue
		}

		if len(record) != len(headers) {
			warnings = append(warnings, fmt.Sprintf(
				"row %d: expected %d fields, got %d", rowNum, len(headers), len(record)))
			continue
		}

		row := make(models.RawRow, len(headers))
		for i, h := range headers {
			row[h] = record[i]
		}
		rows = append(rows, row)
	}

	return headers, rows, warnings
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
