// Package pipeline runs the full ingestion sequence for a single export file:
// row reading, format detection, normalization, all in one pass.
//
// The pipeline is total: every failure mode is reported inside the returned
// ParseOutcome, never as an error crossing the package boundary. Each call is
// a pure function of its input stream, so callers may process independent
// files concurrently without coordination.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"pesalens/mpesa-csv/internal/detector"
	"pesalens/mpesa-csv/internal/models"
	"pesalens/mpesa-csv/internal/normalizer"
	"pesalens/mpesa-csv/internal/rowreader"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		rowreader.SetLogger(logger)
		normalizer.SetLogger(logger)
	}
}

// Option configures a single pipeline invocation.
type Option func(*options)

type options struct {
	clock     func() time.Time
	progress  func(percent int)
	delimiter rune
}

// WithClock overrides the instant substituted for unparsable dates.
// Production code leaves this at time.Now; tests pin it.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithProgress registers an advisory progress callback. It receives a
// percentage and carries no control responsibility: the pipeline runs the
// same with or without it.
func WithProgress(progress func(percent int)) Option {
	return func(o *options) {
		o.progress = progress
	}
}

// WithDelimiter overrides the field delimiter used by the row reader.
func WithDelimiter(delimiter rune) Option {
	return func(o *options) {
		if delimiter != 0 {
			o.delimiter = delimiter
		}
	}
}

// Parse runs the pipeline over a byte stream and returns the complete
// outcome: detected format, normalized transactions, raw rows, headers and
// up to models.MaxOutcomeErrors warnings.
func Parse(r io.Reader, opts ...Option) *models.ParseOutcome {
	o := options{
		clock:     time.Now,
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(&o)
	}

	headers, rows, warnings := rowreader.Read(r, o.delimiter)

	format := detector.Detect(headers)
	transactions := normalizer.ForFormat(format)(rows, headers, o.clock())

	if o.progress != nil {
		o.progress(100)
	}

	outcome := &models.ParseOutcome{
		Format:       string(format),
		FormatLabel:  format.Label(),
		Transactions: transactions,
		RawRows:      rows,
		Headers:      headers,
		TotalRows:    len(rows),
		Errors:       warnings,
	}
	outcome.CapErrors()

	log.WithFields(logrus.Fields{
		"format":       outcome.Format,
		"rows":         outcome.TotalRows,
		"transactions": len(outcome.Transactions),
		"warnings":     len(outcome.Errors),
	}).Info("Parsed export stream")

	return outcome
}

// ParseFile runs the pipeline over a file on disk. An unreadable file yields
// an outcome with zero rows, unknown format and a single error message; the
// failure never propagates as an error value.
func ParseFile(path string, opts ...Option) *models.ParseOutcome {
	file, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Error("Failed to open export file")
		return &models.ParseOutcome{
			Format:      string(detector.Unknown),
			FormatLabel: detector.Unknown.Label(),
			Errors:      []string{fmt.Sprintf("failed to open file: %v", err)},
		}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, opts...)
}
