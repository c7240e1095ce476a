// Package dateutils provides date parsing for the timestamp styles found in
// financial export files.
package dateutils

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"pesalens/mpesa-csv/internal/parsererror"
)

// Layout constants for the formats most often seen in exports.
const (
	LayoutISO      = "2006-01-02"
	LayoutFull     = "2006-01-02 15:04:05"
	LayoutKenyan   = "02/01/2006 15:04:05"
	LayoutKenyanDa = "02/01/2006"
)

// exportFormats is the ordered list of layouts tried when parsing. M-Pesa
// statements use LayoutFull or LayoutKenyan; Shopify exports use ISO 8601
// with a timezone offset.
var exportFormats = []string{
	LayoutFull,
	LayoutISO,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	LayoutKenyan,
	LayoutKenyanDa,
	"02-01-2006 15:04:05",
	"02-01-2006",
	"01/02/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

var multiSpace = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string against the known export layouts,
// in order. It returns an error when no layout matches; callers that need the
// lenient behavior substitute their own fallback instant.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, &parsererror.ParseError{
			Field: "date",
			Value: dateStr,
			Err:   errors.New("empty date string"),
		}
	}

	for _, layout := range exportFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &parsererror.ParseError{
		Field: "date",
		Value: dateStr,
		Err:   errors.New("no known layout matches"),
	}
}

// ParseDateOr parses a date string, returning fallback when the string is
// empty or matches no known layout. This is the lenient entry point used by
// the normalizers: an unparsable date degrades to the fallback instant rather
// than failing the row.
func ParseDateOr(dateStr string, fallback time.Time) time.Time {
	t, err := ParseDate(dateStr)
	if err != nil {
		return fallback
	}
	return t
}
