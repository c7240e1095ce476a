// Package textutils provides the header normalization and fuzzy column lookup
// shared by format detection and all per-format parsers. Detection and column
// resolution must normalize identically, so both go through this package.
package textutils

import (
	"regexp"
	"strings"

	"pesalens/mpesa-csv/internal/models"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9 ]`)

// NormalizeHeader lowercases, trims and strips every character outside
// [a-z0-9 ] from a header string. "Paid In (KES)" becomes "paid in kes".
func NormalizeHeader(header string) string {
	return nonAlnum.ReplaceAllString(strings.TrimSpace(strings.ToLower(header)), "")
}

// NormalizeHeaders normalizes a full header list, preserving order.
func NormalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}
	return normalized
}

// FieldByKeyword returns the value of the first header whose normalized form
// contains keyword as a substring, or "" when no header matches. This fuzzy
// containment lookup is what lets parsers survive header drift between
// exporter versions ("Paid In" vs "Paid In (KES)").
func FieldByKeyword(row models.RawRow, headers []string, keyword string) string {
	for _, h := range headers {
		if strings.Contains(NormalizeHeader(h), keyword) {
			return row[h]
		}
	}
	return ""
}
