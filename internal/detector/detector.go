// Package detector identifies the source format of a delimited export file
// from its header row.
package detector

import (
	"strings"

	"pesalens/mpesa-csv/internal/textutils"
)

// Format is the closed set of recognized source formats.
type Format string

const (
	MpesaStatement Format = "mpesa_statement"
	MpesaTill      Format = "mpesa_till"
	MpesaPaybill   Format = "mpesa_paybill"
	Shopify        Format = "shopify"
	Unknown        Format = "unknown"
)

// Label returns the human-readable name of the format.
func (f Format) Label() string {
	switch f {
	case MpesaStatement:
		return "M-Pesa Statement"
	case MpesaTill:
		return "M-Pesa Till"
	case MpesaPaybill:
		return "M-Pesa Paybill"
	case Shopify:
		return "Shopify Orders"
	default:
		return "Unknown Format"
	}
}

// matchThreshold is the minimum signature score required to claim a format.
const matchThreshold = 0.5

// Signatures are keyword fragments matched by substring containment against
// normalized headers. The statement and till signatures overlap except for
// their first keyword, which carries the disambiguation; keep them precise.
var (
	mpesaStatementKeys = []string{
		"receipt no",
		"completion time",
		"details",
		"transaction status",
		"paid in",
		"withdrawn",
		"balance",
	}

	mpesaTillKeys = []string{
		"initiation time",
		"completion time",
		"details",
		"transaction status",
		"paid in",
		"withdrawn",
		"balance",
	}

	mpesaPaybillKeys = []string{
		"account number",
		"receipt number",
		"date",
		"amount",
		"transaction type",
	}

	shopifyKeys = []string{
		"name",
		"email",
		"financial status",
		"paid at",
		"fulfillment status",
		"total",
	}
)

// candidates fixes the evaluation order. Ties on score resolve to the
// earliest entry.
var candidates = []struct {
	format    Format
	signature []string
}{
	{MpesaStatement, mpesaStatementKeys},
	{MpesaTill, mpesaTillKeys},
	{MpesaPaybill, mpesaPaybillKeys},
	{Shopify, shopifyKeys},
}

// Score computes the fraction of signature keywords contained in at least one
// normalized header. Adding a header that matches another keyword never
// decreases the score.
func Score(normalizedHeaders []string, signature []string) float64 {
	if len(signature) == 0 {
		return 0
	}

	hits := 0
	for _, key := range signature {
		for _, h := range normalizedHeaders {
			if strings.Contains(h, key) {
				hits++
				break
			}
		}
	}

	return float64(hits) / float64(len(signature))
}

// Detect returns exactly one format tag for a header list. It is a pure
// function of the headers: the best-scoring signature wins if it reaches the
// threshold, otherwise Unknown. An empty header list scores zero everywhere
// and yields Unknown.
func Detect(headers []string) Format {
	normalized := textutils.NormalizeHeaders(headers)

	best := Unknown
	bestScore := 0.0
	for _, c := range candidates {
		if s := Score(normalized, c.signature); s > bestScore {
			best = c.format
			bestScore = s
		}
	}

	if bestScore >= matchThreshold {
		return best
	}
	return Unknown
}
