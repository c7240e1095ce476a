// Package normalizer dispatches a detected format to its normalization
// strategy. It acts as a factory over the per-format parser packages.
package normalizer

import (
	"time"

	"pesalens/mpesa-csv/internal/detector"
	"pesalens/mpesa-csv/internal/genericparser"
	"pesalens/mpesa-csv/internal/models"
	"pesalens/mpesa-csv/internal/paybillparser"
	"pesalens/mpesa-csv/internal/shopifyparser"
	"pesalens/mpesa-csv/internal/statementparser"

	"github.com/sirupsen/logrus"
)

// Func is the shared contract of all normalization strategies: raw rows plus
// the header list in, canonical transactions out. "now" is the instant
// substituted for unparsable dates, injected so tests can pin it.
type Func func(rows []models.RawRow, headers []string, now time.Time) []models.Transaction

// ForFormat returns the strategy for a detected format. Statement and till
// exports share one strategy; anything unrecognized gets the generic fallback.
func ForFormat(format detector.Format) Func {
	switch format {
	case detector.MpesaStatement, detector.MpesaTill:
		return statementparser.Normalize
	case detector.MpesaPaybill:
		return paybillparser.Normalize
	case detector.Shopify:
		return shopifyparser.Normalize
	default:
		return genericparser.Normalize
	}
}

// SetLogger propagates a configured logger to every strategy package.
func SetLogger(logger *logrus.Logger) {
	statementparser.SetLogger(logger)
	paybillparser.SetLogger(logger)
	shopifyparser.SetLogger(logger)
	genericparser.SetLogger(logger)
}
