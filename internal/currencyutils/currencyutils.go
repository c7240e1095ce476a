// Package currencyutils provides amount parsing and display formatting for
// monetary values found in financial export files.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var amountNoise = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount extracts a decimal amount from noisy exporter text such as
// "KES 1,234.50" or "Ksh2,000". Everything except digits, the decimal point
// and a single leading minus sign is stripped before parsing.
//
// Empty or unparsable input resolves to zero rather than an error: source
// exports are assumed noisy, and a defaulted value is preferred over failing
// the whole file.
func ParseAmount(amountStr string) decimal.Decimal {
	cleaned := amountNoise.ReplaceAllString(amountStr, "")

	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.WithField("value", amountStr).Debug("Unparsable amount, defaulting to zero")
		return decimal.Zero
	}

	if negative {
		return amount.Neg()
	}
	return amount
}

// FormatKES formats an amount for display as Kenyan Shillings with thousands
// separators and two decimal places, e.g. "KES 1,234.50". The sign is dropped;
// callers decide how to present direction.
func FormatKES(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return "KES " + grouped.String() + fracPart
}
