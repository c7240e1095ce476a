// Package genericparser is the fallback strategy for unrecognized export
// formats. It keeps every row and guesses the amount, date and description
// columns by keyword, so even an unknown export yields something reviewable.
package genericparser

import (
	"fmt"
	"time"

	"pesalens/mpesa-csv/internal/currencyutils"
	"pesalens/mpesa-csv/internal/dateutils"
	"pesalens/mpesa-csv/internal/models"
	"pesalens/mpesa-csv/internal/textutils"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Normalize maps rows of an unrecognized format to canonical transactions.
// No rows are filtered; identities are positional since nothing in the input
// is known to be a stable reference.
func Normalize(rows []models.RawRow, headers []string, now time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		amountStr := textutils.FieldByKeyword(row, headers, "amount")
		if amountStr == "" {
			amountStr = textutils.FieldByKeyword(row, headers, "total")
		}
		if amountStr == "" {
			amountStr = textutils.FieldByKeyword(row, headers, "value")
		}
		amount := currencyutils.ParseAmount(amountStr)

		dateStr := textutils.FieldByKeyword(row, headers, "date")
		if dateStr == "" {
			dateStr = textutils.FieldByKeyword(row, headers, "time")
		}

		description := textutils.FieldByKeyword(row, headers, "description")
		if description == "" {
			description = textutils.FieldByKeyword(row, headers, "details")
		}
		if description == "" {
			description = textutils.FieldByKeyword(row, headers, "narration")
		}
		if description == "" && len(headers) > 0 {
			description = row[headers[0]]
		}

		kind := models.KindCredit
		if amount.IsNegative() {
			kind = models.KindDebit
		}

		transactions = append(transactions, models.Transaction{
			ID:          fmt.Sprintf("row-%d", i),
			Date:        dateutils.ParseDateOr(dateStr, now),
			Description: description,
			Amount:      amount,
			Kind:        kind,
			Raw:         row,
		})
	}

	log.WithField("count", len(transactions)).Debug("Normalized rows with generic fallback")
	return transactions
}
