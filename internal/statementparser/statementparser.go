// Package statementparser normalizes M-Pesa statement and till export rows
// into canonical transactions. The two exports share their column layout apart
// from the leading receipt/initiation column, so one strategy covers both.
package statementparser

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

// Normalize maps statement/till rows to canonical transactions.
//
// The amount is paid-in when positive, otherwise the negated withdrawn value;
// kind follows the sign. Rows with a zero amount and an empty description are
// ledger noise (summary lines, headers repeated mid-file) and are dropped.
// An unparsable or missing completion time falls back to now.
func Normalize(rows []models.RawRow, headers []string, now time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		paidIn := currencyutils.ParseAmount(textutils.FieldByKeyword(row, headers, "paid in"))
		withdrawn := currencyutils.ParseAmount(textutils.FieldByKeyword(row, headers, "withdrawn"))

		amount := paidIn
		if !paidIn.IsPositive() {
			amount = withdrawn.Neg()
		}

		description := textutils.FieldByKeyword(row, headers, "details")
		if amount.IsZero() && description == "" {
			continue
		}

		dateStr := textutils.FieldByKeyword(row, headers, "completion time")
		if dateStr == "" {
			dateStr = textutils.FieldByKeyword(row, headers, "date")
		}

		kind := models.KindCredit
		if amount.IsNegative() {
			kind = models.KindDebit
		}

		receipt := textutils.FieldByKeyword(row, headers, "receipt")
		id := receipt
		if id == "" {
			id = fmt.Sprintf("txn-%d", i)
		}

		tx := models.Transaction{
			ID:          id,
			Date:        dateutils.ParseDateOr(dateStr, now),
			Description: description,
			Amount:      amount,
			Kind:        kind,
			Reference:   receipt,
			Raw:         row,
		}

		if bal := currencyutils.ParseAmount(textutils.FieldByKeyword(row, headers, "balance")); !bal.IsZero() {
			tx.Balance = &bal
		}

		transactions = append(transactions, tx)
	}

	log.WithField("count", len(transactions)).Debug("Normalized statement rows")
	return transactions
}
