// Package paybillparser normalizes M-Pesa paybill export rows into canonical
// transactions. Paybill exports carry a single signed-agnostic amount column
// plus an explicit transaction-type column that decides direction.
package paybillparser

import (
	"fmt"
	"strings"
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

// debitKeywords in the transaction-type text mark money leaving the account.
var debitKeywords = []string{"debit", "payment", "withdraw"}

// Normalize maps paybill rows to canonical transactions.
//
// The amount column value is taken as-is and its sign flipped when the
// transaction-type text contains a debit keyword, so the stored amount is
// always negative for debits. Zero-amount rows are dropped.
func Normalize(rows []models.RawRow, headers []string, now time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		amount := currencyutils.ParseAmount(textutils.FieldByKeyword(row, headers, "amount"))
		if amount.IsZero() {
			continue
		}

		txType := strings.ToLower(textutils.FieldByKeyword(row, headers, "transaction type"))
		isDebit := false
		for _, kw := range debitKeywords {
			if strings.Contains(txType, kw) {
				isDebit = true
				break
			}
		}

		kind := models.KindCredit
		if isDebit {
			kind = models.KindDebit
			amount = amount.Abs().Neg()
		}

		description := textutils.FieldByKeyword(row, headers, "account")
		if description == "" {
			description = textutils.FieldByKeyword(row, headers, "details")
		}

		receipt := textutils.FieldByKeyword(row, headers, "receipt")
		id := receipt
		if id == "" {
			id = fmt.Sprintf("txn-%d", i)
		}

		transactions = append(transactions, models.Transaction{
			ID:          id,
			Date:        dateutils.ParseDateOr(textutils.FieldByKeyword(row, headers, "date"), now),
			Description: description,
			Amount:      amount,
			Kind:        kind,
			Reference:   receipt,
			Raw:         row,
		})
	}

	log.WithField("count", len(transactions)).Debug("Normalized paybill rows")
	return transactions
}
