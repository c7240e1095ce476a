// Package shopifyparser normalizes Shopify order export rows into canonical
// transactions. Orders are revenue-only: every transaction is a credit, and
// unpaid orders contribute a zero amount.
package shopifyparser

import (
	"fmt"
	"strings"
	"time"

	"pesalens/mpesa-csv/internal/currencyutils"
	"pesalens/mpesa-csv/internal/dateutils"
	"pesalens/mpesa-csv/internal/models"
	"pesalens/mpesa-csv/internal/textutils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Normalize maps Shopify order rows to canonical transactions.
//
// The order total counts only when the financial status is paid or
// partially_paid. Rows without an order name or customer email carry no
// usable identity and are dropped.
func Normalize(rows []models.RawRow, headers []string, now time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		name := textutils.FieldByKeyword(row, headers, "name")
		email := textutils.FieldByKeyword(row, headers, "email")
		if name == "" && email == "" {
			continue
		}

		status := strings.ToLower(textutils.FieldByKeyword(row, headers, "financial status"))
		amount := currencyutils.ParseAmount(textutils.FieldByKeyword(row, headers, "total"))
		if status != "paid" && status != "partially_paid" {
			amount = decimal.Zero
		}

		dateStr := textutils.FieldByKeyword(row, headers, "paid at")
		if dateStr == "" {
			dateStr = textutils.FieldByKeyword(row, headers, "created at")
		}

		id := name
		if id == "" {
			id = fmt.Sprintf("order-%d", i)
		}

		transactions = append(transactions, models.Transaction{
			ID:          id,
			Date:        dateutils.ParseDateOr(dateStr, now),
			Description: fmt.Sprintf("Order %s - %s", name, email),
			Amount:      amount,
			Kind:        models.KindCredit,
			Reference:   name,
			Raw:         row,
		})
	}

	log.WithField("count", len(transactions)).Debug("Normalized Shopify order rows")
	return transactions
}
