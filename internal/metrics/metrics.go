// Package metrics aggregates a normalized transaction sequence into summary
// financial figures, including the bounded health score.
package metrics

import (
	"math"
	"time"

	"pesalens/mpesa-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Metrics summarizes a transaction sequence. It is derived on demand and
// never cached.
type Metrics struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TransactionCount int             `json:"transactionCount"`
	HealthScore      int             `json:"healthScore"`
	PeriodStart      time.Time       `json:"periodStart"`
	PeriodEnd        time.Time       `json:"periodEnd"`
}

// Compute derives summary metrics from a transaction sequence. It is pure and
// side-effect-free.
//
// Revenue sums credit amounts; expenses sum absolute debit amounts. The
// period is the min/max date over transactions carrying a date; with no
// transactions the range is degenerate (both zero times).
func Compute(transactions []models.Transaction) Metrics {
	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	var periodStart, periodEnd time.Time

	for _, tx := range transactions {
		if tx.IsCredit() {
			totalRevenue = totalRevenue.Add(tx.Amount)
		} else {
			totalExpenses = totalExpenses.Add(tx.Amount.Abs())
		}

		if tx.Date.IsZero() {
			continue
		}
		if periodStart.IsZero() || tx.Date.Before(periodStart) {
			periodStart = tx.Date
		}
		if periodEnd.IsZero() || tx.Date.After(periodEnd) {
			periodEnd = tx.Date
		}
	}

	netProfit := totalRevenue.Sub(totalExpenses)

	return Metrics{
		TotalRevenue:     totalRevenue,
		TotalExpenses:    totalExpenses,
		NetProfit:        netProfit,
		TransactionCount: len(transactions),
		HealthScore:      healthScore(totalRevenue, netProfit),
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
	}
}

// healthScore maps profit margin linearly onto [0,100], centered at 50 for
// break-even and saturating at the bounds. This is a display heuristic, not a
// statistical model.
func healthScore(totalRevenue, netProfit decimal.Decimal) int {
	margin := 0.0
	if totalRevenue.IsPositive() {
		margin, _ = netProfit.Div(totalRevenue).Float64()
	}

	score := 50 + margin*100
	score = math.Min(100, math.Max(0, score))
	return int(math.Round(score))
}
