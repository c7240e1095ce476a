package metrics

import (
	"testing"
	"time"

	"pesalens/mpesa-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(amount string, kind models.TransactionKind, date time.Time) models.Transaction {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return models.Transaction{Amount: d, Kind: kind, Date: date}
}

func TestCompute(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	m := Compute([]models.Transaction{
		tx("1000", models.KindCredit, jan1),
		tx("-300", models.KindDebit, jan2),
	})

	assert.True(t, decimal.NewFromInt(1000).Equal(m.TotalRevenue))
	assert.True(t, decimal.NewFromInt(300).Equal(m.TotalExpenses))
	assert.True(t, decimal.NewFromInt(700).Equal(m.NetProfit))
	assert.Equal(t, 2, m.TransactionCount)
	// margin 0.7 maps to 120, clamped to 100
	assert.Equal(t, 100, m.HealthScore)
	assert.Equal(t, jan1, m.PeriodStart)
	assert.Equal(t, jan2, m.PeriodEnd)
}

func TestComputeHealthScore(t *testing.T) {
	tests := []struct {
		name     string
		txs      []models.Transaction
		expected int
	}{
		{
			"Break even scores 50",
			[]models.Transaction{
				tx("500", models.KindCredit, time.Time{}),
				tx("-500", models.KindDebit, time.Time{}),
			},
			50,
		},
		{
			"All profit saturates at 100",
			[]models.Transaction{tx("1000", models.KindCredit, time.Time{})},
			100,
		},
		{
			"Heavy losses saturate at 0",
			[]models.Transaction{
				tx("100", models.KindCredit, time.Time{}),
				tx("-5000", models.KindDebit, time.Time{}),
			},
			0,
		},
		{
			"No revenue means zero margin",
			[]models.Transaction{tx("-400", models.KindDebit, time.Time{})},
			50,
		},
		{
			"Small positive margin",
			[]models.Transaction{
				tx("1000", models.KindCredit, time.Time{}),
				tx("-900", models.KindDebit, time.Time{}),
			},
			60,
		},
		{
			"Empty sequence",
			nil,
			50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Compute(tc.txs).HealthScore)
		})
	}
}

func TestComputePeriod(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	mar5 := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	feb2 := time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)

	m := Compute([]models.Transaction{
		tx("1", models.KindCredit, mar5),
		tx("1", models.KindCredit, jan1),
		tx("1", models.KindCredit, feb2),
	})

	assert.Equal(t, jan1, m.PeriodStart)
	assert.Equal(t, mar5, m.PeriodEnd)
}

// With no transactions the date range is degenerate: both bounds are zero
// times.
func TestComputeDegeneratePeriod(t *testing.T) {
	m := Compute(nil)

	assert.True(t, m.PeriodStart.IsZero())
	assert.True(t, m.PeriodEnd.IsZero())
	assert.Equal(t, 0, m.TransactionCount)
	assert.True(t, m.TotalRevenue.IsZero())
	assert.True(t, m.TotalExpenses.IsZero())
	assert.True(t, m.NetProfit.IsZero())
}

// Transactions without a date leave the range untouched but still count in
// the totals.
func TestComputeSkipsZeroDatesInPeriod(t *testing.T) {
	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	m := Compute([]models.Transaction{
		tx("100", models.KindCredit, time.Time{}),
		tx("200", models.KindCredit, jan1),
	})

	assert.Equal(t, jan1, m.PeriodStart)
	assert.Equal(t, jan1, m.PeriodEnd)
	assert.True(t, decimal.NewFromInt(300).Equal(m.TotalRevenue))
}
