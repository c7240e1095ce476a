package report

import (
	"encoding/json"
	"testing"
	"time"

	"pesalens/mpesa-csv/internal/logging"
	"pesalens/mpesa-csv/internal/metrics"
	"pesalens/mpesa-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleInputs() (*models.ParseOutcome, metrics.Metrics) {
	outcome := &models.ParseOutcome{
		Format:      "mpesa_statement",
		FormatLabel: "M-Pesa Statement",
		TotalRows:   3,
		Errors:      []string{"row 3: field count mismatch"},
	}
	m := metrics.Metrics{
		TotalRevenue:     decimal.NewFromInt(1000),
		TotalExpenses:    decimal.NewFromInt(300),
		NetProfit:        decimal.NewFromInt(700),
		TransactionCount: 2,
		HealthScore:      100,
		PeriodStart:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	return outcome, m
}

func TestSummarize(t *testing.T) {
	outcome, m := sampleInputs()
	s := Summarize(outcome, m)

	assert.Equal(t, "mpesa_statement", s.Format)
	assert.Equal(t, "M-Pesa Statement", s.FormatLabel)
	assert.Equal(t, 3, s.TotalRows)
	assert.Equal(t, 2, s.TotalTransactions)
	assert.Equal(t, "1000.00", s.TotalRevenue)
	assert.Equal(t, "300.00", s.TotalExpenses)
	assert.Equal(t, "700.00", s.NetProfit)
	assert.Equal(t, 100, s.HealthScore)
	assert.Equal(t, "2024-01-01T00:00:00Z", s.PeriodStart)
	assert.Equal(t, "2024-01-02T00:00:00Z", s.PeriodEnd)
	assert.Equal(t, []string{"row 3: field count mismatch"}, s.Warnings)
}

func TestSummarizeDegeneratePeriod(t *testing.T) {
	s := Summarize(&models.ParseOutcome{Format: "unknown"}, metrics.Compute(nil))

	assert.Empty(t, s.PeriodStart)
	assert.Empty(t, s.PeriodEnd)
	assert.Equal(t, "0.00", s.TotalRevenue)
	assert.Equal(t, 50, s.HealthScore)
}

func TestGenerateJSON(t *testing.T) {
	outcome, m := sampleInputs()
	gen := NewGenerator(logging.NewMockLogger())

	out, err := gen.Generate(Summarize(outcome, m), "json")
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "mpesa_statement", decoded.Format)
	assert.Equal(t, "700.00", decoded.NetProfit)
}

func TestGenerateYAML(t *testing.T) {
	outcome, m := sampleInputs()
	gen := NewGenerator(logging.NewMockLogger())

	out, err := gen.Generate(Summarize(outcome, m), "yaml")
	require.NoError(t, err)

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "M-Pesa Statement", decoded.FormatLabel)
	assert.Equal(t, 100, decoded.HealthScore)
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	gen := NewGenerator(nil)

	_, err := gen.Generate(Summary{}, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
