// Package report renders a parse outcome and its metrics as a summary report.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"pesalens/mpesa-csv/internal/logging"
	"pesalens/mpesa-csv/internal/metrics"
	"pesalens/mpesa-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// Summary is the report payload: the figures a caller would persist or show
// on a dashboard for one ingested file.
type Summary struct {
	Format            string   `json:"format" yaml:"format"`
	FormatLabel       string   `json:"formatLabel" yaml:"format_label"`
	TotalRows         int      `json:"totalRows" yaml:"total_rows"`
	TotalTransactions int      `json:"totalTransactions" yaml:"total_transactions"`
	TotalRevenue      string   `json:"totalRevenue" yaml:"total_revenue"`
	TotalExpenses     string   `json:"totalExpenses" yaml:"total_expenses"`
	NetProfit         string   `json:"netProfit" yaml:"net_profit"`
	HealthScore       int      `json:"healthScore" yaml:"health_score"`
	PeriodStart       string   `json:"periodStart,omitempty" yaml:"period_start,omitempty"`
	PeriodEnd         string   `json:"periodEnd,omitempty" yaml:"period_end,omitempty"`
	Warnings          []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Generator renders summaries in the supported output formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator. A nil logger gets a default one.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Summarize builds the report payload from an outcome and its metrics.
func Summarize(outcome *models.ParseOutcome, m metrics.Metrics) Summary {
	s := Summary{
		Format:            outcome.Format,
		FormatLabel:       outcome.FormatLabel,
		TotalRows:         outcome.TotalRows,
		TotalTransactions: m.TransactionCount,
		TotalRevenue:      m.TotalRevenue.StringFixed(2),
		TotalExpenses:     m.TotalExpenses.StringFixed(2),
		NetProfit:         m.NetProfit.StringFixed(2),
		HealthScore:       m.HealthScore,
		Warnings:          outcome.Errors,
	}

	if !m.PeriodStart.IsZero() {
		s.PeriodStart = m.PeriodStart.Format(time.RFC3339)
	}
	if !m.PeriodEnd.IsZero() {
		s.PeriodEnd = m.PeriodEnd.Format(time.RFC3339)
	}

	return s
}

// Generate renders a summary in the requested format ("json" or "yaml").
func (g *Generator) Generate(summary Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(summary)
	case "yaml":
		return g.generateYAML(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(summary Summary) ([]byte, error) {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateYAML(summary Summary) ([]byte, error) {
	out, err := yaml.Marshal(summary)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
