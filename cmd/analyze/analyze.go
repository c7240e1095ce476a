// Package analyze handles metrics computation over a CSV export
package analyze

import (
	"fmt"
	"os"

	"pesalens/mpesa-csv/cmd/root"
	"pesalens/mpesa-csv/internal/currencyutils"
	"pesalens/mpesa-csv/internal/logging"
	"pesalens/mpesa-csv/internal/metrics"
	"pesalens/mpesa-csv/internal/pipeline"
	"pesalens/mpesa-csv/internal/report"

	"github.com/spf13/cobra"
)

var reportFormat string

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute financial metrics for a CSV export",
	Long: `Parse a CSV export, normalize it and print a metrics report with
revenue, expenses, net profit and the financial health score.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&reportFormat, "format", "f", "json", "Report format: json or yaml")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}

	outcome := pipeline.ParseFile(root.SharedFlags.Input)
	if outcome.Failed() {
		root.Log.Fatalf("Failed to parse %s: %s", root.SharedFlags.Input, outcome.Errors[0])
	}

	m := metrics.Compute(outcome.Transactions)
	summary := report.Summarize(outcome, m)

	root.Log.Infof("Revenue %s, expenses %s, net %s, health score %d",
		currencyutils.FormatKES(m.TotalRevenue),
		currencyutils.FormatKES(m.TotalExpenses),
		currencyutils.FormatKES(m.NetProfit),
		m.HealthScore)

	generator := report.NewGenerator(logging.NewLogrusAdapterFromLogger(root.Log))
	out, err := generator.Generate(summary, reportFormat)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}

	if root.SharedFlags.Output != "" {
		if err := os.WriteFile(root.SharedFlags.Output, out, 0600); err != nil {
			root.Log.Fatalf("Error writing report file: %v", err)
		}
		root.Log.Infof("Wrote %s report to %s", reportFormat, root.SharedFlags.Output)
		return
	}

	fmt.Println(string(out))
}
