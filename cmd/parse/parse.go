// Package parse handles single-file normalization to the canonical CSV format
package parse

import (
	"pesalens/mpesa-csv/cmd/root"
	"pesalens/mpesa-csv/internal/common"
	"pesalens/mpesa-csv/internal/pipeline"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Detect and normalize a CSV export",
	Long: `Detect the source format of a CSV export, normalize its rows into
canonical transactions and write them as CSV.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file specified, use --input")
	}
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("No output file specified, use --output")
	}

	outcome := pipeline.ParseFile(root.SharedFlags.Input)
	if outcome.Failed() {
		root.Log.Fatalf("Failed to parse %s: %s", root.SharedFlags.Input, outcome.Errors[0])
	}

	root.Log.Infof("Detected format: %s", outcome.FormatLabel)
	for _, warning := range outcome.Errors {
		root.Log.Warnf("Parse warning: %s", warning)
	}

	if err := common.WriteTransactionsToCSV(outcome.Transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing canonical CSV: %v", err)
	}

	root.Log.Infof("Wrote %d transactions from %d rows to %s",
		len(outcome.Transactions), outcome.TotalRows, root.SharedFlags.Output)
}
