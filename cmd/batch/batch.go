// Package batch handles directory-level conversion of CSV exports
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pesalens/mpesa-csv/cmd/root"
	"pesalens/mpesa-csv/internal/common"
	"pesalens/mpesa-csv/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert all CSV exports in a directory",
	Long: `Convert every CSV file in a directory to the canonical transaction
format. Files that fail to parse are skipped with a warning.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory containing CSV exports")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for converted files")
}

func batchFunc(cmd *cobra.Command, args []string) {
	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Both --input-dir and --output-dir are required")
	}

	processed, err := Convert(inputDir, outputDir)
	if err != nil {
		root.Log.Fatalf("Batch conversion failed: %v", err)
	}
	root.Log.Infof("Batch conversion completed, %d file(s) converted", processed)
}

// Convert converts every .csv file in inputDir to the canonical format under
// outputDir, returning the number of files converted. Individual files that
// fail to parse are skipped with a warning rather than aborting the batch.
func Convert(inputDir, outputDir string) (int, error) {
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	var processed int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}

		inputPath := filepath.Join(inputDir, entry.Name())
		outcome := pipeline.ParseFile(inputPath)
		if outcome.Failed() {
			root.Log.WithField("file", inputPath).Warnf("Skipping file: %s", outcome.Errors[0])
			continue
		}

		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		outputPath := filepath.Join(outputDir, baseName+"-normalized.csv")

		if err := common.WriteTransactionsToCSV(outcome.Transactions, outputPath); err != nil {
			root.Log.WithField("file", inputPath).Warnf("Failed to convert file, skipping: %v", err)
			continue
		}
		processed++
	}

	return processed, nil
}
