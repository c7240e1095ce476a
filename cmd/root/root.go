// Package root contains the root command for the application
package root

import (
	"pesalens/mpesa-csv/internal/common"
	"pesalens/mpesa-csv/internal/config"
	"pesalens/mpesa-csv/internal/currencyutils"
	"pesalens/mpesa-csv/internal/pipeline"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "mpesa-csv",
		Short: "A CLI tool to normalize M-Pesa and Shopify CSV exports and compute financial metrics.",
		Long: `mpesa-csv detects the source format of a financial CSV export (M-Pesa
statement, till or paybill exports, Shopify orders), normalizes it into a
canonical transaction form and derives summary metrics including a financial
health score.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to mpesa-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to every package that logs.
			pipeline.SetLogger(Log)
			common.SetLogger(Log)
			currencyutils.SetLogger(Log)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file path")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file path")
}

// Execute runs the root command.
func Execute() error {
	return Cmd.Execute()
}
