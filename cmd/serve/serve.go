// Package serve starts the HTTP API server
package serve

import (
	"pesalens/mpesa-csv/cmd/root"
	"pesalens/mpesa-csv/internal/api"

	"github.com/spf13/cobra"
)

var port int

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ingestion pipeline over HTTP",
	Long: `Start a JSON API server exposing the ingestion pipeline: upload a CSV
export and receive the detected format, normalized transactions and derived
metrics.`,
	Run: serveFunc,
}

func init() {
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	if port != 0 {
		cfg.Server.Port = port
	}

	server := api.New(cfg, root.Log)
	if err := server.Listen(); err != nil {
		root.Log.Fatalf("HTTP server stopped: %v", err)
	}
}
