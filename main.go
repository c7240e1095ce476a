package main

import (
	"fmt"
	"os"

	"pesalens/mpesa-csv/cmd/analyze"
	"pesalens/mpesa-csv/cmd/batch"
	"pesalens/mpesa-csv/cmd/parse"
	"pesalens/mpesa-csv/cmd/root"
	"pesalens/mpesa-csv/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
