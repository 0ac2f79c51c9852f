// Command params runs the request parameters demo API.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "params",
		Short:        "Request parameters demo API",
		Long:         `HTTP service showing query, path and body parameter binding and validation.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		serveCommand(),
		routesCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
