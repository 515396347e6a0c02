package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dedalus-labs/context7-helper/internal/api"
	"github.com/dedalus-labs/context7-helper/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "context7-helper",
		Short: "CLI tool for looking up library documentation via Context7",
		Long: `Context7 Helper is a command-line tool for the Context7 documentation API.
Resolve library names to Context7-compatible IDs and fetch current documentation.`,
		Version: "0.1.0",
	}

	// Global flags
	var outputFormat string
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format: table, plain, json")

	client := api.NewClient(api.Config{
		APIKey: os.Getenv("CONTEXT7_API_KEY"),
	})

	rootCmd.AddCommand(cli.NewResolveCommand(client))
	rootCmd.AddCommand(cli.NewDocsCommand(client))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
