// Package main provides the entry point for the calibrate CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &sumOptions{}
	rootCmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Trebuchet calibration checksum",
		Long: `Computes the calibration checksum of a document: for every line the first and last
digit (numerals or spelled-out names one..nine) form a two-digit value, and the values are summed.

Without a subcommand it behaves like "calibrate sum".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSum(cmd, opts)
		},
	}
	addSumFlags(rootCmd, opts)

	rootCmd.AddCommand(newSumCmd())
	rootCmd.AddCommand(newLineCmd())
	rootCmd.AddCommand(newCheckReportCmd())
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
