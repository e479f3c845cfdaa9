// Package cmd wires the consolidador CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "consolidador",
	Short: "Consolidates branch cash statements and inventories into daily CSV datasets",
	Long: `consolidador scans the per-agency intake folders for bank statements and
cash inventories (XLSX, legacy XLS and PDF), verifies they belong to the bank,
extracts their movements and inventory lines, and appends them to the day's
consolidated BRITIMP datasets. Processed sources are archived per agency.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
