// Package main provides the entry point for the contracts API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contracts_api",
	Short: "Domain contract registry HTTP API and tooling",
	Long:  "Serves the tenant-scoped records API backed by the domain contract registry, and provides offline tooling for validating documents and exporting JSON Schemas.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
