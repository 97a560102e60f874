// Package main provides the entry point for the cv-builder static-site build tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cv_builder",
	Short:        "Build a self-contained CV website",
	Long:         "cv_builder merges career data and a color theme into an HTML template and writes a single self-contained HTML file.",
	Args:         cobra.NoArgs,
	RunE:         runBuild,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
