// Package main provides the jobfit CLI: job-description analysis, match
// scoring, and resume tailoring plans.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "Job-description analysis and skill matching",
	Long:  "jobfit extracts skills, requirements, and experience level from job descriptions, scores candidate skills against them, and produces resume tailoring plans.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file with flag defaults")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
