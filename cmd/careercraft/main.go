// Package main provides the entry point for the CareerCraft ML service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careercraft",
	Short: "CareerCraft resume analysis service",
	Long:  "CareerCraft analyzes resumes, scores them for ATS compatibility, matches them against job descriptions and drafts cover letters, via REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
