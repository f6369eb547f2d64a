// Package main provides the entry point for the Interview Bot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "AI-powered mock interview practice",
	Long:  "Interview Bot runs mock technical and behavioral interviews: it generates role-specific questions, scores and critiques your answers, and produces a final report with study resources.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
