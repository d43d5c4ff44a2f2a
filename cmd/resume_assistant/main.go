// Package main provides the entry point for the Resume Improvement Assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_assistant",
	Short: "Resume Improvement Assistant",
	Long:  "Resume Improvement Assistant scores a resume against a job description: skill matching, keyword coverage, TF-IDF similarity, ATS scoring and an extractive summary.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
