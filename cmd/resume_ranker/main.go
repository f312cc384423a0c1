// Package main provides the resume_ranker CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_ranker",
	Short: "Parse resumes and rank candidates against a job description",
	Long:  "Resume Ranker extracts structured fields from PDF/DOCX/TXT resumes and ranks candidates against a job description using blended TF-IDF similarity, keyword coverage and required-skill matching.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
