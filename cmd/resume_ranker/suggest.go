package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/vocabulary"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest-skills",
	Short: "Suggest required skills from a job description",
	Long:  "Scan a job description from a text file or URL and print the vocabulary skills it mentions, one comma-separated line suitable for the rank command's --skills flag.",
	RunE:  runSuggest,
}

var (
	suggestJobFile   string
	suggestJobURL    string
	suggestVocabFile string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestJobFile, "job", "j", "", "Path to job description text file")
	suggestCmd.Flags().StringVarP(&suggestJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	suggestCmd.Flags().StringVar(&suggestVocabFile, "vocab", "", "Path to a JSON skill vocabulary file (default: built-in vocabulary)")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if suggestJobFile == "" && suggestJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if suggestJobFile != "" && suggestJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	vocab := vocabulary.Default()
	if suggestVocabFile != "" {
		loaded, err := vocabulary.LoadFile(suggestVocabFile)
		if err != nil {
			return err
		}
		vocab = loaded
	}

	var text string
	var err error
	if suggestJobFile != "" {
		text, err = ingestion.FromFile(suggestJobFile)
	} else {
		text, err = ingestion.FromURL(cmd.Context(), suggestJobURL, false, false)
	}
	if err != nil {
		return fmt.Errorf("failed to ingest job description: %w", err)
	}

	skills := vocab.Match(text)
	if len(skills) == 0 {
		fmt.Fprintln(os.Stdout, "No vocabulary skills found in the job description.")
		return nil
	}

	fmt.Fprintln(os.Stdout, strings.Join(skills, ", "))
	return nil
}
