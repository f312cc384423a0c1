package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/vocabulary"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a directory of resumes against a job description",
	Long:  "Parse every resume in a directory, rank the candidates against a job description from a text file or URL, and print the ranked table. Required skills default to the vocabulary terms found in the job description.",
	RunE:  runRank,
}

var (
	resumesDir     string
	jobFile        string
	jobURL         string
	skillsList     string
	keywordsList   string
	vocabFile      string
	csvFile        string
	configFile     string
	minScore       float64
	useBrowser     bool
	verboseDetails bool
)

func init() {
	rankCmd.Flags().StringVarP(&resumesDir, "resumes", "r", "", "Directory containing resume files (.pdf, .docx, anything else is read as text)")
	rankCmd.Flags().StringVarP(&jobFile, "job", "j", "", "Path to job description text file")
	rankCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch the job posting from")
	rankCmd.Flags().StringVarP(&skillsList, "skills", "s", "", "Comma-separated required skills (default: auto-suggested from the job description)")
	rankCmd.Flags().StringVarP(&keywordsList, "keywords", "k", "", "Comma-separated keywords for the coverage score")
	rankCmd.Flags().StringVar(&vocabFile, "vocab", "", "Path to a JSON skill vocabulary file (default: built-in vocabulary)")
	rankCmd.Flags().StringVarP(&csvFile, "csv", "o", "", "Write the full ranking table to this CSV file")
	rankCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to JSON config file; flags override its values")
	rankCmd.Flags().Float64Var(&minScore, "min-score", 0, "Hide rows below this total score (the CSV export keeps all rows)")
	rankCmd.Flags().BoolVar(&useBrowser, "use-browser", false, "Render the job posting in a headless browser when the HTTP fetch is too thin")
	rankCmd.Flags().BoolVarP(&verboseDetails, "verbose", "v", false, "Print parsed details per candidate")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	if err := mergeConfig(cmd); err != nil {
		return err
	}

	if resumesDir == "" {
		return fmt.Errorf("--resumes is required")
	}

	jobDescription, err := loadJobDescription(cmd)
	if err != nil {
		return err
	}

	vocab := vocabulary.Default()
	if vocabFile != "" {
		vocab, err = vocabulary.LoadFile(vocabFile)
		if err != nil {
			return err
		}
	}

	documents, err := readResumeDir(resumesDir)
	if err != nil {
		return err
	}

	requiredSkills := parsing.SplitCommaSeparated(skillsList)
	if len(requiredSkills) == 0 {
		// Mirror the job description into the required-skill list when the
		// recruiter didn't supply one.
		requiredSkills = vocab.Match(jobDescription)
	}

	opts := pipeline.RunOptions{
		JobDescription: jobDescription,
		Keywords:       parsing.SplitCommaSeparated(keywordsList),
		RequiredSkills: requiredSkills,
		Documents:      documents,
		Vocabulary:     vocab,
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid ranking inputs: %w", err)
	}

	result := pipeline.Run(cmd.Context(), opts)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRanking(result.RunID, ranking.FilterByMinScore(result.Rows, minScore))

	if verboseDetails {
		for _, record := range result.Records {
			printer.PrintRecord(record)
		}
	}

	if csvFile != "" {
		if err := writeCSVFile(csvFile, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Ranking exported to %s\n", csvFile)
	}

	return nil
}

// mergeConfig loads the optional config file and fills in every flag the user
// did not set explicitly.
func mergeConfig(cmd *cobra.Command) error {
	if configFile == "" {
		return nil
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !cmd.Flags().Changed("resumes") && cfg.Resumes != "" {
		resumesDir = cfg.Resumes
	}
	if !cmd.Flags().Changed("job") && cfg.Job != "" {
		jobFile = cfg.Job
	}
	if !cmd.Flags().Changed("job-url") && cfg.JobURL != "" {
		jobURL = cfg.JobURL
	}
	if !cmd.Flags().Changed("skills") && cfg.RequiredSkills != "" {
		skillsList = cfg.RequiredSkills
	}
	if !cmd.Flags().Changed("keywords") && cfg.Keywords != "" {
		keywordsList = cfg.Keywords
	}
	if !cmd.Flags().Changed("vocab") && cfg.Vocabulary != "" {
		vocabFile = cfg.Vocabulary
	}
	if !cmd.Flags().Changed("csv") && cfg.CSV != "" {
		csvFile = cfg.CSV
	}
	if !cmd.Flags().Changed("min-score") && cfg.MinScore > 0 {
		minScore = cfg.MinScore
	}
	if !cmd.Flags().Changed("use-browser") && cfg.UseBrowser {
		useBrowser = true
	}
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		verboseDetails = true
	}

	return nil
}

// loadJobDescription ingests the job description from either a text file or
// a URL; exactly one source must be provided.
func loadJobDescription(cmd *cobra.Command) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		text, err := ingestion.FromFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to ingest job description: %w", err)
		}
		return text, nil
	}

	text, err := ingestion.FromURL(cmd.Context(), jobURL, useBrowser, verboseDetails)
	if err != nil {
		return "", fmt.Errorf("failed to ingest job posting from URL: %w", err)
	}
	return text, nil
}

// readResumeDir loads every regular file in dir as one resume document.
func readResumeDir(dir string) ([]pipeline.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resumes directory %s: %w", dir, err)
	}

	documents := make([]pipeline.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read resume %s: %w", entry.Name(), err)
		}
		documents = append(documents, pipeline.Document{FileName: entry.Name(), Data: data})
	}

	if len(documents) == 0 {
		return nil, fmt.Errorf("no resume files found in %s", dir)
	}

	return documents, nil
}

// writeCSVFile exports the full, unfiltered ranking table.
func writeCSVFile(path string, result *pipeline.RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := ranking.WriteCSV(f, result.Rows); err != nil {
		return err
	}

	return nil
}
