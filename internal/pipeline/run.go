package pipeline

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/types"
	"github.com/jonathan/resume-ranker/internal/vocabulary"
)

// RunOptions configures one ranking run.
type RunOptions struct {
	// JobDescription is the text candidates are ranked against. The engine
	// itself tolerates an empty string (similarity degrades to zero); the
	// required tag is enforced only at the caller's boundary via Validate.
	JobDescription string `validate:"required"`
	// Keywords is an optional free-form keyword list for the coverage score.
	Keywords []string
	// RequiredSkills are matched case-insensitively against extracted skills.
	RequiredSkills []string
	// Documents is the resume batch; one CandidateRecord is built per entry.
	Documents []Document `validate:"required,min=1"`
	// Vocabulary overrides the default skill vocabulary when non-nil.
	Vocabulary vocabulary.Vocabulary
}

// Validate checks the options a caller-facing surface should enforce before
// starting a run: a job description and at least one resume.
func (o *RunOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// RunResult is the outcome of one ranking run.
type RunResult struct {
	// RunID identifies the run in logs and verbose output. Scores from
	// different run IDs are not comparable: the TF-IDF vocabulary is rebuilt
	// from each run's batch.
	RunID   string
	Records []types.CandidateRecord
	Rows    []types.RankingRow
}

// Run parses every document into a candidate record and ranks the batch
// against the job description. Degenerate inputs (no documents, empty job
// description, empty keyword or skill lists) produce empty or zero-valued
// output rather than an error.
func Run(ctx context.Context, opts RunOptions) *RunResult {
	vocab := opts.Vocabulary
	if vocab == nil {
		vocab = vocabulary.Default()
	}

	records := BuildRecords(ctx, opts.Documents, vocab)

	rows := ranking.Rank(ranking.Request{
		JobDescription: opts.JobDescription,
		Keywords:       opts.Keywords,
		RequiredSkills: opts.RequiredSkills,
		Candidates:     records,
	})

	return &RunResult{
		RunID:   uuid.NewString(),
		Records: records,
		Rows:    rows,
	}
}
