package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/vocabulary"
)

func TestRun_RecordsAndRowsPerDocument(t *testing.T) {
	result := Run(context.Background(), RunOptions{
		JobDescription: "Looking for a Python developer with SQL and Docker experience",
		RequiredSkills: []string{"Python", "SQL", "Docker"},
		Documents: []Document{
			{FileName: "a.txt", Data: []byte("Experienced Python engineer, built SQL pipelines")},
			{FileName: "b.txt", Data: []byte("Marketing specialist, no technical background")},
		},
	})

	require.Len(t, result.Records, 2)
	require.Len(t, result.Rows, 2)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "a.txt", result.Rows[0].FileName)
}

func TestRun_EmptyDocumentBatch(t *testing.T) {
	result := Run(context.Background(), RunOptions{JobDescription: "any role"})

	assert.Empty(t, result.Records)
	assert.Empty(t, result.Rows)
}

func TestRun_CustomVocabulary(t *testing.T) {
	result := Run(context.Background(), RunOptions{
		JobDescription: "looking for an erlang developer",
		RequiredSkills: []string{"erlang"},
		Vocabulary:     vocabulary.Vocabulary{"erlang", "elixir"},
		Documents: []Document{
			{FileName: "a.txt", Data: []byte("ten years of Erlang")},
		},
	})

	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"erlang"}, result.Records[0].Skills)
	assert.Equal(t, 1, result.Rows[0].RequiredSkillMatchCount)
}

func TestRunOptions_ValidateRequiresJobDescription(t *testing.T) {
	opts := RunOptions{
		Documents: []Document{{FileName: "a.txt", Data: []byte("text")}},
	}

	assert.Error(t, opts.Validate())
}

func TestRunOptions_ValidateRequiresDocuments(t *testing.T) {
	opts := RunOptions{JobDescription: "a role"}

	assert.Error(t, opts.Validate())
}

func TestRunOptions_ValidateAccepted(t *testing.T) {
	opts := RunOptions{
		JobDescription: "a role",
		Documents:      []Document{{FileName: "a.txt", Data: []byte("text")}},
	}

	assert.NoError(t, opts.Validate())
}

func TestRun_DifferentRunIDsPerRun(t *testing.T) {
	opts := RunOptions{
		JobDescription: "a role",
		Documents:      []Document{{FileName: "a.txt", Data: []byte("text")}},
	}

	first := Run(context.Background(), opts)
	second := Run(context.Background(), opts)

	assert.NotEqual(t, first.RunID, second.RunID)
	// Scores are still deterministic across runs with identical inputs.
	assert.Equal(t, first.Rows, second.Rows)
}
