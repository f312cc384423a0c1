package ranking

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	rows := []types.RankingRow{
		{
			FileName:                "jane.pdf",
			Name:                    "Jane Doe",
			Email:                   "jane@example.com",
			SimilarityPercentage:    "42.5%",
			RequiredSkillMatchCount: 2,
			TotalScore:              0.655,
		},
		{
			FileName:             "anon.txt",
			SimilarityPercentage: "0.0%",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"File Name", "Name", "Email", "Percentage Matched", "Required Skill Match", "Total Score"}, records[0])
	assert.Equal(t, []string{"jane.pdf", "Jane Doe", "jane@example.com", "42.5%", "2", "0.655"}, records[1])
	assert.Equal(t, []string{"anon.txt", "", "", "0.0%", "0", "0"}, records[2])
}

func TestWriteCSV_EmptyTableWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteCSV_FieldsWithCommasAreQuoted(t *testing.T) {
	rows := []types.RankingRow{
		{FileName: "x.txt", Name: "Doe, Jane", SimilarityPercentage: "1.0%"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Doe, Jane", records[1][1])
}
