package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ranker/internal/types"
)

func TestPrintRanking_ListsRowsInOrder(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRanking("run-123", []types.RankingRow{
		{FileName: "jane.pdf", Name: "Jane Doe", SimilarityPercentage: "80.0%", RequiredSkillMatchCount: 3, TotalScore: 1.08},
		{FileName: "anon.txt", SimilarityPercentage: "5.0%", TotalScore: 0.03},
	})

	out := buf.String()
	assert.Contains(t, out, "run-123")
	assert.Contains(t, out, "1. Jane Doe")
	// Rows without a detected name fall back to the file name.
	assert.Contains(t, out, "2. anon.txt")
	assert.Contains(t, out, "80.0%")
}

func TestPrintRanking_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRanking("run-456", nil)

	assert.Contains(t, buf.String(), "No candidates ranked.")
}

func TestPrintRecord_MissingFieldsShownAsNotDetected(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRecord(types.CandidateRecord{FileName: "blank.txt", Skills: []string{}})

	out := buf.String()
	assert.Contains(t, out, "blank.txt")
	assert.Contains(t, out, "not detected")
}
