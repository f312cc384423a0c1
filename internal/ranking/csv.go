package ranking

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jonathan/resume-ranker/internal/types"
)

// csvHeader is the column layout of the exported ranking table.
var csvHeader = []string{
	"File Name",
	"Name",
	"Email",
	"Percentage Matched",
	"Required Skill Match",
	"Total Score",
}

// WriteCSV serializes the ranked table to w in the flat export format
// consumed by spreadsheet tools. Rows are written in the order given, which
// for a freshly ranked table is descending by total score.
func WriteCSV(w io.Writer, rows []types.RankingRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.FileName,
			row.Name,
			row.Email,
			row.SimilarityPercentage,
			strconv.Itoa(row.RequiredSkillMatchCount),
			strconv.FormatFloat(row.TotalScore, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.FileName, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}
