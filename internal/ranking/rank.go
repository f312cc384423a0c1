package ranking

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Request carries the inputs of one ranking run. Every field may be empty:
// an empty candidate batch yields an empty table, empty keyword and
// required-skill lists score zero for their components, and an empty job
// description degrades the similarity component rather than failing.
type Request struct {
	JobDescription string
	Keywords       []string
	RequiredSkills []string
	Candidates     []types.CandidateRecord
}

// Rank computes one RankingRow per candidate and returns the rows sorted
// descending by total score. The sort is stable, so ties keep the order the
// candidates were supplied in. Scores are corpus-relative and only comparable
// within a single run.
func Rank(req Request) []types.RankingRow {
	candidateTexts := make([]string, len(req.Candidates))
	for i, candidate := range req.Candidates {
		candidateTexts[i] = candidate.RawText
	}

	similarityScores := similarities(req.JobDescription, candidateTexts)

	rows := make([]types.RankingRow, len(req.Candidates))
	for i, candidate := range req.Candidates {
		similarity := similarityScores[i]
		coverage := keywordCoverage(candidate.RawText, req.Keywords)
		skillMatches := skillMatchCount(candidate.Skills, req.RequiredSkills)

		total := similarityWeight*similarity +
			keywordWeight*coverage +
			skillMatchWeight*float64(skillMatches)

		rows[i] = types.RankingRow{
			FileName:                candidate.FileName,
			Name:                    candidate.Name,
			Email:                   candidate.Email,
			SimilarityPercentage:    fmt.Sprintf("%.1f%%", similarity*100),
			RequiredSkillMatchCount: skillMatches,
			TotalScore:              total,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalScore > rows[j].TotalScore
	})

	return rows
}

// FilterByMinScore returns the rows whose total score is at least minScore,
// preserving order. Used for display; exports keep the full table.
func FilterByMinScore(rows []types.RankingRow, minScore float64) []types.RankingRow {
	filtered := make([]types.RankingRow, 0, len(rows))
	for _, row := range rows {
		if row.TotalScore >= minScore {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
