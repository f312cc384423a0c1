// Package types defines the shared data structures for resume parsing and candidate ranking.
package types

// CandidateRecord holds everything extracted from one uploaded resume.
// Every field is always populated: undetected values are empty strings and
// the skill list is an empty slice, never a missing field. This keeps the
// ranking stage total: it never fails on a partially parsed resume.
type CandidateRecord struct {
	FileName   string   `json:"file_name"`
	RawText    string   `json:"raw_text"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
	Experience string   `json:"experience"`
}

// RankingRow is one row of the ranked candidate table, derived from a
// CandidateRecord during a ranking run and never persisted.
type RankingRow struct {
	FileName string `json:"file_name"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	// SimilarityPercentage is the TF-IDF cosine similarity against the job
	// description, formatted with one decimal digit and a trailing "%".
	SimilarityPercentage string `json:"similarity_percentage"`
	// RequiredSkillMatchCount is how many required skills appear in the
	// candidate's extracted skill set (case-insensitive).
	RequiredSkillMatchCount int `json:"required_skill_match_count"`
	// TotalScore blends similarity, keyword coverage and skill matches.
	// The skill component is a raw count, so the score is not bounded to [0,1].
	TotalScore float64 `json:"total_score"`
}
