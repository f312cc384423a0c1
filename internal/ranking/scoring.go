// Package ranking scores candidate records against a job description and
// produces the ranked candidate table.
package ranking

import "strings"

// Weights for the composite score. The skill component multiplies a raw
// match count, not a fraction, so the total is not bounded to [0,1]; a
// candidate matching many required skills can out-score pure text similarity.
const (
	similarityWeight   = 0.6
	keywordWeight      = 0.2
	skillMatchWeight   = 0.2
	maxVocabularyTerms = 5000
)

// keywordCoverage returns the fraction of keywords that occur anywhere in
// text as a case-insensitive substring. An empty keyword list scores 0.0.
func keywordCoverage(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0.0
	}

	lower := strings.ToLower(text)
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			matches++
		}
	}

	return float64(matches) / float64(len(keywords))
}

// skillMatchCount counts how many required skills are present in the
// candidate's skill set, case-insensitive. An empty required list scores 0.
func skillMatchCount(candidateSkills, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 0
	}

	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[strings.ToLower(skill)] = true
	}

	requiredSet := make(map[string]bool, len(requiredSkills))
	for _, skill := range requiredSkills {
		requiredSet[strings.ToLower(skill)] = true
	}

	matches := 0
	for skill := range requiredSet {
		if candidateSet[skill] {
			matches++
		}
	}

	return matches
}
