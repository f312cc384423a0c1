// Package vocabulary provides the curated skill vocabulary and substring
// matching over it, shared by resume parsing and job-description skill
// suggestion.
package vocabulary

import (
	"sort"
	"strings"
)

// Vocabulary is an ordered list of recognized technology/skill terms.
// It is injected wherever skill detection happens so callers can swap the
// default list for their own without touching matching logic.
type Vocabulary []string

// Default returns the built-in skill vocabulary.
func Default() Vocabulary {
	return Vocabulary{
		"python", "java", "c++", "c", "javascript", "typescript", "html", "css",
		"react", "angular", "django", "flask", "node", "node.js",
		"sql", "mysql", "postgresql", "mongodb",
		"machine learning", "deep learning", "data science",
		"nlp", "natural language processing",
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
		"git", "docker", "kubernetes", "aws", "azure", "gcp",
	}
}

// Match returns the sorted set of vocabulary terms found in text.
// Matching is case-insensitive substring containment: multi-word terms such
// as "machine learning" must appear contiguously, not token-wise.
func (v Vocabulary) Match(text string) []string {
	lower := strings.ToLower(text)

	found := make(map[string]bool)
	for _, term := range v {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			found[strings.ToLower(term)] = true
		}
	}

	matches := make([]string, 0, len(found))
	for term := range found {
		matches = append(matches, term)
	}
	sort.Strings(matches)

	return matches
}
