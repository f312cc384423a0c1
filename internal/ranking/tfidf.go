package ranking

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it into terms of at least two runes,
// dropping English stop words. Characters like '+', '#' and '.' count as
// word characters so terms such as "c++", "c#" and "node.js" survive intact.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) >= 2 && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// Vectorizer builds TF-IDF weighted term vectors over one document corpus.
// The vocabulary is corpus-relative: it is fitted fresh for every ranking run
// and must never be reused across runs, since adding or removing a document
// changes every other document's weights.
type Vectorizer struct {
	maxFeatures int
	columns     map[string]int
	idf         []float64
}

// NewVectorizer creates a vectorizer whose fitted vocabulary is capped at
// maxFeatures terms. When the corpus has more distinct terms than the cap,
// the most frequent ones across the whole corpus are kept.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Fit learns the vocabulary and inverse document frequencies from docs.
func (v *Vectorizer) Fit(docs []string) {
	termTotals := make(map[string]int)
	docFrequencies := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range tokenize(doc) {
			termTotals[term]++
			if !seen[term] {
				seen[term] = true
				docFrequencies[term]++
			}
		}
	}

	terms := make([]string, 0, len(termTotals))
	for term := range termTotals {
		terms = append(terms, term)
	}
	// Order by corpus frequency, ties alphabetically, so fitting is
	// deterministic for identical inputs.
	sort.Slice(terms, func(i, j int) bool {
		if termTotals[terms[i]] != termTotals[terms[j]] {
			return termTotals[terms[i]] > termTotals[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}

	totalDocs := len(docs)
	v.columns = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.columns[term] = i
		// Smoothed IDF: every term behaves as if seen in one extra document,
		// and the +1 keeps corpus-wide terms from vanishing entirely.
		v.idf[i] = math.Log(float64(1+totalDocs)/float64(1+docFrequencies[term])) + 1
	}
}

// Transform converts one document into its L2-normalized TF-IDF vector using
// the fitted vocabulary. Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range tokenize(doc) {
		if col, ok := v.columns[term]; ok {
			vec[col] += v.idf[col]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// cosineSimilarity returns the cosine of the angle between two term vectors;
// zero vectors yield 0.
func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// similarities fits a vectorizer over the job description plus every
// candidate text and returns each candidate's cosine similarity to the job
// description. An empty candidate list returns an empty slice.
func similarities(jobDescription string, candidateTexts []string) []float64 {
	scores := make([]float64, len(candidateTexts))
	if len(candidateTexts) == 0 {
		return scores
	}

	docs := make([]string, 0, len(candidateTexts)+1)
	docs = append(docs, jobDescription)
	docs = append(docs, candidateTexts...)

	vectorizer := NewVectorizer(maxVocabularyTerms)
	vectorizer.Fit(docs)

	jobVec := vectorizer.Transform(jobDescription)
	for i, text := range candidateTexts {
		scores[i] = cosineSimilarity(jobVec, vectorizer.Transform(text))
	}

	return scores
}
