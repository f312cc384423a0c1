package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_CaseInsensitive(t *testing.T) {
	vocab := Vocabulary{"python", "sql", "docker"}

	matches := vocab.Match("Experienced PYTHON engineer, built Sql pipelines")

	assert.Equal(t, []string{"python", "sql"}, matches)
}

func TestMatch_MultiWordTermIsContiguous(t *testing.T) {
	vocab := Vocabulary{"machine learning"}

	assert.Equal(t, []string{"machine learning"}, vocab.Match("applied machine learning at scale"))
	// Token-wise presence is not enough; the words must be adjacent.
	assert.Empty(t, vocab.Match("learning about machine tooling"))
}

func TestMatch_ResultsAreSorted(t *testing.T) {
	vocab := Vocabulary{"sql", "aws", "python"}

	matches := vocab.Match("python, sql and aws")

	assert.Equal(t, []string{"aws", "python", "sql"}, matches)
}

func TestMatch_NoMatches(t *testing.T) {
	matches := Default().Match("florist with a passion for arranging tulips")

	assert.Empty(t, matches)
}

func TestMatch_EmptyText(t *testing.T) {
	assert.Empty(t, Default().Match(""))
}

func TestDefault_ContainsCuratedTerms(t *testing.T) {
	vocab := Default()

	assert.Contains(t, vocab, "python")
	assert.Contains(t, vocab, "machine learning")
	assert.Contains(t, vocab, "kubernetes")
}
