package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail_Found(t *testing.T) {
	text := "Jane Doe\nContact: jane.doe+work@example.co.uk, phone below"

	assert.Equal(t, "jane.doe+work@example.co.uk", ExtractEmail(text))
}

func TestExtractEmail_FirstMatchWins(t *testing.T) {
	text := "first@example.com and second@example.org"

	assert.Equal(t, "first@example.com", ExtractEmail(text))
}

func TestExtractEmail_NotFound(t *testing.T) {
	assert.Equal(t, "", ExtractEmail("no contact info in this resume"))
}

func TestExtractPhone_Found(t *testing.T) {
	text := "Call me at +1 555-123-4567 any time"

	assert.Equal(t, "+1 555-123-4567", ExtractPhone(text))
}

func TestExtractPhone_PlainDigits(t *testing.T) {
	assert.Equal(t, "08012345678", ExtractPhone("phone: 08012345678"))
}

func TestExtractPhone_TooShort(t *testing.T) {
	assert.Equal(t, "", ExtractPhone("room 1234, ext 567"))
}

func TestExtractName_FirstNameShapedLine(t *testing.T) {
	text := "\nJane Doe\njane@example.com\nSoftware Engineer with 10 years of experience in distributed systems"

	assert.Equal(t, "Jane Doe", ExtractName(text))
}

func TestExtractName_SkipsContactLines(t *testing.T) {
	text := "jane@example.com\nJane Doe"

	assert.Equal(t, "Jane Doe", ExtractName(text))
}

func TestExtractName_SkipsLongLines(t *testing.T) {
	// More than five tokens is treated as a sentence, not a name.
	text := "Senior Backend Engineer With Many Years Experience\nJane Doe"

	assert.Equal(t, "Jane Doe", ExtractName(text))
}

func TestExtractName_SkipsNonAlphabeticLines(t *testing.T) {
	text := "Resume 2024\n+1 555 123 4567\nJane Doe"

	assert.Equal(t, "Jane Doe", ExtractName(text))
}

func TestExtractName_NotFound(t *testing.T) {
	text := "123 Main St.\ncontact@example.com"

	assert.Equal(t, "", ExtractName(text))
}

func TestSplitCommaSeparated_TrimsAndDropsEmpty(t *testing.T) {
	parts := SplitCommaSeparated(" Python , SQL ,, Docker ,")

	assert.Equal(t, []string{"Python", "SQL", "Docker"}, parts)
}

func TestSplitCommaSeparated_EmptyInput(t *testing.T) {
	assert.Empty(t, SplitCommaSeparated("   "))
}
