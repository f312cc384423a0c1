package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSections_EducationThenWorkExperience(t *testing.T) {
	text := "Education\nBA Economics\nWork Experience\n5 years as analyst"

	sections := ExtractSections(text)

	require.GreaterOrEqual(t, len(sections), 2)
	assert.Equal(t, "education", sections[0].Header)
	assert.Equal(t, "Education\nBA Economics", sections[0].Content)

	education, experience := EducationAndExperience(sections)
	assert.Equal(t, "Education\nBA Economics", education)
	assert.Contains(t, experience, "5 years as analyst")
}

func TestExtractSections_NoHeaders(t *testing.T) {
	sections := ExtractSections("just a paragraph about nothing in particular")

	assert.Empty(t, sections)
}

func TestExtractSections_SortedByPosition(t *testing.T) {
	text := "Skills\nGo, SQL\nEducation\nBSc CS"

	sections := ExtractSections(text)

	require.Len(t, sections, 2)
	assert.Equal(t, "skills", sections[0].Header)
	assert.Equal(t, "education", sections[1].Header)
	assert.Equal(t, "Skills\nGo, SQL", sections[0].Content)
	assert.Equal(t, "BSc CS", sections[1].Content[len(sections[1].Content)-6:])
}

func TestExtractSections_CaseInsensitiveHeaders(t *testing.T) {
	sections := ExtractSections("EDUCATION\nMSc\nSKILLS\nGo")

	require.Len(t, sections, 2)
	assert.Equal(t, "education", sections[0].Header)
	assert.Equal(t, "skills", sections[1].Header)
}

func TestEducationAndExperience_LastExperienceHeaderByPositionWins(t *testing.T) {
	// "work experience" also contains "experience" as a substring, so both
	// headers are located; the experience field must come from whichever
	// match sorts last by text position.
	text := "Work Experience\n5 years at Initech\nEducation\nBSc"

	sections := ExtractSections(text)
	_, experience := EducationAndExperience(sections)

	// The inner "experience" match starts 5 bytes into "Work Experience" and
	// sorts after it, so the field drops the "Work " prefix.
	assert.Contains(t, experience, "5 years at Initech")
	assert.NotContains(t, experience, "Work ")
}

func TestEducationAndExperience_MissingSectionsAreEmpty(t *testing.T) {
	education, experience := EducationAndExperience(ExtractSections("Skills\nGo"))

	assert.Equal(t, "", education)
	assert.Equal(t, "", experience)
}
