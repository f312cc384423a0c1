package parsing

import (
	"sort"
	"strings"
)

// sectionHeaders is the fixed, ordered vocabulary of resume section headers
// the scanner looks for. Lookup is by lowest-index case-insensitive
// occurrence in the text.
var sectionHeaders = []string{
	"education",
	"work experience",
	"experience",
	"professional experience",
	"skills",
	"projects",
	"certifications",
}

// Section is one located resume section: its header term, the byte offset of
// the header occurrence, and the text from that offset up to the next located
// header (or end of text).
type Section struct {
	Header  string
	Start   int
	Content string
}

// ExtractSections locates every known section header in text and returns the
// found sections ordered by position. Headers absent from the text produce no
// section.
func ExtractSections(text string) []Section {
	lower := strings.ToLower(text)

	sections := make([]Section, 0, len(sectionHeaders))
	for _, header := range sectionHeaders {
		idx := strings.Index(lower, header)
		if idx == -1 {
			continue
		}
		sections = append(sections, Section{Header: header, Start: idx})
	}

	if len(sections) == 0 {
		return sections
	}

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Start < sections[j].Start
	})

	for i := range sections {
		end := len(text)
		if i+1 < len(sections) {
			end = sections[i+1].Start
		}
		sections[i].Content = strings.TrimSpace(text[sections[i].Start:end])
	}

	return sections
}

// EducationAndExperience maps located sections onto the record's education
// and experience fields. A header containing "education" fills education; a
// header containing "experience" fills experience. Sections are applied in
// text-position order, so when several experience-style headers are present
// the last one by position wins.
func EducationAndExperience(sections []Section) (education, experience string) {
	for _, section := range sections {
		if strings.Contains(section.Header, "education") {
			education = section.Content
		}
		if strings.Contains(section.Header, "experience") {
			experience = section.Content
		}
	}
	return education, experience
}
