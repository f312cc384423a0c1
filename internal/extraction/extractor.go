// Package extraction converts raw resume documents (PDF, DOCX or plain text)
// into plain text. Extraction never fails from the caller's point of view:
// corrupt or unreadable documents degrade to an empty string so downstream
// parsing and ranking stay total.
package extraction

import (
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text extracts plain text from the document bytes. The extraction strategy
// is selected by the file name's extension (case-insensitive): .pdf and .docx
// get format-aware parsing, anything else is decoded as UTF-8 with invalid
// byte sequences dropped.
//
// The bytes are staged through a temp file for the format parsers; the file
// is removed on every exit path.
func Text(fileName string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	tmp, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		return ""
	}
	tmpPath := tmp.Name()
	defer func() {
		// Removal failure is suppressed: the staged content is no longer needed.
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return ""
	}
	if err := tmp.Close(); err != nil {
		return ""
	}

	switch ext {
	case ".pdf":
		return extractPDF(tmpPath)
	case ".docx":
		return extractDocx(tmpPath)
	default:
		return extractPlainText(tmpPath)
	}
}

// extractPDF concatenates page text in page order. Pages that fail to parse
// are skipped rather than aborting the document. The parser can panic on
// malformed files, so the extraction contract (degrade to empty, never raise)
// is enforced with a recover.
func extractPDF(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()
	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPages := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String()
}

var xmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// extractDocx returns the paragraph text of a DOCX document, one paragraph
// per line in document order.
func extractDocx(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return ""
	}
	defer doc.Close()

	// GetContent returns the raw document.xml body; paragraphs are w:p
	// elements. Split on paragraph boundaries, then strip the remaining
	// markup from each paragraph.
	content := doc.Editable().GetContent()
	paragraphs := strings.Split(content, "</w:p>")

	lines := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		text := xmlTagPattern.ReplaceAllString(paragraph, "")
		text = html.UnescapeString(text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, text)
	}

	return strings.Join(lines, "\n")
}

// extractPlainText decodes the file as UTF-8, dropping undecodable byte
// sequences instead of failing.
func extractPlainText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(string(data), "")
}
