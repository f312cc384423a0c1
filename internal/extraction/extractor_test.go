package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_PlainTextPassthrough(t *testing.T) {
	content := "Jane Doe\njane@example.com\nSkills\nGo, SQL"

	assert.Equal(t, content, Text("resume.txt", []byte(content)))
}

func TestText_UnknownExtensionTreatedAsText(t *testing.T) {
	content := "plain resume body"

	assert.Equal(t, content, Text("resume.md", []byte(content)))
	assert.Equal(t, content, Text("resume", []byte(content)))
}

func TestText_DropsInvalidUTF8(t *testing.T) {
	data := append([]byte("caf"), 0xff, 0xfe)
	data = append(data, []byte("e latte")...)

	text := Text("notes.txt", data)

	assert.Equal(t, "cafe latte", text)
}

func TestText_CorruptPDFDegradesToEmpty(t *testing.T) {
	assert.Equal(t, "", Text("resume.pdf", []byte("%PDF-1.4 truncated garbage")))
}

func TestText_CorruptDocxDegradesToEmpty(t *testing.T) {
	assert.Equal(t, "", Text("resume.docx", []byte("not really a zip archive")))
}

func TestText_ExtensionIsCaseInsensitive(t *testing.T) {
	// An uppercase .PDF must still select the PDF parser; the corrupt input
	// then degrades to empty rather than being decoded as text.
	assert.Equal(t, "", Text("resume.PDF", []byte("garbage")))
}

func TestText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Text("empty.txt", nil))
}
