package textextract

import (
	"testing"

	"github.com/jonathan/careercraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainText(t *testing.T) {
	got, err := Extract("resume.txt", []byte("SKILLS\n  Python,   Docker\n\n\nEXPERIENCE\n"))
	require.NoError(t, err)
	assert.Equal(t, "SKILLS\nPython, Docker\nEXPERIENCE", got)
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := Extract("resume.odt", []byte("x"))

	var unsupported *types.ErrUnsupportedFormat
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".odt", unsupported.Format)

	_, err = Extract("noextension", nil)
	require.ErrorAs(t, err, &unsupported)
}

func TestExtract_ExtensionCaseInsensitive(t *testing.T) {
	got, err := Extract("RESUME.TXT", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract("resume.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestExtract_CorruptDocx(t *testing.T) {
	_, err := Extract("resume.docx", []byte("not a zip archive"))
	assert.Error(t, err)
}

func TestFlattenDocxXML(t *testing.T) {
	xml := `<w:p><w:r><w:t>SKILLS</w:t></w:r></w:p><w:p><w:r><w:t>Python</w:t><w:tab/><w:t>Docker</w:t></w:r></w:p>`
	got := normalizeWhitespace(flattenDocxXML(xml))
	assert.Equal(t, "SKILLS\nPython Docker", got)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", normalizeWhitespace("a  b\r\n\n  c  "))
	assert.Equal(t, "", normalizeWhitespace("  \n \t "))
}
