// Package textextract pulls plain text out of uploaded résumé files. It
// dispatches on the file extension and supports pdf, docx and plain text.
package textextract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/careercraft/internal/types"
)

// Extract returns the plain text of a résumé file. The format is taken from
// the filename extension; anything other than .pdf, .docx or .txt fails with
// ErrUnsupportedFormat.
func Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return normalizeWhitespace(string(data)), nil
	default:
		return "", &types.ErrUnsupportedFormat{Format: ext}
	}
}

// extractPDF walks pages row by row so line structure survives. Section
// detection downstream depends on headers staying on their own lines.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var words []string
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			b.WriteString(strings.Join(words, " "))
			b.WriteString("\n")
		}
	}
	return normalizeWhitespace(b.String()), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return normalizeWhitespace(flattenDocxXML(doc.Editable().GetContent())), nil
}

// flattenDocxXML turns document markup into plain text, mapping paragraph
// ends to newlines before stripping the remaining tags.
func flattenDocxXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	return tagRe.ReplaceAllString(content, " ")
}

var (
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	horizontalRe = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRunRe = regexp.MustCompile(`\n+`)
)

// normalizeWhitespace collapses horizontal whitespace runs and newline runs
// while preserving line boundaries.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = horizontalRe.ReplaceAllString(s, " ")
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	s = strings.Join(lines, "\n")
	s = newlineRunRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
