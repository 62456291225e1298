// Package sections splits raw résumé text into labeled regions by locating
// known header lines.
package sections

import (
	"sort"
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

// headers maps section keys to the header label expected in résumé text.
// The table is read-only for the process lifetime.
var headers = map[string]string{
	types.SectionSkills:       "SKILLS",
	types.SectionEducation:    "EDUCATION",
	types.SectionProjects:     "PROJECTS",
	types.SectionExperience:   "EXPERIENCE",
	types.SectionAchievements: "ACHIEVEMENTS",
	types.SectionPositions:    "POSITIONS OF RESPONSIBILITY",
}

// Detect reports, per known section, whether its header label appears
// anywhere in the uppercased text. This is a coarse presence signal: a header
// word inside a sentence counts too. Use ExtractRaw for the strict signal.
func Detect(text string) map[string]bool {
	upper := strings.ToUpper(text)
	out := make(map[string]bool, len(headers))
	for key, header := range headers {
		out[key] = strings.Contains(upper, header)
	}
	return out
}

// ExtractRaw scans text line by line and returns the raw body of each section
// whose header occurs as an exact line (after trimming and uppercasing). A
// section's body is the span of lines strictly between its header line and
// the next header line, or the end of the document.
//
// If the same header appears on more than one line, the last occurrence wins.
func ExtractRaw(text string) map[string]string {
	lines := strings.Split(text, "\n")

	indices := make(map[string]int)
	for i, line := range lines {
		normalized := strings.ToUpper(strings.TrimSpace(line))
		for key, header := range headers {
			if normalized == header {
				indices[key] = i
			}
		}
	}

	// Order sections by line position so each body ends where the next
	// header begins.
	type headerLine struct {
		key   string
		index int
	}
	ordered := make([]headerLine, 0, len(indices))
	for key, idx := range indices {
		ordered = append(ordered, headerLine{key: key, index: idx})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].index < ordered[j].index
	})

	raw := make(map[string]string, len(ordered))
	for i, h := range ordered {
		end := len(lines)
		if i+1 < len(ordered) {
			end = ordered[i+1].index
		}
		body := strings.TrimSpace(strings.Join(lines[h.index+1:end], "\n"))
		raw[h.key] = body
	}

	return raw
}

// Header returns the canonical header label for a section key, or the empty
// string for unknown keys.
func Header(key string) string {
	return headers[key]
}
