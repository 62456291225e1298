package extraction

import (
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

// Education parses the education section body into structured entries. Lines
// are classified in priority order: duration, institution, degree. A new
// entry starts when an institution line appears while the current entry
// already holds institution or degree data. Score lines (CGPA, percentages)
// are skipped; entries with neither institution nor degree are discarded.
func Education(sectionText string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	var cur types.EducationEntry

	flush := func() {
		if cur.Institution != "" || cur.Degree != "" {
			entries = append(entries, cur)
		}
		cur = types.EducationEntry{}
	}

	for _, line := range nonBlankLines(sectionText) {
		switch {
		case isDurationLine(line):
			cur.Duration = line
		case isInstitutionLine(line):
			if cur.Institution != "" || cur.Degree != "" {
				flush()
			}
			cur.Institution = line
		case isDegreeLine(line):
			cur.Degree = line
		case isScoreLine(line):
			// CGPA / percentage lines carry no structure worth keeping.
			continue
		}
	}
	flush()

	return entries
}

func isScoreLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "cgpa") || strings.Contains(lower, "gpa") || strings.Contains(line, "%")
}
