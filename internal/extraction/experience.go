package extraction

import (
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

// maxOrganizationWords bounds the short-line organization heuristic: only a
// line of at most this many words, seen before any role line, is taken as an
// organization name.
const maxOrganizationWords = 4

// Experience parses the experience section body into structured entries.
// Lines are classified in priority order: duration, role keyword, then a
// short-line organization heuristic that applies only before the first role
// line of the section. Everything else accumulates into the entry
// description. A role line seen while the current entry already has a role
// flushes the entry and starts the next one. Entries with neither
// organization nor role are discarded.
func Experience(sectionText string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	var cur types.ExperienceEntry
	var desc []string
	seenRole := false

	flush := func() {
		if cur.Organization != "" || cur.Role != "" {
			cur.Description = strings.Join(desc, " ")
			entries = append(entries, cur)
		}
		cur = types.ExperienceEntry{}
		desc = nil
	}

	for _, line := range nonBlankLines(sectionText) {
		switch {
		case isDurationLine(line):
			cur.Duration = line
		case isRoleLine(line):
			if cur.Role != "" {
				flush()
			}
			cur.Role = line
			seenRole = true
		case !seenRole && cur.Organization == "" && len(strings.Fields(line)) <= maxOrganizationWords:
			cur.Organization = line
		default:
			desc = append(desc, line)
		}
	}
	flush()

	return entries
}
