package extraction

import (
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

// maxProjectTitleWords bounds what still reads as a project title rather than
// a description sentence.
const maxProjectTitleWords = 6

// Projects parses the projects section body. A short non-bullet line starts a
// new project; bullet lines and longer prose accumulate into the current
// project's description. Entries without a name are discarded.
func Projects(sectionText string) []types.ProjectEntry {
	entries := []types.ProjectEntry{}
	var cur types.ProjectEntry
	var desc []string

	flush := func() {
		if cur.Name != "" {
			cur.Description = strings.Join(desc, " ")
			entries = append(entries, cur)
		}
		cur = types.ProjectEntry{}
		desc = nil
	}

	for _, line := range nonBlankLines(sectionText) {
		if isBulletLine(line) || len(strings.Fields(line)) > maxProjectTitleWords {
			desc = append(desc, strings.TrimLeft(line, "-•* \t"))
			continue
		}
		flush()
		cur.Name = strings.TrimSuffix(line, ":")
	}
	flush()

	return entries
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "*")
}
