package skills

import (
	"sort"
	"strings"
)

// Normalize canonicalizes text for vocabulary matching: lowercase, dots
// stripped ("node.js" == "nodejs"), "&" spelled out, hyphens opened up, and
// whitespace collapsed.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Extract returns every vocabulary skill whose normalized form occurs as a
// substring of the normalized text. The result is duplicate-free and sorted
// alphabetically; it is always a subset of Vocabulary.
func Extract(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return []string{}
	}

	found := make([]string, 0, 16)
	for _, skill := range Vocabulary {
		if strings.Contains(normalized, Normalize(skill)) {
			found = append(found, skill)
		}
	}

	sort.Strings(found)
	return found
}

// CategoriesCovered counts how many of the skill-category families have at
// least one representative among the given skills.
func CategoriesCovered(skillList []string) int {
	present := make(map[string]struct{}, len(skillList))
	for _, s := range skillList {
		present[s] = struct{}{}
	}

	covered := 0
	for _, group := range Categories {
		for _, s := range group {
			if _, ok := present[s]; ok {
				covered++
				break
			}
		}
	}
	return covered
}
