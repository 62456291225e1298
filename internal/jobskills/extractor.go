// Package jobskills extracts a deduplicated candidate skill list from
// job-posting text using marker-phrase section detection, linguistic
// analysis, and regex pattern matching.
package jobskills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/careercraft/internal/nlp"
)

// maxPhraseWords bounds noun phrases accepted as skill candidates.
const maxPhraseWords = 4

// sectionMarkers identify lines that open a skill-dense region of a posting.
var sectionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)required\s+skills?`),
	regexp.MustCompile(`(?i)technical\s+skills?`),
	regexp.MustCompile(`(?i)qualifications?`),
	regexp.MustCompile(`(?i)requirements?`),
	regexp.MustCompile(`(?i)must\s+have`),
	regexp.MustCompile(`(?i)experience\s+with`),
	regexp.MustCompile(`(?i)proficiency\s+in`),
	regexp.MustCompile(`(?i)knowledge\s+of`),
}

// softSkills is the stoplist of generic soft-skill phrases excluded from the
// candidate set.
var softSkills = map[string]struct{}{
	"communication": {}, "teamwork": {}, "leadership": {}, "problem solving": {},
	"critical thinking": {}, "time management": {}, "adaptability": {},
	"creativity": {}, "interpersonal": {}, "organizational": {},
	"analytical": {}, "detail oriented": {}, "self motivated": {},
	"collaborative": {}, "flexible": {}, "motivated": {},
}

// techPatterns catch technology names the linguistic pass tends to miss:
// dotted names (Node.js), all-caps acronyms (AWS, SQL), and symbol-bearing
// tokens (C++, C#).
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-z]+(?:\.[a-z]+)+\b`),
	regexp.MustCompile(`\b[A-Z]{2,}\b`),
	regexp.MustCompile(`\b\w+\+\+`),
	regexp.MustCompile(`\b[Cc]#`),
}

// cleanRe strips everything except word characters, whitespace and the
// tech-significant punctuation . - + #.
var cleanRe = regexp.MustCompile(`[^a-z0-9_\s.+#-]`)

// Extractor extracts candidate skills from job postings. It holds only a
// read-only linguistic provider and is safe for concurrent use.
type Extractor struct {
	provider nlp.Provider
}

// NewExtractor returns an Extractor backed by the given linguistic provider,
// or the production prose-based provider when nil.
func NewExtractor(provider nlp.Provider) *Extractor {
	if provider == nil {
		provider = nlp.NewProseProvider()
	}
	return &Extractor{provider: provider}
}

// Extract returns the normalized, deduplicated, alphabetically sorted skill
// candidates found in the posting. Empty input yields an empty list.
func (e *Extractor) Extract(jobText string) ([]string, error) {
	if strings.TrimSpace(jobText) == "" {
		return []string{}, nil
	}

	skillText := extractSkillSections(jobText)

	candidates, err := e.collectCandidates(skillText)
	if err != nil {
		return nil, err
	}

	deduped := deduplicate(candidates)
	sort.Strings(deduped)
	return deduped, nil
}

// extractSkillSections returns the text of skill-dense regions: each region
// starts at a marker line and runs until a blank line, and regions are joined
// with spaces. When no marker matches, the whole posting is the region.
func extractSkillSections(jobText string) string {
	var regions []string
	var buffer []string
	inSection := false

	for _, line := range strings.Split(jobText, "\n") {
		stripped := strings.TrimSpace(line)

		for _, marker := range sectionMarkers {
			if marker.MatchString(stripped) {
				inSection = true
				buffer = nil
				break
			}
		}

		if !inSection {
			continue
		}
		buffer = append(buffer, stripped)

		if stripped == "" && len(buffer) > 1 {
			regions = append(regions, strings.Join(buffer, " "))
			inSection = false
			buffer = nil
		}
	}
	if len(buffer) > 0 {
		regions = append(regions, strings.Join(buffer, " "))
	}

	if len(regions) == 0 {
		return jobText
	}
	return strings.Join(regions, " ")
}

// collectCandidates unions the three extraction heuristics: short noun
// phrases, named entities, and tech-name regex patterns.
func (e *Extractor) collectCandidates(text string) (map[string]struct{}, error) {
	candidates := make(map[string]struct{})

	features, err := e.provider.Analyze(text)
	if err != nil {
		return nil, err
	}

	for _, phrase := range features.NounPhrases {
		skill := cleanSkill(phrase)
		if skill == "" || len(skill) < 2 || len(strings.Fields(skill)) > maxPhraseWords {
			continue
		}
		if _, soft := softSkills[skill]; soft {
			continue
		}
		candidates[skill] = struct{}{}
	}

	for _, ent := range features.Entities {
		if skill := cleanSkill(ent); len(skill) >= 2 {
			candidates[skill] = struct{}{}
		}
	}

	for _, pattern := range techPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if skill := cleanSkill(match); skill != "" {
				candidates[skill] = struct{}{}
			}
		}
	}

	return candidates, nil
}

// cleanSkill normalizes a candidate: lowercase, punctuation stripped except
// . - + #, whitespace collapsed, leading/trailing dots and dashes trimmed.
func cleanSkill(skill string) string {
	skill = strings.ToLower(skill)
	skill = cleanRe.ReplaceAllString(skill, "")
	skill = strings.Join(strings.Fields(skill), " ")
	return strings.Trim(skill, ".-")
}

// deduplicate removes sub-phrase duplicates: candidates are visited longest
// first and kept only when their word-token set is not already covered by the
// tokens of kept candidates. This favours longer, more specific phrases.
func deduplicate(candidates map[string]struct{}) []string {
	ordered := make([]string, 0, len(candidates))
	for c := range candidates {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	seenTokens := make(map[string]struct{})
	var unique []string
	for _, skill := range ordered {
		tokens := strings.Fields(skill)
		covered := true
		for _, tok := range tokens {
			if _, ok := seenTokens[tok]; !ok {
				covered = false
				break
			}
		}
		if covered {
			continue
		}
		unique = append(unique, skill)
		for _, tok := range tokens {
			seenTokens[tok] = struct{}{}
		}
	}
	return unique
}
