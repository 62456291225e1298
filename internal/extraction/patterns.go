// Package extraction assembles structured education, experience and project
// entries from segmented résumé section text using line-oriented
// state-machine parsers.
package extraction

import (
	"regexp"
	"strings"
)

// monthAlt matches an English month name, full or abbreviated.
const monthAlt = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// dateToken matches a single date endpoint: an optional month followed by a
// four-digit year, or the literal "Present".
const dateToken = `(?:` + monthAlt + `\.?\s*)?\d{4}|present`

// durationRe matches a whole line holding two date tokens separated by a
// dash, "to", an en/em dash, or at least two spaces.
var durationRe = regexp.MustCompile(`(?i)^(?:` + dateToken + `)(?:\s*(?:[-–—]|to)\s*|\s{2,})(?:` + dateToken + `)$`)

// institutionKeywords identify lines naming an education institution.
var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// degreeKeywords identify lines naming a degree or qualification.
var degreeKeywords = []string{
	"bachelor", "master", "b.tech", "btech", "m.tech", "mtech", "b.e", "m.e",
	"b.sc", "bsc", "m.sc", "msc", "bca", "mca", "mba", "phd", "ph.d",
	"diploma", "class x", "class xii", "secondary",
}

// roleKeywords identify lines naming a job title.
var roleKeywords = []string{
	"intern", "engineer", "developer", "manager", "lead", "analyst",
	"consultant", "architect", "scientist", "designer", "administrator",
	"specialist", "coordinator", "founder", "officer", "head",
}

func isDurationLine(line string) bool {
	return durationRe.MatchString(strings.TrimSpace(line))
}

func containsAny(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isInstitutionLine(line string) bool {
	return containsAny(line, institutionKeywords)
}

func isDegreeLine(line string) bool {
	return containsAny(line, degreeKeywords)
}

func isRoleLine(line string) bool {
	return containsAny(line, roleKeywords)
}

// nonBlankLines returns the trimmed, non-empty lines of a section body.
func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
