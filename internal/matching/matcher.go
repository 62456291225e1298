// Package matching compares résumé skills against job-description skills,
// buckets them into matched/partial/missing, and composes the job-fit score.
package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

// partialMatchWeight is the credit a partial match contributes relative to an
// exact match when computing the match percentage.
const partialMatchWeight = 0.5

// aliasGroups list spellings that count as the same skill for exact matching.
var aliasGroups = [][]string{
	{"postgres", "postgresql"},
	{"k8s", "kubernetes"},
	{"go", "golang"},
	{"js", "javascript"},
	{"ts", "typescript"},
	{"node", "node.js", "nodejs"},
	{"react", "react.js", "reactjs"},
	{"vue", "vue.js", "vuejs"},
	{"rest", "rest api", "restful api"},
	{"ci cd", "cicd", "ci/cd"},
}

var nonWordRe = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeSkill lowercases a skill and collapses every non-alphanumeric run
// to a single space, so "Node.js" and "node js" compare equal.
func normalizeSkill(s string) string {
	s = strings.ToLower(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// variants returns the normalized skill plus its alias spellings.
func variants(skill string) []string {
	base := normalizeSkill(skill)
	if base == "" {
		return nil
	}
	out := []string{base}
	for _, group := range aliasGroups {
		for _, member := range group {
			if normalizeSkill(member) != base {
				continue
			}
			for _, alias := range group {
				if a := normalizeSkill(alias); a != base {
					out = append(out, a)
				}
			}
			return out
		}
	}
	return out
}

// genericTokens are words too common in postings to signal a partial match on
// their own.
var genericTokens = map[string]struct{}{
	"api": {}, "apis": {}, "design": {}, "development": {}, "experience": {},
	"software": {}, "services": {}, "systems": {}, "tools": {}, "using": {},
	"and": {}, "with": {}, "the": {}, "for": {},
}

// Match buckets every job skill into exactly one of matched, partial or
// missing. A job skill is matched when any résumé skill (or one of its alias
// spellings) equals it after normalization; partial when the two share a
// meaningful word token or one phrase contains the other; missing otherwise.
// The three lists partition the job-skill list and preserve its order.
func Match(resumeSkills, jobSkills []string) *types.MatchResult {
	exact := make(map[string]struct{})
	tokens := make(map[string]struct{})
	var phrases []string
	for _, rs := range resumeSkills {
		for _, v := range variants(rs) {
			exact[v] = struct{}{}
			phrases = append(phrases, v)
			for _, tok := range strings.Fields(v) {
				if len(tok) < 3 {
					continue
				}
				if _, generic := genericTokens[tok]; generic {
					continue
				}
				tokens[tok] = struct{}{}
			}
		}
	}

	result := &types.MatchResult{
		MatchedSkills:  []string{},
		PartialMatches: []string{},
		MissingSkills:  []string{},
	}

	for _, js := range jobSkills {
		norm := normalizeSkill(js)
		switch {
		case isExactMatch(norm, exact):
			result.MatchedSkills = append(result.MatchedSkills, js)
		case isPartialMatch(norm, tokens, phrases):
			result.PartialMatches = append(result.PartialMatches, js)
		default:
			result.MissingSkills = append(result.MissingSkills, js)
		}
	}

	result.SkillMatchPercentage = matchPercentage(
		len(result.MatchedSkills), len(result.PartialMatches), len(jobSkills))
	return result
}

func isExactMatch(norm string, exact map[string]struct{}) bool {
	for _, v := range variants(norm) {
		if _, ok := exact[v]; ok {
			return true
		}
	}
	return false
}

func isPartialMatch(norm string, resumeTokens map[string]struct{}, resumePhrases []string) bool {
	if norm == "" {
		return false
	}
	for _, tok := range strings.Fields(norm) {
		if len(tok) < 3 {
			continue
		}
		if _, generic := genericTokens[tok]; generic {
			continue
		}
		if _, ok := resumeTokens[tok]; ok {
			return true
		}
	}
	// Containment as whole-word phrase, either direction.
	hay := " " + norm + " "
	for _, phrase := range resumePhrases {
		if strings.Contains(hay, " "+phrase+" ") || strings.Contains(" "+phrase+" ", " "+norm+" ") {
			return true
		}
	}
	return false
}

// matchPercentage normalizes matched and partial counts to [0,100]. An empty
// job-skill list counts as a full match: there is nothing to miss.
func matchPercentage(matched, partial, total int) float64 {
	if total == 0 {
		return 100
	}
	pct := (float64(matched) + partialMatchWeight*float64(partial)) / float64(total) * 100
	return math.Round(pct*100) / 100
}
