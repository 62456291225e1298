package ats

import (
	"fmt"

	"github.com/jonathan/careercraft/internal/types"
)

const (
	// maxFeedbackLines caps the feedback list.
	maxFeedbackLines = 5
	// minFeedbackLines is the floor below which a generic line is appended.
	minFeedbackLines = 3
)

// generateFeedback applies the feedback rules in fixed priority order:
// missing/weak sections, skill shortfalls, keyword score, readability, then a
// generic filler line when fewer than three lines were collected. Duplicates
// are removed preserving first-seen order and the list is truncated to five.
func generateFeedback(analysis *types.AnalysisRecord, skillScore, keywordScore, readabilityScore float64) []string {
	var feedback []string

	feedback = append(feedback, feedbackSections(analysis)...)
	feedback = append(feedback, feedbackSkills(skillScore, analysis.Skills)...)
	if keywordScore < 15 {
		feedback = append(feedback,
			"Improve keyword alignment by repeating core technical terms in experience and project descriptions.")
	}
	if readabilityScore < 15 {
		feedback = append(feedback,
			"Improve readability by shortening sentences and breaking dense paragraphs into bullet points.")
	}

	if len(feedback) < minFeedbackLines {
		feedback = append(feedback,
			"Quantify impact in experience and project descriptions using metrics or outcomes.")
	}

	seen := make(map[string]struct{}, len(feedback))
	final := make([]string, 0, len(feedback))
	for _, f := range feedback {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		final = append(final, f)
	}

	if len(final) > maxFeedbackLines {
		final = final[:maxFeedbackLines]
	}
	return final
}

func feedbackSections(analysis *types.AnalysisRecord) []string {
	var feedback []string
	for _, section := range requiredSections {
		switch {
		case !analysis.Sections[section]:
			feedback = append(feedback, fmt.Sprintf(
				"Add a %s section to improve resume completeness and ATS visibility.", section))
		case !sectionHasStructuredContent(analysis, section):
			feedback = append(feedback, fmt.Sprintf(
				"Expand the %s section with more detailed and structured content.", section))
		}
	}
	return feedback
}

func feedbackSkills(skillScore float64, skillList []string) []string {
	var feedback []string
	if len(skillList) < 10 {
		feedback = append(feedback,
			"Include more relevant technical skills to improve keyword coverage.")
	}
	if skillScore < 24 {
		feedback = append(feedback,
			"Balance skills across languages, frameworks, databases, and tools.")
	}
	return feedback
}
