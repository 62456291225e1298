// Package ats computes the ATS compatibility score for an analyzed résumé:
// four independently capped axes (sections, skills, keywords, readability)
// plus ranked, deterministic feedback.
package ats

import (
	"math"
	"strings"

	"github.com/jonathan/careercraft/internal/skills"
	"github.com/jonathan/careercraft/internal/types"
)

// requiredSections are the sections the completeness axis inspects, in
// feedback order.
var requiredSections = []string{
	types.SectionSkills,
	types.SectionEducation,
	types.SectionExperience,
	types.SectionProjects,
}

// Scorer computes ATS scores. The zero value is not usable; construct with
// NewScorer. Scorer holds only read-only collaborators and is safe for
// concurrent use.
type Scorer struct {
	ranker KeywordRanker
}

// NewScorer returns a Scorer backed by the given keyword ranker, or the
// default term-frequency ranker when nil.
func NewScorer(ranker KeywordRanker) *Scorer {
	if ranker == nil {
		ranker = TermFrequencyRanker{}
	}
	return &Scorer{ranker: ranker}
}

// Score computes the ATS result for an analysis record and the résumé text
// it was derived from. The record must carry its sections, raw_sections and
// skills fields; otherwise the call fails with ErrMissingField. Empty text
// degrades the keyword and readability axes to zero, it is not an error.
func (s *Scorer) Score(analysis *types.AnalysisRecord, content string) (*types.AtsScoreResult, error) {
	if err := validateRecord(analysis); err != nil {
		return nil, err
	}

	sectionScore := scoreSectionCompleteness(analysis)
	skillScore := scoreSkills(analysis)
	keywordScore, err := s.scoreKeywordOptimization(analysis, content)
	if err != nil {
		return nil, err
	}
	readabilityScore := scoreReadability(content)

	total := sectionScore + skillScore + keywordScore + readabilityScore

	feedback := generateFeedback(analysis, skillScore, keywordScore, readabilityScore)

	return &types.AtsScoreResult{
		ATSScore: int(math.Min(100, math.Round(total))),
		Breakdown: types.ScoreBreakdown{
			Sections:    sectionScore,
			Skills:      skillScore,
			Keywords:    keywordScore,
			Readability: readabilityScore,
		},
		Feedback: feedback,
	}, nil
}

func validateRecord(analysis *types.AnalysisRecord) error {
	switch {
	case analysis == nil:
		return &types.ErrMissingField{Field: "analysis"}
	case analysis.Sections == nil:
		return &types.ErrMissingField{Field: "sections"}
	case analysis.RawSections == nil:
		return &types.ErrMissingField{Field: "raw_sections"}
	case analysis.Skills == nil:
		return &types.ErrMissingField{Field: "skills"}
	}
	return nil
}

// scoreSectionCompleteness awards up to 30 points: 7.5 per required section
// with non-empty structured content, 3.5 when only raw text was captured.
func scoreSectionCompleteness(analysis *types.AnalysisRecord) float64 {
	score := 0.0
	for _, section := range requiredSections {
		if !analysis.Sections[section] {
			continue
		}
		if sectionHasStructuredContent(analysis, section) {
			score += 7.5
		} else if analysis.RawSections[section] != "" {
			score += 3.5
		}
	}
	return score
}

// sectionHasStructuredContent reports whether structured extraction produced
// anything for the section.
func sectionHasStructuredContent(analysis *types.AnalysisRecord, section string) bool {
	switch section {
	case types.SectionSkills:
		return len(analysis.Skills) > 0
	case types.SectionEducation:
		return len(analysis.Education) > 0
	case types.SectionExperience:
		return len(analysis.Experience) > 0
	case types.SectionProjects:
		return len(analysis.Projects) > 0
	}
	return false
}

// scoreSkills awards up to 30 points across count, diversity and reuse tiers.
func scoreSkills(analysis *types.AnalysisRecord) float64 {
	return scoreSkillCount(analysis.Skills) +
		scoreSkillDiversity(analysis.Skills) +
		scoreSkillReuse(analysis)
}

func scoreSkillCount(skillList []string) float64 {
	switch n := len(skillList); {
	case n < 6:
		return 5
	case n < 10:
		return 10
	case n < 15:
		return 13
	default:
		return 15
	}
}

func scoreSkillDiversity(skillList []string) float64 {
	switch covered := skills.CategoriesCovered(skillList); {
	case covered >= 4:
		return 8
	case covered == 3:
		return 6
	case covered == 2:
		return 4
	default:
		return 2
	}
}

// scoreSkillReuse rewards skills that reappear in the experience and projects
// narrative: listed-but-never-used skills read as filler to an ATS.
func scoreSkillReuse(analysis *types.AnalysisRecord) float64 {
	text := strings.ToLower(
		analysis.RawSections[types.SectionExperience] + analysis.RawSections[types.SectionProjects],
	)

	reused := 0
	for _, s := range analysis.Skills {
		if strings.Contains(text, s) {
			reused++
		}
	}

	ratio := float64(reused) / math.Max(float64(len(analysis.Skills)), 1)
	switch {
	case ratio > 0.6:
		return 7
	case ratio > 0.4:
		return 5
	case ratio > 0.2:
		return 3
	default:
		return 1
	}
}

// scoreKeywordOptimization awards up to 20 points from the document's top
// keywords: skill presence, repetition density, and a filler penalty tier.
func (s *Scorer) scoreKeywordOptimization(analysis *types.AnalysisRecord, content string) (float64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, nil
	}

	text := strings.ToLower(content)
	keywords, err := s.ranker.TopTerms(text, topKeywordCount)
	if err != nil {
		return 0, &types.ErrCollaboratorUnavailable{Name: "keyword ranker", Err: err}
	}

	return scoreKeywordPresence(keywords, analysis.Skills) +
		scoreKeywordDensity(text, keywords) +
		scoreFillerPenalty(keywords, analysis.Skills), nil
}

func scoreKeywordPresence(keywords, skillList []string) float64 {
	skillSet := make(map[string]struct{}, len(skillList))
	for _, s := range skillList {
		skillSet[normalizeToken(s)] = struct{}{}
	}

	hits := 0
	for _, k := range keywords {
		if _, ok := skillSet[normalizeToken(k)]; ok {
			hits++
		}
	}

	switch {
	case hits >= 8:
		return 10
	case hits >= 5:
		return 7
	case hits >= 3:
		return 4
	default:
		return 2
	}
}

func scoreKeywordDensity(text string, keywords []string) float64 {
	counts := make(map[string]int)
	for _, w := range densityWordRe.FindAllString(text, -1) {
		counts[w]++
	}

	repeated := 0
	for _, k := range keywords {
		if counts[k] >= 2 {
			repeated++
		}
	}

	ratio := float64(repeated) / math.Max(float64(len(keywords)), 1)
	switch {
	case ratio > 0.5:
		return 6
	case ratio > 0.3:
		return 4
	default:
		return 2
	}
}

// scoreFillerPenalty rewards documents whose dominant keywords are literal
// skill-vocabulary terms rather than filler prose.
func scoreFillerPenalty(keywords, skillList []string) float64 {
	technical := make(map[string]struct{}, len(skillList))
	for _, s := range skillList {
		technical[s] = struct{}{}
	}

	hits := 0
	for _, k := range keywords {
		if _, ok := technical[k]; ok {
			hits++
		}
	}

	ratio := float64(hits) / math.Max(float64(len(keywords)), 1)
	switch {
	case ratio > 0.4:
		return 4
	case ratio > 0.25:
		return 2
	default:
		return 1
	}
}
