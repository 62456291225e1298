package matching

import (
	"math"

	"github.com/jonathan/careercraft/internal/jobskills"
	"github.com/jonathan/careercraft/internal/types"
)

// Weights for the job-fit composition. Skill alignment dominates; the ATS
// score contributes polish.
const (
	skillMatchWeight = 0.85
	atsScoreWeight   = 0.15
)

// FitScore combines the skill-match percentage with the résumé ATS score
// into a single 0-100 job-fit score.
func FitScore(skillMatchPercentage float64, atsScore int) int {
	weighted := skillMatchPercentage*skillMatchWeight + float64(atsScore)*atsScoreWeight
	return int(math.Round(weighted))
}

// Service composes job-skill extraction, skill matching, fit scoring and
// feedback generation. It holds only read-only collaborators and is safe for
// concurrent use.
type Service struct {
	extractor *jobskills.Extractor
}

// NewService returns a Service using the given job-skill extractor, or a
// default one when nil.
func NewService(extractor *jobskills.Extractor) *Service {
	if extractor == nil {
		extractor = jobskills.NewExtractor(nil)
	}
	return &Service{extractor: extractor}
}

// MatchJob extracts skills from the job posting, matches them against the
// résumé skills, and returns the full job-fit result. Skills must carry a
// non-nil list (an analyzed résumé always does); otherwise the call fails
// with ErrMissingField.
func (s *Service) MatchJob(resumeSkills []string, atsScore int, jobText string) (*types.JobFitResult, error) {
	if resumeSkills == nil {
		return nil, &types.ErrMissingField{Field: "skills"}
	}

	jobSkillList, err := s.extractor.Extract(jobText)
	if err != nil {
		return nil, err
	}

	match := Match(resumeSkills, jobSkillList)

	return &types.JobFitResult{
		JobFitScore:          FitScore(match.SkillMatchPercentage, atsScore),
		SkillMatchPercentage: match.SkillMatchPercentage,
		MatchedSkills:        match.MatchedSkills,
		PartialMatches:       match.PartialMatches,
		MissingSkills:        match.MissingSkills,
		JobFeedback:          generateJobFeedback(match, len(jobSkillList)),
	}, nil
}
