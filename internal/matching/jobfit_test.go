package matching

import (
	"testing"

	"github.com/jonathan/careercraft/internal/jobskills"
	"github.com/jonathan/careercraft/internal/nlp"
	"github.com/jonathan/careercraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	result nlp.Result
}

func (f *fakeProvider) Analyze(string) (*nlp.Result, error) {
	return &f.result, nil
}

func newTestService(phrases ...string) *Service {
	return NewService(jobskills.NewExtractor(&fakeProvider{result: nlp.Result{
		NounPhrases: phrases,
	}}))
}

func TestFitScore_Weights(t *testing.T) {
	assert.Equal(t, 100, FitScore(100, 100))
	assert.Equal(t, 0, FitScore(0, 0))
	// 50*0.85 + 80*0.15 = 54.5 rounds to 55.
	assert.Equal(t, 55, FitScore(50, 80))
}

func TestMatchJob_FullResult(t *testing.T) {
	svc := newTestService("python", "docker", "kubernetes")

	got, err := svc.MatchJob([]string{"python", "docker"}, 90, "Requirements: python docker kubernetes")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"python", "docker"}, got.MatchedSkills)
	assert.Equal(t, []string{"kubernetes"}, got.MissingSkills)
	assert.InDelta(t, 66.67, got.SkillMatchPercentage, 0.001)
	// 66.67*0.85 + 90*0.15 = 70.17 rounds to 70.
	assert.Equal(t, 70, got.JobFitScore)
	assert.NotEmpty(t, got.JobFeedback)
}

func TestMatchJob_EmptyJobText(t *testing.T) {
	svc := newTestService()

	got, err := svc.MatchJob([]string{"python"}, 80, "")
	require.NoError(t, err)

	assert.Equal(t, 100.0, got.SkillMatchPercentage)
	assert.Equal(t, []string{}, got.MissingSkills)
	assert.Equal(t, []string{}, got.MatchedSkills)
	// 100*0.85 + 80*0.15 = 97.
	assert.Equal(t, 97, got.JobFitScore)
}

func TestMatchJob_NilSkills(t *testing.T) {
	svc := newTestService()

	_, err := svc.MatchJob(nil, 80, "anything")
	var missing *types.ErrMissingField
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "skills", missing.Field)
}

func TestGenerateJobFeedback_GroupedMissing(t *testing.T) {
	match := &types.MatchResult{
		MatchedSkills:        []string{},
		PartialMatches:       []string{},
		MissingSkills:        []string{"aws", "azure", "docker", "kubernetes", "react"},
		SkillMatchPercentage: 0,
	}

	got := generateJobFeedback(match, 5)

	// Two grouped suggestions lead, in category order: cloud then devops.
	require.GreaterOrEqual(t, len(got), 2)
	assert.Contains(t, got[0], "cloud-related skills")
	assert.Contains(t, got[0], "aws, azure")
	assert.Contains(t, got[1], "devops-related skills")
	assert.Contains(t, got[1], "docker, kubernetes")
}

func TestGenerateJobFeedback_FewMissingItemized(t *testing.T) {
	match := &types.MatchResult{
		MatchedSkills:        []string{"python", "docker", "react"},
		PartialMatches:       []string{},
		MissingSkills:        []string{"terraform"},
		SkillMatchPercentage: 75,
	}

	got := generateJobFeedback(match, 4)

	assert.Contains(t, got, "Consider adding terraform to your resume to meet all job requirements.")
	// Strong-match encouragement fires at >= 70% with a residual gap.
	assert.Contains(t, got, "You have a strong skill match. Adding terraform would make you an even stronger candidate.")
}

func TestGenerateJobFeedback_PartialsItemized(t *testing.T) {
	match := &types.MatchResult{
		MatchedSkills:        []string{"python"},
		PartialMatches:       []string{"docker compose", "react native"},
		MissingSkills:        []string{},
		SkillMatchPercentage: 66.67,
	}

	got := generateJobFeedback(match, 3)

	assert.Contains(t, got, "Strengthen docker compose proficiency through hands-on projects or practical experience.")
	assert.Contains(t, got, "Strengthen react native proficiency through hands-on projects or practical experience.")
}

func TestGenerateJobFeedback_ManyPartialsGeneric(t *testing.T) {
	match := &types.MatchResult{
		MatchedSkills:        []string{"python"},
		PartialMatches:       []string{"a b", "c d", "e f", "g h", "i j"},
		MissingSkills:        []string{},
		SkillMatchPercentage: 58.33,
	}

	got := generateJobFeedback(match, 6)

	assert.Contains(t, got,
		"Strengthen your proficiency in partially matched skills through practical projects and real-world applications.")
	assert.Contains(t, got,
		"Consider targeted upskilling in missing areas to improve your candidacy for this position.")
}

func TestGenerateJobFeedback_NoMatchWarning(t *testing.T) {
	match := &types.MatchResult{
		MatchedSkills:        []string{},
		PartialMatches:       []string{},
		MissingSkills:        []string{"rust"},
		SkillMatchPercentage: 0,
	}

	got := generateJobFeedback(match, 1)

	assert.Contains(t, got,
		"Your resume shows minimal alignment with this job's technical requirements. Review the job description carefully and highlight relevant experience.")
}

func TestGenerateJobFeedback_PerfectMatchAffirmations(t *testing.T) {
	match := &types.MatchResult{
		MatchedSkills:        []string{"python", "docker"},
		PartialMatches:       []string{},
		MissingSkills:        []string{},
		SkillMatchPercentage: 100,
	}

	got := generateJobFeedback(match, 2)

	require.Len(t, got, 2)
	assert.Contains(t, got[0], "align well")
	assert.Contains(t, got[1], "highlighting specific projects")
}
