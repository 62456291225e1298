package coverletter

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/careercraft/internal/llm"
	"github.com/jonathan/careercraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned JSON payload or error.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func sampleAnalysis() *types.AnalysisRecord {
	return &types.AnalysisRecord{
		Sections: map[string]bool{"skills": true},
		Skills:   []string{"python", "docker"},
		Experience: []types.ExperienceEntry{
			{Organization: "Acme Corp", Role: "Software Engineer", Duration: "Jan 2022 - Dec 2023"},
		},
	}
}

func TestGenerate_TemplateFallback(t *testing.T) {
	gen := NewGenerator(nil)

	got, err := gen.Generate(context.Background(), sampleAnalysis(),
		types.JobInfo{CompanyName: "Acme", JobTitle: "Backend Engineer"}, "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, "Dear Hiring Manager at Acme,", got.Greeting)
	assert.Len(t, got.Body, 4)
	assert.Contains(t, got.Body[0], "Backend Engineer")
	assert.Equal(t, "Sincerely,", got.Closing)
	assert.Equal(t, "Jane Doe", got.SignOff)
	assert.Equal(t, "Jane Doe", got.CandidateName)
}

func TestGenerate_TemplateDefaults(t *testing.T) {
	gen := NewGenerator(nil)

	got, err := gen.Generate(context.Background(), sampleAnalysis(), types.JobInfo{JobTitle: "SRE"}, "")
	require.NoError(t, err)

	assert.Equal(t, "Dear Hiring Manager at the company,", got.Greeting)
	assert.Equal(t, "Applicant", got.SignOff)
	assert.Equal(t, "", got.CandidateName)
}

func TestGenerate_MissingInputs(t *testing.T) {
	gen := NewGenerator(nil)

	_, err := gen.Generate(context.Background(), nil, types.JobInfo{CompanyName: "Acme"}, "")
	var missing *types.ErrMissingField
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "resume_analysis", missing.Field)

	_, err = gen.Generate(context.Background(), sampleAnalysis(), types.JobInfo{}, "")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "job_info", missing.Field)
}

func TestGenerate_LLMPayload(t *testing.T) {
	client := &fakeClient{response: `{
		"greeting": "Dear Acme team,",
		"body": ["First paragraph.", "Second paragraph."],
		"closing": "Best regards,",
		"sign_off": "Jane Doe"
	}`}
	gen := NewGenerator(client)

	got, err := gen.Generate(context.Background(), sampleAnalysis(),
		types.JobInfo{CompanyName: "Acme", JobTitle: "Backend Engineer", Description: "Build services."}, "Jane Doe")
	require.NoError(t, err)

	assert.Equal(t, "Dear Acme team,", got.Greeting)
	assert.Equal(t, []string{"First paragraph.", "Second paragraph."}, got.Body)
	assert.Equal(t, "Best regards,", got.Closing)
	assert.Equal(t, "Jane Doe", got.CandidateName)

	assert.Contains(t, client.prompt, "Company: Acme")
	assert.Contains(t, client.prompt, "Candidate skills: python, docker")
	assert.Contains(t, client.prompt, "Acme Corp")
}

func TestGenerate_GreetingRewrittenWhenCompanyMissing(t *testing.T) {
	client := &fakeClient{response: `{
		"greeting": "To whom it may concern,",
		"body": ["Paragraph."],
		"closing": "Sincerely,",
		"sign_off": "Jane"
	}`}
	gen := NewGenerator(client)

	got, err := gen.Generate(context.Background(), sampleAnalysis(),
		types.JobInfo{CompanyName: "Acme"}, "Jane")
	require.NoError(t, err)

	assert.Equal(t, "Dear Hiring Manager at Acme,", got.Greeting)
}

func TestGenerate_BodyStringCoerced(t *testing.T) {
	client := &fakeClient{response: `{
		"greeting": "Dear Acme,",
		"body": "Single paragraph letter.",
		"closing": "Sincerely,",
		"sign_off": "Jane"
	}`}
	gen := NewGenerator(client)

	got, err := gen.Generate(context.Background(), sampleAnalysis(), types.JobInfo{CompanyName: "Acme"}, "Jane")
	require.NoError(t, err)

	assert.Equal(t, []string{"Single paragraph letter."}, got.Body)
}

func TestGenerate_CollaboratorErrors(t *testing.T) {
	var unavailable *types.ErrCollaboratorUnavailable

	gen := NewGenerator(&fakeClient{err: errors.New("connection refused")})
	_, err := gen.Generate(context.Background(), sampleAnalysis(), types.JobInfo{CompanyName: "Acme"}, "")
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "cover letter generation", unavailable.Name)

	gen = NewGenerator(&fakeClient{response: "not json"})
	_, err = gen.Generate(context.Background(), sampleAnalysis(), types.JobInfo{CompanyName: "Acme"}, "")
	require.ErrorAs(t, err, &unavailable)
}
