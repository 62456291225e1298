// Package coverletter drafts structured cover letters from a résumé analysis
// and job posting details, with a deterministic template fallback when no
// language model is configured.
package coverletter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/careercraft/internal/llm"
	"github.com/jonathan/careercraft/internal/types"
)

// Generator produces cover letters. A nil client switches it to template
// mode, which keeps the endpoint usable without LLM credentials.
type Generator struct {
	client llm.Client
}

// NewGenerator returns a Generator backed by the given LLM client. The client
// may be nil.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate drafts a cover letter for the analyzed résumé and job posting.
// Both inputs are required; generation or parse failures surface as
// ErrCollaboratorUnavailable.
func (g *Generator) Generate(ctx context.Context, analysis *types.AnalysisRecord, job types.JobInfo, candidateName string) (*types.CoverLetter, error) {
	if analysis == nil {
		return nil, &types.ErrMissingField{Field: "resume_analysis"}
	}
	if job.Empty() {
		return nil, &types.ErrMissingField{Field: "job_info"}
	}

	if g.client == nil {
		return templateLetter(job, candidateName), nil
	}

	prompt := buildPrompt(analysis, job, candidateName)
	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &types.ErrCollaboratorUnavailable{Name: "cover letter generation", Err: err}
	}

	letter, err := parseLetter(raw)
	if err != nil {
		return nil, &types.ErrCollaboratorUnavailable{Name: "cover letter generation", Err: err}
	}
	return finalize(letter, job, candidateName), nil
}

// coverLetterSchema describes the JSON shape demanded from the model.
func coverLetterSchema() llm.ExtractionSchema {
	return llm.ExtractionSchema{
		Name: "CoverLetter",
		Description: `You are an expert career writer. Draft a concise, professional cover letter
for the candidate described below, tailored to the job posting. Use only facts
present in the candidate summary. Three to four body paragraphs.`,
		Fields: []llm.SchemaField{
			{Name: "greeting", Type: `"string"`, Description: "Salutation addressing the company", Required: true},
			{Name: "body", Type: `["string"]`, Description: "Body paragraphs in order", Required: true},
			{Name: "closing", Type: `"string"`, Description: "Closing line, e.g. 'Sincerely,'", Required: true},
			{Name: "sign_off", Type: `"string"`, Description: "Name used to sign the letter", Required: true},
		},
	}
}

func buildPrompt(analysis *types.AnalysisRecord, job types.JobInfo, candidateName string) string {
	var input strings.Builder
	if candidateName != "" {
		fmt.Fprintf(&input, "Candidate: %s\n", candidateName)
	}
	fmt.Fprintf(&input, "Company: %s\nRole: %s\n", job.CompanyName, job.JobTitle)
	if job.Description != "" {
		fmt.Fprintf(&input, "Job description:\n%s\n", job.Description)
	}
	if len(analysis.Skills) > 0 {
		fmt.Fprintf(&input, "Candidate skills: %s\n", strings.Join(analysis.Skills, ", "))
	}
	for _, exp := range analysis.Experience {
		fmt.Fprintf(&input, "Experience: %s %s %s\n", exp.Organization, exp.Role, exp.Duration)
	}
	for _, edu := range analysis.Education {
		fmt.Fprintf(&input, "Education: %s %s\n", edu.Institution, edu.Degree)
	}
	return llm.BuildExtractionPrompt(coverLetterSchema(), input.String())
}

// bodyParagraphs tolerates models returning the body as a single string
// instead of the requested paragraph list.
type bodyParagraphs []string

func (b *bodyParagraphs) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*b = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*b = []string{single}
	return nil
}

func parseLetter(raw string) (*types.CoverLetter, error) {
	var parsed struct {
		Greeting string         `json:"greeting"`
		Body     bodyParagraphs `json:"body"`
		Closing  string         `json:"closing"`
		SignOff  string         `json:"sign_off"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("malformed letter payload: %w", err)
	}
	return &types.CoverLetter{
		Greeting: parsed.Greeting,
		Body:     parsed.Body,
		Closing:  parsed.Closing,
		SignOff:  parsed.SignOff,
	}, nil
}

// finalize enforces the output contract regardless of what the model
// returned: the greeting names the company, the closing and sign-off are
// never blank, and the candidate name is echoed back.
func finalize(letter *types.CoverLetter, job types.JobInfo, candidateName string) *types.CoverLetter {
	if job.CompanyName != "" && !strings.Contains(letter.Greeting, job.CompanyName) {
		letter.Greeting = fmt.Sprintf("Dear Hiring Manager at %s,", job.CompanyName)
	}
	if letter.Greeting == "" {
		letter.Greeting = "Dear Hiring Manager,"
	}
	if len(letter.Body) == 0 {
		letter.Body = []string{}
	}
	if letter.Closing == "" {
		letter.Closing = "Sincerely,"
	}
	if letter.SignOff == "" {
		if candidateName != "" {
			letter.SignOff = candidateName
		} else {
			letter.SignOff = "Applicant"
		}
	}
	letter.CandidateName = candidateName
	return letter
}

// templateLetter is the deterministic fallback used when no LLM client is
// configured.
func templateLetter(job types.JobInfo, candidateName string) *types.CoverLetter {
	company := job.CompanyName
	if company == "" {
		company = "the company"
	}
	title := job.JobTitle
	if title == "" {
		title = "the position"
	}

	signOff := candidateName
	if signOff == "" {
		signOff = "Applicant"
	}

	return &types.CoverLetter{
		Greeting: fmt.Sprintf("Dear Hiring Manager at %s,", company),
		Body: []string{
			fmt.Sprintf("I am writing to express my strong interest in the %s position at %s. With my technical background and passion for building impactful software, I am confident I would be a valuable addition to your team.", title, company),
			"Throughout my experience, I have developed strong skills in modern web technologies including React, Node.js, and database management. I have successfully delivered multiple projects that demonstrate my ability to write clean, maintainable code and collaborate effectively with cross-functional teams.",
			fmt.Sprintf("I am particularly drawn to %s's commitment to innovation and would welcome the opportunity to contribute to your mission. I am eager to bring my problem-solving abilities and technical expertise to help drive the success of your engineering team.", company),
			"Thank you for considering my application. I look forward to the opportunity to discuss how my skills and experience align with your needs.",
		},
		Closing:       "Sincerely,",
		SignOff:       signOff,
		CandidateName: candidateName,
	}
}
