package types

import (
	"github.com/go-playground/validator/v10"
)

// JobInfo carries the posting details a cover letter is addressed to.
type JobInfo struct {
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	Description string `json:"job_description,omitempty"`
}

// Empty reports whether no posting detail was provided at all.
func (j JobInfo) Empty() bool {
	return j.CompanyName == "" && j.JobTitle == "" && j.Description == ""
}

// AnalyzeRequest represents the request to analyze raw résumé text. Empty
// content is accepted and yields an empty analysis rather than an error.
type AnalyzeRequest struct {
	Content string `json:"content"`
}

// AtsScoreRequest represents the request to score a résumé for ATS
// compatibility.
type AtsScoreRequest struct {
	Content string `json:"content"`
}

// ResumeSummary is the slice of an analysis the job matcher needs.
type ResumeSummary struct {
	Skills   []string `json:"skills"`
	AtsScore int      `json:"ats_score" validate:"min=0,max=100"`
}

// JobMatchRequest represents the request to match a résumé against a job
// description.
type JobMatchRequest struct {
	ResumeAnalysis ResumeSummary `json:"resume_analysis"`
	JobDescription string        `json:"job_description"`
}

// CoverLetterRequest represents the request to draft a cover letter.
type CoverLetterRequest struct {
	ResumeAnalysis *AnalysisRecord `json:"resume_analysis" validate:"required"`
	JobInfo        JobInfo         `json:"job_info"`
	CandidateName  string          `json:"candidate_name,omitempty"`
}

// Validate validates the JobMatchRequest using the validator.
func (r *JobMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CoverLetterRequest using the validator.
func (r *CoverLetterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
