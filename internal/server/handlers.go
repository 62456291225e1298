package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/careercraft/internal/analyzer"
	"github.com/jonathan/careercraft/internal/textextract"
	"github.com/jonathan/careercraft/internal/types"
	"go.uber.org/zap"
)

// extractTextResponse mirrors the upload endpoint contract: the original
// filename plus the extracted plain text.
type extractTextResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// handleExtractText accepts a multipart upload under the "file" field and
// returns the extracted plain text.
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' upload field")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "unable to access the filename")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	text, err := textextract.Extract(header.Filename, data)
	if err != nil {
		s.log.Warn("text extraction failed",
			zap.String("filename", header.Filename), zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, extractTextResponse{
		Filename: header.Filename,
		Text:     text,
	})
}

// analyzeResponse echoes the submitted content alongside the analysis.
type analyzeResponse struct {
	Content string `json:"content"`
	*types.AnalysisRecord
}

// handleAnalyze runs the full resume analysis. Raw section bodies are
// internal plumbing and never leave the service.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record := analyzer.Analyze(req.Content)

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		Content:        req.Content,
		AnalysisRecord: record.External(),
	})
}

// atsScoreResponse carries the score plus the analysis it was derived from.
type atsScoreResponse struct {
	Analysis *types.AnalysisRecord `json:"analysis"`
	*types.AtsScoreResult
}

// handleAtsScore analyzes the resume text and scores it for ATS
// compatibility. The request body is validated against an embedded JSON
// schema before decoding.
func (s *Server) handleAtsScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := validateRequestSchema(atsScoreRequestSchema, body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.AtsScoreRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record := analyzer.Analyze(req.Content)
	result, err := s.scorer.Score(record, req.Content)
	if err != nil {
		s.log.Warn("ats scoring failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, atsScoreResponse{
		Analysis:       record.External(),
		AtsScoreResult: result,
	})
}

// handleJobMatch matches an analyzed resume against a job description.
func (s *Server) handleJobMatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := validateRequestSchema(jobMatchRequestSchema, body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.JobMatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.matcher.MatchJob(req.ResumeAnalysis.Skills, req.ResumeAnalysis.AtsScore, req.JobDescription)
	if err != nil {
		s.log.Warn("job matching failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleCoverLetter drafts a cover letter from a prior analysis and job
// details.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req types.CoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	letter, err := s.letters.Generate(r.Context(), req.ResumeAnalysis, req.JobInfo, req.CandidateName)
	if err != nil {
		s.log.Warn("cover letter generation failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, letter)
}
