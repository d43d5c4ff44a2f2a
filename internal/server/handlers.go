package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/chhaviambor/resume-improvement-assistant/internal/matching"
	"github.com/chhaviambor/resume-improvement-assistant/internal/pipeline"
)

// validate is the shared request validator. A single instance caches
// struct metadata across requests.
var validate = validator.New(validator.WithRequiredStructEnabled())

// AnalyzeRequest represents the request body for /api/v1/analyze
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JobText    string `json:"job_text" validate:"required"`
}

// KeywordsRequest represents the request body for /api/v1/keywords
type KeywordsRequest struct {
	JobText string `json:"job_text" validate:"required"`
}

// KeywordsResponse represents the response for /api/v1/keywords
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// handleAnalyze runs a full analysis on the posted resume and job texts
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if msg, ok := validationMessage(validate.Struct(req)); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.ResumeText, req.JobText)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleKeywords extracts ranked keywords from a job description
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if msg, ok := validationMessage(validate.Struct(req)); !ok {
		s.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	keywords, err := s.analyzer.JobKeywords(req.JobText)
	if err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, KeywordsResponse{Keywords: keywords})
}

// validationMessage converts a validator error into a client-facing
// message. ok is true when err is nil.
func validationMessage(err error) (string, bool) {
	if err == nil {
		return "", true
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Field() + " is required", false
	}
	return err.Error(), false
}

// httpStatus maps pipeline errors to HTTP status codes
func httpStatus(err error) int {
	var inputErr *pipeline.InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	var vocabErr *matching.VocabularyError
	if errors.As(err, &vocabErr) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
