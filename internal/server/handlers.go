package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/hirescore/internal/schemas"
	"github.com/jonathan/hirescore/internal/types"
	rootschemas "github.com/jonathan/hirescore/schemas"
	"go.uber.org/zap"
)

// maxBodyBytes caps request payloads at 10 MiB.
const maxBodyBytes = 10 << 20

// handleAnalyzeResume scores a resume against a job description.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r, rootschemas.AnalyzeResume)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var req types.AnalyzeResumeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Reason: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Reason: err.Error()})
		return
	}

	result := s.engine.AnalyzeResume(req.ResumeText, req.JobDescription)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRankCandidates scores and orders candidates for a job.
func (s *Server) handleRankCandidates(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r, rootschemas.RankCandidates)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var req types.RankCandidatesRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Reason: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Reason: err.Error()})
		return
	}

	result := s.engine.RankCandidates(req.Candidates, req.JobRequirements)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeBias derives bias indicators from hiring records. A
// missing or empty hiring_data array is not an error; the engine
// returns the neutral report for it.
func (s *Server) handleAnalyzeBias(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r, rootschemas.AnalyzeBias)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var req types.AnalyzeBiasRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Reason: err.Error()})
		return
	}

	result := s.engine.AnalyzeBias(req.HiringData)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeSentiment scores text polarity, emotions, and engagement.
func (s *Server) handleAnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r, rootschemas.AnalyzeSentiment)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var req types.AnalyzeSentimentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Reason: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrInvalidBody{Reason: err.Error()})
		return
	}

	result := s.engine.AnalyzeSentiment(req.Text, req.Context)
	s.jsonResponse(w, http.StatusOK, result)
}

// readBody reads the request body and validates it against the endpoint
// schema. Returns the raw bytes for decoding, or a boundary error.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request, schema string) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &ErrInvalidBody{Reason: "failed to read request body"}
	}
	if len(body) == 0 {
		return nil, &ErrInvalidBody{Reason: "empty request body"}
	}

	if err := schemas.ValidateDocument(schema, string(body)); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.logger.Debug("request failed schema validation", zap.String("path", r.URL.Path), zap.Error(ve))
			return nil, classifySchemaError(ve)
		}
		return nil, &ErrInvalidBody{Reason: "request body is not valid JSON"}
	}

	return body, nil
}

// classifySchemaError distinguishes a missing required field from other
// schema violations so the response names the absent field.
func classifySchemaError(ve *schemas.ValidationError) error {
	for _, fe := range ve.Errors {
		if field, ok := strings.CutSuffix(fe.Message, " is required"); ok {
			return &ErrMissingField{Field: field}
		}
	}
	return &ErrInvalidBody{Reason: strings.TrimSpace(ve.Error())}
}
