package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/pathfinder/internal/server/middleware"
	"github.com/jonathan/pathfinder/internal/types"
)

// maxBodyBytes bounds the analyze request body.
const maxBodyBytes = 64 << 10

// RootResponse describes the API.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status     string    `json:"status"`
	APIVersion string    `json:"api_version"`
	Timestamp  time.Time `json:"timestamp"`
}

// ExampleResponse is the static smoke-test body.
type ExampleResponse struct {
	Message      string `json:"message"`
	ExampleField string `json:"example_field"`
	ExampleGPA   string `json:"example_gpa"`
}

// handleRoot returns API information.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	endpoints := map[string]string{
		"health":  "/health",
		"analyze": "/api/v1/analyze",
		"example": "/api/v1/example",
	}
	if s.metrics != nil {
		endpoints["metrics"] = "/metrics"
	}
	s.jsonResponse(w, http.StatusOK, RootResponse{
		Message:   "PathFinder AI API - Simplified Version",
		Version:   Version,
		Endpoints: endpoints,
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		APIVersion: Version,
		Timestamp:  s.now(),
	})
}

// handleExample confirms the API is reachable.
func (s *Server) handleExample(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ExampleResponse{
		Message:      "API is working! Use POST /api/v1/analyze with assessment data",
		ExampleField: "Computer Science",
		ExampleGPA:   "1.4-1.7",
	})
}

// handleAnalyze analyzes a career assessment.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		s.writeError(w, r, &ErrBadRequest{Cause: err})
		return
	}

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rec, err := s.analyzer.AnalyzeProfile(ctx, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode JSON response", nil)
	}
}

// writeError maps err to a status code and writes an ErrorResponse.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	fields := map[string]interface{}{
		"request_id": middleware.GetRequestID(r.Context()),
		"status":     status,
	}
	if status >= http.StatusInternalServerError {
		s.logger.WithError(err).Error("request failed", fields)
	} else {
		s.logger.WithError(err).Warn("request rejected", fields)
	}
	s.jsonResponse(w, status, errorBody(err))
}
