package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/pathfinder/internal/payload"
	"github.com/jonathan/pathfinder/internal/types"
)

func sampleRequest() types.AnalyzeRequest {
	return payload.Build(types.AnswerSet{
		Academic:   types.Academic{Domain: "Physics", GPARange: "1.0-1.3", Papers: "3+"},
		Priorities: []string{"growth", "balance"},
	})
}

func TestNew_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8000", "::"} {
		_, err := New(raw, nil)
		var re *Error
		assert.ErrorAs(t, err, &re, raw)
	}
}

func TestAnalyzeProfile_Success(t *testing.T) {
	var got types.AnalyzeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, AnalyzePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ai_recommendation": "PhD Path Recommended",
			"confidence_level": "High Confidence",
			"key_insights": ["a"],
			"action_items": ["b"],
			"timestamp": "2024-06-01T12:00:00Z"
		}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", nil)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, c.BaseURL())

	req := sampleRequest()
	rec, err := c.AnalyzeProfile(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "PhD Path Recommended", rec.AIRecommendation)
	assert.Equal(t, []string{"a"}, rec.KeyInsights)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), rec.Timestamp)
	assert.Equal(t, req, got)
}

func TestAnalyzeProfile_StatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantFields int
	}{
		{"validation", http.StatusBadRequest, `{"error":"validation failed","fields":[{"field":"academic.gpa_range","message":"bad"}]}`, "validation failed", 1},
		{"internal", http.StatusInternalServerError, `{"error":"internal server error"}`, "internal server error", 0},
		{"non json", http.StatusBadGateway, `<html>bad gateway</html>`, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL, nil)
			require.NoError(t, err)

			_, err = c.AnalyzeProfile(context.Background(), sampleRequest())
			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.wantMsg, se.Message)
			assert.Len(t, se.Fields, tt.wantFields)
			assert.Contains(t, se.Error(), "HTTP status")
		})
	}
}

func TestAnalyzeProfile_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, &Options{Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.AnalyzeProfile(context.Background(), sampleRequest())
	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "HTTP request failed", re.Message)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestAnalyzeProfile_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ai_recommendation": `))
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)
	_, err = c.AnalyzeProfile(context.Background(), sampleRequest())
	var re *Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "failed to decode response", re.Message)
}

func TestAnalyzeProfile_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	c, err := New(srv.URL, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.AnalyzeProfile(ctx, sampleRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"healthy","api_version":"1.0.0"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	require.NoError(t, err)
	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status)
}
