package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chhaviambor/resume-improvement-assistant/internal/pipeline"
	"github.com/chhaviambor/resume-improvement-assistant/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	analyzer := pipeline.New([]string{"python", "sql", "docker"}, pipeline.DefaultOptions())
	srv, err := New(Config{Port: 0}, analyzer)
	require.NoError(t, err)
	return srv
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNew_RequiresAnalyzer(t *testing.T) {
	srv, err := New(Config{Port: 8080}, nil)
	assert.Error(t, err)
	assert.Nil(t, srv)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleAnalyze_Success(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/v1/analyze", AnalyzeRequest{
		ResumeText: "Senior engineer with python and sql. Built data pipelines on docker.",
		JobText:    "We need a python developer with sql experience.",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var report types.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.NotEmpty(t, report.RunID)
	assert.NotEmpty(t, report.AllSkills)
	assert.GreaterOrEqual(t, report.Diagnostics.ATSScore, 0)
	assert.LessOrEqual(t, report.Diagnostics.ATSScore, 100)
}

func TestHandleAnalyze_MissingResumeText(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/v1/analyze", AnalyzeRequest{
		JobText: "We need a python developer.",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "required")
}

func TestHandleAnalyze_WhitespaceOnlyResume(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/v1/analyze", AnalyzeRequest{
		ResumeText: "   \n  ",
		JobText:    "We need a python developer.",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleKeywords(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/v1/keywords", KeywordsRequest{
		JobText: "We are hiring a machine learning engineer with python experience.",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body KeywordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Keywords)
}

func TestHandleKeywords_MissingJobText(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/v1/keywords", KeywordsRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflights(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
