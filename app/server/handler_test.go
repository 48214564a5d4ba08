package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"websum/app/config"
	"websum/app/service/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	summarizeResult *engine.SummarizeResult
	summarizeErr    error
	askResult       *engine.AskResult
	askErr          error

	gotSummarizeURL string
	gotQuestion     string
}

func (f *fakeEngine) Summarize(_ context.Context, url string) (*engine.SummarizeResult, error) {
	f.gotSummarizeURL = url
	return f.summarizeResult, f.summarizeErr
}

func (f *fakeEngine) Ask(_ context.Context, question string) (*engine.AskResult, error) {
	f.gotQuestion = question
	return f.askResult, f.askErr
}

func newTestServer(eng Engine) *Server {
	s := &Server{
		cfg:    &config.Config{},
		engine: eng,
	}
	s.app = s.buildApp()

	return s
}

func postSummarize(t *testing.T, s *Server, body any) (*http.Response, map[string]string) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return resp, decoded
}

func TestSummarizeURLBranch(t *testing.T) {
	eng := &fakeEngine{
		summarizeResult: &engine.SummarizeResult{
			Summary: "Page discusses wind turbines.",
			Topic:   "Wind Turbines",
			Author:  "Jane Doe",
		},
	}
	s := newTestServer(eng)

	resp, body := postSummarize(t, s, map[string]string{"input": "https://example.com/page"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Page discusses wind turbines.", body["summary"])
	assert.Equal(t, "Wind Turbines", body["main_topic"])
	assert.Equal(t, "Jane Doe", body["author"])
	assert.Equal(t, "https://example.com/page", eng.gotSummarizeURL)
}

func TestSummarizeURLWithLeadingProse(t *testing.T) {
	eng := &fakeEngine{
		summarizeResult: &engine.SummarizeResult{Summary: "s"},
	}
	s := newTestServer(eng)

	resp, _ := postSummarize(t, s, map[string]string{"input": "tell me about https://example.com/page"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://example.com/page", eng.gotSummarizeURL)
	assert.Empty(t, eng.gotQuestion)
}

func TestSummarizeFailure(t *testing.T) {
	eng := &fakeEngine{summarizeErr: errors.New("model unreachable")}
	s := newTestServer(eng)

	resp, body := postSummarize(t, s, map[string]string{"input": "https://example.com/page"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["detail"], "Summarization failed:")
	assert.Contains(t, body["detail"], "model unreachable")
}

func TestFollowupBranch(t *testing.T) {
	eng := &fakeEngine{
		askResult: &engine.AskResult{
			Question: "what does it discuss?",
			Response: "Wind turbines.",
		},
	}
	s := newTestServer(eng)

	resp, body := postSummarize(t, s, map[string]string{"input": "what does it discuss?"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "what does it discuss?", body["question"])
	assert.Equal(t, "Wind turbines.", body["response"])
	assert.Equal(t, "what does it discuss?", eng.gotQuestion)
}

func TestFollowupNoContext(t *testing.T) {
	eng := &fakeEngine{askErr: engine.ErrNoContext}
	s := newTestServer(eng)

	resp, body := postSummarize(t, s, map[string]string{"input": "what is this about?"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No context available. Please provide a URL first.", body["detail"])
}

func TestFollowupFailure(t *testing.T) {
	eng := &fakeEngine{askErr: errors.New("model unreachable")}
	s := newTestServer(eng)

	resp, body := postSummarize(t, s, map[string]string{"input": "what is this about?"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["detail"], "Follow-up failed:")
}

func TestInvalidBody(t *testing.T) {
	s := newTestServer(&fakeEngine{})

	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&fakeEngine{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
