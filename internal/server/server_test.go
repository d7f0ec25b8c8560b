package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/career-matcher/internal/config"
	"github.com/jonathan/career-matcher/internal/recommender"
	"github.com/jonathan/career-matcher/internal/schemas"
	"github.com/jonathan/career-matcher/internal/server/middleware"
	"github.com/jonathan/career-matcher/internal/types"
	schemafiles "github.com/jonathan/career-matcher/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newTestServer builds a server over the built-in catalog with rate limiting off
// unless a mutator turns it back on.
func newTestServer(t *testing.T, mutators ...func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Defaults()
	cfg.RateLimit.Enabled = false
	for _, m := range mutators {
		m(&cfg)
	}
	s := New(&cfg, recommender.New(nil), zap.NewNop())
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestNew_FillsUnsetConfigFromDefaults(t *testing.T) {
	s := New(&config.Config{Server: config.ServerConfig{Port: 9090}}, recommender.New(nil), nil)
	t.Cleanup(s.rateLimiter.Stop)

	assert.Equal(t, ":9090", s.httpServer.Addr)
	assert.Equal(t, 15*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 30*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, 10*time.Second, s.shutdownTimeout)

	s = New(nil, recommender.New(nil), nil)
	t.Cleanup(s.rateLimiter.Stop)
	assert.Equal(t, ":8080", s.httpServer.Addr)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[map[string]any](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 20, body["careers"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRecommendEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/recommendations",
		`{"profile": {"interests": ["AI"], "skills": ["python"]}, "top_n": 3}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[types.RecommendResponse](t, w)
	require.Len(t, resp.Recommendations, 3)
	assert.Equal(t, "ai_engineer", resp.Recommendations[0].CareerID)
	assert.Equal(t, 70, resp.Recommendations[0].MatchScore)
	assert.Equal(t, "Medium-High", resp.Recommendations[0].Confidence)
	assert.False(t, resp.InsufficientProfile)

	recs, err := json.Marshal(resp.Recommendations)
	require.NoError(t, err)
	assert.NoError(t, schemas.Validate(schemafiles.Recommendations, recs))
}

func TestRecommendEndpoint_EmptyProfile(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/recommendations", `{"profile": {"preferences": ["remote"]}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recommendations":[]`)
	resp := decodeBody[types.RecommendResponse](t, w)
	assert.True(t, resp.InsufficientProfile)
}

func TestRecommendEndpoint_BadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{not json`},
		{name: "unknown profile field", body: `{"profile": {"hobbies": ["chess"]}}`},
		{name: "unknown top-level field", body: `{"profile": {}, "limit": 3}`},
		{name: "empty term", body: `{"profile": {"skills": [""]}}`},
		{name: "profile is not an object", body: `{"profile": ["python"]}`},
		{name: "top_n too large", body: `{"profile": {"skills": ["python"]}, "top_n": 500}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s.Handler(), http.MethodPost, "/recommendations", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.NotEmpty(t, decodeBody[map[string]string](t, w)["error"])
		})
	}
}

func TestRecommendBatchEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/recommendations/batch", types.BatchRecommendRequest{
		Profiles: []types.Profile{
			{Interests: []string{"ai"}, Skills: []string{"python"}},
			{Interests: []string{"people"}},
		},
		TopN: 2,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[types.BatchRecommendResponse](t, w)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "ai_engineer", resp.Results[0][0].CareerID)
	assert.LessOrEqual(t, len(resp.Results[1]), 2)
}

func TestRecommendBatchEndpoint_NoProfiles(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/recommendations/batch", `{"profiles": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMergeProfilesEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/profiles/merge", types.MergeProfilesRequest{
		Current:  types.Profile{Interests: []string{"ai"}},
		Incoming: types.Profile{Interests: []string{"AI", "data"}, Skills: []string{"python"}},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	merged := decodeBody[types.Profile](t, w)
	assert.Equal(t, []string{"ai", "data"}, merged.Interests)
	assert.Equal(t, []string{"python"}, merged.Skills)
}

func TestSummaryEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/summary", types.SummaryRequest{
		Profile:   types.Profile{Interests: []string{"ai"}},
		CareerIDs: []string{"ai_engineer", "nope"},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decodeBody[types.Summary](t, w)
	assert.Equal(t, []types.SummaryCareer{{ID: "ai_engineer", Name: "AI Engineer", Domain: "Technology & Engineering"}}, summary.Careers)

	w = doRequest(t, s.Handler(), http.MethodPost, "/summary", `{"profile": {}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCareersEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/careers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, decodeBody[CareersResponse](t, w).Count)

	w = doRequest(t, s.Handler(), http.MethodGet, "/careers?domain=Healthcare+%26+Science", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decodeBody[CareersResponse](t, w).Count)

	w = doRequest(t, s.Handler(), http.MethodGet, "/careers/nurse", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Registered Nurse", decodeBody[types.Career](t, w).Name)

	w = doRequest(t, s.Handler(), http.MethodGet, "/careers/astronaut", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "astronaut")
}

func TestLearningPathEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/careers/graphic_designer/learning-path", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan := decodeBody[types.LearningPlan](t, w)
	assert.Equal(t, 6, plan.DurationMonths)
	assert.Len(t, plan.Phases, 3)
	assert.Equal(t, []string{"Industry-specific certifications"}, plan.RecommendedCertifications)

	w = doRequest(t, s.Handler(), http.MethodGet, "/careers/astronaut/learning-path", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScoreEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodPost, "/careers/ai_engineer/score",
		`{"profile": {"interests": ["ai"], "skills": ["python"]}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decodeBody[types.MatchResult](t, w)
	assert.Equal(t, 70, result.Score)
	assert.Equal(t, []string{"Interest alignment: 100%", "Skills match: 100%"}, result.Explanations)

	w = doRequest(t, s.Handler(), http.MethodPost, "/careers/astronaut/score", `{"profile": {}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDomainsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/domains", nil)
	require.Equal(t, http.StatusOK, w.Code)
	domains := decodeBody[map[string][]string](t, w)["domains"]
	assert.Len(t, domains, 6)
	assert.Contains(t, domains, "Arts & Design")
}

func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/search?q=data,analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[SearchResponse](t, w)
	assert.Equal(t, []string{"data", "analysis"}, resp.Keywords)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "business_analyst", resp.Results[0].CareerID)

	w = doRequest(t, s.Handler(), http.MethodGet, "/search?q=zz_nonexistent", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[SearchResponse](t, w).Results)

	w = doRequest(t, s.Handler(), http.MethodGet, "/search?q=+,", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/recommendations", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.CleanupInterval = 0
		cfg.RateLimit.Endpoints = []config.EndpointLimit{
			{Path: "/domains", Method: "GET", Limit: 1, Window: time.Hour, Burst: 1},
		}
	})

	first := doRequest(t, s.Handler(), http.MethodGet, "/domains", nil)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := doRequest(t, s.Handler(), http.MethodGet, "/domains", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "rate_limit_exceeded", decodeBody[map[string]any](t, second)["error"])

	health := doRequest(t, s.Handler(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestCORSMiddleware(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s.Handler(), http.MethodGet, "/domains", nil)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSMiddleware_OPTIONS(t *testing.T) {
	s := newTestServer(t)

	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/recommendations", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newTestServer(t)
	s.logger = zap.New(core)

	handler := s.withRequestID(s.withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("done"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/summary", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/summary", fields["path"])
	assert.Equal(t, "req-42", fields["request_id"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
	assert.EqualValues(t, 4, fields["bytes"])
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s := newTestServer(t)
	s.logger = zap.New(core)

	w := httptest.NewRecorder()
	s.writeError(w, httptest.NewRequest(http.MethodGet, "/", nil), assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), assert.AnError.Error()))
	assert.Equal(t, 1, logs.Len())
}
