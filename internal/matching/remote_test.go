package matching

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-engine/internal/types"
)

func newTestScorer(t *testing.T, handler http.HandlerFunc, cfg HTTPScorerConfig) *HTTPScorer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg.URL = server.URL + "/ai/match"
	scorer, err := NewHTTPScorer(cfg)
	require.NoError(t, err)
	return scorer
}

func TestHTTPScorer_FractionScore(t *testing.T) {
	receivedCh := make(chan remoteMatchPayload, 1)
	scorer := newTestScorer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ai/match", r.URL.Path)
		var payload remoteMatchPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		receivedCh <- payload
		_, _ = w.Write([]byte(`{"matchScore": 0.82, "matchedSkills": ["Sql"], "missingSkills": ["Node.Js"], "explanation": "Candidate is a strong match."}`))
	}, HTTPScorerConfig{})

	result, err := scorer.TryScore(context.Background(), MatchRequest{
		CandidateSkills: []string{"sql"},
		RequiredSkills:  []string{"Node.js", "SQL"},
	})
	require.NoError(t, err)

	assert.Equal(t, 82, result.MatchScore)
	assert.Equal(t, []string{"Sql"}, result.MatchedSkills)
	assert.Equal(t, types.SourceRemote, result.Source)
	assert.Equal(t, "Candidate is a strong match.", result.Explanation)
	received := <-receivedCh
	assert.Equal(t, "Node.js, SQL", received.JobRequirements)
	assert.True(t, received.IncludeExplanation)
}

func TestHTTPScorer_PercentScoreAndMissingFields(t *testing.T) {
	scorer := newTestScorer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"matchScore": 64.6, "matchedSkills": "oops"}`))
	}, HTTPScorerConfig{})

	result, err := scorer.TryScore(context.Background(), MatchRequest{JobDescription: "Build APIs"})
	require.NoError(t, err)

	assert.Equal(t, 65, result.MatchScore)
	assert.Empty(t, result.MatchedSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.Contains(t, result.Explanation, "Moderate alignment")
}

func TestHTTPScorer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "array body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[1, 2]`))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
				_, _ = w.Write([]byte(`{"matchScore": 1}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := newTestScorer(t, tt.handler, HTTPScorerConfig{Timeout: 50 * time.Millisecond})
			_, err := scorer.TryScore(context.Background(), MatchRequest{})
			require.Error(t, err)
			var remoteErr *RemoteError
			assert.ErrorAs(t, err, &remoteErr)
		})
	}
}

func TestHTTPScorer_RateLimited(t *testing.T) {
	var calls atomic.Int32
	scorer := newTestScorer(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"matchScore": 0.5}`))
	}, HTTPScorerConfig{RatePerSecond: 0.001, Burst: 1})

	_, err := scorer.TryScore(context.Background(), MatchRequest{})
	require.NoError(t, err)
	_, err = scorer.TryScore(context.Background(), MatchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewHTTPScorer_InvalidURL(t *testing.T) {
	_, err := NewHTTPScorer(HTTPScorerConfig{})
	assert.Error(t, err)
	_, err = NewHTTPScorer(HTTPScorerConfig{URL: "localhost"})
	assert.Error(t, err)
}

func TestScaleRemoteScore(t *testing.T) {
	assert.Equal(t, 0, ScaleRemoteScore(0))
	assert.Equal(t, 100, ScaleRemoteScore(1))
	assert.Equal(t, 50, ScaleRemoteScore(0.5))
	assert.Equal(t, 2, ScaleRemoteScore(2))
	assert.Equal(t, 100, ScaleRemoteScore(250))
	assert.Equal(t, 0, ScaleRemoteScore(-3))
}
