package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonathan/career-engine/internal/types"
)

const (
	// DefaultRemoteTimeout bounds a single remote scoring call
	DefaultRemoteTimeout = 10 * time.Second

	maxRemoteResponseBytes = 1 << 20
)

// RemoteScorer is an optional collaborator that may produce a better score than the local scorer.
// Any error tells the caller to fall back.
type RemoteScorer interface {
	Name() string
	TryScore(ctx context.Context, req MatchRequest) (types.MatchResult, error)
}

// HTTPScorerConfig configures an HTTPScorer.
type HTTPScorerConfig struct {
	URL     string
	Timeout time.Duration
	// RatePerSecond limits outbound calls; zero disables limiting.
	RatePerSecond float64
	Burst         int
	Client        *http.Client
}

// HTTPScorer posts match requests to an external scoring service.
type HTTPScorer struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	limiter  *rate.Limiter
}

// NewHTTPScorer creates a scorer for the service at cfg.URL.
func NewHTTPScorer(cfg HTTPScorerConfig) (*HTTPScorer, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("remote scorer URL is required")
	}
	parsed, err := url.Parse(cfg.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid remote scorer URL %q", cfg.URL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &HTTPScorer{
		endpoint: parsed.String(),
		timeout:  timeout,
		client:   client,
		limiter:  limiter,
	}, nil
}

// Name identifies the scorer in logs.
func (s *HTTPScorer) Name() string {
	return "remote"
}

type remoteMatchPayload struct {
	ResumeSkills       []string `json:"resumeSkills"`
	JobRequirements    string   `json:"jobRequirements"`
	RequiredSkills     []string `json:"requiredSkills,omitempty"`
	JobTitle           string   `json:"jobTitle,omitempty"`
	IncludeExplanation bool     `json:"includeExplanation"`
}

// TryScore posts the request and decodes the service's answer. No retries are attempted.
func (s *HTTPScorer) TryScore(ctx context.Context, req MatchRequest) (types.MatchResult, error) {
	if s.limiter != nil && !s.limiter.Allow() {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "rate limit exceeded"}
	}

	body, err := json.Marshal(remoteMatchPayload{
		ResumeSkills:       req.CandidateSkills,
		JobRequirements:    req.requirementsText(),
		RequiredSkills:     req.RequiredSkills,
		JobTitle:           req.JobTitle,
		IncludeExplanation: true,
	})
	if err != nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "failed to encode request", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "failed to build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), StatusCode: resp.StatusCode, Message: "unexpected status"}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteResponseBytes))
	if err != nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "failed to read response", Cause: err}
	}

	result, err := decodeScoreResponse(data, types.SourceRemote)
	if err != nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "malformed response", Cause: err}
	}
	return result, nil
}
