package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jonathan/career-engine/internal/llm"
	"github.com/jonathan/career-engine/internal/types"
)

const matchPromptTemplate = `You are a technical recruiter comparing a candidate's skills with a job's requirements.

Candidate skills (JSON array):
%s

Job title: %s

Required skills (JSON array):
%s

Job description:
%s

Rules:
1. matchScore is a number between 0 and 100.
2. matchedSkills and missingSkills only contain entries from the required skills list, spelled as given.
3. explanation is one or two sentences.

Respond with a JSON object:
{"matchScore": 0-100, "matchedSkills": ["..."], "missingSkills": ["..."], "explanation": "..."}`

const maxPromptDescriptionChars = 4000

// LLMScorer asks a language model to assess the match.
type LLMScorer struct {
	client  llm.Client
	tier    llm.ModelTier
	timeout time.Duration
}

// NewLLMScorer creates a scorer backed by client.
func NewLLMScorer(client llm.Client) *LLMScorer {
	return &LLMScorer{client: client, tier: llm.TierLite}
}

// WithTimeout bounds each generation call. Zero leaves the caller's deadline in charge.
func (s *LLMScorer) WithTimeout(timeout time.Duration) *LLMScorer {
	s.timeout = timeout
	return s
}

// Name identifies the scorer in logs.
func (s *LLMScorer) Name() string {
	return "llm"
}

// TryScore prompts the model and decodes its JSON answer.
func (s *LLMScorer) TryScore(ctx context.Context, req MatchRequest) (types.MatchResult, error) {
	if s.client == nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "no client configured"}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	response, err := s.client.GenerateJSON(ctx, buildMatchPrompt(req), s.tier)
	if err != nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "generation failed", Cause: err}
	}

	result, err := decodeScoreResponse([]byte(llm.ExtractJSONObject(response)), types.SourceLLM)
	if err != nil {
		return types.MatchResult{}, &RemoteError{Scorer: s.Name(), Message: "malformed response", Cause: err}
	}
	return result, nil
}

func buildMatchPrompt(req MatchRequest) string {
	candidateJSON, _ := json.Marshal(nonNil(req.CandidateSkills))
	requiredJSON, _ := json.Marshal(nonNil(req.RequiredSkills))

	description := truncate(req.JobDescription, maxPromptDescriptionChars)
	if description == "" {
		description = "(none)"
	}

	return fmt.Sprintf(matchPromptTemplate, candidateJSON, req.JobTitle, requiredJSON, description)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
