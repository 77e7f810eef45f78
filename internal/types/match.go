package types

// Job is a posting a candidate can be matched against.
type Job struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Description  string   `json:"description,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// RequiredSkills returns the explicit skills list, falling back to requirements.
func (j Job) RequiredSkills() []string {
	if len(j.Skills) > 0 {
		return j.Skills
	}
	return j.Requirements
}

// MatchSource records which scorer produced a MatchResult.
type MatchSource string

const (
	SourceLocal  MatchSource = "local"
	SourceRemote MatchSource = "remote"
	SourceLLM    MatchSource = "llm"
)

// MatchResult is the outcome of scoring a candidate's skills against a job.
type MatchResult struct {
	MatchScore    int         `json:"matchScore"`
	MatchedSkills []string    `json:"matchedSkills"`
	MissingSkills []string    `json:"missingSkills"`
	Explanation   string      `json:"explanation"`
	Source        MatchSource `json:"source,omitempty"`
}

// Candidate is a person being ranked against a single job.
type Candidate struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Skills []string `json:"skills"`
}

// JobMatch pairs a job with the candidate's score for it.
type JobMatch struct {
	Job    Job         `json:"job"`
	Result MatchResult `json:"result"`
}

// CandidateMatch pairs a candidate with their score for a job.
type CandidateMatch struct {
	Candidate Candidate   `json:"candidate"`
	Result    MatchResult `json:"result"`
}
