package matching

import (
	"strings"

	"github.com/jonathan/career-engine/internal/ingestion"
	"github.com/jonathan/career-engine/internal/types"
)

// MatchRequest is the input shared by every scorer in a chain.
type MatchRequest struct {
	CandidateSkills []string
	RequiredSkills  []string
	JobTitle        string
	// JobDescription is plain text; only remote collaborators read it.
	JobDescription string
}

// RequestForJob builds a MatchRequest from a job posting.
// Required skills come from the job's skills list, falling back to its requirements.
func RequestForJob(candidateSkills []string, job types.Job) MatchRequest {
	return MatchRequest{
		CandidateSkills: candidateSkills,
		RequiredSkills:  job.RequiredSkills(),
		JobTitle:        job.Title,
		JobDescription:  ingestion.DescriptionText(job.Description),
	}
}

// requirementsText is the free-text form of the job requirements sent to remote scorers.
func (r MatchRequest) requirementsText() string {
	if len(r.RequiredSkills) > 0 {
		return strings.Join(r.RequiredSkills, ", ")
	}
	return r.JobDescription
}
