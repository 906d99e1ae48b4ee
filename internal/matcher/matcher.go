package matcher

import (
	"context"
	"strings"
)

// Resume pairs an uploaded document's identifier (its original filename)
// with the plain text extracted from it.
type Resume struct {
	Name string
	Text string
}

// CandidateResult is the explainable comparison produced for one resume.
// Results are immutable once produced and scoped to a single request.
type CandidateResult struct {
	Filename        string   `json:"filename"`
	Score           int      `json:"score"`
	MissingSkills   []string `json:"missing_skills"`
	Remarks         string   `json:"remarks"`
	IsBestCandidate bool     `json:"is_best_candidate"`
}

// Matcher scores a batch of resumes against a job description and returns
// the results ranked best-first. The built-in Engine implements it; an
// externally supplied strategy with the same contract may be substituted at
// construction time.
type Matcher interface {
	MatchCandidates(ctx context.Context, jobDescription string, resumes []Resume) ([]CandidateResult, error)
}

// ValidateInputs enforces the request-level constraints shared by every
// strategy: the resume cap, and non-empty job description and resume texts.
func ValidateInputs(jobDescription string, resumes []Resume, maxResumes int) error {
	if len(resumes) > maxResumes {
		return &TooManyResumesError{Count: len(resumes), Limit: maxResumes}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return &EmptyInputError{Document: "job description"}
	}
	for _, r := range resumes {
		if strings.TrimSpace(r.Text) == "" {
			name := r.Name
			if name == "" {
				name = "resume"
			}
			return &EmptyInputError{Document: name}
		}
	}
	return nil
}
