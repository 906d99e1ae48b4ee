package models

import "recruitai/recruitment-agent/internal/matcher"

// GenerateJDRequest is the structured input for drafting a job description.
type GenerateJDRequest struct {
	Title             string `json:"title"`
	YearsOfExperience string `json:"years_of_experience"`
	MustHaveSkills    string `json:"must_have_skills"`
	Company           string `json:"company"`
	EmploymentType    string `json:"employment_type"`
	Industry          string `json:"industry"`
	Location          string `json:"location"`
}

type JobDescriptionResponse struct {
	JobDescription string `json:"job_description"`
}

// RejectionEmail pairs a non-selected candidate with a drafted rejection.
type RejectionEmail struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MatchResponse is the full output of an evaluate-candidates request:
// ranked results plus drafted follow-up emails.
type MatchResponse struct {
	Results         []matcher.CandidateResult `json:"results"`
	BestCandidate   string                    `json:"best_candidate"`
	InterviewEmail  string                    `json:"interview_email"`
	RejectionEmails []RejectionEmail          `json:"rejection_emails"`
}

type DocumentResponse struct {
	ID            string `json:"id"`
	OriginalName  string `json:"original_name"`
	FileType      string `json:"file_type"`
	ExtractedText string `json:"extracted_text"`
}
