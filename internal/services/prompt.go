package services

import (
	"fmt"
	"strings"

	"recruitai/recruitment-agent/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildJobDescriptionPrompt creates the prompt for drafting a job description
// from a structured request.
func (pb *PromptBuilder) BuildJobDescriptionPrompt(req models.GenerateJDRequest) string {
	return fmt.Sprintf(`You are an expert technical recruiter who writes clear, inclusive job descriptions.

Title: %s
Years of experience: %s
Must-have skills: %s
Company: %s
Employment type: %s
Industry: %s
Location: %s

Write a concise, structured job description with headings: Overview, Responsibilities, Requirements, Preferred Qualifications, About the Company, Benefits. Use bullet points. Keep it 250-450 words.`,
		req.Title, req.YearsOfExperience, req.MustHaveSkills,
		req.Company, req.EmploymentType, req.Industry, req.Location)
}

// BuildInterviewEmailPrompt creates the prompt for an interview invitation.
func (pb *PromptBuilder) BuildInterviewEmailPrompt(candidateName, jobDescription string) string {
	if len(jobDescription) > 2500 {
		jobDescription = jobDescription[:2500]
	}

	return fmt.Sprintf(`You write short, friendly recruiting emails.

Candidate: %s
Write an interview invitation email (subject + body) based on this JD summary:
%s`, candidateName, jobDescription)
}

// BuildRejectionEmailPrompt creates the prompt for a rejection email.
func (pb *PromptBuilder) BuildRejectionEmailPrompt(candidateName string) string {
	return fmt.Sprintf(`You write empathetic, brief rejection emails that keep the door open.

Candidate: %s
Write a polite rejection email (subject + body). Do not include private feedback.`, candidateName)
}

// BuildMatchAnalysisPrompt creates the prompt for the AI matching strategy.
// The response contract mirrors the deterministic engine's output so the
// two strategies are interchangeable.
func (pb *PromptBuilder) BuildMatchAnalysisPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert HR recruiter comparing a candidate's resume against a job description.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Evaluate how well the resume covers the skills the job description requires.

Return your response in the following JSON format:
{
  "score": <integer 0-100, percentage of required skills covered>,
  "missing_skills": ["<skill named in the JD but absent from the resume>", ...],
  "remarks": "<one or two sentences on the candidate's fit>"
}

Be objective. List missing skills in the order the job description mentions them.`,
		strings.TrimSpace(jobDescription), strings.TrimSpace(resumeText))
}
