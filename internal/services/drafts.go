package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"recruitai/recruitment-agent/internal/models"
)

// DraftService writes the generative artifacts of the hiring flow: job
// descriptions, interview invitations, and rejection emails. When the text
// generation service is configured it is used first; otherwise, or on any
// failure, a deterministic template takes over, so drafting never fails.
type DraftService interface {
	GenerateJobDescription(ctx context.Context, req models.GenerateJDRequest) string
	InterviewEmail(ctx context.Context, candidateName, jobDescription string) string
	RejectionEmail(ctx context.Context, candidateName string) string
}

type draftService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

// NewDraftService builds a DraftService. gemini may be nil, in which case
// only the deterministic templates are used.
func NewDraftService(gemini GeminiService, maxRetries int) DraftService {
	return &draftService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// GenerateJobDescription implements DraftService.
func (d *draftService) GenerateJobDescription(ctx context.Context, req models.GenerateJDRequest) string {
	if d.gemini != nil {
		prompt := d.promptBuilder.BuildJobDescriptionPrompt(req)
		text, err := d.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, d.maxRetries)
		if err == nil {
			return text
		}
		log.Printf("⚠️ JD generation via Gemini failed, using template: %v\n", err)
	}

	return jobDescriptionTemplate(req)
}

// InterviewEmail implements DraftService.
func (d *draftService) InterviewEmail(ctx context.Context, candidateName, jobDescription string) string {
	name := candidateDisplayName(candidateName)

	if d.gemini != nil {
		prompt := d.promptBuilder.BuildInterviewEmailPrompt(name, jobDescription)
		text, err := d.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, d.maxRetries)
		if err == nil {
			return text
		}
		log.Printf("⚠️ Interview email via Gemini failed, using template: %v\n", err)
	}

	return fmt.Sprintf(`Subject: Interview Invitation

Hi %s,

Thanks for applying. Your background appears to align well with our role.
We'd love to schedule a 30-45 minute interview this week.

Please share your availability.

Best regards,
Recruiting Team`, name)
}

// RejectionEmail implements DraftService.
func (d *draftService) RejectionEmail(ctx context.Context, candidateName string) string {
	name := candidateDisplayName(candidateName)

	if d.gemini != nil {
		prompt := d.promptBuilder.BuildRejectionEmailPrompt(name)
		text, err := d.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, d.maxRetries)
		if err == nil {
			return text
		}
		log.Printf("⚠️ Rejection email via Gemini failed, using template: %v\n", err)
	}

	return fmt.Sprintf(`Subject: Application Update

Hi %s,

Thank you for your interest. After careful review, we will not be moving forward at this time.
We appreciate your time and encourage you to apply for future openings.

Best wishes,
Recruiting Team`, name)
}

func jobDescriptionTemplate(req models.GenerateJDRequest) string {
	title := valueOr(req.Title, "Role")
	yoe := valueOr(req.YearsOfExperience, "2+")
	company := valueOr(req.Company, "Your Company")
	empType := valueOr(req.EmploymentType, "Full-time")
	industry := valueOr(req.Industry, "General")
	location := valueOr(req.Location, "Remote")

	lines := []string{
		fmt.Sprintf("**%s**", title), "",
		fmt.Sprintf("**Company:** %s", company),
		fmt.Sprintf("**Location:** %s", location),
		fmt.Sprintf("**Employment Type:** %s", empType),
		fmt.Sprintf("**Industry:** %s", industry), "",
		"**Job Overview:**",
		fmt.Sprintf("We are seeking a qualified %s to join our team. The ideal candidate will have %s years of experience and strong expertise in the required technologies.", title, yoe), "",
		"**Key Responsibilities:**",
		"- Develop and maintain high-quality software and systems",
		"- Collaborate with cross-functional teams",
		"- Participate in code reviews and technical discussions",
		"- Contribute to project planning and estimation", "",
		"**Required Qualifications:**",
		fmt.Sprintf("- %s years of professional experience", yoe),
		"- Strong proficiency in core technologies",
		"- Bachelor's degree in Computer Science or related field (or equivalent experience)",
		"- Excellent problem-solving and communication skills",
	}

	var skills []string
	for _, s := range strings.Split(req.MustHaveSkills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) > 0 {
		lines = append(lines, "", "**Must-have skills:**")
		for _, s := range skills {
			lines = append(lines, fmt.Sprintf("- %s", s))
		}
	}

	lines = append(lines, "", "Join our team and help us build great products in a collaborative environment!")
	return strings.Join(lines, "\n")
}

// candidateDisplayName turns a resume filename into a salutation:
// "jane_doe.pdf" becomes "jane doe".
func candidateDisplayName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Candidate"
	}
	return name
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
