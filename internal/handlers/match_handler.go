package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"recruitai/recruitment-agent/internal/matcher"
	"recruitai/recruitment-agent/internal/models"
	"recruitai/recruitment-agent/internal/repositories"
	"recruitai/recruitment-agent/internal/services"
)

type MatchHandler struct {
	matchStrategy  matcher.Matcher
	draftService   services.DraftService
	parserService  services.DocumentParserService
	storageService services.StorageService
	docRepo        repositories.DocumentRepository
	maxFileSize    int64
	maxResumes     int
}

func NewMatchHandler(
	matchStrategy matcher.Matcher,
	draftService services.DraftService,
	parserService services.DocumentParserService,
	storageService services.StorageService,
	docRepo repositories.DocumentRepository,
	maxFileSize int64,
	maxResumes int,
) *MatchHandler {
	if maxResumes <= 0 {
		maxResumes = matcher.DefaultMaxResumes
	}
	return &MatchHandler{
		matchStrategy:  matchStrategy,
		draftService:   draftService,
		parserService:  parserService,
		storageService: storageService,
		docRepo:        docRepo,
		maxFileSize:    maxFileSize,
		maxResumes:     maxResumes,
	}
}

// HandleEvaluateCandidates handles POST /evaluate-candidates: it stores the
// uploaded resumes, extracts their text, runs the matching strategy against
// the submitted job description, and drafts follow-up emails for the ranked
// results.
func (h *MatchHandler) HandleEvaluateCandidates(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jdText := strings.TrimSpace(firstValue(form.Value, "jd_text", "job_description"))
	if jdText == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Missing job description (jd_text).",
		})
	}

	files := append(form.File["resumes"], form.File["files"]...)
	if len(files) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "No resumes uploaded (use field 'resumes' or 'files').",
		})
	}

	// Enforce the cap before any upload is stored or recorded, so a
	// rejected batch leaves nothing behind.
	if len(files) > h.maxResumes {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Please upload at most %d resumes.", h.maxResumes),
		})
	}

	// Store and extract each resume in submission order; order is the
	// ranking tie-breaker.
	resumes := make([]matcher.Resume, 0, len(files))
	for _, file := range files {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Resume %s too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}

		text, _, err := saveAndExtract(h.storageService, h.parserService, h.docRepo, file, models.FileTypeResume)
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to process resume %s: %v", file.Filename, err),
			})
		}

		name := file.Filename
		if name == "" {
			name = "candidate"
		}
		resumes = append(resumes, matcher.Resume{Name: name, Text: text})
	}

	results, err := h.matchStrategy.MatchCandidates(c.Context(), jdText, resumes)
	if err != nil {
		return matchErrorResponse(c, err)
	}

	response := models.MatchResponse{
		Results:         results,
		RejectionEmails: make([]models.RejectionEmail, 0, len(results)),
	}
	for _, result := range results {
		if result.IsBestCandidate {
			response.BestCandidate = result.Filename
			response.InterviewEmail = h.draftService.InterviewEmail(c.Context(), result.Filename, jdText)
			continue
		}
		response.RejectionEmails = append(response.RejectionEmails, models.RejectionEmail{
			Name:  result.Filename,
			Email: h.draftService.RejectionEmail(c.Context(), result.Filename),
		})
	}

	return c.JSON(response)
}

// matchErrorResponse maps the engine's validation failures to 422; anything
// else is an internal defect.
func matchErrorResponse(c *fiber.Ctx, err error) error {
	var tooMany *matcher.TooManyResumesError
	var emptyInput *matcher.EmptyInputError
	var emptySkills *matcher.EmptySkillSetError

	switch {
	case errors.As(err, &tooMany):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("Please upload at most %d resumes.", tooMany.Limit),
		})
	case errors.As(err, &emptyInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": emptyInput.Error(),
		})
	case errors.As(err, &emptySkills):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "The job description yields no skill requirements. Please provide a more specific posting.",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

func firstValue(values map[string][]string, names ...string) string {
	for _, name := range names {
		if vs := values[name]; len(vs) > 0 && vs[0] != "" {
			return vs[0]
		}
	}
	return ""
}
