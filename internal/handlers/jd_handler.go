package handlers

import (
	"log"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"recruitai/recruitment-agent/internal/models"
	"recruitai/recruitment-agent/internal/repositories"
	"recruitai/recruitment-agent/internal/services"
)

type JDHandler struct {
	draftService   services.DraftService
	parserService  services.DocumentParserService
	storageService services.StorageService
	docRepo        repositories.DocumentRepository
	maxFileSize    int64
}

func NewJDHandler(
	draftService services.DraftService,
	parserService services.DocumentParserService,
	storageService services.StorageService,
	docRepo repositories.DocumentRepository,
	maxFileSize int64,
) *JDHandler {
	return &JDHandler{
		draftService:   draftService,
		parserService:  parserService,
		storageService: storageService,
		docRepo:        docRepo,
		maxFileSize:    maxFileSize,
	}
}

// HandleGenerateJD handles POST /generate-jd: drafts a job description from
// a structured request.
func (h *JDHandler) HandleGenerateJD(c *fiber.Ctx) error {
	var req models.GenerateJDRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	jd := h.draftService.GenerateJobDescription(c.Context(), req)

	return c.JSON(models.JobDescriptionResponse{JobDescription: jd})
}

// HandleUploadJD handles POST /upload-jd: stores the uploaded JD file and
// returns its extracted text.
func (h *JDHandler) HandleUploadJD(c *fiber.Ctx) error {
	file, err := formFile(c, "file", "jd_file")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Provide a JD file under field 'file' or 'jd_file'.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "JD file too large",
		})
	}

	text, _, err := saveAndExtract(h.storageService, h.parserService, h.docRepo, file, models.FileTypeJobDescription)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.JobDescriptionResponse{JobDescription: text})
}

// formFile returns the first file uploaded under any of the given field
// names. Older frontends used different names for the same field.
func formFile(c *fiber.Ctx, names ...string) (*multipart.FileHeader, error) {
	var err error
	for _, name := range names {
		var file *multipart.FileHeader
		if file, err = c.FormFile(name); err == nil && file != nil {
			return file, nil
		}
	}
	return nil, err
}

// saveAndExtract stores an upload, records it, and returns the extracted
// text with the created document. The stored file is removed again when
// extraction or the record insert fails.
func saveAndExtract(
	storage services.StorageService,
	parser services.DocumentParserService,
	docRepo repositories.DocumentRepository,
	file *multipart.FileHeader,
	fileType string,
) (string, *models.Document, error) {
	filename, filePath, err := storage.SaveFile(file, fileType)
	if err != nil {
		return "", nil, err
	}

	text, err := parser.ExtractText(filePath)
	if err != nil {
		if delErr := storage.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️ Failed to remove stored file %s: %v\n", filename, delErr)
		}
		return "", nil, err
	}

	doc := &models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FileType:         fileType,
		FilePath:         filePath,
		ExtractedText:    text,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := docRepo.Create(doc); err != nil {
		if delErr := storage.DeleteFile(filename); delErr != nil {
			log.Printf("⚠️ Failed to remove stored file %s: %v\n", filename, delErr)
		}
		return "", nil, err
	}

	return text, doc, nil
}
