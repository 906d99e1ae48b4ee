package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"recruitai/recruitment-agent/internal/models"
	"recruitai/recruitment-agent/internal/repositories"
)

type DocumentHandler struct {
	docRepo repositories.DocumentRepository
}

func NewDocumentHandler(docRepo repositories.DocumentRepository) *DocumentHandler {
	return &DocumentHandler{
		docRepo: docRepo,
	}
}

// HandleGetDocument handles GET /documents/:id: returns a stored upload's
// metadata and extracted text.
func (h *DocumentHandler) HandleGetDocument(c *fiber.Ctx) error {
	idParam := c.Params("id")
	docID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID format",
		})
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Document not found",
		})
	}

	return c.JSON(models.DocumentResponse{
		ID:            doc.ID.String(),
		OriginalName:  doc.OriginalFileName,
		FileType:      doc.FileType,
		ExtractedText: doc.ExtractedText,
	})
}
