package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitai/recruitment-agent/internal/models"
	"recruitai/recruitment-agent/internal/services"
)

func TestHandleGenerateJD_Template(t *testing.T) {
	app, _ := newTestApp(t)

	payload, err := json.Marshal(models.GenerateJDRequest{
		Title:          "Backend Engineer",
		Company:        "Acme",
		MustHaveSkills: "Go, PostgreSQL",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-jd", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.JobDescriptionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Contains(t, result.JobDescription, "**Backend Engineer**")
	assert.Contains(t, result.JobDescription, "- Go")
}

func TestHandleGenerateJD_InvalidPayload(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-jd", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleUploadJD_ReturnsExtractedText(t *testing.T) {
	app, docRepo := newTestApp(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("jd_file", "posting.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Requirements:\nPython\nDjango"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-jd", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.JobDescriptionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Requirements:\nPython\nDjango", result.JobDescription)

	require.Len(t, docRepo.docs, 1)
	for _, doc := range docRepo.docs {
		assert.Equal(t, models.FileTypeJobDescription, doc.FileType)
	}
}

func TestHandleUploadJD_MissingFile(t *testing.T) {
	app, _ := newTestApp(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-jd", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleUploadJD_RemovesStoredFileWhenExtractionFails(t *testing.T) {
	docRepo := newMemoryDocRepo()
	uploadDir := t.TempDir()
	storage := services.NewStorageService(uploadDir)
	require.NoError(t, storage.EnsureUploadDir())
	drafts := services.NewDraftService(nil, 1)
	jdHandler := NewJDHandler(drafts, services.NewDocumentParserService(), storage, docRepo, 1<<20)

	app := fiber.New()
	app.Post("/upload-jd", jdHandler.HandleUploadJD)

	// A .docx that is not a valid archive fails extraction after it has
	// been stored.
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "posting.docx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a real docx"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-jd", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed extraction must not leave the upload behind")
	assert.Empty(t, docRepo.docs)
}

func TestHandleGetDocument(t *testing.T) {
	app, docRepo := newTestApp(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "posting.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Go required"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload-jd", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var docID string
	for id := range docRepo.docs {
		docID = id.String()
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+docID, nil)
	getResp, err := app.Test(getReq, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	var doc models.DocumentResponse
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&doc))
	assert.Equal(t, "posting.txt", doc.OriginalName)
	assert.Equal(t, "Go required", doc.ExtractedText)
}

func TestHandleGetDocument_InvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/not-a-uuid", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
