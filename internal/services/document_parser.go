package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type DocumentParserService interface {
	ExtractText(filePath string) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractText turns an uploaded document into plain text. Supported formats
// are PDF, DOCX, and TXT, selected by file extension.
func (p *documentParserService) ExtractText(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return p.extractPDF(filePath)
	case ".docx":
		return p.extractDocx(filePath)
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return CleanText(string(content)), nil
	default:
		return "", fmt.Errorf("unsupported file format: %s", filepath.Ext(filePath))
	}
}

func (p *documentParserService) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return CleanText(text), nil
}

// xmlTag matches WordprocessingML markup left in the raw document content.
var xmlTag = regexp.MustCompile(`<[^>]+>`)

func (p *documentParserService) extractDocx(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := xmlTag.ReplaceAllString(content, " ")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return CleanText(text), nil
}

// CleanText normalizes extracted text: trims each line and drops empty ones.
func CleanText(text string) string {
	// Remove excessive whitespace
	text = strings.TrimSpace(text)

	// Replace multiple newlines with double newline
	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
