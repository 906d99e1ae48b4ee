package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FileTypeResume         = "resume"
	FileTypeJobDescription = "job_description"
)

// Document records an uploaded file and the plain text extracted from it.
// Only uploads are persisted; match results are computed per request and
// never stored.
type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FileType         string    `gorm:"type:text" json:"file_type"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	ExtractedText    string    `gorm:"type:text" json:"extracted_text"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
