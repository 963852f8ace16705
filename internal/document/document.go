package document

import (
	"errors"
	"fmt"
	"time"
)

// MaxFileSize is the advisory upload limit. Larger files are still
// converted; Metadata.Oversize reports it.
const MaxFileSize = 10 * 1024 * 1024

// Extension is the only supported input format.
const Extension = ".docx"

var (
	ErrUnsupportedFormat = errors.New("unsupported format: only .docx is accepted")
	ErrCorrupt           = errors.New("corrupt docx")
	ErrNotFound          = errors.New("file not found")
)

// Document represents an extracted document
type Document struct {
	Content  string
	Preview  string
	Metadata Metadata
}

// Metadata contains document metadata
type Metadata struct {
	Title          string
	SourcePath     string
	SourceFormat   string
	FileSizeBytes  int64
	ParagraphCount int
	WordCount      int
	Oversize       bool
	ConvertedAt    time.Time
}

// FileSizeHuman returns human-readable file size
func (m Metadata) FileSizeHuman() string {
	bytes := m.FileSizeBytes
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
