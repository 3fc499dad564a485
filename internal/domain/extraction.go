package domain

import "io"

// ExtractionErrorKind identifies why an extraction or validation call failed.
// The frontend maps each kind to a fixed user-facing message key.
type ExtractionErrorKind string

const (
	ErrKindInvalidFileType  ExtractionErrorKind = "invalid_file_type"
	ErrKindFileTooLarge     ExtractionErrorKind = "file_too_large"
	ErrKindTooManyPages     ExtractionErrorKind = "too_many_pages"
	ErrKindNoTextFound      ExtractionErrorKind = "no_text_found"
	ErrKindProcessingFailed ExtractionErrorKind = "processing_failed"
)

// UploadedFile describes a file received from the client. Content is an
// io.ReaderAt so the document can be opened without buffering it twice;
// multipart uploads satisfy this directly.
type UploadedFile struct {
	Name     string
	Size     int64
	MimeType string
	Content  io.ReaderAt
}

// ValidationFileInfo carries the name and human-readable size included in
// every validation result, valid or not.
type ValidationFileInfo struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// ValidationResult is the outcome of pre-flight file validation.
type ValidationResult struct {
	IsValid   bool                `json:"is_valid"`
	ErrorKind ExtractionErrorKind `json:"error,omitempty"`
	FileInfo  ValidationFileInfo  `json:"file_info"`
}

// TextRun is a positioned text fragment emitted by the rendering engine.
// Coordinates are PDF user space: origin bottom-left, y grows upward.
// Height is the glyph size and serves as a proxy for font size.
type TextRun struct {
	Text   string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Page   int
}

// PageExtraction holds one page's ordered runs and its viewport height.
// It is discarded once the page has been reconstructed into prose.
type PageExtraction struct {
	Runs   []TextRun
	Height float64
}

// ExtractionResult is the sole artifact returned by the extraction pipeline.
// Text is non-empty whenever Success is true.
type ExtractionResult struct {
	Success   bool                `json:"success"`
	Text      string              `json:"text,omitempty"`
	PageCount int                 `json:"page_count,omitempty"`
	ErrorKind ExtractionErrorKind `json:"error,omitempty"`
}

// PDFFileInfo is the lightweight preview returned by GetFileInfo.
type PDFFileInfo struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages"`
}
