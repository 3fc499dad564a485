package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"lingua-reader/internal/domain"
)

// pdfMimeType is the only MIME type accepted for upload.
const pdfMimeType = "application/pdf"

// PDFService orchestrates the extraction pipeline: validate, load, collect,
// filter, reconstruct, normalize. Every call is a stateless single-shot run
// over one input; there is no cross-call caching and no retry. Loader
// errors are converted to typed failure results here and nowhere else.
type PDFService struct {
	loader        domain.DocumentLoader
	filter        *LayoutFilter
	reconstructor *ParagraphReconstructor
	logger        domain.Logger
}

// NewPDFService creates a new PDF service instance
func NewPDFService(loader domain.DocumentLoader, logger domain.Logger) *PDFService {
	return &PDFService{
		loader:        loader,
		filter:        NewLayoutFilter(logger),
		reconstructor: NewParagraphReconstructor(),
		logger:        logger,
	}
}

// ValidateFile checks MIME type and size before any engine I/O. The page
// limit is deliberately not checked here: the page count is unknown until
// the document is opened, so ExtractText enforces it.
func (s *PDFService) ValidateFile(file domain.UploadedFile, maxSizeMB int, maxPages int) domain.ValidationResult {
	info := domain.ValidationFileInfo{
		Name: file.Name,
		Size: s.FormatFileSize(file.Size),
	}

	if file.MimeType != pdfMimeType {
		return domain.ValidationResult{ErrorKind: domain.ErrKindInvalidFileType, FileInfo: info}
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return domain.ValidationResult{ErrorKind: domain.ErrKindFileTooLarge, FileInfo: info}
	}

	return domain.ValidationResult{IsValid: true, FileInfo: info}
}

// ExtractText runs the full pipeline on an already-validated file. When the
// document exceeds maxPages the call fails before any page is collected,
// but the true page count is still reported.
func (s *PDFService) ExtractText(ctx context.Context, file domain.UploadedFile, maxPages int) domain.ExtractionResult {
	doc, err := s.loader.Open(ctx, file.Content, file.Size)
	if err != nil {
		s.logger.Error("Failed to open PDF document", err, "file", file.Name)
		return domain.ExtractionResult{ErrorKind: domain.ErrKindProcessingFailed}
	}
	defer doc.Close()

	pageCount := doc.NumPages()
	if maxPages > 0 && pageCount > maxPages {
		return domain.ExtractionResult{PageCount: pageCount, ErrorKind: domain.ErrKindTooManyPages}
	}

	// Collect and filter page by page; the PageExtraction is discarded as
	// soon as the page has been reconstructed.
	pages := make([]domain.PageExtraction, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		page, err := doc.Page(i)
		if err != nil {
			s.logger.Error("Failed to read PDF page", err, "file", file.Name, "page", i+1)
			return domain.ExtractionResult{ErrorKind: domain.ErrKindProcessingFailed}
		}
		page.Runs = s.filter.Filter(page.Runs, page.Height)
		pages = append(pages, page)
	}

	text := strings.TrimSpace(FixPunctuationSpacing(s.reconstructor.Reconstruct(pages)))
	if text == "" {
		return domain.ExtractionResult{PageCount: pageCount, ErrorKind: domain.ErrKindNoTextFound}
	}

	return domain.ExtractionResult{Success: true, Text: text, PageCount: pageCount}
}

// ProcessPDF validates first and short-circuits before touching the loader
// on any validation failure.
func (s *PDFService) ProcessPDF(ctx context.Context, file domain.UploadedFile, maxSizeMB int, maxPages int) domain.ExtractionResult {
	if validation := s.ValidateFile(file, maxSizeMB, maxPages); !validation.IsValid {
		return domain.ExtractionResult{ErrorKind: validation.ErrorKind}
	}
	return s.ExtractText(ctx, file, maxPages)
}

// FormatFileSize renders a byte count as Bytes, KB, MB or GB with one
// decimal place for non-integer magnitudes.
func (s *PDFService) FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	units := []string{"Bytes", "KB", "MB", "GB"}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp < 0 {
		exp = 0
	}
	if exp >= len(units) {
		exp = len(units) - 1
	}

	value := math.Round(float64(bytes)/math.Pow(1024, float64(exp))*10) / 10
	if value == math.Trunc(value) {
		return fmt.Sprintf("%d %s", int64(value), units[exp])
	}
	return fmt.Sprintf("%.1f %s", value, units[exp])
}

// GetFileInfo opens the document only to read its page count. This backs a
// best-effort preview, so every failure maps to nil rather than a typed
// error.
func (s *PDFService) GetFileInfo(ctx context.Context, file domain.UploadedFile) *domain.PDFFileInfo {
	doc, err := s.loader.Open(ctx, file.Content, file.Size)
	if err != nil {
		s.logger.Debug("File info lookup failed", "file", file.Name, "error", err)
		return nil
	}
	defer doc.Close()

	return &domain.PDFFileInfo{
		Name:  file.Name,
		Size:  file.Size,
		Pages: doc.NumPages(),
	}
}
