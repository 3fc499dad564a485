package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"lingua-reader/internal/domain"
	"lingua-reader/internal/service"
	apperrors "lingua-reader/pkg/errors"
)

// PDFHandler handles HTTP requests for PDF helper operations
type PDFHandler struct {
	pdfService *service.PDFService
	logger     domain.Logger
}

// NewPDFHandler creates a new PDF handler instance
func NewPDFHandler(pdfService *service.PDFService, logger domain.Logger) *PDFHandler {
	return &PDFHandler{
		pdfService: pdfService,
		logger:     logger,
	}
}

// GetFileInfo returns a lightweight preview of an uploaded PDF: name, size
// and page count. Lookup failures are reported as a null info field rather
// than an error; this backs a non-critical preview in the upload dialog.
func (h *PDFHandler) GetFileInfo(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, apperrors.NewValidationError("File is required"))
		return
	}
	defer file.Close()

	name := strings.TrimSpace(filepath.Base(header.Filename))
	if name == "" || name == "." {
		name = "document.pdf"
	}

	info := h.pdfService.GetFileInfo(r.Context(), domain.UploadedFile{
		Name:     name,
		Size:     header.Size,
		MimeType: header.Header.Get("Content-Type"),
		Content:  file,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{"info": info})
}
