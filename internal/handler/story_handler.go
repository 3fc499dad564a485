package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"lingua-reader/internal/domain"
	"lingua-reader/internal/service"
	apperrors "lingua-reader/pkg/errors"

	"github.com/gorilla/mux"
)

// StoryHandler handles HTTP requests for story extraction and retrieval
type StoryHandler struct {
	storyService *service.StoryService
	logger       domain.Logger
}

// NewStoryHandler creates a new story handler instance
func NewStoryHandler(storyService *service.StoryService, logger domain.Logger) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		logger:       logger,
	}
}

// extractStoryResponse is the extraction result plus the ID of the saved
// story, when persistence succeeded.
type extractStoryResponse struct {
	domain.ExtractionResult
	StoryID string `json:"story_id,omitempty"`
}

// ExtractStory handles PDF uploads: runs the extraction pipeline and saves
// the resulting story for the authenticated user.
func (h *StoryHandler) ExtractStory(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeAppError(w, apperrors.NewValidationError("File is required"))
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document.pdf"
	}

	upload := domain.UploadedFile{
		Name:     originalName,
		Size:     header.Size,
		MimeType: header.Header.Get("Content-Type"),
		Content:  file,
	}

	result, story := h.storyService.ExtractAndSave(r.Context(), user.ID, upload, token)
	if !result.Success {
		writeJSON(w, statusForExtractionError(result.ErrorKind), result)
		return
	}

	response := extractStoryResponse{ExtractionResult: result}
	if story != nil {
		response.StoryID = story.ID
	}
	writeJSON(w, http.StatusOK, response)
}

// GetStories lists the authenticated user's stories
func (h *StoryHandler) GetStories(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	stories, err := h.storyService.List(user.ID, token)
	if err != nil {
		h.logger.Error("Failed to list stories", err, "user_id", user.ID)
		writeAppError(w, apperrors.NewInternalError("Failed to list stories", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"stories": stories})
}

// GetStory returns one of the authenticated user's stories
func (h *StoryHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, ok := GetTokenFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Token not found in context")
		return
	}

	storyID := mux.Vars(r)["id"]
	story, err := h.storyService.Get(storyID, user.ID, token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStoryNotFound):
			writeAppError(w, apperrors.NewNotFoundError("Story not found"))
		case errors.Is(err, domain.ErrAccessDenied):
			writeError(w, http.StatusForbidden, "Access denied")
		default:
			h.logger.Error("Failed to get story", err, "story_id", storyID)
			writeAppError(w, apperrors.NewInternalError("Failed to get story", err))
		}
		return
	}

	writeJSON(w, http.StatusOK, story)
}

// statusForExtractionError maps pipeline failure kinds to HTTP status codes.
// The kind itself travels in the body; the frontend maps it to one of five
// fixed message keys.
func statusForExtractionError(kind domain.ExtractionErrorKind) int {
	switch kind {
	case domain.ErrKindInvalidFileType:
		return http.StatusBadRequest
	case domain.ErrKindFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case domain.ErrKindTooManyPages, domain.ErrKindNoTextFound:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
