package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"lingua-reader/internal/domain"

	"github.com/google/uuid"
)

// StoryService runs the extraction pipeline for a user's upload and
// persists the resulting story.
type StoryService struct {
	pdfService *PDFService
	repository domain.StoryRepository
	logger     domain.Logger
	maxSizeMB  int
	maxPages   int
}

// NewStoryService creates a new story service instance
func NewStoryService(
	pdfService *PDFService,
	repository domain.StoryRepository,
	logger domain.Logger,
	maxSizeMB int,
	maxPages int,
) *StoryService {
	return &StoryService{
		pdfService: pdfService,
		repository: repository,
		logger:     logger,
		maxSizeMB:  maxSizeMB,
		maxPages:   maxPages,
	}
}

// ExtractAndSave processes the upload and, on success, stores the extracted
// story. Extraction failures are returned as-is; a persistence failure
// after successful extraction still returns the extracted text so the
// client can retry the save.
func (s *StoryService) ExtractAndSave(
	ctx context.Context,
	userID string,
	file domain.UploadedFile,
	token string,
) (domain.ExtractionResult, *domain.Story) {

	result := s.pdfService.ProcessPDF(ctx, file, s.maxSizeMB, s.maxPages)
	if !result.Success {
		s.logger.Info("Extraction failed",
			"user_id", userID,
			"file", file.Name,
			"error", string(result.ErrorKind),
		)
		return result, nil
	}

	story := &domain.Story{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        titleFromFilename(file.Name),
		OriginalName: file.Name,
		Text:         result.Text,
		PageCount:    result.PageCount,
		FileSize:     file.Size,
		CreatedAt:    time.Now().UTC(),
	}

	if err := story.Validate(); err != nil {
		s.logger.Error("Extracted story failed validation", err, "file", file.Name)
		return result, nil
	}

	if err := s.repository.Create(story, token); err != nil {
		s.logger.Error("Failed to save story", err, "story_id", story.ID, "user_id", userID)
		return result, nil
	}

	s.logger.Info("Story saved", "story_id", story.ID, "pages", story.PageCount)
	return result, story
}

// List returns the user's stories.
func (s *StoryService) List(userID string, token string) ([]*domain.Story, error) {
	return s.repository.GetByUserID(userID, token)
}

// Get returns one story, refusing access to another user's story.
func (s *StoryService) Get(id string, userID string, token string) (*domain.Story, error) {
	story, err := s.repository.GetByID(id, token)
	if err != nil {
		return nil, err
	}
	if story.UserID != userID {
		return nil, domain.ErrAccessDenied
	}
	return story, nil
}

// titleFromFilename derives a display title from the uploaded filename.
func titleFromFilename(name string) string {
	base := filepath.Base(name)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	title = strings.NewReplacer("_", " ", "-", " ").Replace(title)
	title = strings.TrimSpace(title)
	if title == "" {
		return "Untitled story"
	}
	return title
}
