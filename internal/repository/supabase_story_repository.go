package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lingua-reader/internal/domain"
)

// SupabaseStoryRepository implements the domain.StoryRepository interface
type SupabaseStoryRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

// NewSupabaseStoryRepository creates a new Supabase story repository
func NewSupabaseStoryRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.StoryRepository {
	return &SupabaseStoryRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Create inserts a story row. Extracted text can carry stray control
// characters from the PDF engine; NULL bytes in particular make PostgreSQL
// reject the row (22P05), so the text is scrubbed before insert.
func (r *SupabaseStoryRepository) Create(story *domain.Story, token string) error {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"id":            story.ID,
		"user_id":       story.UserID,
		"title":         scrubText(story.Title),
		"original_name": scrubText(story.OriginalName),
		"text":          scrubText(story.Text),
		"page_count":    story.PageCount,
		"file_size":     story.FileSize,
		"created_at":    story.CreatedAt.Format(time.RFC3339),
	}

	_, _, err = client.From("stories").Insert(row, false, "", "", "").Execute()
	if err != nil {
		r.logger.Error("Failed to insert story in Supabase", err,
			"story_id", story.ID,
			"text_length", len(story.Text),
		)
		return fmt.Errorf("failed to create story: %w", err)
	}

	r.logger.Info("Story created", "id", story.ID, "user_id", story.UserID)
	return nil
}

// GetByID retrieves one story
func (r *SupabaseStoryRepository) GetByID(id string, token string) (*domain.Story, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("stories").
		Select("*", "", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get story: %w", err)
	}

	var rows []storyRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrStoryNotFound
	}

	return rows[0].toStory(), nil
}

// GetByUserID retrieves all stories for a user, newest first
func (r *SupabaseStoryRepository) GetByUserID(userID string, token string) ([]*domain.Story, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("stories").
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get stories: %w", err)
	}

	var rows []storyRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	stories := make([]*domain.Story, 0, len(rows))
	for _, row := range rows {
		stories = append(stories, row.toStory())
	}
	return stories, nil
}

// storyRow mirrors the stories table shape
type storyRow struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Title        string `json:"title"`
	OriginalName string `json:"original_name"`
	Text         string `json:"text"`
	PageCount    int    `json:"page_count"`
	FileSize     int64  `json:"file_size"`
	CreatedAt    string `json:"created_at"`
}

func (row storyRow) toStory() *domain.Story {
	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	return &domain.Story{
		ID:           row.ID,
		UserID:       row.UserID,
		Title:        row.Title,
		OriginalName: row.OriginalName,
		Text:         row.Text,
		PageCount:    row.PageCount,
		FileSize:     row.FileSize,
		CreatedAt:    createdAt,
	}
}

// scrubText removes NULL bytes and non-whitespace control characters that
// PostgreSQL JSONB cannot store.
func scrubText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0x00 {
			continue
		}
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			continue
		}
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
