package domain

import "time"

// Story is an extracted narrative persisted for a user. Text is the
// normalized prose produced by the extraction pipeline; the reader and
// translation features consume it as-is.
type Story struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	OriginalName string    `json:"original_name"`
	Text         string    `json:"text"`
	PageCount    int       `json:"page_count"`
	FileSize     int64     `json:"file_size"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks that the story has the fields required for persistence.
func (s *Story) Validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "id", Message: "story ID is required"}
	}
	if s.UserID == "" {
		return &ValidationError{Field: "user_id", Message: "user ID is required"}
	}
	if s.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if s.Text == "" {
		return &ValidationError{Field: "text", Message: "text is required"}
	}
	if s.PageCount < 0 {
		return &ValidationError{Field: "page_count", Message: "page count cannot be negative"}
	}
	return nil
}
