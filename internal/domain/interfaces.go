package domain

import (
	"context"
	"io"
)

// DocumentLoader opens a byte stream with the external rendering engine.
// Any engine satisfying this contract is interchangeable, which lets the
// pipeline be tested with synthetic TextRun fixtures.
type DocumentLoader interface {
	Open(ctx context.Context, content io.ReaderAt, size int64) (Document, error)
}

// Document is an open PDF exposing page count and per-page accessors.
type Document interface {
	NumPages() int
	Page(index int) (PageExtraction, error)
	Close() error
}

// StoryRepository persists extracted stories for a user.
type StoryRepository interface {
	Create(story *Story, token string) error
	GetByID(id string, token string) (*Story, error)
	GetByUserID(userID string, token string) ([]*Story, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetMaxUploadSizeMB() int
	GetMaxPDFPages() int
}
