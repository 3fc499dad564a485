package service

import (
	"context"
	"io"

	"lingua-reader/internal/domain"
)

// Mock implementations shared by the service package tests.

type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

// mockDocument is a synthetic open document built from fixture pages.
type mockDocument struct {
	numPages int
	pages    []domain.PageExtraction
	pageErr  error
	closed   bool
}

func (d *mockDocument) NumPages() int { return d.numPages }

func (d *mockDocument) Page(index int) (domain.PageExtraction, error) {
	if d.pageErr != nil {
		return domain.PageExtraction{}, d.pageErr
	}
	return d.pages[index], nil
}

func (d *mockDocument) Close() error {
	d.closed = true
	return nil
}

// mockLoader returns a fixed document or error and counts open calls.
type mockLoader struct {
	doc       *mockDocument
	openErr   error
	openCalls int
}

func (l *mockLoader) Open(ctx context.Context, content io.ReaderAt, size int64) (domain.Document, error) {
	l.openCalls++
	if l.openErr != nil {
		return nil, l.openErr
	}
	return l.doc, nil
}

// fixtureDoc builds a mock document whose page count matches its pages.
func fixtureDoc(pages ...domain.PageExtraction) *mockDocument {
	return &mockDocument{numPages: len(pages), pages: pages}
}

// run builds a body-text run at the given position.
func run(text string, y float64) domain.TextRun {
	return domain.TextRun{Text: text, X: 72, Y: y, Width: 200, Height: 12}
}
