package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lingua-reader/internal/service"
)

func newTestRouter(authMiddleware func(http.Handler) http.Handler) http.Handler {
	logger := NewMockHandlerLogger()
	pdfService := service.NewPDFService(&stubLoader{}, logger)
	storyService := service.NewStoryService(pdfService, newMockStoryRepository(), logger, 5, 100)

	storyHandler := NewStoryHandler(storyService, logger)
	pdfHandler := NewPDFHandler(pdfService, logger)

	return NewRouter(storyHandler, pdfHandler, authMiddleware)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(func(next http.Handler) http.Handler { return next })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_ProtectedRoutesUseMiddleware(t *testing.T) {
	client := &mockSupabaseClient{}
	router := newTestRouter(AuthMiddleware(client, NewMockHandlerLogger()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stories", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

// The file info preview is reachable without credentials.
func TestNewRouter_FileInfoNeedsNoAuth(t *testing.T) {
	client := &mockSupabaseClient{}
	router := newTestRouter(AuthMiddleware(client, NewMockHandlerLogger()))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files/info", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	// No multipart body, so the handler itself rejects the request; an auth
	// failure would have produced 401 instead.
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
