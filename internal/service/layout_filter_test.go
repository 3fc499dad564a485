package service

import (
	"testing"

	"lingua-reader/internal/domain"
)

const testPageHeight = 800.0

func filterTexts(t *testing.T, runs []domain.TextRun) []string {
	t.Helper()
	filter := NewLayoutFilter(&mockLogger{})
	kept := filter.Filter(runs, testPageHeight)
	texts := make([]string, 0, len(kept))
	for _, r := range kept {
		texts = append(texts, r.Text)
	}
	return texts
}

// TestLayoutFilter_ZoneBoundaries tests position-based exclusion:
// - a run at 95% of page height is always excluded (header zone)
// - a run at 50% of page height is never excluded by position alone
// - a run at 5% of page height is always excluded (footer zone)
func TestLayoutFilter_ZoneBoundaries(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		kept bool
	}{
		{name: "header zone", y: 0.95 * testPageHeight, kept: false},
		{name: "just above header boundary", y: 0.91 * testPageHeight, kept: false},
		{name: "mid page", y: 0.50 * testPageHeight, kept: true},
		{name: "just above footer boundary", y: 0.11 * testPageHeight, kept: true},
		{name: "footer zone", y: 0.05 * testPageHeight, kept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := filterTexts(t, []domain.TextRun{run("Some narrative text", tt.y)})
			if kept := len(texts) == 1; kept != tt.kept {
				t.Fatalf("run at y=%.0f: kept=%v, want kept=%v", tt.y, kept, tt.kept)
			}
		})
	}
}

// TestLayoutFilter_PatternRules tests text-based exclusion independent of
// position: every fixture run sits at mid-page height.
func TestLayoutFilter_PatternRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		kept bool
	}{
		{name: "bare page number", text: "42", kept: false},
		{name: "padded page number", text: "  7  ", kept: false},
		{name: "page label mid-page", text: "Page 2", kept: false},
		{name: "page label with total", text: "Page 2 of 10", kept: false},
		{name: "lowercase page label", text: "page 3", kept: false},
		{name: "copyright line", text: "Copyright 2019 Example Press", kept: false},
		{name: "copyright symbol", text: "© 2019 Example Press", kept: false},
		{name: "chapter heading", text: "Chapter 3", kept: false},
		{name: "figure caption", text: "Figure 2.1 The water cycle", kept: false},
		{name: "number inside prose", text: "There were 42 of them", kept: true},
		{name: "page word inside prose", text: "He turned the page 2 times", kept: true},
		{name: "chapter reference in prose", text: "Chapter 3 was her favorite", kept: true},
		{name: "plain narrative", text: "Once upon a time", kept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := filterTexts(t, []domain.TextRun{run(tt.text, 400)})
			if kept := len(texts) == 1; kept != tt.kept {
				t.Fatalf("%q: kept=%v, want kept=%v", tt.text, kept, tt.kept)
			}
		})
	}
}

func TestLayoutFilter_FootnoteHeight(t *testing.T) {
	footnote := domain.TextRun{Text: "1. See appendix for details", X: 72, Y: 200, Width: 180, Height: 6}
	body := domain.TextRun{Text: "The story continued", X: 72, Y: 400, Width: 180, Height: 12}

	texts := filterTexts(t, []domain.TextRun{body, footnote})
	if len(texts) != 1 || texts[0] != "The story continued" {
		t.Fatalf("expected only body text to survive, got %v", texts)
	}
}

// TestLayoutFilter_OrderPreservation tests that the output is a subsequence
// of the input in the same order.
func TestLayoutFilter_OrderPreservation(t *testing.T) {
	runs := []domain.TextRun{
		run("Running header", 0.95 * testPageHeight),
		run("First ", 600),
		run("second ", 580),
		run("14", 400),
		run("third ", 300),
		run("fourth", 200),
		run("Page 9 of 12", 0.05 * testPageHeight),
	}

	texts := filterTexts(t, runs)

	want := []string{"First ", "second ", "third ", "fourth"}
	if len(texts) != len(want) {
		t.Fatalf("expected %d surviving runs, got %d: %v", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("run %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestLayoutFilter_EmptyInput(t *testing.T) {
	filter := NewLayoutFilter(&mockLogger{})
	if kept := filter.Filter(nil, testPageHeight); len(kept) != 0 {
		t.Fatalf("expected no runs, got %d", len(kept))
	}
}
