package service

import (
	"math"
	"strings"

	"lingua-reader/internal/domain"
)

// paragraphGapPt is the vertical distance between consecutive runs beyond
// which a paragraph break is inserted. Fixture-tuned; roughly one and a
// half body-text line heights.
const paragraphGapPt = 18.0

// paragraphSeparator separates reconstructed prose blocks.
const paragraphSeparator = "\n\n"

// ParagraphReconstructor merges filtered text runs back into
// paragraph-structured prose. Runs arrive at word or line granularity and
// are concatenated verbatim; only vertical gaps and page boundaries
// introduce separators.
type ParagraphReconstructor struct{}

// NewParagraphReconstructor creates a new paragraph reconstructor instance
func NewParagraphReconstructor() *ParagraphReconstructor {
	return &ParagraphReconstructor{}
}

// Reconstruct joins all pages into one document string. A page boundary is
// always a paragraph break, regardless of vertical positions.
func (r *ParagraphReconstructor) Reconstruct(pages []domain.PageExtraction) string {
	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		if text := r.reconstructPage(page.Runs); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, paragraphSeparator)
}

// reconstructPage walks one page's runs in emission order and inserts a
// paragraph separator wherever the vertical delta to the previous run
// exceeds the gap threshold.
func (r *ParagraphReconstructor) reconstructPage(runs []domain.TextRun) string {
	var b strings.Builder
	prevY := math.NaN()
	for _, run := range runs {
		if !math.IsNaN(prevY) && math.Abs(run.Y-prevY) > paragraphGapPt {
			b.WriteString(paragraphSeparator)
		}
		b.WriteString(run.Text)
		prevY = run.Y
	}
	return strings.TrimSpace(b.String())
}
