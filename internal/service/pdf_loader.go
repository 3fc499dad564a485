package service

import (
	"context"
	"fmt"
	"io"

	"lingua-reader/internal/domain"

	"github.com/ledongthuc/pdf"
)

// defaultPageHeightPt is US Letter, used when a page has no usable MediaBox.
const defaultPageHeightPt = 792.0

// PDFDocumentLoader implements domain.DocumentLoader on top of the
// ledongthuc/pdf engine. Opening a document parses the cross-reference
// table only; page content streams are decoded lazily per page, so the
// page count is available without a full text parse.
type PDFDocumentLoader struct {
	logger domain.Logger
}

// NewPDFDocumentLoader creates a new PDF document loader
func NewPDFDocumentLoader(logger domain.Logger) *PDFDocumentLoader {
	return &PDFDocumentLoader{logger: logger}
}

// Open parses the document structure. The engine panics on some malformed
// files; panics are converted to errors so callers only ever see an error
// return.
func (l *PDFDocumentLoader) Open(ctx context.Context, content io.ReaderAt, size int64) (doc domain.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf engine panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(content, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	l.logger.Debug("PDF document opened", "pages", reader.NumPage())
	return &pdfDocument{reader: reader}, nil
}

type pdfDocument struct {
	reader *pdf.Reader
}

func (d *pdfDocument) NumPages() int {
	return d.reader.NumPage()
}

// Page returns the ordered text runs and viewport height for one page.
// Runs come back in content-stream order, which is not guaranteed to be
// top-to-bottom reading order.
func (d *pdfDocument) Page(index int) (page domain.PageExtraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf engine panic on page %d: %v", index+1, r)
		}
	}()

	p := d.reader.Page(index + 1) // engine pages are 1-indexed
	if p.V.IsNull() {
		return domain.PageExtraction{}, fmt.Errorf("page %d is null", index+1)
	}

	content := p.Content()
	runs := make([]domain.TextRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, domain.TextRun{
			Text:   t.S,
			X:      t.X,
			Y:      t.Y,
			Width:  t.W,
			Height: t.FontSize,
			Page:   index,
		})
	}

	return domain.PageExtraction{Runs: runs, Height: mediaBoxHeight(p)}, nil
}

func (d *pdfDocument) Close() error {
	return nil
}

// mediaBoxHeight reads the page height from the MediaBox [llx lly urx ury]
// array.
func mediaBoxHeight(p pdf.Page) float64 {
	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Kind() != pdf.Array || box.Len() != 4 {
		return defaultPageHeightPt
	}
	lly := numericValue(box.Index(1))
	ury := numericValue(box.Index(3))
	if ury <= lly {
		return defaultPageHeightPt
	}
	return ury - lly
}

func numericValue(v pdf.Value) float64 {
	switch v.Kind() {
	case pdf.Integer:
		return float64(v.Int64())
	case pdf.Real:
		return v.Float64()
	}
	return 0
}
