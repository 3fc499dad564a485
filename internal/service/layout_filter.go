package service

import (
	"regexp"
	"strings"

	"lingua-reader/internal/domain"
)

// Heuristic layout thresholds. These are tuned against the test fixtures,
// not derived from first principles; real PDF layouts vary in density and
// font scale, so each one is tunable on its own.
const (
	// headerZoneRatio marks the top band of a page: runs with
	// y > headerZoneRatio * pageHeight are running headers.
	headerZoneRatio = 0.90
	// footerZoneRatio marks the bottom band: runs with
	// y < footerZoneRatio * pageHeight are footers.
	footerZoneRatio = 0.10
	// footnoteHeightPt is the glyph size below which a run is treated as
	// footnote-scale rather than body text.
	footnoteHeightPt = 8.0
)

// patternRule is one tagged boilerplate pattern. Rules are kept as an
// explicit list so individual patterns can be added, removed, and tested
// independently.
type patternRule struct {
	name string
	re   *regexp.Regexp
}

var pageNumberRules = []patternRule{
	{name: "bare page number", re: regexp.MustCompile(`^\d+$`)},
	{name: "page label", re: regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`)},
}

var boilerplateRules = []patternRule{
	{name: "copyright line", re: regexp.MustCompile(`(?i)(©|copyright\b|all rights reserved)`)},
	{name: "chapter heading", re: regexp.MustCompile(`(?i)^chapter\s+\d+$`)},
	{name: "figure caption", re: regexp.MustCompile(`(?i)^figure\s+\d+(\.\d+)+`)},
}

// LayoutFilter discards text runs that are not narrative prose: running
// headers and footers, page numbers, boilerplate lines, and footnote-scale
// text. Each rule is independent; a run is dropped when any rule matches.
type LayoutFilter struct {
	logger domain.Logger
}

// NewLayoutFilter creates a new layout filter instance
func NewLayoutFilter(logger domain.Logger) *LayoutFilter {
	return &LayoutFilter{logger: logger}
}

// Filter returns the runs that survive every rule, in their input order.
func (f *LayoutFilter) Filter(runs []domain.TextRun, pageHeight float64) []domain.TextRun {
	kept := make([]domain.TextRun, 0, len(runs))
	for _, run := range runs {
		if rule, drop := f.excludes(run, pageHeight); drop {
			f.logger.Debug("Dropped text run", "rule", rule, "page", run.Page+1)
			continue
		}
		kept = append(kept, run)
	}
	return kept
}

// excludes reports whether a run matches any exclusion rule, and which one.
func (f *LayoutFilter) excludes(run domain.TextRun, pageHeight float64) (string, bool) {
	if pageHeight > 0 {
		if run.Y > headerZoneRatio*pageHeight {
			return "header zone", true
		}
		if run.Y < footerZoneRatio*pageHeight {
			return "footer zone", true
		}
	}

	trimmed := strings.TrimSpace(run.Text)
	for _, rule := range pageNumberRules {
		if rule.re.MatchString(trimmed) {
			return rule.name, true
		}
	}
	for _, rule := range boilerplateRules {
		if rule.re.MatchString(trimmed) {
			return rule.name, true
		}
	}

	if run.Height > 0 && run.Height < footnoteHeightPt {
		return "footnote scale", true
	}

	return "", false
}
