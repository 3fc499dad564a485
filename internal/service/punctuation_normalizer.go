package service

import "regexp"

// Spacing repair rules. Each rule inserts exactly one space where spacing
// is missing and matches nothing once that space exists, which makes the
// whole pass idempotent.
//
// The sentence-punctuation rule excludes following punctuation, closing
// quotes, and closing brackets: `..."`, `.)`, and ellipses are already
// correct, and inserting a space there would either corrupt them or put a
// space immediately inside a quoted span.
var (
	reAfterSentencePunct = regexp.MustCompile(`([.,!?])([^\s.,!?)"'\]}])`)
	reBeforeOpenParen    = regexp.MustCompile(`(\w)\(`)
	reAfterCloseParen    = regexp.MustCompile(`\)(\w)`)
	reBeforeOpenQuote    = regexp.MustCompile(`(\w)("[^"]*")`)
	reAfterCloseQuote    = regexp.MustCompile(`("[^"]*")(\w)`)
)

// FixPunctuationSpacing repairs missing spaces around sentence punctuation,
// parentheses, and double quotes in one pass over the text. Spacing inside
// parentheses and quote marks is left untouched, and text that is already
// correctly spaced comes back unchanged.
func FixPunctuationSpacing(text string) string {
	// Space after . , ! ? when glued to the next word.
	text = reAfterSentencePunct.ReplaceAllString(text, "$1 $2")

	// Space outside parentheses, never inside them.
	text = reBeforeOpenParen.ReplaceAllString(text, "$1 (")
	text = reAfterCloseParen.ReplaceAllString(text, ") $1")

	// Space outside quoted spans. Quotes are paired left to right; the
	// span's interior is never modified.
	text = reBeforeOpenQuote.ReplaceAllString(text, "$1 $2")
	text = reAfterCloseQuote.ReplaceAllString(text, "$1 $2")

	return text
}
