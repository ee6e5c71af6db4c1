package search

import "regexp"

// HighlightOpen and HighlightClose wrap matched terms in HTML output.
const (
	HighlightOpen  = `<span class="highlight">`
	HighlightClose = `</span>`
)

// HighlightFunc wraps every case-insensitive occurrence of the query in
// text using wrap. PHRASE wraps the trimmed phrase; AND and OR wrap each term
// in its own pass over the already-wrapped text, so overlapping terms can
// nest or wrap inside earlier markup.
func HighlightFunc(text string, q Query, wrap func(string) string) string {
	var patterns []string
	if q.Mode == ModePhrase {
		if p := q.Phrase(); p != "" {
			patterns = []string{p}
		}
	} else {
		patterns = q.Terms()
	}

	for _, p := range patterns {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p))
		text = re.ReplaceAllStringFunc(text, wrap)
	}
	return text
}

// Highlight wraps matches in a highlight span for HTML display.
func Highlight(text string, q Query) string {
	return HighlightFunc(text, q, func(m string) string {
		return HighlightOpen + m + HighlightClose
	})
}
