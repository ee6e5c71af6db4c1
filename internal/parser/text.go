package parser

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	lineBreakRe  = regexp.MustCompile(`\r?\n`)
)

// Clean collapses whitespace runs, non-breaking spaces included, to a single
// space and trims the result.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripMarkup removes every <...> span. Text between tags is concatenated
// without a separator.
func StripMarkup(raw string) string {
	return tagRe.ReplaceAllString(raw, "")
}

// SplitLines splits text on line breaks and returns the cleaned, non-empty
// lines in order.
func SplitLines(text string) []string {
	var lines []string
	for _, l := range lineBreakRe.Split(text, -1) {
		if l = Clean(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
