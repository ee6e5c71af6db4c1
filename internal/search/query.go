package search

import "strings"

// Mode selects how query terms combine.
type Mode string

const (
	ModeAnd    Mode = "AND"
	ModeOr     Mode = "OR"
	ModePhrase Mode = "PHRASE"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeAnd, ModeOr, ModePhrase:
		return true
	}
	return false
}

// Query is parsed search text and the mode combining its terms.
type Query struct {
	Raw  string
	Mode Mode

	terms  []string // lowercased, for AND/OR
	phrase string   // lowercased and trimmed, for PHRASE
}

// NewQuery prepares raw text for matching. Matching is case-insensitive.
func NewQuery(raw string, mode Mode) Query {
	lower := strings.ToLower(raw)
	return Query{
		Raw:    raw,
		Mode:   mode,
		terms:  strings.Fields(lower),
		phrase: strings.TrimSpace(lower),
	}
}

// Terms returns the whitespace-separated terms of the raw text.
func (q Query) Terms() []string {
	return strings.Fields(q.Raw)
}

// Phrase returns the trimmed raw text.
func (q Query) Phrase() string {
	return strings.TrimSpace(q.Raw)
}

// Empty reports whether the query has nothing to match.
func (q Query) Empty() bool {
	return q.phrase == ""
}

// Matches reports whether text satisfies q. All modes test plain substring
// containment, so "cat" matches inside "concatenate". An empty query or an
// unknown mode matches nothing.
func Matches(text string, q Query) bool {
	if q.Empty() {
		return false
	}
	text = strings.ToLower(text)

	switch q.Mode {
	case ModeAnd:
		for _, t := range q.terms {
			if !strings.Contains(text, t) {
				return false
			}
		}
		return true
	case ModeOr:
		for _, t := range q.terms {
			if strings.Contains(text, t) {
				return true
			}
		}
		return false
	case ModePhrase:
		return strings.Contains(text, q.phrase)
	default:
		return false
	}
}
