package search

import "github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"

// matchKey identifies a matched section for deduplication.
type matchKey struct {
	source  string
	remedy  string
	heading string
}

// Aggregate scans the corpus in parse order and groups matching sections by
// remedy. Only the first match per (source, remedy, heading) is kept; the
// seen set lives for this call only.
func Aggregate(corpus *materia.Corpus, q Query) *Result {
	result := NewResult()
	if corpus == nil || q.Empty() {
		return result
	}

	seen := make(map[matchKey]struct{})
	for _, remedy := range corpus.Remedies {
		for _, s := range remedy.Sections {
			if !Matches(s.Content, q) {
				continue
			}
			key := matchKey{source: corpus.Source, remedy: remedy.Name, heading: s.Heading}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			result.add(remedy.Name, Match{Section: s.Heading, Text: s.Content})
		}
	}
	return result
}
