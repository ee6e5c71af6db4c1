package search

import (
	"bytes"
	"encoding/json"
)

// Match is one matched section in a result.
type Match struct {
	Section     string `json:"section"`
	Text        string `json:"text"`
	Highlighted string `json:"highlighted,omitempty"`
}

// Group holds the matches for one remedy.
type Group struct {
	Remedy  string
	Matches []Match
}

// Result maps remedy names to matched sections. Remedies and their sections
// keep first-discovery order, and a remedy appears only once it has a match.
type Result struct {
	groups []*Group
	index  map[string]int
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{index: make(map[string]int)}
}

func (r *Result) add(remedy string, m Match) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	i, ok := r.index[remedy]
	if !ok {
		i = len(r.groups)
		r.index[remedy] = i
		r.groups = append(r.groups, &Group{Remedy: remedy})
	}
	r.groups[i].Matches = append(r.groups[i].Matches, m)
}

// Groups returns the remedy groups in discovery order.
func (r *Result) Groups() []*Group {
	if r == nil {
		return nil
	}
	return r.groups
}

// Get returns the matches for a remedy.
func (r *Result) Get(remedy string) []Match {
	if r == nil {
		return nil
	}
	i, ok := r.index[remedy]
	if !ok {
		return nil
	}
	return r.groups[i].Matches
}

// Len returns the number of remedies with at least one match.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.groups)
}

// Total returns the number of matched sections.
func (r *Result) Total() int {
	n := 0
	for _, g := range r.Groups() {
		n += len(g.Matches)
	}
	return n
}

// MarshalJSON encodes the result as an object whose keys are in discovery
// order. An empty result encodes as {}.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range r.Groups() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Remedy)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(g.Matches)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
