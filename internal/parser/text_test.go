package parser

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses runs", "Great   excitement;\n\tdelirium.", "Great excitement; delirium."},
		{"non-breaking space", "Mind :-\u00a0\u00a0anxious", "Mind :- anxious"},
		{"trims", "\u00a0  Head \n", "Head"},
		{"empty", "", ""},
		{"only whitespace", " \u00a0\t\n", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("%s: Clean(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>MIND. [1]</p>", "MIND. [1]"},
		{"<b>Head</b><i>ache</i>", "Headache"},
		{`<a href="x.htm">link</a> text`, "link text"},
		{"no tags", "no tags"},
		{"a < b", "a < b"},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.in); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("first  line\r\n\r\n   \nsecond\u00a0line\nthird")
	want := []string{"first line", "second line", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %q, want %q", got, want)
	}
}

func TestSplitLines_Empty(t *testing.T) {
	if got := SplitLines(""); len(got) != 0 {
		t.Errorf("expected no lines, got %q", got)
	}
}
