package main

import (
	"strings"
	"testing"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/search"
)

func TestTerminalHighlight(t *testing.T) {
	var wrap func(string) string = terminalHighlight

	q := search.NewQuery("fear", search.ModeOr)
	got := search.HighlightFunc("Great fear of death", q, wrap)
	if !strings.Contains(got, "fear") || !strings.HasPrefix(got, "Great ") || !strings.HasSuffix(got, " of death") {
		t.Errorf("unexpected highlighted text %q", got)
	}
}

func TestDependenciesUseTerminalHighlight(t *testing.T) {
	deps := &Dependencies{Highlight: terminalHighlight}
	if got := deps.Highlight("cold"); !strings.Contains(got, "cold") {
		t.Errorf("expected styled text to keep %q, got %q", "cold", got)
	}
}
