package main

import (
	"fmt"
	"strings"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	word := strings.Join(c.Words, " ")
	mode := search.Mode(c.Mode)

	result, err := deps.Engine.Search(deps.Ctx, search.Request{
		Word: word,
		Book: c.Book,
		Mode: mode,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if result.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No matches found.")
		return nil
	}

	wrap := deps.Highlight
	if c.Plain || wrap == nil {
		wrap = func(s string) string { return s }
	}
	q := search.NewQuery(word, mode)

	for _, g := range result.Groups() {
		fmt.Fprintln(deps.Stdout, g.Remedy)
		for _, m := range g.Matches {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", m.Section, search.HighlightFunc(m.Text, q, wrap))
		}
	}
	fmt.Fprintf(deps.Stdout, "\n%d section(s) in %d remedy(ies)\n", result.Total(), result.Len())
	return nil
}
