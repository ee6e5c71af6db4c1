package main

import "fmt"

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Catalog.Sources() {
		cached := ""
		if s.Cached {
			cached = "  (cached)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s%s\n", s.ID, s.Format, cached)
	}
	return nil
}
