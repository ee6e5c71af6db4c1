package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/catalog"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/search"
)

// Dependencies holds services and writers for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Catalog   *catalog.Catalog
	Engine    *search.Engine
	Highlight func(string) string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log loading details to stderr"`

	Search  SearchCmd  `cmd:"" help:"Search a book for a word or phrase"`
	Sources SourcesCmd `cmd:"" help:"List configured books"`
}

func (c *CLI) logLevel(configured slog.Level) slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return max(configured, slog.LevelWarn)
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Book  string   `short:"b" required:"" help:"Book (source id) to search"`
	Mode  string   `short:"m" default:"OR" enum:"AND,OR,PHRASE" help:"How words combine: AND, OR or PHRASE"`
	Plain bool     `help:"Disable terminal highlighting"`
	Words []string `arg:"" help:"Word(s) to search for"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}
