package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/catalog"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/config"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/search"
)

func main() {
	_ = godotenv.Load()

	if err := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run parses args, wires the catalog from the environment, and executes the
// selected command.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("remedy"),
		kong.Description("Search materia medica reference books."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'remedy --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	sources, err := catalog.SourcesFromConfig(cfg.Sources)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cli.logLevel(cfg.LogLevel)}))
	cat := catalog.New(sources, catalog.NewLoader(cfg.DecodeWorkers, log), catalog.NewCache(), log)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Catalog:   cat,
		Engine:    search.NewEngine(cat, nil, log),
		Highlight: terminalHighlight,
	}
	return kongCtx.Run(deps)
}

var highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

// terminalHighlight styles one matched span for terminal output.
func terminalHighlight(s string) string {
	return highlightStyle.Render(s)
}
