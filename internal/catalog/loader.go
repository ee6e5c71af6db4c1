package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/parser"
	"golang.org/x/sync/errgroup"
)

// Loader reads a source's directory and extracts its corpus.
type Loader struct {
	workers int
	log     *slog.Logger
}

// NewLoader returns a loader that decodes at most workers files at once.
func NewLoader(workers int, log *slog.Logger) *Loader {
	if workers <= 0 {
		workers = 1
	}
	return &Loader{workers: workers, log: log}
}

// Load decodes every file in the source directory that the source format
// accepts, in filename order, and extracts one corpus from them. Any decode
// failure fails the whole load.
func (l *Loader) Load(ctx context.Context, src Source) (*materia.Corpus, error) {
	start := time.Now()

	names, err := l.listFiles(src)
	if err != nil {
		return nil, err
	}

	docs := make([]*parser.Document, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := decodeFile(src.Format, filepath.Join(src.Dir, name))
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	corpus := parser.Extract(src.ID, src.Format, docs)
	l.log.Info("loaded source",
		"source", src.ID,
		"files", len(names),
		"remedies", len(corpus.Remedies),
		"sections", corpus.SectionCount(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return corpus, nil
}

func (l *Loader) listFiles(src Source) ([]string, error) {
	entries, err := os.ReadDir(src.Dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir %s: %w", src.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !parser.Accepts(src.Format, e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func decodeFile(f parser.Format, path string) (*parser.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := f.Decode(file, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}
