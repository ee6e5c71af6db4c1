package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/stats"
)

// CorpusProvider returns the parsed corpus for a source id.
type CorpusProvider interface {
	Corpus(ctx context.Context, source string) (*materia.Corpus, error)
}

// Request is a search as received from a caller.
type Request struct {
	Word      string
	Book      string
	Mode      Mode
	Highlight bool
}

// Engine answers search requests against the catalog's corpora.
type Engine struct {
	corpora CorpusProvider
	stats   *stats.Latency
	log     *slog.Logger
}

// NewEngine creates an engine. latency may be nil.
func NewEngine(corpora CorpusProvider, latency *stats.Latency, log *slog.Logger) *Engine {
	return &Engine{
		corpora: corpora,
		stats:   latency,
		log:     log,
	}
}

// Search runs req and returns grouped matches. A blank word or book, a
// missing or unknown mode, or an unknown book yields an empty result without
// loading anything. Decode failures are returned as errors.
func (e *Engine) Search(ctx context.Context, req Request) (*Result, error) {
	word := strings.TrimSpace(req.Word)
	if word == "" || req.Book == "" {
		return NewResult(), nil
	}
	if !req.Mode.Valid() {
		e.log.Warn("search with unknown mode", "source", req.Book, "mode", req.Mode)
		return NewResult(), nil
	}

	start := time.Now()
	corpus, err := e.corpora.Corpus(ctx, req.Book)
	if errors.Is(err, materia.ErrUnknownSource) {
		e.log.Warn("search against unknown source", "source", req.Book)
		return NewResult(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", req.Book, err)
	}

	q := NewQuery(word, req.Mode)
	result := Aggregate(corpus, q)
	if req.Highlight {
		for _, g := range result.Groups() {
			for i := range g.Matches {
				g.Matches[i].Highlighted = Highlight(g.Matches[i].Text, q)
			}
		}
	}

	if e.stats != nil {
		e.stats.Record(req.Book, time.Since(start).Milliseconds())
	}
	e.log.Debug("search",
		"source", req.Book,
		"mode", req.Mode,
		"remedies", result.Len(),
		"sections", result.Total(),
	)
	return result, nil
}
