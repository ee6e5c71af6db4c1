package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/config"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/parser"
)

// Source is one document collection and how to read it.
type Source struct {
	ID         string
	Dir        string
	FormatName string
	Format     parser.Format
	Cached     bool // Parse once and keep for the process lifetime
}

// SourceInfo describes a source for listing.
type SourceInfo struct {
	ID     string `json:"id"`
	Format string `json:"format"`
	Cached bool   `json:"cached"`
	Loaded bool   `json:"loaded"`
}

// SourcesFromConfig resolves configured sources to their formats.
func SourcesFromConfig(cfgs []config.SourceConfig) ([]Source, error) {
	sources := make([]Source, 0, len(cfgs))
	for _, sc := range cfgs {
		f, err := parser.ForFormat(sc.Format)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", sc.ID, err)
		}
		sources = append(sources, Source{
			ID:         sc.ID,
			Dir:        sc.Dir,
			FormatName: sc.Format,
			Format:     f,
			Cached:     sc.Cached,
		})
	}
	return sources, nil
}

// Catalog maps source ids to corpora. Uncached sources are re-read on every
// call; cached ones go through the Cache.
type Catalog struct {
	sources map[string]Source
	order   []string
	loader  *Loader
	cache   *Cache
	log     *slog.Logger
}

func New(sources []Source, loader *Loader, cache *Cache, log *slog.Logger) *Catalog {
	c := &Catalog{
		sources: make(map[string]Source, len(sources)),
		loader:  loader,
		cache:   cache,
		log:     log,
	}
	for _, s := range sources {
		if _, dup := c.sources[s.ID]; !dup {
			c.order = append(c.order, s.ID)
		}
		c.sources[s.ID] = s
	}
	return c
}

// Corpus returns the corpus for id, or materia.ErrUnknownSource.
func (c *Catalog) Corpus(ctx context.Context, id string) (*materia.Corpus, error) {
	src, ok := c.sources[id]
	if !ok {
		return nil, materia.ErrUnknownSource
	}
	if !src.Cached {
		return c.loader.Load(ctx, src)
	}
	if c.cache.Loaded(id) {
		c.log.Debug("corpus cache hit", "source", id)
	}
	return c.cache.GetOrLoad(ctx, id, func(ctx context.Context) (*materia.Corpus, error) {
		return c.loader.Load(ctx, src)
	})
}

// Sources lists the configured sources in configuration order.
func (c *Catalog) Sources() []SourceInfo {
	infos := make([]SourceInfo, 0, len(c.order))
	for _, id := range c.order {
		s := c.sources[id]
		infos = append(infos, SourceInfo{
			ID:     s.ID,
			Format: s.FormatName,
			Cached: s.Cached,
			Loaded: s.Cached && c.cache.Loaded(s.ID),
		})
	}
	return infos
}

// Warm loads every cached source. Failures are logged and leave the source
// unloaded so a later search retries.
func (c *Catalog) Warm(ctx context.Context) {
	for _, id := range c.order {
		if !c.sources[id].Cached {
			continue
		}
		if _, err := c.Corpus(ctx, id); err != nil {
			c.log.Error("warm cache failed", "source", id, "error", err)
		}
	}
}
