package catalog

import (
	"context"
	"sync"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
	"golang.org/x/sync/singleflight"
)

// LoadFunc builds a corpus from scratch.
type LoadFunc func(ctx context.Context) (*materia.Corpus, error)

// Cache holds corpora for the life of the process. Concurrent first requests
// for the same source share one load; a failed load leaves the slot empty so
// a later request retries. There is no invalidation.
type Cache struct {
	mu      sync.RWMutex
	corpora map[string]*materia.Corpus
	group   singleflight.Group
}

func NewCache() *Cache {
	return &Cache{corpora: make(map[string]*materia.Corpus)}
}

// GetOrLoad returns the cached corpus for id, running load once if absent.
// The load itself is not cancelled with ctx; a caller whose ctx ends stops
// waiting while the load finishes for the others.
func (c *Cache) GetOrLoad(ctx context.Context, id string, load LoadFunc) (*materia.Corpus, error) {
	if corpus, ok := c.get(id); ok {
		return corpus, nil
	}

	ch := c.group.DoChan(id, func() (any, error) {
		if corpus, ok := c.get(id); ok {
			return corpus, nil
		}
		corpus, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.corpora[id] = corpus
		c.mu.Unlock()
		return corpus, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*materia.Corpus), nil
	}
}

// Loaded reports whether id has a cached corpus.
func (c *Cache) Loaded(id string) bool {
	_, ok := c.get(id)
	return ok
}

func (c *Cache) get(id string) (*materia.Corpus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	corpus, ok := c.corpora[id]
	return corpus, ok
}
