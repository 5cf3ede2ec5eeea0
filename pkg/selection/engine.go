package selection

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/charmbracelet/log"
)

// DefaultWorkers bounds concurrent list fetches when none is configured.
const DefaultWorkers = 4

// Engine loads word collections from a dictionary source.
type Engine struct {
	src     dictionary.Source
	workers int
}

// NewEngine creates an engine fetching from src with up to workers lists in
// flight.
func NewEngine(src dictionary.Source, workers int) *Engine {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Engine{src: src, workers: workers}
}

// Load expands p, fetches every selected list and wraps the words into
// entries. Entries from one list share a single Metadata value and keep the
// query order. An empty result is logged, not returned as an error.
func (e *Engine) Load(ctx context.Context, p Params) (*words.Collection, error) {
	start := time.Now()
	queries, err := Expand(p)
	if err != nil {
		return nil, err
	}

	lists, err := dictionary.Prefetch(ctx, e.src, queries, e.workers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch word lists: %w", err)
	}

	minLen, maxLen := p.MinWordLength, p.MaxWordLength
	if maxLen == 0 {
		maxLen = DefaultMaxWordLength
	}

	c := words.NewCollection()
	for i, q := range queries {
		if len(lists[i]) == 0 {
			continue
		}
		md := q.Metadata()
		for _, w := range lists[i] {
			n := utf8.RuneCountInString(w)
			if n < minLen || n > maxLen {
				continue
			}
			c.Append(words.NewEntry(w, md))
		}
	}

	if c.Len() == 0 {
		log.Errorf("No words loaded for %d word lists, check the selection", len(queries))
	} else {
		log.Debugf("Loaded %d words from %d lists in %v", c.Len(), len(queries), time.Since(start))
	}
	return c, nil
}
