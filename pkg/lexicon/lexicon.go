/*
Package lexicon owns a loaded word collection and the index built from it.

A Lexicon is the single owner of its words: loads, appends and removals are
serialized by a mutex, and the lookup index is rebuilt lazily whenever the
collection changed since the last build. Lookups run against an immutable
index snapshot and never hold the lock while searching.
*/
package lexicon

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/fuzzy"
	"github.com/bastiangx/pqwords/pkg/index"
	"github.com/bastiangx/pqwords/pkg/selection"
	"github.com/bastiangx/pqwords/pkg/suggest"
	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single FindWord call.
const DefaultTimeout = 2 * time.Second

// Lexicon is a word collection plus its lookup index.
type Lexicon struct {
	mu         sync.RWMutex
	engine     *selection.Engine
	collection *words.Collection
	params     selection.Params

	idx        *index.Index
	idxVersion uint64

	comp        *suggest.Completer
	compVersion uint64

	srcOpts dictionary.Options
	open    func(dictionary.Options) (dictionary.Source, error)

	workers int
	timeout time.Duration
	rng     *rand.Rand
}

// Option configures a Lexicon.
type Option func(*Lexicon)

// WithWorkers bounds the number of word lists fetched concurrently.
func WithWorkers(n int) Option {
	return func(l *Lexicon) { l.workers = n }
}

// WithTimeout sets the per-call FindWord deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(l *Lexicon) { l.timeout = d }
}

// WithSourceOptions records how src was opened. Loads whose params name a
// different method or path reopen the source from these options.
func WithSourceOptions(opts dictionary.Options) Option {
	return func(l *Lexicon) { l.srcOpts = opts }
}

// WithOpener replaces dictionary.Open for sources selected by Load.
func WithOpener(open func(dictionary.Options) (dictionary.Source, error)) Option {
	return func(l *Lexicon) { l.open = open }
}

// WithRand sets the random source used by Random.
func WithRand(r *rand.Rand) Option {
	return func(l *Lexicon) { l.rng = r }
}

// New creates an empty lexicon loading its words from src.
func New(src dictionary.Source, opts ...Option) *Lexicon {
	l := &Lexicon{
		collection: words.NewCollection(),
		timeout:    DefaultTimeout,
		workers:    selection.DefaultWorkers,
		open:       dictionary.Open,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.engine = selection.NewEngine(src, l.workers)
	if l.rng == nil {
		l.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return l
}

// Load replaces the collection with the words p selects and rebuilds the
// index. When p names a load method or path other than the current source's,
// the source is reopened first and kept only if the load succeeds. On error
// the previous words and source stay in place.
func (l *Lexicon) Load(ctx context.Context, p selection.Params) error {
	l.mu.RLock()
	engine, opts := l.engine, l.srcOpts
	l.mu.RUnlock()

	opts, switched := opts.Switch(p.Method, p.Path)
	if switched {
		src, err := l.open(opts)
		if err != nil {
			return fmt.Errorf("failed to open %s source at %s: %w", opts.Method, opts.Path, err)
		}
		log.Debugf("Switched word source to %s at %s", opts.Method, opts.Path)
		engine = selection.NewEngine(src, l.workers)
	}

	c, err := engine.Load(ctx, p)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.engine = engine
	l.srcOpts = opts
	l.collection = c
	l.params = p
	l.comp = nil
	l.rebuildLocked()
	return nil
}

// Params returns the selection of the last successful Load.
func (l *Lexicon) Params() selection.Params {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.params
}

// BuildIndex rebuilds the index from the current collection and returns it.
func (l *Lexicon) BuildIndex() *index.Index {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rebuildLocked()
	return l.idx
}

// Index returns the index for the current collection, rebuilding it first
// when the collection changed.
func (l *Lexicon) Index() *index.Index {
	l.mu.RLock()
	if l.idx != nil && l.idxVersion == l.collection.Version() {
		idx := l.idx
		l.mu.RUnlock()
		return idx
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.idx == nil || l.idxVersion != l.collection.Version() {
		l.rebuildLocked()
	}
	return l.idx
}

func (l *Lexicon) rebuildLocked() {
	start := time.Now()
	l.idx = index.Build(l.collection)
	l.idxVersion = l.collection.Version()
	log.Debugf("Indexed %d words (%d nodes) in %v", l.idx.Len(), l.idx.Nodes(), time.Since(start))
}

// FindWord looks word up exactly and, failing that, collects up to
// maxMatches entries within fuzziness edits. It never fails: a timeout or a
// cancelled ctx returns the matches found so far.
func (l *Lexicon) FindWord(ctx context.Context, word string, fuzziness, maxMatches int) fuzzy.Result {
	idx := l.Index()
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return fuzzy.Search(ctx, idx, word, fuzziness, maxMatches)
}

// Complete returns up to limit loaded words starting with prefix. The
// completer is rebuilt on first use after the collection changed.
func (l *Lexicon) Complete(prefix string, limit int) []suggest.Suggestion {
	l.mu.RLock()
	comp := l.comp
	fresh := comp != nil && l.compVersion == l.collection.Version()
	l.mu.RUnlock()

	if !fresh {
		l.mu.Lock()
		if l.comp == nil || l.compVersion != l.collection.Version() {
			l.comp = suggest.Build(l.collection)
			l.compVersion = l.collection.Version()
		}
		comp = l.comp
		l.mu.Unlock()
	}
	return comp.Complete(prefix, limit)
}

// Append adds entries to the collection. The index is rebuilt on next use.
func (l *Lexicon) Append(entries ...*words.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.collection.Append(entries...)
}

// Random returns up to n entries picked uniformly at random. With remove,
// picked entries are taken out of the collection, so no entry is returned
// twice.
func (l *Lexicon) Random(n int, remove bool) []*words.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*words.Entry, 0, max(n, 0))
	for range n {
		size := l.collection.Len()
		if size == 0 {
			break
		}
		i := l.rng.IntN(size)
		if remove {
			out = append(out, l.collection.RemoveAt(i))
		} else {
			out = append(out, l.collection.At(i))
		}
	}
	return out
}

// All returns a copy of every entry in collection order.
func (l *Lexicon) All() []*words.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.collection.Entries())
}

// WordCount returns the number of loaded entries, duplicates included.
func (l *Lexicon) WordCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collection.Len()
}

// Hierarchy returns the loaded words in bulk file layout.
func (l *Lexicon) Hierarchy() words.Hierarchy {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.collection.ToHierarchy()
}
