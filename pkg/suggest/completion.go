// Package suggest completes prefixes against the loaded words using a patricia trie.
package suggest

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultHotCacheSize is the number of completed prefixes kept by Build.
const DefaultHotCacheSize = 1024

// Suggestion is one completion of a prefix.
type Suggestion struct {
	Word  string
	Entry *words.Entry
}

// Completer answers prefix queries. It is safe for concurrent Complete calls
// once populated; AddEntry must not run concurrently with anything else.
type Completer struct {
	trie     *patricia.Trie
	hotCache *HotCache
	total    int
}

func NewCompleter(cacheSize int) *Completer {
	return &Completer{
		trie:     patricia.NewTrie(),
		hotCache: NewHotCache(cacheSize),
	}
}

// Build creates a completer holding every entry of c. Like the lookup index,
// a later entry for the same lowercased word replaces the earlier one.
func Build(c *words.Collection) *Completer {
	comp := NewCompleter(DefaultHotCacheSize)
	for _, e := range c.Entries() {
		comp.AddEntry(e)
	}
	return comp
}

// AddEntry stores e under its lowercased word.
func (c *Completer) AddEntry(e *words.Entry) {
	key := strings.ToLower(e.Word())
	if key == "" {
		return
	}
	if c.trie.Get(patricia.Prefix(key)) == nil {
		c.total++
	}
	c.trie.Set(patricia.Prefix(key), e)
	c.hotCache.Purge()
}

// Complete returns up to limit words starting with prefix, shortest first and
// alphabetical within a length. The prefix itself is never suggested. The
// capitalization of the prefix is carried over to the suggestions. A limit
// below one returns every completion.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	lower := strings.ToLower(prefix)
	if lower == "" {
		return nil
	}

	found, ok := c.hotCache.Get(lower, limit)
	if !ok {
		found = c.search(lower, limit)
		c.hotCache.Put(lower, limit, found)
	}

	capitals := CapitalPositions(prefix)
	out := make([]Suggestion, len(found))
	for i, s := range found {
		out[i] = Suggestion{Word: ApplyCapitalization(s.Word, capitals), Entry: s.Entry}
	}
	return out
}

func (c *Completer) search(lower string, limit int) []Suggestion {
	var found []Suggestion
	err := c.trie.VisitSubtree(patricia.Prefix(lower), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lower {
			return nil
		}
		e, ok := item.(*words.Entry)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, word)
			return nil
		}
		found = append(found, Suggestion{Word: word, Entry: e})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	slices.SortFunc(found, func(a, b Suggestion) int {
		if d := utf8.RuneCountInString(a.Word) - utf8.RuneCountInString(b.Word); d != 0 {
			return d
		}
		return strings.Compare(a.Word, b.Word)
	})
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found
}

// Stats reports the completer size and hot cache usage.
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{"totalWords": c.total}
	for k, v := range c.hotCache.Stats() {
		stats[k] = v
	}
	return stats
}
