/*
Package index implements the character tree used for exact word lookup.

Each path from the root spells a lowercased word prefix. A node where a
complete word ends carries that word's entry in its terminal slot, so a
node that exists only as a prefix of longer words is distinguishable from
one that is itself a word.

Lookups and inserts are O(L) in the word length. There is no delete: an
index is rebuilt from its collection whenever the collection changes.
*/
package index

import (
	"strings"

	"github.com/bastiangx/pqwords/pkg/words"
)

type node struct {
	children map[rune]*node
	// terminal is the end marker: non-nil when a word ends at this node.
	terminal *words.Entry
}

func newNode() *node {
	return &node{}
}

func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}
	return n.children[r]
}

func (n *node) childOrCreate(r rune) *node {
	if n.children == nil {
		n.children = make(map[rune]*node, 1)
	}
	c, ok := n.children[r]
	if !ok {
		c = newNode()
		n.children[r] = c
	}
	return c
}

// Index maps lowercased words to their entries.
type Index struct {
	root  *node
	words int
	nodes int
}

func New() *Index {
	return &Index{root: newNode(), nodes: 1}
}

// Build indexes every entry of c in collection order. When two entries share
// the same lowercased word the later one wins.
func Build(c *words.Collection) *Index {
	idx := New()
	for _, e := range c.Entries() {
		idx.Insert(e)
	}
	return idx
}

// Insert stores e under its lowercased word, replacing any entry already
// there. Empty words are ignored.
func (idx *Index) Insert(e *words.Entry) {
	key := strings.ToLower(e.Word())
	if key == "" {
		return
	}
	n := idx.root
	for _, r := range key {
		if n.child(r) == nil {
			idx.nodes++
		}
		n = n.childOrCreate(r)
	}
	if n.terminal == nil {
		idx.words++
	}
	n.terminal = e
}

// Lookup returns the entry stored for word, compared case-insensitively.
func (idx *Index) Lookup(word string) (*words.Entry, bool) {
	n := idx.walk(strings.ToLower(word))
	if n == nil || n.terminal == nil {
		return nil, false
	}
	return n.terminal, true
}

// Contains reports whether word is indexed.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.Lookup(word)
	return ok
}

// HasPrefix reports whether any indexed word starts with prefix.
func (idx *Index) HasPrefix(prefix string) bool {
	return idx.walk(strings.ToLower(prefix)) != nil
}

func (idx *Index) walk(key string) *node {
	n := idx.root
	for _, r := range key {
		n = n.child(r)
		if n == nil {
			return nil
		}
	}
	return n
}

// Len returns the number of distinct words in the index.
func (idx *Index) Len() int { return idx.words }

// Nodes returns the number of tree nodes, root included.
func (idx *Index) Nodes() int { return idx.nodes }
