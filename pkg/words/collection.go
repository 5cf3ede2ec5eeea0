package words

// Collection is an ordered list of entries. Duplicate words are kept.
//
// Every mutation bumps Version, which owners use to tell whether an index
// derived from the collection is stale.
type Collection struct {
	entries []*Entry
	version uint64
}

func NewCollection(entries ...*Entry) *Collection {
	c := &Collection{}
	c.Append(entries...)
	return c
}

// Append adds entries at the end of the collection.
func (c *Collection) Append(entries ...*Entry) {
	if len(entries) == 0 {
		return
	}
	c.entries = append(c.entries, entries...)
	c.version++
}

// AppendRaw wraps raw words with the shared metadata and appends them.
func (c *Collection) AppendRaw(raw []string, md *Metadata) {
	c.Append(FromRaw(raw, md)...)
}

// RemoveAt deletes the entry at i and returns it.
func (c *Collection) RemoveAt(i int) *Entry {
	e := c.entries[i]
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.version++
	return e
}

func (c *Collection) Len() int { return len(c.entries) }

func (c *Collection) At(i int) *Entry { return c.entries[i] }

// Entries returns the backing slice. Callers must not modify it.
func (c *Collection) Entries() []*Entry { return c.entries }

func (c *Collection) Version() uint64 { return c.version }

// Hierarchy is the nested type -> level -> category -> subcategory -> words
// layout of the bulk word file.
type Hierarchy map[string]map[string]map[string]map[string][]string

// Get returns the word list at the given path, false if any level is missing.
func (h Hierarchy) Get(typ, level, cat, sub string) ([]string, bool) {
	list, ok := h[typ][level][cat][sub]
	return list, ok
}

// Count returns the number of words stored in the hierarchy.
func (h Hierarchy) Count() int {
	n := 0
	for _, levels := range h {
		for _, cats := range levels {
			for _, subs := range cats {
				for _, list := range subs {
					n += len(list)
				}
			}
		}
	}
	return n
}

// ToHierarchy rebuilds the bulk file layout from the collection.
func (c *Collection) ToHierarchy() Hierarchy {
	out := make(Hierarchy)
	for _, e := range c.entries {
		md := e.metadata
		levels, ok := out[md.Type]
		if !ok {
			levels = make(map[string]map[string]map[string][]string)
			out[md.Type] = levels
		}
		cats, ok := levels[md.Level]
		if !ok {
			cats = make(map[string]map[string][]string)
			levels[md.Level] = cats
		}
		subs, ok := cats[md.Category]
		if !ok {
			subs = make(map[string][]string)
			cats[md.Category] = subs
		}
		subs[md.Subcategory] = append(subs[md.Subcategory], e.word)
	}
	return out
}
