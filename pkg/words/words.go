// Package words defines the entries a dictionary is built from.
package words

import (
	"strings"

	"github.com/bastiangx/pqwords/pkg/taxonomy"
)

// Metadata classifies a word. A single Metadata value is shared by every
// entry loaded from the same word list and must not be modified after use.
type Metadata struct {
	Type        string `json:"type" msgpack:"t"`
	Level       string `json:"level" msgpack:"l"`
	Category    string `json:"cat" msgpack:"c"`
	Subcategory string `json:"subcat" msgpack:"s"`
}

// NewMetadata fills in the default subcategory when sub is empty.
func NewMetadata(typ, level, cat, sub string) *Metadata {
	if sub == "" {
		sub = taxonomy.DefaultSubcategory
	}
	return &Metadata{Type: typ, Level: level, Category: cat, Subcategory: sub}
}

// FullCategory returns "cat (sub)" when nice is set, "cat_sub" otherwise.
// The subcategory is left out when it is the default one.
func (m *Metadata) FullCategory(nice bool) string {
	if m.Subcategory == taxonomy.DefaultSubcategory || m.Subcategory == "" {
		return m.Category
	}
	if nice {
		return m.Category + " (" + m.Subcategory + ")"
	}
	return taxonomy.JoinCategory(m.Category, m.Subcategory)
}

func (m *Metadata) String() string {
	return strings.Join([]string{m.Type, m.Level, m.Category, m.Subcategory}, ", ")
}

// Entry is a word together with its classification.
type Entry struct {
	word     string
	metadata *Metadata
}

func NewEntry(word string, md *Metadata) *Entry {
	return &Entry{word: word, metadata: md}
}

func (e *Entry) Word() string { return e.word }

func (e *Entry) Metadata() *Metadata { return e.metadata }

func (e *Entry) String() string { return e.word }

// FromRaw expands a raw word list into entries that all share md.
func FromRaw(raw []string, md *Metadata) []*Entry {
	entries := make([]*Entry, 0, len(raw))
	for _, w := range raw {
		entries = append(entries, NewEntry(w, md))
	}
	return entries
}
