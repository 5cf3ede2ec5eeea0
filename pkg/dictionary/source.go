/*
Package dictionary loads raw word lists for the lexicon.

Word lists are addressed by a Query (type, level, category, subcategory) and
served by a Source. Three sources exist:

  - TextSource reads one newline-delimited file per query from an fs.FS,
    laid out as {type}/{level}/{category}[_{subcategory}].txt
  - BundleSource serves every list from a single bulk file (lib-pqWords.json
    or its msgpack twin) holding the nested type/level/category/subcategory
    hierarchy
  - HTTPSource fetches the per-query text files from a base URL

A missing list is not an error: sources return nil words and a nil error, so
the affected combination simply contributes nothing. Errors are reserved for
lists that exist but cannot be read.

Cached wraps any source with an LRU cache, and Prefetch resolves many
queries concurrently while keeping results in query order.
*/
package dictionary

import (
	"context"
	"errors"
	"path"

	"github.com/bastiangx/pqwords/pkg/taxonomy"
	"github.com/bastiangx/pqwords/pkg/words"
)

var (
	// ErrUnavailable is returned when a list exists but could not be fetched.
	ErrUnavailable = errors.New("word list unavailable")
	// ErrUnknownMethod is returned by Open for an unsupported load method.
	ErrUnknownMethod = errors.New("unknown load method")
)

// Query addresses a single word list.
type Query struct {
	Type        string
	Level       string
	Category    string
	Subcategory string
}

// Metadata returns the metadata every word of the list shares.
func (q Query) Metadata() *words.Metadata {
	return words.NewMetadata(q.Type, q.Level, q.Category, q.Subcategory)
}

// FileName is the category part of the text file name, without extension.
func (q Query) FileName() string {
	return taxonomy.JoinCategory(q.Category, q.Subcategory)
}

// Path is the slash separated location of the list's text file.
func (q Query) Path() string {
	return path.Join(q.Type, q.Level, q.FileName()+TextExtension)
}

func (q Query) String() string {
	return q.Path()
}

// Source resolves a query to its raw words.
type Source interface {
	Words(ctx context.Context, q Query) ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, q Query) ([]string, error)

func (f SourceFunc) Words(ctx context.Context, q Query) ([]string, error) {
	return f(ctx, q)
}
