package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// BundleSource serves every word list from one in-memory hierarchy.
type BundleSource struct {
	tree words.Hierarchy
}

// NewBundleSource wraps an already decoded hierarchy.
func NewBundleSource(tree words.Hierarchy) *BundleSource {
	if tree == nil {
		tree = make(words.Hierarchy)
	}
	return &BundleSource{tree: tree}
}

// ReadBundle decodes a bundle in the given format.
func ReadBundle(r io.Reader, format FileFormat) (*BundleSource, error) {
	tree := make(words.Hierarchy)
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&tree); err != nil {
			return nil, fmt.Errorf("failed to decode json bundle: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&tree); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack bundle: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %s cannot hold a bundle", format)
	}
	return NewBundleSource(tree), nil
}

// OpenBundle reads the bundle file name from fsys, picking the decoder from
// the file extension.
func OpenBundle(fsys fs.FS, name string) (*BundleSource, error) {
	format, err := DetectFileFormat(name)
	if err != nil {
		return nil, err
	}
	if err := ValidateFileFormat(fsys, name, format); err != nil {
		return nil, err
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle %s: %w", name, err)
	}
	defer f.Close()

	bs, err := ReadBundle(f, format)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded bundle %s with %d words", name, bs.Count())
	return bs, nil
}

// WriteBundle encodes tree in the given format.
func WriteBundle(w io.Writer, tree words.Hierarchy, format FileFormat) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(tree)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(tree)
	default:
		return fmt.Errorf("format %s cannot hold a bundle", format)
	}
}

// Words returns the list at q, nil when any level of the path is missing.
func (bs *BundleSource) Words(ctx context.Context, q Query) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, _ := bs.tree.Get(q.Type, q.Level, q.Category, q.Subcategory)
	return list, nil
}

// Count returns the number of words in the bundle.
func (bs *BundleSource) Count() int {
	return bs.tree.Count()
}
