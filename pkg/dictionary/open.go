package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load methods.
const (
	MethodJSON    = "json"
	MethodMsgpack = "msgpack"
	MethodTxt     = "txt"
)

// Options selects and tunes a source.
type Options struct {
	Method    string
	Path      string // words root directory
	BaseURL   string // when set, txt lists are fetched over HTTP
	Rate      int    // HTTP requests per second
	CacheSize int
}

// Open builds the source described by opts. Text sources are wrapped in a
// cache so repeated loads do not hit the disk or network again.
func Open(opts Options) (Source, error) {
	root := strings.TrimSuffix(opts.Path, "/")
	if root == "" {
		root = "."
	}
	switch strings.ToLower(opts.Method) {
	case "", MethodJSON:
		return OpenBundle(os.DirFS(root), BundleName+JSONExtension)
	case MethodMsgpack:
		return OpenBundle(os.DirFS(root), BundleName+MsgpackExtension)
	case MethodTxt:
		var src Source
		if opts.BaseURL != "" {
			src = NewHTTPSource(opts.BaseURL, opts.Rate, nil)
		} else {
			if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
				return nil, fmt.Errorf("%w: no word directory at %s", ErrUnavailable, root)
			}
			src = NewTextSource(os.DirFS(root))
		}
		return NewCached(src, opts.CacheSize), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, opts.Method)
	}
}

// Switch returns opts with method and path replaced by the non-empty
// arguments, and whether that selects a different source.
func (opts Options) Switch(method, path string) (Options, bool) {
	next := opts
	if method != "" {
		next.Method = strings.ToLower(method)
	}
	if path != "" {
		next.Path = path
	}
	changed := !strings.EqualFold(next.Method, opts.Method) ||
		filepath.Clean(next.Path) != filepath.Clean(opts.Path)
	return next, changed
}
