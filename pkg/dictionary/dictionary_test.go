package dictionary

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var animals = Query{Type: "nouns", Level: "easy", Category: "animals", Subcategory: "general"}
var birds = Query{Type: "nouns", Level: "easy", Category: "animals", Subcategory: "birds"}

func TestQueryPath(t *testing.T) {
	assert.Equal(t, "nouns/easy/animals.txt", animals.Path())
	assert.Equal(t, "nouns/easy/animals_birds.txt", birds.Path())
	assert.Equal(t, "birds", birds.Metadata().Subcategory)
}

func TestParseLines(t *testing.T) {
	list, err := ParseLines(strings.NewReader("cat\r\ndog\n\nx\nowl\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "owl"}, list)
}

func TestTextSource(t *testing.T) {
	fsys := fstest.MapFS{
		"nouns/easy/animals.txt":       {Data: []byte("cat\ndog\n")},
		"nouns/easy/animals_birds.txt": {Data: []byte("owl\nhawk\n")},
	}
	src := NewTextSource(fsys)

	list, err := src.Words(context.Background(), birds)
	require.NoError(t, err)
	assert.Equal(t, []string{"owl", "hawk"}, list)

	missing := Query{Type: "verbs", Level: "hard", Category: "basic", Subcategory: "general"}
	list, err = src.Words(context.Background(), missing)
	require.NoError(t, err, "missing file is not an error")
	assert.Nil(t, list)
}

func TestBundleSource(t *testing.T) {
	tree := words.Hierarchy{
		"nouns": {"easy": {"animals": {"general": {"cat", "dog"}, "birds": {"owl"}}}},
	}
	for _, format := range []FileFormat{FormatJSON, FormatMsgpack} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteBundle(&buf, tree, format))

			bs, err := ReadBundle(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, 3, bs.Count())

			list, err := bs.Words(context.Background(), animals)
			require.NoError(t, err)
			assert.Equal(t, []string{"cat", "dog"}, list)

			list, err = bs.Words(context.Background(), Query{Type: "verbs", Level: "easy", Category: "basic", Subcategory: "general"})
			require.NoError(t, err)
			assert.Nil(t, list)
		})
	}
}

func TestOpenBundle(t *testing.T) {
	fsys := fstest.MapFS{
		"lib-pqWords.json": {Data: []byte(`{"nouns":{"easy":{"animals":{"general":["cat"]}}}}`)},
		"broken.json":      {Data: []byte(`{"nouns":`)},
	}
	bs, err := OpenBundle(fsys, "lib-pqWords.json")
	require.NoError(t, err)
	assert.Equal(t, 1, bs.Count())

	_, err = OpenBundle(fsys, "broken.json")
	assert.Error(t, err)

	_, err = OpenBundle(fsys, "missing.json")
	assert.Error(t, err)

	_, err = OpenBundle(fsys, "lib-pqWords.yaml")
	assert.Error(t, err)
}

func TestDetectFileFormat(t *testing.T) {
	tests := map[string]FileFormat{
		"animals.txt":         FormatText,
		"lib-pqWords.JSON":    FormatJSON,
		"lib-pqWords.msgpack": FormatMsgpack,
		"lib-pqWords.mpk":     FormatMsgpack,
		"nouns/easy/cat.bin":  FormatUnknown,
	}
	for name, expected := range tests {
		got, _ := DetectFileFormat(name)
		assert.Equal(t, expected, got, name)
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/words/nouns/easy/animals.txt":
			w.Write([]byte("cat\ndog\n"))
		case "/words/nouns/easy/animals_birds.txt":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/words/", 0, srv.Client())
	assert.Equal(t, srv.URL+"/words/nouns/easy/animals.txt", src.URL(animals))

	list, err := src.Words(context.Background(), animals)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, list)

	list, err = src.Words(context.Background(), Query{Type: "verbs", Level: "easy", Category: "basic", Subcategory: "general"})
	require.NoError(t, err)
	assert.Nil(t, list)

	_, err = src.Words(context.Background(), birds)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCached(t *testing.T) {
	var calls atomic.Int32
	inner := SourceFunc(func(_ context.Context, q Query) ([]string, error) {
		calls.Add(1)
		if q.Subcategory == "birds" {
			return nil, nil
		}
		return []string{"cat"}, nil
	})
	c := NewCached(inner, 4)

	for i := 0; i < 3; i++ {
		list, err := c.Words(context.Background(), animals)
		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, list)
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, c.Has(animals))

	c.Words(context.Background(), birds)
	c.Words(context.Background(), birds)
	assert.Equal(t, int32(3), calls.Load(), "missing lists are not cached")
	assert.False(t, c.Has(birds))

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestPrefetchKeepsQueryOrder(t *testing.T) {
	queries := []Query{
		{Type: "nouns", Level: "easy", Category: "a"},
		{Type: "nouns", Level: "easy", Category: "b"},
		{Type: "nouns", Level: "easy", Category: "c"},
		{Type: "nouns", Level: "easy", Category: "d"},
	}
	src := SourceFunc(func(_ context.Context, q Query) ([]string, error) {
		// later queries finish first
		time.Sleep(time.Duration('e'-q.Category[0]) * 5 * time.Millisecond)
		if q.Category == "c" {
			return nil, errors.New("boom")
		}
		return []string{q.Category}, nil
	})

	results, err := Prefetch(context.Background(), src, queries, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}, {"b"}, nil, {"d"}}, results)
}

func TestPrefetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := SourceFunc(func(ctx context.Context, q Query) ([]string, error) {
		return nil, ctx.Err()
	})
	_, err := Prefetch(ctx, src, []Query{animals}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenUnknownMethod(t *testing.T) {
	_, err := Open(Options{Method: "xml"})
	assert.ErrorIs(t, err, ErrUnknownMethod)

	src, err := Open(Options{Method: MethodTxt, Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &Cached{}, src)

	_, err = Open(Options{Method: MethodTxt, Path: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOptionsSwitch(t *testing.T) {
	base := Options{Method: MethodJSON, Path: "data", CacheSize: 8}

	next, changed := base.Switch("", "")
	assert.False(t, changed)
	assert.Equal(t, base, next)

	_, changed = base.Switch("JSON", "data/")
	assert.False(t, changed)

	next, changed = base.Switch(MethodTxt, "")
	assert.True(t, changed)
	assert.Equal(t, Options{Method: MethodTxt, Path: "data", CacheSize: 8}, next)

	_, changed = base.Switch("", "/srv/words")
	assert.True(t, changed)
}
