package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/fuzzy"
	"github.com/bastiangx/pqwords/pkg/lexicon"
	"github.com/bastiangx/pqwords/pkg/selection"
	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(list ...string) []*words.Entry {
	return words.FromRaw(list, words.NewMetadata("nouns", "easy", "animals", ""))
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name string
		res  fuzzy.Result
		want string
	}{
		{"found", fuzzy.Result{Success: true, Matches: entries("cat")}, "The word cat is in the dictionary. (nouns, easy, animals, general)"},
		{"missing", fuzzy.Result{Matches: []*words.Entry{}}, "The word cat is not in the dictionary."},
		{"one", fuzzy.Result{Matches: entries("cot")}, "The word cat is not in the dictionary. Maybe you meant cot?"},
		{"two", fuzzy.Result{Matches: entries("cot", "cut")}, "The word cat is not in the dictionary. Maybe you meant cot or cut?"},
		{"three", fuzzy.Result{Matches: entries("cot", "cut", "bat")}, "The word cat is not in the dictionary. Maybe you meant cot, cut or bat?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult("cat", tt.res))
		})
	}
}

func TestInputHandler(t *testing.T) {
	lex := lexicon.New(dictionary.NewTextSource(fstest.MapFS{
		"nouns/easy/animals.txt": {Data: []byte("cat\ncow\nhorse\n")},
	}))
	require.NoError(t, lex.Load(context.Background(), selection.Params{Categories: []string{"animals"}}))

	in := strings.NewReader("CAT\ncst\n1234\n:count\n:complete c\n:random 2\n:bogus\n")
	var out bytes.Buffer
	h := NewInputHandler(lex, 1, 4, 24, false, in, &out)
	require.NoError(t, h.Start(context.Background()))

	got := out.String()
	assert.Contains(t, got, "The word cat is in the dictionary. (nouns, easy, animals, general)")
	assert.Contains(t, got, "The word cst is not in the dictionary. Maybe you meant cat?")
	assert.NotContains(t, got, "The word 1234")
	assert.Contains(t, got, "3 words loaded")
	assert.Contains(t, got, " 1. cat\n")
	assert.Contains(t, got, " 2. cow\n")
	assert.Equal(t, 3, strings.Count(got, "(nouns, easy, animals, general)\n"), "one verdict and two random words")
}
