package index

import (
	"testing"

	"github.com/bastiangx/pqwords/pkg/words"
)

func testCollection(list ...string) *words.Collection {
	c := words.NewCollection()
	c.AppendRaw(list, words.NewMetadata("nouns", "easy", "animals", ""))
	return c
}

func TestLookupInserted(t *testing.T) {
	inserted := []string{"cat", "cattle", "dog", "Horse", "do"}
	idx := Build(testCollection(inserted...))

	for _, w := range inserted {
		e, ok := idx.Lookup(w)
		if !ok {
			t.Errorf("Lookup(%q): expected hit", w)
			continue
		}
		if e.Word() != w {
			t.Errorf("Lookup(%q): got entry %q", w, e.Word())
		}
	}
	if idx.Len() != len(inserted) {
		t.Errorf("expected %d words, got %d", len(inserted), idx.Len())
	}
}

func TestLookupMissing(t *testing.T) {
	idx := Build(testCollection("cattle", "dog"))

	testCases := []struct {
		word        string
		description string
	}{
		{"cat", "Prefix of an indexed word"},
		{"cattles", "Extension of an indexed word"},
		{"bird", "Unrelated word"},
		{"", "Empty word"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if _, ok := idx.Lookup(tc.word); ok {
				t.Errorf("Lookup(%q): expected miss", tc.word)
			}
		})
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	idx := Build(testCollection("Paris"))
	for _, w := range []string{"paris", "PARIS", "pArIs"} {
		if !idx.Contains(w) {
			t.Errorf("expected %q to match Paris", w)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	idx := Build(testCollection("cattle"))
	if !idx.HasPrefix("cat") {
		t.Error("expected prefix cat to exist")
	}
	if idx.Contains("cat") {
		t.Error("prefix must not count as a word")
	}
	if idx.HasPrefix("cow") {
		t.Error("unexpected prefix cow")
	}
}

func TestDuplicateLastWriteWins(t *testing.T) {
	c := words.NewCollection()
	c.AppendRaw([]string{"orange"}, words.NewMetadata("nouns", "easy", "food", "fruit"))
	c.AppendRaw([]string{"Orange"}, words.NewMetadata("adjectives", "easy", "color", ""))

	idx := Build(c)
	e, ok := idx.Lookup("orange")
	if !ok {
		t.Fatal("expected hit")
	}
	if e.Metadata().Type != "adjectives" {
		t.Errorf("expected last inserted entry, got %s", e.Metadata())
	}
	if idx.Len() != 1 {
		t.Errorf("duplicates share a slot, got %d words", idx.Len())
	}
}

func TestRebuildReflectsAppend(t *testing.T) {
	c := testCollection("cat")
	idx := Build(c)
	if idx.Contains("dog") {
		t.Fatal("dog not inserted yet")
	}

	c.AppendRaw([]string{"dog"}, words.NewMetadata("nouns", "easy", "animals", ""))
	idx = Build(c)
	if !idx.Contains("dog") {
		t.Error("rebuilt index must contain appended word")
	}
}

func TestNodeCount(t *testing.T) {
	idx := Build(testCollection("ab", "ac"))
	// root, a, b, c
	if idx.Nodes() != 4 {
		t.Errorf("expected 4 nodes, got %d", idx.Nodes())
	}
}
