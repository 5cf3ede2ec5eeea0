package suggest

import (
	"testing"

	"github.com/bastiangx/pqwords/pkg/words"
)

func collection(list ...string) *words.Collection {
	md := words.NewMetadata("nouns", "easy", "animals", "")
	return words.NewCollection(words.FromRaw(list, md)...)
}

func suggestionWords(s []Suggestion) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Word
	}
	return out
}

func TestComplete(t *testing.T) {
	c := Build(collection("cat", "caterpillar", "catfish", "cow", "camel", "Cats"))

	tests := []struct {
		prefix string
		limit  int
		want   []string
	}{
		{"cat", 0, []string{"cats", "catfish", "caterpillar"}},
		{"ca", 2, []string{"cat", "cats"}},
		{"Cat", 1, []string{"Cats"}},
		{"co", 5, []string{"cow"}},
		{"dog", 5, []string{}},
		{"", 5, []string{}},
	}
	for _, tt := range tests {
		got := suggestionWords(c.Complete(tt.prefix, tt.limit))
		if len(got) != len(tt.want) {
			t.Errorf("Complete(%q, %d) = %v, want %v", tt.prefix, tt.limit, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Complete(%q, %d) = %v, want %v", tt.prefix, tt.limit, got, tt.want)
				break
			}
		}
	}
}

func TestCompleteKeepsEntry(t *testing.T) {
	c := Build(collection("Owl", "owlet"))
	got := c.Complete("ow", 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].Entry.Word() != "Owl" {
		t.Errorf("expected the original entry, got %q", got[0].Entry.Word())
	}
	if got[0].Entry.Metadata().Category != "animals" {
		t.Errorf("unexpected metadata %v", got[0].Entry.Metadata())
	}
}

func TestHotCache(t *testing.T) {
	c := Build(collection("cat", "cats", "catfish"))
	c.Complete("ca", 3)
	c.Complete("CA", 3)

	stats := c.Stats()
	if stats["totalWords"] != 3 {
		t.Errorf("totalWords = %d, want 3", stats["totalWords"])
	}
	if stats["hotCacheHits"] != 1 || stats["hotCacheMisses"] != 1 {
		t.Errorf("unexpected cache stats %v", stats)
	}

	got := suggestionWords(c.Complete("CA", 3))
	if got[0] != "CAt" {
		t.Errorf("capitalization applied to cached result: got %q", got[0])
	}

	c.AddEntry(words.NewEntry("cab", words.NewMetadata("nouns", "easy", "vehicles", "")))
	got = suggestionWords(c.Complete("ca", 1))
	if got[0] != "cab" {
		t.Errorf("cache not purged after AddEntry, got %v", got)
	}
}

func TestApplyCapitalization(t *testing.T) {
	if got := ApplyCapitalization("hello", CapitalPositions("HeL")); got != "HeLlo" {
		t.Errorf("got %q", got)
	}
	if CapitalPositions("abc") != nil {
		t.Error("expected nil positions for lowercase input")
	}
	if got := ApplyCapitalization("éclair", CapitalPositions("É")); got != "Éclair" {
		t.Errorf("got %q", got)
	}
}
