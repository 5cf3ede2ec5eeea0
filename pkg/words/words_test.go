package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRawSharesMetadata(t *testing.T) {
	md := NewMetadata("nouns", "easy", "animals", "")
	entries := FromRaw([]string{"cat", "dog"}, md)

	require.Len(t, entries, 2)
	assert.Same(t, entries[0].Metadata(), entries[1].Metadata())
	assert.Equal(t, "general", md.Subcategory)
	assert.Equal(t, "dog", entries[1].Word())
}

func TestMetadataFormatting(t *testing.T) {
	md := NewMetadata("nouns", "easy", "animals", "birds")
	assert.Equal(t, "animals (birds)", md.FullCategory(true))
	assert.Equal(t, "animals_birds", md.FullCategory(false))
	assert.Equal(t, "nouns, easy, animals, birds", md.String())

	plain := NewMetadata("nouns", "easy", "animals", "general")
	assert.Equal(t, "animals", plain.FullCategory(true))
}

func TestCollectionVersion(t *testing.T) {
	c := NewCollection()
	v0 := c.Version()

	c.AppendRaw([]string{"cat"}, NewMetadata("nouns", "easy", "animals", ""))
	assert.Greater(t, c.Version(), v0)

	v1 := c.Version()
	c.Append()
	assert.Equal(t, v1, c.Version(), "empty append is not a mutation")

	removed := c.RemoveAt(0)
	assert.Equal(t, "cat", removed.Word())
	assert.Equal(t, 0, c.Len())
	assert.Greater(t, c.Version(), v1)
}

func TestCollectionKeepsDuplicates(t *testing.T) {
	c := NewCollection()
	c.AppendRaw([]string{"orange"}, NewMetadata("nouns", "easy", "food", "fruit"))
	c.AppendRaw([]string{"orange"}, NewMetadata("adjectives", "easy", "color", ""))
	assert.Equal(t, 2, c.Len())
}

func TestToHierarchy(t *testing.T) {
	c := NewCollection()
	c.AppendRaw([]string{"cat", "dog"}, NewMetadata("nouns", "easy", "animals", ""))
	c.AppendRaw([]string{"owl"}, NewMetadata("nouns", "easy", "animals", "birds"))

	h := c.ToHierarchy()
	list, ok := h.Get("nouns", "easy", "animals", "general")
	require.True(t, ok)
	assert.Equal(t, []string{"cat", "dog"}, list)
	assert.Equal(t, 3, h.Count())

	_, ok = h.Get("verbs", "easy", "basic", "general")
	assert.False(t, ok)
}
