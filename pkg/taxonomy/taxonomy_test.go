package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCategoriesUnique(t *testing.T) {
	all := AllCategories()
	seen := make(map[string]bool, len(all))
	for _, cat := range all {
		require.False(t, seen[cat], "duplicate category %q", cat)
		seen[cat] = true
	}
	assert.Equal(t, "cities", all[0], "table order starts with geography")
	assert.Contains(t, all, "animals_birds")
	assert.Contains(t, all, "pronouns")
}

func TestSubcategories(t *testing.T) {
	subs := Subcategories("animals")
	assert.Equal(t, []string{"animals_birds", "animals_farm", "animals_insects", "animals_pets"}, subs)
	assert.NotContains(t, subs, "animals")

	assert.Empty(t, Subcategories("anatomy"))
}

func TestSplitCategory(t *testing.T) {
	tests := []struct {
		in, main, sub string
	}{
		{"animals_birds", "animals", "birds"},
		{"animals", "animals", DefaultSubcategory},
		{"creative_writing", "creative", "writing"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			main, sub := SplitCategory(tc.in)
			assert.Equal(t, tc.main, main)
			assert.Equal(t, tc.sub, sub)
			assert.Equal(t, tc.in, JoinCategory(main, sub))
		})
	}
}

func TestLevelsBelow(t *testing.T) {
	assert.Equal(t, []string{"core", "easy"}, LevelsBelow("medium"))
	assert.Nil(t, LevelsBelow("core"))
	assert.Nil(t, LevelsBelow("impossible"))
}

func TestHasCategory(t *testing.T) {
	assert.True(t, HasCategory("nouns", "animals_farm"))
	assert.False(t, HasCategory("verbs", "animals"))
	assert.False(t, HasCategory("unknown", "animals"))
	assert.True(t, IsType("prepositions"))
	assert.True(t, IsLevel("hardcore"))
	assert.True(t, IsCategory("planets"))
}

func TestPrintCategories(t *testing.T) {
	out := PrintCategories(true, ",")
	assert.NotContains(t, out, "_")
	assert.True(t, strings.HasPrefix(out, "cities,countries"))

	full := PrintCategories(false, ",")
	assert.Contains(t, full, "animals_birds")
}
