/*
Package taxonomy holds the fixed classification tables of the word lists.

Every word belongs to exactly one grammatical type, one difficulty level and
one category registered under that type. A category may carry a subcategory,
written as "main_sub" in the tables (e.g. "animals_birds"); words without one
use DefaultSubcategory.

The tables are static configuration data. Nothing in this package mutates
them after init, so they are safe to read from any goroutine.
*/
package taxonomy

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// DefaultSubcategory marks a word list that has no subcategory.
const DefaultSubcategory = "general"

// SubcategorySeparator splits "main_sub" category names.
const SubcategorySeparator = "_"

// Levels in ascending difficulty.
var Levels = []string{"core", "easy", "medium", "hard", "hardcore"}

// Types in the order a full load iterates them.
var Types = []string{"nouns", "geography", "names", "adjectives", "verbs", "adverbs", "pronouns", "prepositions"}

var (
	DefaultTypes      = []string{"nouns"}
	DefaultLevels     = []string{"easy"}
	DefaultCategories = []string{"animals", "food", "places", "items"}
)

// tableOrder is the declaration order of the category table. AllCategories
// follows it, not Types.
var tableOrder = []string{"geography", "names", "nouns", "adverbs", "adjectives", "verbs", "pronouns", "prepositions"}

var categories = map[string][]string{
	"geography": {"cities", "countries", "locations", "planets"},
	"names": {"business", "clothes", "creative_gaming", "creative_visual", "creative_writing", "digital", "food",
		"holidays", "items_appliances", "music", "people", "religion", "science", "sports", "travel", "vehicles", "general"},
	"nouns": {"anatomy", "animals", "animals_birds", "animals_farm", "animals_insects", "animals_pets", "business",
		"clothes", "colors", "continents", "creative_gaming", "creative_visual", "creative_writing", "digital", "events",
		"food", "food_beverages", "food_fruit", "food_sweets", "general", "holidays", "items", "items_appliances",
		"items_furniture", "items_household", "items_substances", "items_tools", "items_toys", "military", "music",
		"music_theory", "nature", "nature_weather", "occupations", "people", "places", "places_architecture",
		"places_inside", "religion", "science", "science_chemistry", "science_physics", "shapes", "sports", "time",
		"travel", "vehicles"},
	"adverbs": {"certainty", "conjunctive", "degree", "frequency", "interrogative", "manner", "place", "relative", "time"},
	"adjectives": {"age", "article", "character", "color", "comparative", "demonstrative", "difference", "distributive",
		"emotions", "material", "numbers", "opinion", "origin", "possessive", "predeterminer", "quantifier", "ranking",
		"shape", "size", "superlative", "technology", "temperature"},
	"verbs": {"auxiliary", "basic", "dynamic", "intransitive", "linking", "movement", "phrasal", "stative", "transitive",
		"communication", "feelings"},
	"pronouns":     {"pronouns"},
	"prepositions": {"movement", "place", "time"},
}

var allCategories = lo.Uniq(lo.FlatMap(tableOrder, func(t string, _ int) []string {
	return categories[t]
}))

// AllCategories returns every registered category name (subcategories
// included, as "main_sub"), deduplicated across types.
func AllCategories() []string {
	return slices.Clone(allCategories)
}

// CategoriesOf returns the categories registered under a type, nil for an
// unknown type.
func CategoriesOf(typ string) []string {
	return slices.Clone(categories[typ])
}

// IsType reports whether typ is a known grammatical type.
func IsType(typ string) bool {
	_, ok := categories[typ]
	return ok
}

// IsLevel reports whether level is a known difficulty level.
func IsLevel(level string) bool {
	return slices.Contains(Levels, level)
}

// IsCategory reports whether cat is registered under any type.
func IsCategory(cat string) bool {
	return slices.Contains(allCategories, cat)
}

// HasCategory reports whether cat is registered under typ.
func HasCategory(typ, cat string) bool {
	return slices.Contains(categories[typ], cat)
}

// Subcategories returns every registered category that contains cat as a
// substring, except cat itself. "animals" yields "animals_birds",
// "animals_farm" and so on.
func Subcategories(cat string) []string {
	return lo.Filter(allCategories, func(other string, _ int) bool {
		return other != cat && strings.Contains(other, cat)
	})
}

// SplitCategory splits "main_sub" into its parts. Names without a separator
// get DefaultSubcategory.
func SplitCategory(cat string) (main, sub string) {
	parts := strings.Split(cat, SubcategorySeparator)
	if len(parts) < 2 {
		return cat, DefaultSubcategory
	}
	return parts[0], parts[1]
}

// JoinCategory is the inverse of SplitCategory.
func JoinCategory(main, sub string) string {
	if sub == "" || sub == DefaultSubcategory {
		return main
	}
	return main + SubcategorySeparator + sub
}

// LevelIndex returns the position of level in Levels, -1 if unknown.
func LevelIndex(level string) int {
	return slices.Index(Levels, level)
}

// LevelsBelow returns all levels strictly easier than level.
func LevelsBelow(level string) []string {
	idx := LevelIndex(level)
	if idx <= 0 {
		return nil
	}
	return slices.Clone(Levels[:idx])
}

// PrintCategories joins the category names, optionally leaving out the
// "main_sub" entries.
func PrintCategories(excludeSubcat bool, joiner string) string {
	names := lo.Reject(allCategories, func(cat string, _ int) bool {
		return excludeSubcat && strings.Contains(cat, SubcategorySeparator)
	})
	return strings.Join(names, joiner)
}
