/*
Package selection turns a high level word selection into concrete list queries.

A selection names grammatical types, difficulty levels and categories, plus
shortcuts (every level below the requested one, every category, every
subcategory) and exclusions. Expand resolves it against the taxonomy into one
dictionary.Query per (type, level, category, subcategory) combination, nested
type -> level -> category. Engine.Load then fetches those lists and builds the
word collection.

Unknown names are permissive by default: they never match a combination and
contribute no words. Setting Params.Strict reports them as ErrConfiguration.
*/
package selection

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/taxonomy"
	"github.com/samber/lo"
)

// DefaultMaxWordLength applies when Params.MaxWordLength is zero.
const DefaultMaxWordLength = 50

// ErrConfiguration is returned in strict mode for names the taxonomy does
// not know.
var ErrConfiguration = errors.New("invalid selection")

// Params describes which word lists to load. It only lives for the duration
// of one load.
type Params struct {
	// Path and Method select the source the lists come from; config keeps
	// them in its [source] section. Engine reads from the source it was given,
	// lexicon.Lexicon reopens its source when they change.
	Path   string `toml:"-" msgpack:"path,omitempty"`
	Method string `toml:"-" msgpack:"method,omitempty" validate:"omitempty,oneof=json msgpack txt"`

	UseAll            bool     `toml:"use_all" msgpack:"use_all,omitempty"`
	Types             []string `toml:"types" msgpack:"types,omitempty"`
	Levels            []string `toml:"levels" msgpack:"levels,omitempty"`
	Categories        []string `toml:"categories" msgpack:"categories,omitempty"`
	UseAllLevelsBelow bool     `toml:"use_all_levels_below" msgpack:"use_all_levels_below,omitempty"`
	UseAllCategories  bool     `toml:"use_all_categories" msgpack:"use_all_categories,omitempty"`
	UseAllSubcat      bool     `toml:"use_all_subcat" msgpack:"use_all_subcat,omitempty"`

	TypeExceptions     []string `toml:"type_exceptions" msgpack:"type_exceptions,omitempty"`
	CategoryExceptions []string `toml:"category_exceptions" msgpack:"category_exceptions,omitempty"`

	// Words shorter than MinWordLength or longer than MaxWordLength are
	// dropped; both bounds are inclusive.
	MinWordLength int `toml:"min_word_length" msgpack:"min_word_length,omitempty" validate:"gte=0"`
	MaxWordLength int `toml:"max_word_length" msgpack:"max_word_length,omitempty" validate:"gte=0"`

	Strict bool `toml:"strict" msgpack:"strict,omitempty"`
}

// All selects every list the taxonomy knows.
func All() Params {
	return Params{UseAll: true}
}

// resolved is Params with every shortcut and default applied.
type resolved struct {
	types, levels, categories    []string
	typeExceptions, catException []string
}

func (p Params) resolve() resolved {
	r := resolved{
		types:          p.Types,
		levels:         p.Levels,
		categories:     p.Categories,
		typeExceptions: p.TypeExceptions,
		catException:   p.CategoryExceptions,
	}
	useAllSubcat := p.UseAllSubcat
	if p.UseAll {
		r.types = taxonomy.Types
		r.levels = taxonomy.Levels
		r.categories = taxonomy.AllCategories()
		useAllSubcat = true
	}

	if len(r.types) == 0 {
		r.types = taxonomy.DefaultTypes
	}
	if len(r.levels) == 0 {
		r.levels = taxonomy.DefaultLevels
	}
	r.levels = slices.Clone(r.levels)
	if p.UseAllLevelsBelow {
		r.levels = append(r.levels, taxonomy.LevelsBelow(r.levels[0])...)
	}

	switch {
	case p.UseAllCategories:
		r.categories = taxonomy.AllCategories()
	case len(r.categories) == 0:
		r.categories = taxonomy.DefaultCategories
	}
	r.categories = slices.Clone(r.categories)
	if useAllSubcat {
		for _, cat := range r.categories {
			r.categories = append(r.categories, taxonomy.Subcategories(cat)...)
		}
	}

	r.types = lo.Uniq(r.types)
	r.levels = lo.Uniq(r.levels)
	r.categories = lo.Uniq(r.categories)
	return r
}

// Validate reports the names in p that the taxonomy does not know.
func (p Params) Validate() error {
	var unknown []string
	for _, t := range lo.Union(p.Types, p.TypeExceptions) {
		if !taxonomy.IsType(t) {
			unknown = append(unknown, "type "+t)
		}
	}
	for _, l := range p.Levels {
		if !taxonomy.IsLevel(l) {
			unknown = append(unknown, "level "+l)
		}
	}
	for _, c := range p.Categories {
		if !taxonomy.IsCategory(c) {
			unknown = append(unknown, "category "+c)
		}
	}
	for _, c := range p.CategoryExceptions {
		if !isCategoryPart(c) {
			unknown = append(unknown, "category exception "+c)
		}
	}
	if p.MinWordLength < 0 || p.MaxWordLength < 0 {
		unknown = append(unknown, "negative word length bound")
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(unknown, ", "))
	}
	return nil
}

// isCategoryPart reports whether name is a category or the main or sub
// part of one.
func isCategoryPart(name string) bool {
	return lo.SomeBy(taxonomy.AllCategories(), func(cat string) bool {
		main, sub := taxonomy.SplitCategory(cat)
		return cat == name || main == name || sub == name
	})
}

// Expand lists the queries p selects in type -> level -> category order.
// In strict mode unknown names fail with ErrConfiguration.
func Expand(p Params) ([]dictionary.Query, error) {
	if p.Strict {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	r := p.resolve()

	var queries []dictionary.Query
	for _, typ := range r.types {
		if slices.Contains(r.typeExceptions, typ) {
			continue
		}
		relevant := lo.Filter(r.categories, func(cat string, _ int) bool {
			return taxonomy.HasCategory(typ, cat)
		})

		for _, level := range r.levels {
			for _, cat := range relevant {
				main, sub := taxonomy.SplitCategory(cat)
				if slices.Contains(r.catException, main) || slices.Contains(r.catException, sub) {
					continue
				}
				queries = append(queries, dictionary.Query{
					Type:        typ,
					Level:       level,
					Category:    main,
					Subcategory: sub,
				})
			}
		}
	}
	return queries, nil
}
