package fuzzy

import (
	"context"
	"strings"

	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/charmbracelet/log"
)

// DefaultMaxMatches is used when a search asks for fewer than one match.
const DefaultMaxMatches = 4

// Lookuper is the part of an index the search needs.
type Lookuper interface {
	Lookup(word string) (*words.Entry, bool)
}

// Result of a word search.
//
// Success is set only when the query itself is indexed; Matches then holds
// that single entry. Fuzzy hits are suggestions and always come back with
// Success false.
type Result struct {
	Success bool
	Matches []*words.Entry
}

// Search looks word up in idx and, when it is missing and fuzziness > 0,
// collects up to maxMatches distinct entries within fuzziness edits, in
// generation order.
//
// Search never fails. A cancelled ctx ends the fuzzy phase early and returns
// what was found so far.
func Search(ctx context.Context, idx Lookuper, word string, fuzziness, maxMatches int) Result {
	if maxMatches < 1 {
		maxMatches = DefaultMaxMatches
	}
	word = strings.ToLower(word)

	if e, ok := idx.Lookup(word); ok {
		return Result{Success: true, Matches: []*words.Entry{e}}
	}
	if fuzziness <= 0 {
		return Result{Matches: []*words.Entry{}}
	}

	matches := make([]*words.Entry, 0, maxMatches)
	seen := make(map[*words.Entry]struct{}, maxMatches)
	err := Generate(ctx, word, fuzziness, true, func(candidate string) bool {
		e, ok := idx.Lookup(candidate)
		if !ok {
			return true
		}
		if _, dup := seen[e]; dup {
			return true
		}
		seen[e] = struct{}{}
		matches = append(matches, e)
		return len(matches) < maxMatches
	})
	if err != nil {
		log.Debugf("Fuzzy search for '%s' stopped early: %v", word, err)
	}
	return Result{Matches: matches}
}
