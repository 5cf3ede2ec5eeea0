/*
Package fuzzy finds dictionary words within a small edit distance of a query.

Instead of scoring every indexed word against the query, the search runs the
edit distance in reverse: it generates every string reachable from the query
by at most N single-character edits (deletion, insertion or substitution over
the lowercase latin alphabet) and probes the index for each one.

The generator is brute force. Each level multiplies the candidate count by
roughly 53 times the word length, so budgets above 2 are impractical. That
cost is accepted; callers bound it through a context deadline.

Distance is an independent bounded Levenshtein scorer, used to verify or rank
candidates.
*/
package fuzzy

import (
	"context"
)

// Alphabet is the symbol set used for insertions and substitutions.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// how many emitted candidates between two context checks
const ctxCheckInterval = 1024

// Generate calls visit with every string reachable from word by exactly
// fuzziness edits. With partials set, strings reached after fewer edits are
// visited as well, so the stream covers every distance from 1 to fuzziness.
// Strings equal to word are never visited. The stream may contain the same
// string more than once.
//
// Order is deterministic and depth first: at each level all deletions
// (positions 0 through len, the last one leaving the string as is), then for
// each letter and each position an insertion followed by a substitution.
//
// Generation stops when visit returns false, or with ctx.Err() once ctx is done.
func Generate(ctx context.Context, word string, fuzziness int, partials bool, visit func(string) bool) error {
	if word == "" || fuzziness < 0 {
		return nil
	}
	g := &generator{
		ctx:      ctx,
		original: word,
		partials: partials,
		visit:    visit,
	}
	g.expand([]rune(word), fuzziness)
	return g.err
}

// Candidates collects the output of Generate into a slice.
func Candidates(word string, fuzziness int, partials bool) []string {
	var out []string
	_ = Generate(context.Background(), word, fuzziness, partials, func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

type generator struct {
	ctx      context.Context
	original string
	partials bool
	visit    func(string) bool
	emitted  int
	err      error
}

// expand returns false once generation must stop.
func (g *generator) expand(word []rune, budget int) bool {
	if budget <= 0 {
		return g.emit(string(word))
	}

	// i == len(word) deletes nothing: the word itself is expanded with one
	// edit less, which puts all shorter-distance strings ahead of the
	// insertion subtrees.
	for i := 0; i <= len(word); i++ {
		next := make([]rune, 0, len(word))
		next = append(next, word[:i]...)
		if i < len(word) {
			next = append(next, word[i+1:]...)
		}
		if !g.descend(next, budget) {
			return false
		}
	}

	for _, c := range Alphabet {
		for i := 0; i <= len(word); i++ {
			ins := make([]rune, 0, len(word)+1)
			ins = append(ins, word[:i]...)
			ins = append(ins, c)
			ins = append(ins, word[i:]...)
			if !g.step(ins, budget) {
				return false
			}

			if i >= len(word) || word[i] == c {
				continue
			}
			sub := make([]rune, len(word))
			copy(sub, word)
			sub[i] = c
			if !g.step(sub, budget) {
				return false
			}
		}
	}
	return true
}

// step prunes insertions and substitutions that lead back to the original.
func (g *generator) step(next []rune, budget int) bool {
	if string(next) == g.original {
		return true
	}
	return g.descend(next, budget)
}

func (g *generator) descend(next []rune, budget int) bool {
	if g.partials && budget > 1 {
		if !g.emit(string(next)) {
			return false
		}
	}
	return g.expand(next, budget-1)
}

func (g *generator) emit(s string) bool {
	if s == g.original {
		return true
	}
	g.emitted++
	if g.emitted%ctxCheckInterval == 0 {
		if err := g.ctx.Err(); err != nil {
			g.err = err
			return false
		}
	}
	return g.visit(s)
}
