package utils

import (
	"strings"
)

// SeenFilter tracks words case-insensitively and reports repeats.
// It is not safe for concurrent use.
type SeenFilter struct {
	seen map[string]struct{}
}

// NewSeenFilter creates a filter that already treats exclude as seen.
func NewSeenFilter(exclude ...string) *SeenFilter {
	f := &SeenFilter{seen: make(map[string]struct{})}
	for _, w := range exclude {
		f.seen[strings.ToLower(w)] = struct{}{}
	}
	return f
}

// ShouldInclude returns true the first time a word is offered.
func (f *SeenFilter) ShouldInclude(word string) bool {
	key := strings.ToLower(word)
	if _, dup := f.seen[key]; dup {
		return false
	}
	f.seen[key] = struct{}{}
	return true
}
