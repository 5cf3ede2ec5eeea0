/*
Package server implements msgpack IPC for word lookups.

The server reads msgpack maps from stdin and writes one msgpack map per
request to stdout. Every request carries an "id" echoed in its response and
an "action" selecting the operation:

	{"id": "q1", "action": "lookup", "w": "elefant", "f": 2, "m": 4}
	{"id": "q2", "action": "complete", "p": "ele", "l": 10}
	{"id": "q3", "action": "reload", "params": {"types": ["nouns"], "levels": ["easy"]}}
	{"id": "q4", "action": "info"}
	{"id": "q5", "action": "config", "max_matches": 16}

A lookup answers with the exact entry when the word is loaded, or with fuzzy
suggestions otherwise:

	{"id": "q1", "ok": false, "m": [{"w": "elephant", "ty": "nouns", "lv": "easy", "c": "animals", "sc": "general", "r": 1}], "c": 1, "t": 412}

Timings ("t") are in microseconds. Failed requests get an error message
with an HTTP-like code:

	{"id": "q1", "e": "missing word", "c": 400}

Requests are handled one at a time in arrival order.
*/
package server

import "github.com/bastiangx/pqwords/pkg/selection"

// Actions understood by the server.
const (
	ActionLookup   = "lookup"
	ActionComplete = "complete"
	ActionReload   = "reload"
	ActionInfo     = "info"
	ActionConfig   = "config"
)

// Request is the union of every request shape; Action picks the fields
// that matter.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`

	// lookup
	Word       string `msgpack:"w,omitempty"`
	Fuzziness  *int   `msgpack:"f,omitempty"`
	MaxMatches int    `msgpack:"m,omitempty"`

	// complete
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`

	// reload
	Params *selection.Params `msgpack:"params,omitempty"`

	// config
	ServerMaxMatches    *int `msgpack:"max_matches,omitempty"`
	ServerMaxFuzziness  *int `msgpack:"max_fuzziness,omitempty"`
	ServerMaxWordLength *int `msgpack:"max_word_length,omitempty"`
}

// Match is one entry of a lookup response.
type Match struct {
	Word        string `msgpack:"w"`
	Type        string `msgpack:"ty"`
	Level       string `msgpack:"lv"`
	Category    string `msgpack:"c"`
	Subcategory string `msgpack:"sc"`
	Rank        uint16 `msgpack:"r"`
}

// LookupResponse answers a lookup. Success is true only for exact hits.
type LookupResponse struct {
	ID        string  `msgpack:"id"`
	Success   bool    `msgpack:"ok"`
	Matches   []Match `msgpack:"m"`
	Count     int     `msgpack:"c"`
	TimeTaken int64   `msgpack:"t"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// DictionaryResponse answers info and reload requests.
type DictionaryResponse struct {
	ID         string   `msgpack:"id"`
	Status     string   `msgpack:"status"`
	Error      string   `msgpack:"error,omitempty"`
	WordCount  int      `msgpack:"word_count"`
	Types      []string `msgpack:"types,omitempty"`
	Levels     []string `msgpack:"levels,omitempty"`
	Categories []string `msgpack:"categories,omitempty"`
	TimeTaken  int64    `msgpack:"t,omitempty"`
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID            string `msgpack:"id"`
	Status        string `msgpack:"status"`
	Error         string `msgpack:"error,omitempty"`
	MaxMatches    int    `msgpack:"max_matches"`
	MaxFuzziness  int    `msgpack:"max_fuzziness"`
	MaxWordLength int    `msgpack:"max_word_length"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
