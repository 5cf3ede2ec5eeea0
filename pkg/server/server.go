package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/bastiangx/pqwords/internal/logger"
	"github.com/bastiangx/pqwords/internal/utils"
	"github.com/bastiangx/pqwords/pkg/config"
	"github.com/bastiangx/pqwords/pkg/lexicon"
	"github.com/bastiangx/pqwords/pkg/taxonomy"
	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultCompletionLimit applies to complete requests without a limit.
const DefaultCompletionLimit = 10

// Server handles msgpack IPC for a lexicon.
type Server struct {
	lex        *lexicon.Lexicon
	config     *config.Config
	configPath string

	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	writeM sync.Mutex
	logger *log.Logger
}

// NewServer creates a server speaking over stdin and stdout.
func NewServer(lex *lexicon.Lexicon, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(lex, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(lex *lexicon.Lexicon, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		lex:        lex,
		config:     cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
		logger:     logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends or ctx
// is cancelled. A request that cannot be decoded ends the session, since the
// stream position is lost.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Debug("Starting server")
	s.send(map[string]string{"status": "ready"})

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.handleRequest(ctx, req)
	}
}

func (s *Server) handleRequest(ctx context.Context, req Request) {
	switch req.Action {
	case ActionLookup:
		s.handleLookup(ctx, req)
	case ActionComplete:
		s.handleComplete(req)
	case ActionReload:
		s.handleReload(ctx, req)
	case ActionInfo:
		s.send(s.info(req.ID))
	case ActionConfig:
		s.handleConfig(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

func (s *Server) handleLookup(ctx context.Context, req Request) {
	word := utils.Sanitize(req.Word, s.config.Server.MaxWordLength)
	if word == "" {
		s.sendError(req.ID, "missing word", 400)
		return
	}

	fuzziness := s.config.Lookup.Fuzziness
	if req.Fuzziness != nil {
		fuzziness = *req.Fuzziness
	}
	fuzziness = min(max(fuzziness, 0), s.config.Server.MaxFuzziness)

	maxMatches := req.MaxMatches
	if maxMatches < 1 {
		maxMatches = s.config.Lookup.MaxMatches
	}
	maxMatches = min(maxMatches, s.config.Server.MaxMatches)

	start := time.Now()
	res := s.lex.FindWord(ctx, word, fuzziness, maxMatches)
	elapsed := time.Since(start)
	s.logger.Debugf("lookup '%s' f=%d m=%d: %d matches in %v", word, fuzziness, maxMatches, len(res.Matches), elapsed)

	ranks := utils.CreateRankList(len(res.Matches))
	matches := make([]Match, len(res.Matches))
	for i, e := range res.Matches {
		matches[i] = toMatch(e, ranks[i])
	}
	s.send(LookupResponse{
		ID:        req.ID,
		Success:   res.Success,
		Matches:   matches,
		Count:     len(matches),
		TimeTaken: elapsed.Microseconds(),
	})
}

func toMatch(e *words.Entry, rank uint16) Match {
	md := e.Metadata()
	return Match{
		Word:        e.Word(),
		Type:        md.Type,
		Level:       md.Level,
		Category:    md.Category,
		Subcategory: md.Subcategory,
		Rank:        rank,
	}
}

func (s *Server) handleComplete(req Request) {
	prefix := req.Prefix
	if prefix == "" {
		s.sendError(req.ID, "missing prefix", 400)
		return
	}
	if len([]rune(prefix)) > s.config.Server.MaxWordLength {
		s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", s.config.Server.MaxWordLength), 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = DefaultCompletionLimit
	}
	limit = min(limit, s.config.Server.MaxMatches)

	start := time.Now()
	found := s.lex.Complete(prefix, limit)
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(found))
	suggestions := make([]CompletionSuggestion, len(found))
	for i, f := range found {
		suggestions[i] = CompletionSuggestion{Word: f.Word, Rank: ranks[i]}
	}
	s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleReload(ctx context.Context, req Request) {
	params := s.lex.Params()
	if req.Params != nil {
		params = *req.Params
	}

	start := time.Now()
	if err := s.lex.Load(ctx, params); err != nil {
		s.logger.Errorf("Reload failed: %v", err)
		resp := s.info(req.ID)
		resp.Status = "error"
		resp.Error = err.Error()
		s.send(resp)
		return
	}
	resp := s.info(req.ID)
	resp.TimeTaken = time.Since(start).Microseconds()
	s.send(resp)
}

func (s *Server) info(id string) DictionaryResponse {
	tree := s.lex.Hierarchy()
	types := lo.Keys(tree)
	slices.Sort(types)

	var levels, cats []string
	for _, lv := range tree {
		levels = append(levels, lo.Keys(lv)...)
		for _, c := range lv {
			for cat, subs := range c {
				for sub := range subs {
					cats = append(cats, taxonomy.JoinCategory(cat, sub))
				}
			}
		}
	}
	levels = lo.Uniq(levels)
	slices.SortFunc(levels, func(a, b string) int {
		return taxonomy.LevelIndex(a) - taxonomy.LevelIndex(b)
	})
	cats = lo.Uniq(cats)
	slices.Sort(cats)

	return DictionaryResponse{
		ID:         id,
		Status:     "ok",
		WordCount:  s.lex.WordCount(),
		Types:      types,
		Levels:     levels,
		Categories: cats,
	}
}

func (s *Server) handleConfig(req Request) {
	err := s.config.Update(s.configPath, req.ServerMaxMatches, req.ServerMaxFuzziness, req.ServerMaxWordLength)
	resp := ConfigResponse{
		ID:            req.ID,
		Status:        "ok",
		MaxMatches:    s.config.Server.MaxMatches,
		MaxFuzziness:  s.config.Server.MaxFuzziness,
		MaxWordLength: s.config.Server.MaxWordLength,
	}
	if err != nil {
		s.logger.Warnf("Config update rejected: %v", err)
		resp.Status = "error"
		resp.Error = err.Error()
	}
	s.send(resp)
}

// send encodes a response. Encoding failures are logged; the client then
// sees no answer for that id.
func (s *Server) send(response any) {
	s.writeM.Lock()
	defer s.writeM.Unlock()
	if err := s.enc.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
