// Package cli is the interactive prompt: it reads words from stdin and prints
// whether the lexicon knows them.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/pqwords/internal/logger"
	"github.com/bastiangx/pqwords/internal/utils"
	"github.com/bastiangx/pqwords/pkg/lexicon"
	"github.com/charmbracelet/log"
)

// InputHandler reads one word per line and answers with a lookup verdict.
//
// Lines starting with ':' are commands:
//
//	:complete <prefix>   list loaded words starting with prefix
//	:random [n]          print n random words (default 1)
//	:count               print the number of loaded words
type InputHandler struct {
	lex           *lexicon.Lexicon
	fuzziness     int
	maxMatches    int
	maxWordLength int
	noFilter      bool

	in     io.Reader
	out    io.Writer
	styles Styles
	logger *log.Logger
}

// NewInputHandler creates a prompt over in and out.
func NewInputHandler(lex *lexicon.Lexicon, fuzziness, maxMatches, maxWordLength int, noFilter bool, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		lex:           lex,
		fuzziness:     fuzziness,
		maxMatches:    maxMatches,
		maxWordLength: maxWordLength,
		noFilter:      noFilter,
		in:            in,
		out:           out,
		styles:        PlainStyles(),
		logger:        logger.New("cli"),
	}
}

// SetStyles switches the verdict rendering, e.g. to DefaultStyles on a
// terminal.
func (h *InputHandler) SetStyles(st Styles) {
	h.styles = st
}

// Start runs the prompt until the input ends or ctx is cancelled.
func (h *InputHandler) Start(ctx context.Context) error {
	fmt.Fprintln(h.out, "pqwords: type a word and press Enter (Ctrl+C to exit)")
	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			h.handleCommand(line[1:])
			continue
		}
		h.handleInput(ctx, line)
	}
}

func (h *InputHandler) handleInput(ctx context.Context, input string) {
	word := utils.Sanitize(input, h.maxWordLength)
	if !h.noFilter && !utils.IsValidInput(word) {
		h.logger.Warnf("Ignoring input '%s' (filtered out)", input)
		return
	}

	start := time.Now()
	res := h.lex.FindWord(ctx, word, h.fuzziness, h.maxMatches)
	h.logger.Debugf("Took [ %v ] for '%s'", time.Since(start), word)

	fmt.Fprintln(h.out, RenderResult(word, res, h.styles))
}

func (h *InputHandler) handleCommand(cmd string) {
	name, arg, _ := strings.Cut(strings.TrimSpace(cmd), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "complete", "c":
		if arg == "" {
			h.logger.Error("Usage: :complete <prefix>")
			return
		}
		found := h.lex.Complete(arg, h.maxMatches*4)
		if len(found) == 0 {
			fmt.Fprintf(h.out, "No words start with '%s'\n", arg)
			return
		}
		for i, s := range found {
			fmt.Fprintf(h.out, "%2d. %s\n", i+1, h.styles.Match.Render(s.Word))
		}
	case "random", "r":
		n := 1
		if arg != "" {
			parsed, err := strconv.Atoi(arg)
			if err != nil || parsed < 1 {
				h.logger.Errorf("Invalid count: %s", arg)
				return
			}
			n = parsed
		}
		for _, e := range h.lex.Random(n, false) {
			fmt.Fprintf(h.out, "%s %s\n", h.styles.Word.Render(e.Word()), h.styles.Metadata.Render("("+e.Metadata().String()+")"))
		}
	case "count":
		fmt.Fprintf(h.out, "%s words loaded\n", utils.FormatWithCommas(h.lex.WordCount()))
	default:
		h.logger.Errorf("Unknown command: %s", name)
	}
}
