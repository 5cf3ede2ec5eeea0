package dictionary

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
)

// MinLineLength is the shortest line kept from a word file. Shorter lines
// are blank or stray characters.
const MinLineLength = 2

// TextSource reads per-query word files from a file system.
type TextSource struct {
	fsys fs.FS
}

// NewTextSource serves files from fsys, typically os.DirFS of the words root.
func NewTextSource(fsys fs.FS) *TextSource {
	return &TextSource{fsys: fsys}
}

// Words reads the file of q. A missing file yields no words.
func (ts *TextSource) Words(ctx context.Context, q Query) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filePath := q.Path()
	log.Debugf("Checking file at %s", filePath)

	data, err := fs.ReadFile(ts.fsys, filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read word file %s: %w", filePath, err)
	}
	return ParseLines(bytes.NewReader(data))
}

// ParseLines splits newline delimited text into words, dropping every line
// shorter than MinLineLength. Both \n and \r\n endings are accepted.
func ParseLines(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		if len(line) < MinLineLength {
			continue
		}
		out = append(out, string(line))
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("failed to scan word file: %w", err)
	}
	return out, nil
}
