/*
Package wordfile maintains the on-disk word tree: one text file per
type/level/category[_subcategory], one word per line.

It cleans and deduplicates files, adds words, creates new lists, counts
words, lists the names in use at every level, backs the tree up and packs it
into the bulk bundle read by dictionary.OpenBundle.
*/
package wordfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bastiangx/pqwords/internal/utils"
	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/taxonomy"
	"github.com/bastiangx/pqwords/pkg/words"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// HierarchyNames are the directory levels of the tree, outermost first. The
// last one is the file name.
var HierarchyNames = []string{"type", "level", "category"}

var (
	// ErrExists is returned when creating a list that is already there.
	ErrExists = errors.New("word file already exists")
	// ErrDuplicate is returned when adding a word the list already holds.
	ErrDuplicate = errors.New("word already listed")
)

// Tree is a word directory rooted at Root.
type Tree struct {
	Root      string
	BackupDir string
}

// NewTree returns a tree whose backups go to a "_backup" directory next to
// root.
func NewTree(root string) *Tree {
	return &Tree{
		Root:      root,
		BackupDir: filepath.Join(filepath.Dir(filepath.Clean(root)), "_backup"),
	}
}

// ignored reports names the maintenance commands skip: private entries
// starting with '_' and files that are not word lists.
func ignored(d fs.DirEntry) bool {
	name := d.Name()
	if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
		return true
	}
	return !d.IsDir() && filepath.Ext(name) != dictionary.TextExtension
}

// Files lists every word file below the root in lexical order.
func (t *Tree) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(t.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == t.Root {
			return nil
		}
		if ignored(d) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", t.Root, err)
	}
	return files, nil
}

// WordCount counts the lines of files.
func WordCount(files []string) (int, error) {
	total := 0
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", f, err)
		}
		total += len(splitLines(data))
	}
	return total, nil
}

func splitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Keywords returns, per hierarchy level, the sorted distinct names found in
// the tree.
func (t *Tree) Keywords() (map[string][]string, error) {
	keywords := make(map[string][]string, len(HierarchyNames))
	for _, name := range HierarchyNames {
		keywords[name] = nil
	}
	if err := t.collectKeywords(t.Root, keywords, 0); err != nil {
		return nil, err
	}
	for name, list := range keywords {
		list = lo.Uniq(list)
		slices.Sort(list)
		keywords[name] = list
	}
	return keywords, nil
}

func (t *Tree) collectKeywords(dir string, keywords map[string][]string, depth int) error {
	if depth >= len(HierarchyNames) {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	level := HierarchyNames[depth]
	for _, d := range entries {
		if ignored(d) {
			continue
		}
		keywords[level] = append(keywords[level], strings.TrimSuffix(d.Name(), dictionary.TextExtension))
		if d.IsDir() {
			if err := t.collectKeywords(filepath.Join(dir, d.Name()), keywords, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Path returns the file of q inside the tree.
func (t *Tree) Path(q dictionary.Query) string {
	return filepath.Join(t.Root, filepath.FromSlash(q.Path()))
}

// Read returns the raw content of the list for q.
func (t *Tree) Read(q dictionary.Query) (string, error) {
	data, err := os.ReadFile(t.Path(q))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Create makes an empty list for q, creating directories as needed.
func (t *Tree) Create(q dictionary.Query) (string, error) {
	path := t.Path(q)
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return path, fmt.Errorf("%w: %s", ErrExists, path)
		}
		return "", err
	}
	return path, f.Close()
}

// AddWord appends word to the list for q on a line of its own, creating the
// list when missing. A word already in the list, in any case, is refused
// with ErrDuplicate.
func (t *Tree) AddWord(q dictionary.Query, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return errors.New("empty word")
	}
	path := t.Path(q)
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if !utils.NewSeenFilter(splitLines(existing)...).ShouldInclude(word) {
		return fmt.Errorf("%w: %s in %s", ErrDuplicate, word, path)
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	line := word + "\n"
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		line = "\n" + line
	}
	_, err = f.WriteString(line)
	return err
}

// Clean sorts the file and drops blank lines.
func Clean(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := lo.Filter(splitLines(data), func(l string, _ int) bool {
		return strings.TrimSpace(l) != ""
	})
	slices.Sort(lines)
	return writeLines(path, lines)
}

// RemoveDuplicates sorts the file and keeps one copy of every line. It
// reports whether the file changed.
func RemoveDuplicates(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	lines := splitLines(data)
	sorted := slices.Clone(lines)
	slices.Sort(sorted)
	deduped := slices.Compact(sorted)
	if len(deduped) == len(lines) {
		return false, nil
	}
	log.Debugf("Removed %d duplicates from %s", len(lines)-len(deduped), path)
	return true, writeLines(path, deduped)
}

func writeLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return utils.WriteFileAtomic(path, []byte(content))
}

// Backup replaces the backup directory with a copy of the tree.
func (t *Tree) Backup() error {
	if err := os.RemoveAll(t.BackupDir); err != nil {
		return fmt.Errorf("failed to remove old backup: %w", err)
	}
	files, err := t.Files()
	if err != nil {
		return err
	}
	for _, src := range files {
		rel, err := filepath.Rel(t.Root, src)
		if err != nil {
			return err
		}
		dst := filepath.Join(t.BackupDir, rel)
		if err := utils.EnsureDir(filepath.Dir(dst)); err != nil {
			return err
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return err
		}
	}
	return nil
}

// QueryOf maps a word file path back to its query. ok is false for paths
// that are not type/level/category files inside the tree.
func (t *Tree) QueryOf(path string) (dictionary.Query, bool) {
	rel, err := filepath.Rel(t.Root, path)
	if err != nil {
		return dictionary.Query{}, false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != len(HierarchyNames) {
		return dictionary.Query{}, false
	}
	cat, sub := taxonomy.SplitCategory(strings.TrimSuffix(parts[2], dictionary.TextExtension))
	return dictionary.Query{Type: parts[0], Level: parts[1], Category: cat, Subcategory: sub}, true
}

// Hierarchy reads the whole tree in bundle layout. Lines are parsed the same
// way TextSource parses them.
func (t *Tree) Hierarchy() (words.Hierarchy, error) {
	files, err := t.Files()
	if err != nil {
		return nil, err
	}
	c := words.NewCollection()
	for _, path := range files {
		q, ok := t.QueryOf(path)
		if !ok {
			log.Warnf("Skipping %s: not a type/level/category file", path)
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		list, err := dictionary.ParseLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		c.AppendRaw(list, q.Metadata())
	}
	return c.ToHierarchy(), nil
}

// WriteBundle packs the tree into root/lib-pqWords.<ext> and returns the path.
func (t *Tree) WriteBundle(format dictionary.FileFormat) (string, error) {
	info, ok := dictionary.GetFormatInfo(format)
	if !ok || format == dictionary.FormatText {
		return "", fmt.Errorf("unsupported bundle format: %s", format)
	}
	tree, err := t.Hierarchy()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := dictionary.WriteBundle(&buf, tree, format); err != nil {
		return "", err
	}
	path := filepath.Join(t.Root, dictionary.BundleName+info.Extensions[0])
	return path, utils.WriteFileAtomic(path, buf.Bytes())
}
