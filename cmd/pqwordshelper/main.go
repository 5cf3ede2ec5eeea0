// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Command pqwordshelper maintains the pqwords word tree.

Inputless commands run once over every list:

	pqwordshelper -c cleanfiles
	pqwordshelper -c removeduplicates
	pqwordshelper -c printvaluelist
	pqwordshelper -c bundle -format msgpack

Inputful commands prompt for the type, level and category of the list (any
of them can be fixed with a flag) and repeat until answered with "n":

	pqwordshelper -c readfile
	pqwordshelper -c addword -type nouns -level easy
	pqwordshelper -c createfile

The tree is backed up before anything runs.
*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bastiangx/pqwords/internal/logger"
	"github.com/bastiangx/pqwords/internal/utils"
	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/taxonomy"
	"github.com/bastiangx/pqwords/pkg/wordfile"
	"github.com/charmbracelet/log"
)

const (
	cmdReadFile         = "readfile"
	cmdAddWord          = "addword"
	cmdCreateFile       = "createfile"
	cmdRemoveDuplicates = "removeduplicates"
	cmdCleanFiles       = "cleanfiles"
	cmdPrintValueList   = "printvaluelist"
	cmdPrintValueString = "printvaluestring"
	cmdBundle           = "bundle"
)

type helper struct {
	tree     *wordfile.Tree
	keywords map[string][]string
	fixed    map[string]string
	word     string
	in       *bufio.Reader
	out      io.Writer
}

func main() {
	command := flag.String("c", cmdReadFile, "Command: readfile, addword, createfile, removeduplicates, cleanfiles, printvaluelist, printvaluestring, bundle")
	word := flag.String("w", "", "Word to add (addword)")
	typ := flag.String("type", "", "Fix the type instead of asking")
	level := flag.String("level", "", "Fix the level instead of asking")
	category := flag.String("category", "", "Fix the category instead of asking")
	root := flag.String("root", "words", "Root of the word tree")
	format := flag.String("format", dictionary.MethodJSON, "Bundle format: json or msgpack")
	noBackup := flag.Bool("no-backup", false, "Skip the backup of the tree")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	flag.Parse()

	logger.Setup(*debugMode)

	if !utils.IsDir(*root) {
		log.Fatalf("Word tree not found at %s", *root)
	}

	h := &helper{
		tree:  wordfile.NewTree(*root),
		fixed: map[string]string{},
		word:  *word,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
	}
	for name, v := range map[string]string{"type": *typ, "level": *level, "category": *category} {
		if v != "" {
			h.fixed[name] = v
		}
	}

	if !*noBackup {
		if err := h.tree.Backup(); err != nil {
			log.Fatalf("Backup failed: %v", err)
		}
		fmt.Fprintf(h.out, "Made backup to %s\n", h.tree.BackupDir)
	}

	h.printCount("start")

	keywords, err := h.tree.Keywords()
	if err != nil {
		log.Fatalf("Failed to read word tree: %v", err)
	}
	h.keywords = keywords

	if err := h.run(*command, *format); err != nil {
		log.Fatal(err)
	}

	h.printCount("end")
}

func (h *helper) printCount(when string) {
	files, err := h.tree.Files()
	if err != nil {
		log.Errorf("Failed to list word files: %v", err)
		return
	}
	count, err := wordfile.WordCount(files)
	if err != nil {
		log.Errorf("Failed to count words: %v", err)
		return
	}
	fmt.Fprintf(h.out, "Total # words (%s): %s\n", when, utils.FormatWithCommas(count))
}

func (h *helper) run(command, format string) error {
	switch command {
	case cmdPrintValueList:
		fmt.Fprintf(h.out, "%q\n", h.keywords["category"])
	case cmdPrintValueString:
		fmt.Fprintln(h.out, strings.Join(h.keywords["category"], ","))
	case cmdRemoveDuplicates, cmdCleanFiles:
		files, err := h.tree.Files()
		if err != nil {
			return err
		}
		for _, f := range files {
			if command == cmdCleanFiles {
				err = wordfile.Clean(f)
			} else {
				var changed bool
				changed, err = wordfile.RemoveDuplicates(f)
				if changed {
					fmt.Fprintf(h.out, "Removed duplicates from %s\n", f)
				}
			}
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
		}
	case cmdBundle:
		ff := dictionary.FormatJSON
		if format == dictionary.MethodMsgpack {
			ff = dictionary.FormatMsgpack
		}
		path, err := h.tree.WriteBundle(ff)
		if err != nil {
			return err
		}
		fmt.Fprintf(h.out, "Wrote bundle to %s\n", path)
	case cmdReadFile, cmdAddWord, cmdCreateFile:
		if err := h.prompt(command); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

// prompt asks for a list and applies command to it until the user stops.
func (h *helper) prompt(command string) error {
	for {
		q, err := h.askQuery(command != cmdCreateFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(h.out, "Executing your input: %s\n", q)

		switch command {
		case cmdReadFile:
			content, err := h.tree.Read(q)
			if err != nil {
				log.Errorf("Couldn't read file: %v", err)
			} else {
				fmt.Fprintf(h.out, "\n%s\n", content)
			}
		case cmdAddWord:
			word := h.word
			if word == "" {
				if word, err = h.ask("word", nil); err != nil {
					return err
				}
			}
			if err := h.tree.AddWord(q, word); errors.Is(err, wordfile.ErrDuplicate) {
				fmt.Fprintln(h.out, "Word is already in that file")
			} else if err != nil {
				log.Errorf("Couldn't write to file: %v", err)
			} else {
				fmt.Fprintln(h.out, "Successfully written to file!")
			}
		case cmdCreateFile:
			if known := taxonomy.CategoriesOf(q.Type); !slices.Contains(known, q.FileName()) {
				log.Warnf("%s is not a registered %s category (known: %s)", q.FileName(), q.Type, strings.Join(known, ", "))
			}
			path, err := h.tree.Create(q)
			switch {
			case errors.Is(err, wordfile.ErrExists):
				fmt.Fprintln(h.out, "File already exists")
			case err != nil:
				log.Errorf("Couldn't create file: %v", err)
			default:
				fmt.Fprintf(h.out, "File %s created!\n", path)
			}
		}

		answer, err := h.ask("do you want to continue [y/n]", nil)
		if err != nil || answer == "n" {
			return err
		}
	}
}

func (h *helper) askQuery(requireKnown bool) (dictionary.Query, error) {
	values := make(map[string]string, len(wordfile.HierarchyNames))
	for _, name := range wordfile.HierarchyNames {
		if v, ok := h.fixed[name]; ok {
			values[name] = v
			continue
		}
		var valid []string
		if requireKnown {
			valid = h.keywords[name]
		}
		v, err := h.ask(name, valid)
		if err != nil {
			return dictionary.Query{}, err
		}
		values[name] = v
	}
	cat, sub := taxonomy.SplitCategory(values["category"])
	return dictionary.Query{Type: values["type"], Level: values["level"], Category: cat, Subcategory: sub}, nil
}

// ask reads one line. With a non-empty valid list it repeats until the
// answer is one of them.
func (h *helper) ask(name string, valid []string) (string, error) {
	for {
		fmt.Fprintf(h.out, "%s? ", strings.ToUpper(name[:1])+name[1:])
		line, err := h.in.ReadString('\n')
		answer := strings.TrimRight(line, "\r\n")
		if err != nil && (err != io.EOF || answer == "") {
			return "", err
		}
		if len(valid) > 0 && !slices.Contains(valid, answer) {
			fmt.Fprintf(h.out, "No %s with that name!\n", name)
			continue
		}
		return answer, nil
	}
}
