// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the pqwords lookup server and its interactive CLI.

pqwords loads categorized word lists (type, level, category and
subcategory), indexes them in a trie and answers "is this word in the
dictionary, and if not, what did you mean?" within a bounded edit distance.

# Usage

Start the msgpack IPC server with the config defaults:

	pqwords

Load plain text lists from a custom directory with debug logging:

	pqwords -data /path/to/words -method txt -d

Run the interactive prompt with two edits of fuzziness:

	pqwords -c -f 2 -m 6

# Configuration

Settings live in config.toml inside the user config directory (created with
defaults on first run) or the file given with -config:

	[source]
	method = "json"
	path = "data"
	workers = 4

	[selection]
	types = ["nouns"]
	levels = ["medium"]
	use_all_levels_below = true

	[lookup]
	fuzziness = 1
	max_matches = 4

A .env file in the working directory may set PQWORDS_DATA, PQWORDS_CONFIG and
PQWORDS_BASE_URL. Flags win over the environment, which wins over the file.

# IPC Protocol

See package server. Every request is a msgpack map with an id and an action:

	{"id": "q1", "action": "lookup", "w": "elefant", "f": 2}
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/pqwords/internal/cli"
	"github.com/bastiangx/pqwords/internal/logger"
	"github.com/bastiangx/pqwords/internal/utils"
	"github.com/bastiangx/pqwords/pkg/config"
	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/lexicon"
	"github.com/bastiangx/pqwords/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	Version = "0.3.0"
	AppName = "pqwords"
	gh      = "https://github.com/bastiangx/pqwords"
)

// main wires config, source, lexicon and the chosen front end together.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to read .env: %v\n", err)
	}

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", os.Getenv("PQWORDS_DATA"), "Directory containing the word lists or bundle")
	configFile := flag.String("config", os.Getenv("PQWORDS_CONFIG"), "Path to a custom config file")
	method := flag.String("method", "", "Load method: json, msgpack or txt (default from config)")
	baseURL := flag.String("base-url", os.Getenv("PQWORDS_BASE_URL"), "Fetch txt lists over HTTP from this base URL")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive prompt instead of the IPC server")
	fuzziness := flag.Int("f", -1, "Edit distance for suggestions (default from config)")
	maxMatches := flag.Int("m", 0, "Maximum number of suggestions (default from config)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only)")
	resetConfig := flag.Bool("reset-config", false, "Rewrite the default config file with defaults and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	if *resetConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Config reset at %s\n", config.GetActiveConfigPath(""))
		os.Exit(0)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	cfg, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if configPath == "" {
		// the default location is unusable, fall back to a writable one
		configPath = pathResolver.GetConfigPath(config.FileName)
		if cfg, err = config.InitConfig(configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *method != "" {
		cfg.Source.Method = *method
	}
	if *baseURL != "" {
		cfg.Source.BaseURL = *baseURL
	}

	dataPath := cfg.Source.Path
	if *dataDir != "" {
		dataPath = *dataDir
	}
	cfg.Source.Path = pathResolver.GetDataDir(dataPath)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad settings: %v", err)
	}
	log.Debugf("Using data dir at: %s", cfg.Source.Path)

	src, err := dictionary.Open(cfg.SourceOptions())
	if err != nil {
		log.Fatalf("Failed to open word source: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigHandler(cancel)

	lex := lexicon.New(src,
		lexicon.WithWorkers(cfg.Source.Workers),
		lexicon.WithSourceOptions(cfg.SourceOptions()),
		lexicon.WithTimeout(cfg.Lookup.Timeout()),
	)
	if err := lex.Load(ctx, cfg.SelectionParams()); err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}
	log.Debugf("Loaded %s words", utils.FormatWithCommas(lex.WordCount()))

	if *cliMode {
		log.SetReportTimestamp(false)
		fuzz := cfg.CLI.DefaultFuzziness
		if *fuzziness >= 0 {
			fuzz = *fuzziness
		}
		matches := cfg.CLI.DefaultMaxMatches
		if *maxMatches > 0 {
			matches = *maxMatches
		}
		log.Debug("Input info:", "fuzziness", fuzz, "maxMatches", matches, "noFilter", *noFilter || cfg.CLI.NoFilter)

		h := cli.NewInputHandler(lex, fuzz, matches, cfg.Lookup.MaxWordLength, *noFilter || cfg.CLI.NoFilter, os.Stdin, os.Stdout)
		h.SetStyles(cli.DefaultStyles())
		if err := h.Start(ctx); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *fuzziness >= 0 {
		cfg.Lookup.Fuzziness = *fuzziness
	}
	if *maxMatches > 0 {
		cfg.Lookup.MaxMatches = *maxMatches
	}
	showStartupInfo(cfg.Source.Path, configPath, lex.WordCount())

	srv := server.NewServer(lex, cfg, configPath)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// sigHandler cancels in-flight work and exits; the stdin readers cannot be
// interrupted otherwise.
func sigHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cancel()
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ pqwords ] Categorized word lookups with typo suggestions")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints the server banner on stderr; stdout belongs to IPC.
func showStartupInfo(dataDir, configPath string, wordCount int) {
	l := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false)
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "  pqwords  ")
	fmt.Fprintln(os.Stderr, "===========")
	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("data dir: ( %s )", dataDir)
	l.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	l.Infof("words: %s", utils.FormatWithCommas(wordCount))
	l.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")
}
