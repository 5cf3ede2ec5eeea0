/*
Package config manages the TOML config for pqwords.

The file has one section per component:

	[source]     where word lists come from and how they are fetched
	[selection]  which lists are loaded
	[lookup]     findWord defaults
	[server]     limits for IPC requests
	[cli]        defaults for the interactive prompt

A missing file is created with defaults. A file with type errors is read key
by key so valid values survive.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/pqwords/internal/utils"
	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/selection"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid is returned when config values are out of range.
var ErrInvalid = errors.New("invalid config")

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Source    SourceConfig     `toml:"source"`
	Selection selection.Params `toml:"selection"`
	Lookup    LookupConfig     `toml:"lookup"`
	Server    ServerConfig     `toml:"server"`
	CLI       CliConfig        `toml:"cli"`
}

// SourceConfig selects the word list backend.
type SourceConfig struct {
	Method        string `toml:"method" validate:"oneof=json msgpack txt"`
	Path          string `toml:"path"`
	BaseURL       string `toml:"base_url" validate:"omitempty,url"`
	Workers       int    `toml:"workers" validate:"gte=1,lte=64"`
	RatePerSecond int    `toml:"rate_per_second" validate:"gte=0"`
	CacheSize     int    `toml:"cache_size" validate:"gte=0"`
}

// LookupConfig holds findWord defaults.
type LookupConfig struct {
	Fuzziness     int `toml:"fuzziness" validate:"gte=0,lte=3"`
	MaxMatches    int `toml:"max_matches" validate:"gte=1"`
	MaxWordLength int `toml:"max_word_length" validate:"gte=1"`
	TimeoutMs     int `toml:"timeout_ms" validate:"gte=0"`
}

// Timeout returns TimeoutMs as a duration.
func (l LookupConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutMs) * time.Millisecond
}

// ServerConfig bounds what IPC clients may ask for.
type ServerConfig struct {
	MaxMatches    int `toml:"max_matches" validate:"gte=1"`
	MaxFuzziness  int `toml:"max_fuzziness" validate:"gte=0,lte=4"`
	MaxWordLength int `toml:"max_word_length" validate:"gte=1"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultFuzziness  int  `toml:"default_fuzziness" validate:"gte=0,lte=3"`
	DefaultMaxMatches int  `toml:"default_max_matches" validate:"gte=1"`
	NoFilter          bool `toml:"no_filter"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Method:        dictionary.MethodJSON,
			Path:          "data",
			Workers:       selection.DefaultWorkers,
			RatePerSecond: 0,
			CacheSize:     dictionary.DefaultCacheSize,
		},
		Selection: selection.Params{
			MaxWordLength: selection.DefaultMaxWordLength,
		},
		Lookup: LookupConfig{
			Fuzziness:     1,
			MaxMatches:    4,
			MaxWordLength: utils.DefaultMaxQueryLength,
			TimeoutMs:     2000,
		},
		Server: ServerConfig{
			MaxMatches:    64,
			MaxFuzziness:  3,
			MaxWordLength: 60,
		},
		CLI: CliConfig{
			DefaultFuzziness:  1,
			DefaultMaxMatches: 4,
		},
	}
}

var validate = validator.New()

// Validate checks every section against its bounds.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on '%s'", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SourceOptions turns the [source] section into dictionary options.
func (c *Config) SourceOptions() dictionary.Options {
	return dictionary.Options{
		Method:    c.Source.Method,
		Path:      c.Source.Path,
		BaseURL:   c.Source.BaseURL,
		Rate:      c.Source.RatePerSecond,
		CacheSize: c.Source.CacheSize,
	}
}

// SelectionParams returns the [selection] section with the source method and
// path filled in.
func (c *Config) SelectionParams() selection.Params {
	p := c.Selection
	p.Method = c.Source.Method
	p.Path = c.Source.Path
	return p
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/pqwords
// 2. ~/Library/Application Support/pqwords (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "pqwords")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "pqwords")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag or PQWORDS_CONFIG
// 2. Default path: [UserConfigDir]/pqwords/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads and validates a TOML file. Type errors fall back to a
// key by key parse; out of range values fail with ErrInvalid.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		cfg, err = tryPartialParse(configPath)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return cfg, nil
}

// tryPartialParse reads whatever keys have the expected types.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	tree, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	if section, ok := utils.ExtractSection(tree, "source"); ok {
		extractSourceConfig(section, &cfg.Source)
	}
	if section, ok := utils.ExtractSection(tree, "selection"); ok {
		extractSelection(section, &cfg.Selection)
	}
	if section, ok := utils.ExtractSection(tree, "lookup"); ok {
		extractLookupConfig(section, &cfg.Lookup)
	}
	if section, ok := utils.ExtractSection(tree, "server"); ok {
		extractServerConfig(section, &cfg.Server)
	}
	if section, ok := utils.ExtractSection(tree, "cli"); ok {
		extractCliConfig(section, &cfg.CLI)
	}
	return cfg, nil
}

func setInt(data map[string]any, key string, dst *int) {
	if val, ok := utils.ExtractInt64(data, key); ok {
		*dst = val
	}
}

func setBool(data map[string]any, key string, dst *bool) {
	if val, ok := utils.ExtractBool(data, key); ok {
		*dst = val
	}
}

func setString(data map[string]any, key string, dst *string) {
	if val, ok := utils.ExtractString(data, key); ok {
		*dst = val
	}
}

func setStrings(data map[string]any, key string, dst *[]string) {
	if val, ok := utils.ExtractStrings(data, key); ok {
		*dst = val
	}
}

func extractSourceConfig(data map[string]any, src *SourceConfig) {
	setString(data, "method", &src.Method)
	setString(data, "path", &src.Path)
	setString(data, "base_url", &src.BaseURL)
	setInt(data, "workers", &src.Workers)
	setInt(data, "rate_per_second", &src.RatePerSecond)
	setInt(data, "cache_size", &src.CacheSize)
}

func extractSelection(data map[string]any, p *selection.Params) {
	setStrings(data, "types", &p.Types)
	setStrings(data, "levels", &p.Levels)
	setStrings(data, "categories", &p.Categories)
	setStrings(data, "type_exceptions", &p.TypeExceptions)
	setStrings(data, "category_exceptions", &p.CategoryExceptions)
	setBool(data, "use_all", &p.UseAll)
	setBool(data, "use_all_levels_below", &p.UseAllLevelsBelow)
	setBool(data, "use_all_categories", &p.UseAllCategories)
	setBool(data, "use_all_subcat", &p.UseAllSubcat)
	setBool(data, "strict", &p.Strict)
	setInt(data, "min_word_length", &p.MinWordLength)
	setInt(data, "max_word_length", &p.MaxWordLength)
}

func extractLookupConfig(data map[string]any, lookup *LookupConfig) {
	setInt(data, "fuzziness", &lookup.Fuzziness)
	setInt(data, "max_matches", &lookup.MaxMatches)
	setInt(data, "max_word_length", &lookup.MaxWordLength)
	setInt(data, "timeout_ms", &lookup.TimeoutMs)
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	setInt(data, "max_matches", &server.MaxMatches)
	setInt(data, "max_fuzziness", &server.MaxFuzziness)
	setInt(data, "max_word_length", &server.MaxWordLength)
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	setInt(data, "default_fuzziness", &cli.DefaultFuzziness)
	setInt(data, "default_max_matches", &cli.DefaultMaxMatches)
	setBool(data, "no_filter", &cli.NoFilter)
}

// RebuildConfigFile force creates a new config.toml at the default path.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Update changes the server limits, validates them and saves the file. Nil
// arguments keep their current value. Nothing is written when validation
// fails.
func (c *Config) Update(configPath string, maxMatches, maxFuzziness, maxWordLength *int) error {
	next := *c
	if maxMatches != nil {
		next.Server.MaxMatches = *maxMatches
	}
	if maxFuzziness != nil {
		next.Server.MaxFuzziness = *maxFuzziness
	}
	if maxWordLength != nil {
		next.Server.MaxWordLength = *maxWordLength
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	if configPath == "" {
		return nil
	}
	return SaveConfig(c, configPath)
}
