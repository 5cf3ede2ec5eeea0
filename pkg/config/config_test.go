package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Source, loaded.Source)
	assert.Equal(t, cfg.Lookup, loaded.Lookup)
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
[source]
method = "txt"
path = "/srv/words"
workers = 8

[selection]
types = ["nouns", "verbs"]
levels = ["medium"]
use_all_levels_below = true
category_exceptions = ["birds"]

[lookup]
fuzziness = 2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "txt", cfg.Source.Method)
	assert.Equal(t, 8, cfg.Source.Workers)
	assert.Equal(t, []string{"nouns", "verbs"}, cfg.Selection.Types)
	assert.True(t, cfg.Selection.UseAllLevelsBelow)
	assert.Equal(t, 2, cfg.Lookup.Fuzziness)
	assert.Equal(t, 4, cfg.Lookup.MaxMatches, "unset keys keep defaults")

	p := cfg.SelectionParams()
	assert.Equal(t, "txt", p.Method)
	assert.Equal(t, "/srv/words", p.Path)
	assert.Equal(t, "txt", cfg.SourceOptions().Method)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeFile(t, `
[source]
workers = "many"
method = "msgpack"

[lookup]
fuzziness = 2
max_matches = "lots"

[cli]
no_filter = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "msgpack", cfg.Source.Method)
	assert.Equal(t, DefaultConfig().Source.Workers, cfg.Source.Workers)
	assert.Equal(t, 2, cfg.Lookup.Fuzziness)
	assert.Equal(t, 4, cfg.Lookup.MaxMatches)
	assert.True(t, cfg.CLI.NoFilter)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeFile(t, `
[source]
method = "carrier-pigeon"
`)
	_, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "Method")

	cfg, err := InitConfig(path)
	require.NoError(t, err, "InitConfig falls back to defaults")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriority(t *testing.T) {
	path := writeFile(t, "[lookup]\nfuzziness = 3\n")
	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 3, cfg.Lookup.Fuzziness)
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()

	matches, fuzz := 10, 2
	require.NoError(t, cfg.Update(path, &matches, &fuzz, nil))
	assert.Equal(t, 10, cfg.Server.MaxMatches)
	assert.Equal(t, 60, cfg.Server.MaxWordLength)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Server, loaded.Server)

	bad := 0
	require.ErrorIs(t, cfg.Update(path, &bad, nil, nil), ErrInvalid)
	assert.Equal(t, 10, cfg.Server.MaxMatches, "rejected update leaves config untouched")
}
