package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// BundleFile is the bulk word file looked for in data directories.
const BundleFile = "lib-pqWords.json"

// PathResolver finds the word data and config locations relative to the
// running binary, the working directory and the user config directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "pqwords")
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pqwords")
		}
	}
	return filepath.Join(homeDir, ".config", "pqwords")
}

// GetDataDir resolves the word data directory. An absolute userPath is tried
// first, then userPath relative to the binary and the working directory, then
// a "data" directory next to the binary, its parent and the config dir. When
// nothing qualifies the path relative to the binary is returned.
func (pr *PathResolver) GetDataDir(userPath string) string {
	var candidates []string
	if filepath.IsAbs(userPath) {
		candidates = append(candidates, userPath)
	}
	execRelative := filepath.Join(pr.executableDir, userPath)
	candidates = append(candidates, execRelative)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, "data"),
		filepath.Join(filepath.Dir(pr.executableDir), "data"),
		filepath.Join(pr.configDir, "data"),
	)

	for _, path := range candidates {
		if IsDataDir(path) {
			log.Debugf("Found valid data directory: %s", path)
			return path
		}
		log.Debugf("Data directory candidate not valid: %s", path)
	}
	return execRelative
}

// IsDataDir reports whether path holds a word bundle or per-type list
// directories.
func IsDataDir(path string) bool {
	if !IsDir(path) {
		return false
	}
	if FileExists(filepath.Join(path, BundleFile)) || FileExists(filepath.Join(path, "lib-pqWords.msgpack")) {
		return true
	}
	matches, err := filepath.Glob(filepath.Join(path, "*", "*", "*.txt"))
	return err == nil && len(matches) > 0
}

// GetConfigPath returns filename inside the first writable config location.
func (pr *PathResolver) GetConfigPath(filename string) string {
	dirs := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, ".pqwords"),
		filepath.Join(os.TempDir(), "pqwords"),
		pr.executableDir,
	}
	for i, dir := range dirs {
		if CheckDirStatus(dir).Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}
