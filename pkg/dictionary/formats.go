package dictionary

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the word list file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line, one file per query
	FormatJSON               // bulk hierarchy, JSON
	FormatMsgpack            // bulk hierarchy, msgpack
)

const (
	TextExtension    = ".txt"
	JSONExtension    = ".json"
	MsgpackExtension = ".msgpack"

	// BundleName is the base name of the bulk word file.
	BundleName = "lib-pqWords"
)

// FormatInfo contains metadata about a word list file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{TextExtension},
		MinSize:     0, // empty lists are valid
	},
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Word Bundle",
		Extensions:  []string{JSONExtension},
		MinSize:     2, // {}
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Word Bundle",
		Extensions:  []string{MsgpackExtension, ".mpk"},
		MinSize:     1, // fixmap header
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat guesses the format of a file from its extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, validExt := range info.Extensions {
			if ext == validExt {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// ValidateFileFormat checks that a file in fsys matches the expected format.
func ValidateFileFormat(fsys fs.FS, filename string, expectedFormat FileFormat) error {
	fileInfo, err := fs.Stat(fsys, filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	detected, err := DetectFileFormat(filename)
	if err != nil || detected != expectedFormat {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, filepath.Ext(filename), formatInfo.Description, formatInfo.Extensions)
	}

	log.Debugf("File %s validated as %s", filename, formatInfo.Description)
	return nil
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
