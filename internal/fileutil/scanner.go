package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Pattern is a regex matched against the full base name (optional)
	Pattern string
	// Extensions is a list of file extensions to include (e.g., ".md")
	Extensions []string
	// ExcludeNames lists base names to skip (e.g., "README.md")
	ExcludeNames []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains base names of matched files, sorted
	Files []string
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory lists the regular files directly inside dir that match opts.
// Subdirectories and hidden files are never descended into or returned.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	var patternRegex *regexp.Regexp
	if opts.Pattern != "" {
		patternRegex, err = regexp.Compile(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
	}

	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeNames {
		excludeMap[name] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || excludeMap[name] {
			continue
		}

		entryInfo, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", name, err))
			continue
		}
		if !entryInfo.Mode().IsRegular() {
			continue
		}

		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		if patternRegex != nil && !patternRegex.MatchString(name) {
			continue
		}

		result.Files = append(result.Files, name)
	}

	sort.Strings(result.Files)

	return result, nil
}
