// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gobwas/glob"
)

// FindModules returns the module artifacts at path. A regular file is
// returned as is. For a directory, the regular files directly inside it
// whose names match pattern are returned, sorted by name. Symlinks are
// followed and kept when they point at a regular file. Subdirectories
// are not searched.
func FindModules(path string, pattern string) ([]string, error) {
	if pattern == "" {
		panic("pattern must not be empty")
	}
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid module pattern %q: %w", pattern, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if !matcher.Match(entry.Name()) {
			continue
		}
		full := filepath.Join(path, entry.Name())
		if !isRegular(entry, full) {
			continue
		}
		files = append(files, full)
	}
	slices.Sort(files)
	return files, nil
}

// isRegular resolves symlinks. Dangling links are skipped.
func isRegular(entry os.DirEntry, full string) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}
