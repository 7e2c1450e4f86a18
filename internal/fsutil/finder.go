// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoExtensions is returned by FindFilesByExtension when called without
// any extension to match.
var ErrNoExtensions = errors.New("at least one extension is required")

// FindFilesByExtension returns the files under rootPath whose names end with
// one of the given extensions. rootPath may be a single file, in which case it
// is returned when its extension matches. Results are sorted lexically.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		return nil, ErrNoExtensions
	}

	matches := func(name string) bool {
		for _, ext := range extensions {
			if strings.HasSuffix(strings.ToLower(name), ext) {
				return true
			}
		}
		return false
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && matches(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Exists reports whether a file or directory exists at path. Errors other
// than "not exist" (e.g. permission denied) are returned to the caller.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
