package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// discoverFiles resolves path into the ordered list of override scripts to
// load. A path naming a file yields just that file; a directory is walked
// recursively with test fixtures excluded. The result is sorted
// lexicographically by full path, which fixes the merge order for a given
// file set.
func discoverFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "tests" {
				return filepath.SkipDir
			}
			return nil
		}
		if excludedFile(d.Name()) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// excludedFile reports whether a file name identifies a test fixture rather
// than an override script. Hidden files are skipped too.
func excludedFile(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasPrefix(name, "test_") ||
		strings.HasPrefix(name, "conftest")
}
