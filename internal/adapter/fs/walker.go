package fs

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"bleu/internal/log"
)

// ExpandPaths resolves reference arguments into file paths.
//
// An argument without glob metacharacters is returned as given, whether or not it
// exists, so that opening it later reports the usual OS error. A glob is matched
// with doublestar syntax and must match at least one file. The result keeps the
// argument order; matches of a single glob are sorted and duplicates are dropped.
func ExpandPaths(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	add := func(p string) {
		key := filepath.Clean(p)
		if seen[key] {
			log.Warnf("Reference file listed more than once, ignoring repeat: %s", p)
			return
		}
		seen[key] = true
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", pattern)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return paths, nil
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
