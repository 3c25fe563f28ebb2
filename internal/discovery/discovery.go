// Package discovery expands CLI arguments into analysable file paths.
// Arguments can be plain files, directories (walked recursively for
// text and Markdown files), or doublestar glob patterns.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// isProse returns true for the file extensions the walker picks up.
// Explicitly named files bypass this filter.
func isProse(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md", ".markdown":
		return true
	}
	return false
}

// hasGlobChars returns true if the string contains glob
// meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Resolve takes positional arguments and returns deduplicated, sorted
// file paths. Nonexistent paths that are not glob patterns are errors;
// patterns that match nothing are not.
func Resolve(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

// resolveArg resolves one argument (pattern, directory, or file).
func resolveArg(arg string, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolvePattern(arg, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return walkDir(arg, addFile)
	}

	// Explicitly named files are taken as-is, whatever the extension.
	addFile(arg)
	return nil
}

// resolvePattern expands a doublestar pattern against the filesystem
// rooted at the pattern's fixed prefix.
func resolvePattern(pattern string, addFile func(string)) error {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}

	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	matches, err := doublestar.Glob(os.DirFS(base), rest)
	if err != nil {
		return fmt.Errorf("expanding pattern %q: %w", pattern, err)
	}

	for _, m := range matches {
		path := filepath.Join(base, filepath.FromSlash(m))
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := walkDir(path, addFile); err != nil {
				return err
			}
		} else {
			addFile(path)
		}
	}
	return nil
}

// walkDir recursively adds all prose files under dir.
func walkDir(dir string, addFile func(string)) error {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && isProse(path) {
			addFile(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}
